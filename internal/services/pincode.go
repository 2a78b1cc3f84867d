package services

import (
	"encoding/json"
	"net/http"
	"time"
)

// PincodeResult is the address-autofill data for a postal code.
type PincodeResult struct {
	State    string `json:"state"`
	District string `json:"district"`
	City     string `json:"city"`
	Found    bool   `json:"found"`
}

// PincodeClient resolves Indian postal codes against the public
// postalpincode.in API. Lookups never fail hard: any error yields an empty
// result with Found false, since autofill is an optional convenience.
type PincodeClient struct {
	baseURL string
	client  *http.Client
}

// NewPincodeClient returns a client for the public lookup API.
func NewPincodeClient() *PincodeClient {
	return &PincodeClient{
		baseURL: "https://api.postalpincode.in/pincode/",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type pincodeAPIResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		State    string `json:"State"`
		District string `json:"District"`
		Block    string `json:"Block"`
	} `json:"PostOffice"`
}

// Lookup resolves a pincode to state/district/city.
func (p *PincodeClient) Lookup(pincode string) PincodeResult {
	resp, err := p.client.Get(p.baseURL + pincode)
	if err != nil {
		return PincodeResult{}
	}
	defer resp.Body.Close()

	var data pincodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return PincodeResult{}
	}

	if len(data) == 0 || data[0].Status != "Success" || len(data[0].PostOffice) == 0 {
		return PincodeResult{}
	}

	po := data[0].PostOffice[0]
	city := po.District
	if city == "" {
		city = po.Block
	}
	return PincodeResult{
		State:    po.State,
		District: po.District,
		City:     city,
		Found:    true,
	}
}
