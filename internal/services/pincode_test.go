package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pincodeServer(t *testing.T, payload string) *PincodeClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	p := NewPincodeClient()
	p.baseURL = srv.URL + "/"
	return p
}

func TestPincodeLookupSuccess(t *testing.T) {
	p := pincodeServer(t, `[{"Status":"Success","PostOffice":[{"State":"Jammu and Kashmir","District":"Srinagar","Block":"Srinagar North"}]}]`)

	result := p.Lookup("190001")
	assert.True(t, result.Found)
	assert.Equal(t, "Jammu and Kashmir", result.State)
	assert.Equal(t, "Srinagar", result.District)
	assert.Equal(t, "Srinagar", result.City)
}

func TestPincodeLookupCityFallsBackToBlock(t *testing.T) {
	p := pincodeServer(t, `[{"Status":"Success","PostOffice":[{"State":"Jammu and Kashmir","District":"","Block":"Pampore"}]}]`)

	result := p.Lookup("192121")
	assert.True(t, result.Found)
	assert.Equal(t, "Pampore", result.City)
}

func TestPincodeLookupSoftFailures(t *testing.T) {
	cases := map[string]string{
		"no match":   `[{"Status":"Error","PostOffice":null}]`,
		"empty body": `[]`,
		"bad json":   `{not json`,
	}
	for name, payload := range cases {
		p := pincodeServer(t, payload)
		result := p.Lookup("190001")
		assert.False(t, result.Found, name)
		assert.Empty(t, result.State, name)
	}
}

func TestPincodeLookupNetworkErrorIsSoft(t *testing.T) {
	p := NewPincodeClient()
	p.baseURL = "http://127.0.0.1:1/pincode/"

	result := p.Lookup("190001")
	assert.False(t, result.Found)
}
