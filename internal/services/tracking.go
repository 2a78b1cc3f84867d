package services

import (
	"strings"
	"time"
)

// Checkpoint is a single tracking event.
type Checkpoint struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type courier struct {
	name        string
	trackingURL string // {trackingNumber} is substituted
}

// Major Indian courier services.
var couriers = map[string]courier{
	"delhivery":   {"Delhivery", "https://www.delhivery.com/track/package/{trackingNumber}"},
	"bluedart":    {"Blue Dart", "https://www.bluedart.com/trackdart?trackNo={trackingNumber}"},
	"dtdc":        {"DTDC", "https://www.dtdc.in/tracking/tracking_results.asp?Ttype=awb_no&strCnno={trackingNumber}"},
	"fedex":       {"FedEx", "https://www.fedex.com/apps/fedextrack/?tracknumbers={trackingNumber}"},
	"aramex":      {"Aramex", "https://www.aramex.com/track/results?ShipmentNumber={trackingNumber}"},
	"ekart":       {"Ekart", "https://ekartlogistics.com/track/{trackingNumber}"},
	"xpressbees":  {"Xpressbees", "https://www.xpressbees.com/track/{trackingNumber}"},
	"shiprocket":  {"Shiprocket", "https://shiprocket.co/tracking/{trackingNumber}"},
	"pickrr":      {"Pickrr", "https://pickrr.com/track/{trackingNumber}"},
	"indiapost":   {"India Post", "https://www.indiapost.gov.in/_layouts/15/DPM.Portal/Tracking/ConsignmentTracking.aspx?trackingNumber={trackingNumber}"},
}

// TrackingURL builds the courier's public tracking page URL. Unknown couriers
// fall back to a web search for the tracking number.
func TrackingURL(courierService, trackingNumber string) string {
	svc, ok := couriers[strings.ToLower(courierService)]
	if !ok {
		return "https://www.google.com/search?q=track+" + trackingNumber
	}
	return strings.ReplaceAll(svc.trackingURL, "{trackingNumber}", trackingNumber)
}

// CourierName returns the courier's display name.
func CourierName(courierService string) string {
	if svc, ok := couriers[strings.ToLower(courierService)]; ok {
		return svc.name
	}
	return courierService
}

// TrackingStatus returns the shipment's checkpoint timeline. This is a
// stubbed collaborator: the sequence is static regardless of courier or
// tracking number, standing in for a real courier API integration.
func TrackingStatus(courierService, trackingNumber string) []Checkpoint {
	now := time.Now()
	return []Checkpoint{
		{
			Status:      "Order Confirmed",
			Description: "Your order has been confirmed",
			Timestamp:   now,
		},
		{
			Status:      "Processing",
			Description: "Your order is being prepared",
			Timestamp:   now.Add(-1 * time.Hour),
		},
		{
			Status:      "Shipped",
			Description: "Your order has been shipped",
			Location:    "Warehouse",
			Timestamp:   now.Add(-2 * time.Hour),
		},
	}
}
