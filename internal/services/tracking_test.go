package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingURLKnownCourier(t *testing.T) {
	url := TrackingURL("delhivery", "AWB123")
	assert.Equal(t, "https://www.delhivery.com/track/package/AWB123", url)

	url = TrackingURL("BlueDart", "AWB123")
	assert.Equal(t, "https://www.bluedart.com/trackdart?trackNo=AWB123", url)
}

func TestTrackingURLUnknownCourierFallsBackToSearch(t *testing.T) {
	url := TrackingURL("speedy-local", "AWB123")
	assert.Equal(t, "https://www.google.com/search?q=track+AWB123", url)
}

func TestCourierName(t *testing.T) {
	assert.Equal(t, "Blue Dart", CourierName("bluedart"))
	assert.Equal(t, "India Post", CourierName("IndiaPost"))
	assert.Equal(t, "speedy-local", CourierName("speedy-local"))
}

func TestTrackingStatusTimeline(t *testing.T) {
	checkpoints := TrackingStatus("delhivery", "AWB123")

	assert.Len(t, checkpoints, 3)
	assert.Equal(t, "Order Confirmed", checkpoints[0].Status)
	assert.Equal(t, "Processing", checkpoints[1].Status)
	assert.Equal(t, "Shipped", checkpoints[2].Status)
	assert.Equal(t, "Warehouse", checkpoints[2].Location)
	for i := 1; i < len(checkpoints); i++ {
		assert.True(t, checkpoints[i].Timestamp.Before(checkpoints[i-1].Timestamp))
	}
}
