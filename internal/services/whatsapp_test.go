package services

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jhelumkesar/internal/models"
)

func TestWhatsAppURLStripsPhoneFormatting(t *testing.T) {
	link := WhatsAppURL("+91 98765-43210", "hello there")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/919876543210?text="), link)
	assert.Contains(t, link, "hello+there")
}

func TestLeadWhatsAppURL(t *testing.T) {
	lead := models.Lead{
		ID:        "LEADABC123",
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Query:     "Bulk saffron pricing",
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	link := LeadWhatsAppURL("+91 90000 00000", lead)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/919000000000", parsed.Path)

	text := parsed.Query().Get("text")
	assert.Contains(t, text, "New Lead")
	assert.Contains(t, text, "Asha")
	assert.Contains(t, text, "LEADABC123")
	assert.Contains(t, text, "Bulk saffron pricing")
}

func TestOrderWhatsAppURL(t *testing.T) {
	order := models.Order{
		ID: "ORDABC123",
		Items: []models.OrderItem{
			{Name: "Premium Kashmiri Saffron", Price: 500, Quantity: 2},
		},
		Total: 1000,
	}

	link := OrderWhatsAppURL("9876543210", order)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "ORDABC123")
	assert.Contains(t, text, "Premium Kashmiri Saffron x2")
	assert.Contains(t, text, "₹1000")
}
