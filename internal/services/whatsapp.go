package services

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/example/jhelumkesar/internal/models"
)

var waNonDigits = regexp.MustCompile(`\D`)

// WhatsAppURL builds a wa.me click-to-chat link. No API call is made; the
// link is handed to the client to open.
func WhatsAppURL(phone, message string) string {
	formatted := waNonDigits.ReplaceAllString(phone, "")
	return "https://wa.me/" + formatted + "?text=" + url.QueryEscape(message)
}

// LeadWhatsAppURL builds the shop-owner notification link for a new lead.
func LeadWhatsAppURL(shopPhone string, lead models.Lead) string {
	var msg strings.Builder
	msg.WriteString("🎯 New Lead - Jhelum Kesar Co.\n\n")
	fmt.Fprintf(&msg, "Name: %s\n", lead.Name)
	fmt.Fprintf(&msg, "Email: %s\n", lead.Email)
	fmt.Fprintf(&msg, "Phone: %s\n", lead.Phone)
	fmt.Fprintf(&msg, "Query: %s\n\n", lead.Query)
	fmt.Fprintf(&msg, "Lead ID: %s\n", lead.ID)
	fmt.Fprintf(&msg, "Time: %s", lead.CreatedAt.Format(time.RFC1123))
	return WhatsAppURL(shopPhone, msg.String())
}

// OrderWhatsAppURL builds an order-confirmation chat link for the customer.
func OrderWhatsAppURL(customerPhone string, order models.Order) string {
	var msg strings.Builder
	msg.WriteString("🎉 Order Confirmation - Jhelum Kesar Co.\n\n")
	fmt.Fprintf(&msg, "Order ID: %s\n\nItems:\n", order.ID)
	for _, item := range order.Items {
		fmt.Fprintf(&msg, "• %s x%d - ₹%.0f\n", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&msg, "\nTotal: ₹%.0f", order.Total)
	msg.WriteString("\n\nThank you for your order! We'll process it shortly.")
	return WhatsAppURL(customerPhone, msg.String())
}
