package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/jhelumkesar/internal/models"
)

// Email is a single outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer sends transactional email through a configured provider. Sends are
// best-effort: callers log failures and never propagate them into the request
// that triggered the notification.
type Mailer struct {
	provider    string
	from        string
	resendKey   string
	sendgridKey string
	client      *http.Client
}

// NewMailer constructs a Mailer. Supported providers: "resend", "sendgrid",
// and "log" (writes the message to the application log, used in development).
func NewMailer(provider, from, resendKey, sendgridKey string) *Mailer {
	return &Mailer{
		provider:    provider,
		from:        from,
		resendKey:   resendKey,
		sendgridKey: sendgridKey,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers the email through the configured provider.
func (m *Mailer) Send(email Email) error {
	switch m.provider {
	case "resend":
		return m.sendViaResend(email)
	case "sendgrid":
		return m.sendViaSendgrid(email)
	default:
		logrus.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
		}).Info("email (log provider)")
		return nil
	}
}

func (m *Mailer) sendViaResend(email Email) error {
	if m.resendKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	payload := map[string]any{
		"from":    m.from,
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
		"text":    email.Text,
	}
	return m.post("https://api.resend.com/emails", m.resendKey, payload)
}

func (m *Mailer) sendViaSendgrid(email Email) error {
	if m.sendgridKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not configured")
	}

	text := email.Text
	if text == "" {
		text = email.Subject
	}
	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": email.To}}},
		},
		"from":    map[string]string{"email": m.from, "name": "Jhelum Kesar Co."},
		"subject": email.Subject,
		"content": []map[string]string{
			{"type": "text/plain", "value": text},
			{"type": "text/html", "value": email.HTML},
		},
	}
	return m.post("https://api.sendgrid.com/v3/mail/send", m.sendgridKey, payload)
}

func (m *Mailer) post(url, apiKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

// OrderConfirmationEmail builds the checkout confirmation message.
func OrderConfirmationEmail(to string, order models.Order) Email {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, "<li>%s x%d — ₹%.0f</li>", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	html := fmt.Sprintf(
		`<h2>Thank you for your order!</h2>
<p>Order <b>%s</b> has been received and is being processed.</p>
<ul>%s</ul>
<p>Subtotal: ₹%.0f<br>Shipping: ₹%.0f<br><b>Total: ₹%.0f</b></p>
<p>We will email you again when it ships.</p>`,
		order.ID, items.String(), order.Subtotal, order.Shipping, order.Total,
	)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("Order Confirmation #%s - Jhelum Kesar Co.", order.ID),
		HTML:    html,
		Text:    fmt.Sprintf("Order %s received. Total: ₹%.0f", order.ID, order.Total),
	}
}

// OrderStatusEmail builds the status-update notice sent when an order's
// status changes.
func OrderStatusEmail(to string, order models.Order) Email {
	tracking := ""
	if order.TrackingNumber != "" {
		tracking = fmt.Sprintf("<p>Tracking number: <b>%s</b> (%s)</p>",
			order.TrackingNumber, CourierName(order.CourierService))
	}

	html := fmt.Sprintf(
		`<h2>Order Update</h2>
<p>Order <b>%s</b> is now <b>%s</b>.</p>%s`,
		order.ID, order.Status, tracking,
	)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("Order Update #%s - Jhelum Kesar Co.", order.ID),
		HTML:    html,
		Text:    fmt.Sprintf("Order %s is now %s", order.ID, order.Status),
	}
}
