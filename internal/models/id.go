package models

import (
	"strings"

	"github.com/google/uuid"
)

// ID constructors. Prefixes match the persisted collection data.

func NewUserID() string    { return "user_" + uuid.NewString() }
func NewAddressID() string { return "addr_" + uuid.NewString() }
func NewOrderID() string   { return "ORD" + compactID() }
func NewReviewID() string  { return "REV" + compactID() }
func NewLeadID() string    { return "LEAD" + compactID() }

func compactID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}
