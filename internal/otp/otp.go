// Package otp issues and verifies the one-time codes used by the
// password-reset flow. Codes are keyed by lowercased email, expire after five
// minutes and are consumed on successful verification.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// TTL is how long a code stays valid.
const TTL = 5 * time.Minute

// Store holds pending reset codes. Implementations must expire entries after
// TTL and delete them on successful verification.
type Store interface {
	// Put stores code for email, replacing any pending one.
	Put(ctx context.Context, email, code string) error
	// Verify checks code against the pending entry. A match consumes the
	// entry; an expired entry is discarded on sight.
	Verify(ctx context.Context, email, code string) (bool, error)
}

// Generate returns a random 6-digit code.
func Generate() (string, error) {
	max := big.NewInt(900000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
