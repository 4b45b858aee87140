package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderCode builds a short human-friendly order identifier,
// e.g. PED-20260901-4821. Staff read these out loud over the phone,
// so the suffix stays at four digits.
func GenerateOrderCode() string {
	now := time.Now().UTC()
	datePart := now.Format("20060102")

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("PED-%s-%04d", datePart, n.Int64())
}
