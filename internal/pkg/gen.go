package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
)

// PromoAlphabet leaves out characters that are easy to confuse: 0/O and 1/I.
const PromoAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const PromoCodeLength = 5

// GenerateGameID - generates a unique identifier for a game session.
func GenerateGameID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GeneratePromoCode - generates a short reward code a person can type.
func GeneratePromoCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(PromoAlphabet)))

	code := make([]byte, PromoCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate promo code: %w", err)
		}
		code[i] = PromoAlphabet[n.Int64()]
	}

	return string(code), nil
}
