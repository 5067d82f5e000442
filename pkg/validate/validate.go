package validate

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ShiraazMoollatjie/goluhn"
)

const memberNumberDigits = 11

func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// NewMemberNumber returns a fresh Luhn-valid member number: 11 random
// digits followed by a check digit.
func NewMemberNumber() (string, error) {
	base := make([]byte, memberNumberDigits)
	for i := range base {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate member number: %w", err)
		}
		base[i] = byte('0' + n.Int64())
	}

	_, full, err := goluhn.Calculate(string(base))
	if err != nil {
		return "", fmt.Errorf("failed to generate member number: %w", err)
	}
	return full, nil
}
