package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{
			name:   "Valid Number",
			number: "79927398713",
			valid:  true,
		},
		{
			name:   "Invalid Check Digit",
			number: "79927398710",
			valid:  false,
		},
		{
			name:   "Non-Numeric",
			number: "7992739871a",
			valid:  false,
		},
		{
			name:   "Empty",
			number: "",
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsLuna(tt.number))
		})
	}
}

func TestNewMemberNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number, err := NewMemberNumber()
		assert.NoError(t, err)
		assert.Len(t, number, memberNumberDigits+1)
		assert.True(t, IsLuna(number))
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}
