package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReceiptNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		number := NewReceiptNumber()
		assert.NotEmpty(t, number)
		assert.True(t, IsReceiptNumber(number))
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestIsReceiptNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		valid  bool
	}{
		{
			name:   "Valid number",
			number: "4242424242424242",
			valid:  true,
		},
		{
			name:   "Invalid checksum",
			number: "4242424242424241",
			valid:  false,
		},
		{
			name:   "Not a number",
			number: "receipt",
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsReceiptNumber(tt.number))
		})
	}
}

func TestStruct(t *testing.T) {
	type input struct {
		Email  string `validate:"required,email"`
		Amount float64 `validate:"required,gt=0"`
	}

	t.Run("Valid struct", func(t *testing.T) {
		assert.NoError(t, Struct(input{Email: "aminata@example.com", Amount: 400000}))
	})

	t.Run("Missing fields", func(t *testing.T) {
		assert.Error(t, Struct(input{}))
	})

	t.Run("Bad email", func(t *testing.T) {
		assert.Error(t, Struct(input{Email: "not-an-email", Amount: 400000}))
	})
}
