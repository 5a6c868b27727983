package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const receiptLength = 12

// NewReceiptNumber generates a Luhn-valid payment receipt number.
func NewReceiptNumber() string {
	return goluhn.Generate(receiptLength)
}

// IsReceiptNumber reports whether s passes the Luhn check.
func IsReceiptNumber(s string) bool {
	return goluhn.Validate(s) == nil
}
