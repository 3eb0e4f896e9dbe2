// Package numbers generates candidate account and card numbers. Uniqueness is
// not guaranteed here: the persistence layer's unique index is authoritative
// and callers retry on a collision.
package numbers

import (
	"crypto/rand"
)

const (
	accountPrefix = "444"
	accountSuffix = "10"
	cardPrefix    = "4111"

	accountRandomDigits = 13
	cardRandomDigits    = 12
)

// NewAccountNumber returns an 18-digit candidate account number: the bank
// prefix, 13 random digits, and the account class suffix.
func NewAccountNumber() string {
	return accountPrefix + randomDigits(accountRandomDigits) + accountSuffix
}

// NewCardNumber returns a 16-digit candidate card number.
func NewCardNumber() string {
	return cardPrefix + randomDigits(cardRandomDigits)
}

func randomDigits(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	digits := make([]byte, n)
	for i, b := range buf {
		digits[i] = '0' + b%10
	}
	return string(digits)
}
