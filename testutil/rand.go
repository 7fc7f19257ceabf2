package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns empty string
func RandomAlphaNum(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	randomString := make([]byte, length)
	for i := range randomString {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		randomString[i] = charset[num.Int64()]
	}

	return string(randomString), nil
}

// RandomAccount returns a plausible account identifier for tests.
func RandomAccount() string {
	return "acct-" + gofakeit.LetterN(12)
}

// RandomAmount returns a stake amount in [1, max].
func RandomAmount(max uint64) uint64 {
	return uint64(gofakeit.UintRange(1, uint(max)))
}

// RandomRateBps returns an annualized rate between 1 and 10000 basis points.
func RandomRateBps() uint64 {
	return uint64(gofakeit.UintRange(1, 10000))
}
