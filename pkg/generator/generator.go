package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	SessionIDLen = 24
)

var errBadLength = errors.New("id length must be positive")

func GenerateRandomID(length int) (string, error) {
	if length <= 0 {
		return "", errBadLength
	}

	n := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for i := range result {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", err
		}
		result[i] = alphabet[idx.Int64()]
	}

	return string(result), nil
}

func NewSessionID() (string, error) {
	return GenerateRandomID(SessionIDLen)
}
