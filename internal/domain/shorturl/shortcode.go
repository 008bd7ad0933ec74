package shorturl

import (
	"crypto/rand"
	"math/big"
)

// codeAlphabet gives 62^6 (~5.7e10) combinations at the default length.
const (
	codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	CodeLength   = 6

	maxAliasLength = 32
)

// GenerateCode draws CodeLength characters uniformly from codeAlphabet.
func GenerateCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// IsValidCode accepts generated codes and user-chosen aliases.
func IsValidCode(code string) bool {
	if len(code) == 0 || len(code) > maxAliasLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
