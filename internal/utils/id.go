package utils

import (
	"crypto/rand"
	"encoding/base64"
	"math/big"
	"strings"
)

const (
	submissionPrefix = "REG00"
	submissionSuffix = 5
	idAlphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateSubmissionID returns a short reference like "REG00K7Q2M" that a
// user can quote back to support.
func GenerateSubmissionID() (string, error) {
	var b strings.Builder
	b.WriteString(submissionPrefix)
	limit := big.NewInt(int64(len(idAlphabet)))
	for i := 0; i < submissionSuffix; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b.WriteByte(idAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NewSessionSecret returns 32 random bytes, base64url encoded.
func NewSessionSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
