package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Header carries the hex HMAC-SHA256 of the raw request body.
const Header = "X-Signature"

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify reports whether sig is the HMAC of body. Every failure looks the
// same to the caller.
func (v *Verifier) Verify(body []byte, sig string) bool {
	if len(v.secret) == 0 || len(body) == 0 || sig == "" {
		return false
	}
	received, err := hex.DecodeString(strings.TrimSpace(sig))
	if err != nil {
		return false
	}
	return hmac.Equal(received, v.mac(body))
}

func (v *Verifier) Sign(body []byte) string {
	return hex.EncodeToString(v.mac(body))
}

func (v *Verifier) mac(body []byte) []byte {
	m := hmac.New(sha256.New, v.secret)
	m.Write(body)
	return m.Sum(nil)
}
