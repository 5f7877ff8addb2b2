// Package interaction holds the Discord interaction payload types and the Ed25519 request verifier.
package interaction

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

var errInvalidPublicKey = errors.New("invalid public key")

// Verify reports whether signatureHex is a valid Ed25519 signature of timestamp followed by body
// under publicKeyHex. Malformed hex or keys of the wrong size never verify.
func Verify(timestamp string, body []byte, signatureHex, publicKeyHex string) bool {
	key, err := decodePublicKey(publicKeyHex)
	if err != nil {
		return false
	}
	return verify(key, timestamp, body, signatureHex)
}

// Verifier checks request signatures against a fixed application public key.
type Verifier struct {
	key ed25519.PublicKey
}

// NewVerifier creates a Verifier from the hex encoded application public key.
func NewVerifier(publicKeyHex string) (*Verifier, error) {
	key, err := decodePublicKey(publicKeyHex)
	if err != nil {
		return nil, err
	}
	return &Verifier{key: key}, nil
}

// Verify reports whether signatureHex signs timestamp followed by body.
func (v *Verifier) Verify(timestamp string, body []byte, signatureHex string) bool {
	return verify(v.key, timestamp, body, signatureHex)
}

func verify(key ed25519.PublicKey, timestamp string, body []byte, signatureHex string) bool {
	sig, err := hex.DecodeString(signatureHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(key, msg, sig)
}

func decodePublicKey(publicKeyHex string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidPublicKey, err)
	}
	// ed25519.Verify panics on keys of the wrong length.
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errInvalidPublicKey, ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}
