package tests

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Signer signs interaction requests the way Discord does.
type Signer struct {
	PublicKeyHex string
	priv         ed25519.PrivateKey
}

// NewSigner generates a fresh application key pair.
func NewSigner(t *testing.T) *Signer {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return &Signer{PublicKeyHex: hex.EncodeToString(pub), priv: priv}
}

// Sign returns the current timestamp and the hex signature over timestamp followed by body.
func (s *Signer) Sign(body []byte) (timestamp, signature string) {
	timestamp = strconv.FormatInt(time.Now().Unix(), 10)
	msg := append([]byte(timestamp), body...)
	return timestamp, hex.EncodeToString(ed25519.Sign(s.priv, msg))
}

// RandomUserID returns a unique user id for fixtures.
func RandomUserID() string {
	return uuid.NewString()
}
