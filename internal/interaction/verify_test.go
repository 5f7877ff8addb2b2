package interaction

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKeyPair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return hex.EncodeToString(pub), priv
}

func sign(priv ed25519.PrivateKey, timestamp string, body []byte) string {
	return hex.EncodeToString(ed25519.Sign(priv, append([]byte(timestamp), body...)))
}

func TestVerify(t *testing.T) {
	t.Parallel()
	pubHex, priv := newKeyPair(t)
	timestamp := "1689000000"
	body := []byte(`{"type":2,"data":{"name":"get_profile"},"member":{"nick":"Bob","user":{"id":"123"}}}`)
	sigHex := sign(priv, timestamp, body)

	t.Run("valid signature", func(t *testing.T) {
		assert.True(t, Verify(timestamp, body, sigHex, pubHex))
	})

	t.Run("empty body", func(t *testing.T) {
		sig := sign(priv, timestamp, nil)
		assert.True(t, Verify(timestamp, nil, sig, pubHex))
		assert.True(t, Verify(timestamp, []byte{}, sig, pubHex))
	})

	t.Run("signature bit flips", func(t *testing.T) {
		sig, err := hex.DecodeString(sigHex)
		require.NoError(t, err)
		for i := range len(sig) * 8 {
			mutated := append([]byte(nil), sig...)
			mutated[i/8] ^= 1 << (i % 8)
			if Verify(timestamp, body, hex.EncodeToString(mutated), pubHex) {
				t.Fatalf("signature with bit %d flipped verified", i)
			}
		}
	})

	t.Run("body bit flips", func(t *testing.T) {
		for i := range len(body) * 8 {
			mutated := append([]byte(nil), body...)
			mutated[i/8] ^= 1 << (i % 8)
			if Verify(timestamp, mutated, sigHex, pubHex) {
				t.Fatalf("body with bit %d flipped verified", i)
			}
		}
	})

	t.Run("timestamp is part of the message", func(t *testing.T) {
		assert.False(t, Verify("1689000001", body, sigHex, pubHex))
	})

	t.Run("no separator between timestamp and body", func(t *testing.T) {
		// moving the boundary keeps the concatenation identical
		assert.True(t, Verify(timestamp+`{"type"`, body[len(`{"type"`):], sigHex, pubHex))
	})

	t.Run("wrong key", func(t *testing.T) {
		otherHex, _ := newKeyPair(t)
		assert.False(t, Verify(timestamp, body, sigHex, otherHex))
	})

	t.Run("malformed inputs", func(t *testing.T) {
		assert.False(t, Verify(timestamp, body, "not-hex", pubHex))
		assert.False(t, Verify(timestamp, body, sigHex[:len(sigHex)-2], pubHex))
		assert.False(t, Verify(timestamp, body, "", pubHex))
		assert.False(t, Verify(timestamp, body, sigHex, "zz"))
		assert.False(t, Verify(timestamp, body, sigHex, pubHex[:10]))
		assert.False(t, Verify(timestamp, body, sigHex, ""))
	})
}

func TestVerifier(t *testing.T) {
	t.Parallel()
	pubHex, priv := newKeyPair(t)

	v, err := NewVerifier(pubHex)
	require.NoError(t, err)

	body := []byte(`{"type":1}`)
	assert.True(t, v.Verify("42", body, sign(priv, "42", body)))
	assert.False(t, v.Verify("43", body, sign(priv, "42", body)))

	_, err = NewVerifier("abcd")
	require.ErrorIs(t, err, errInvalidPublicKey)
	_, err = NewVerifier("not hex at all")
	require.ErrorIs(t, err, errInvalidPublicKey)
	_, err = NewVerifier("")
	require.ErrorIs(t, err, errInvalidPublicKey)
}
