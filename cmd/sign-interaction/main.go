// Command sign-interaction signs an interaction payload the way Discord does, for exercising a
// locally running server with curl.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/casperdash/discord-interactions-api/internal/controllers/interactions"
	"github.com/casperdash/discord-interactions-api/internal/interaction"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	genKey := flag.Bool("genkey", false, "generate a key pair and exit")
	seedHex := flag.String("seed", os.Getenv("DISCORD_PRIVATE_SEED"), "hex encoded 32 byte ed25519 seed")
	body := flag.String("body", "", "payload to sign, read from stdin when empty")
	flag.Parse()

	if *genKey {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to generate key")
		}
		fmt.Printf("DISCORD_PUBLIC_KEY=%s\nDISCORD_PRIVATE_SEED=%s\n", hex.EncodeToString(pub), hex.EncodeToString(priv.Seed()))
		return
	}

	seed, err := hex.DecodeString(*seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		logger.Fatal().Msg("seed must be 32 hex encoded bytes")
	}
	priv := ed25519.NewKeyFromSeed(seed)

	payload := []byte(*body)
	if len(payload) == 0 {
		payload, err = io.ReadAll(os.Stdin)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to read payload")
		}
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := hex.EncodeToString(ed25519.Sign(priv, append([]byte(timestamp), payload...)))

	pubHex := hex.EncodeToString(priv.Public().(ed25519.PublicKey))
	if !interaction.Verify(timestamp, payload, signature, pubHex) {
		logger.Fatal().Msg("Signature does not verify")
	}

	fmt.Printf("-H '%s: %s' -H '%s: %s'\n", interactions.HeaderSignature, signature, interactions.HeaderTimestamp, timestamp)
}
