package interactions

import (
	"encoding/json"
	"strconv"

	"github.com/casperdash/discord-interactions-api/internal/interaction"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	// HeaderSignature carries the hex encoded Ed25519 signature of the request.
	HeaderSignature = "X-Signature-Ed25519"
	// HeaderTimestamp carries the timestamp that prefixes the signed message.
	HeaderTimestamp = "X-Signature-Timestamp"

	interactionLocalsKey = "discord_interaction"
	invalidSignatureMsg  = "invalid request signature"
	parseFailureMsg      = "Oops, something went wrong parsing the request!"
)

// SignatureVerifier checks a request signature.
type SignatureVerifier interface {
	Verify(timestamp string, body []byte, signatureHex string) bool
}

// VerifyMiddleware authenticates inbound interactions, answers PINGs and stores every other
// verified interaction in the request locals for the next handler.
func VerifyMiddleware(verifier SignatureVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get(HeaderSignature)
		timestamp := c.Get(HeaderTimestamp)
		if signature == "" || timestamp == "" {
			interactionsTotal.WithLabelValues("unverified", strconv.Itoa(fiber.StatusUnauthorized)).Inc()
			return c.Status(fiber.StatusUnauthorized).SendString(invalidSignatureMsg)
		}

		// Signature covers the bytes as sent. c.Body() decodes Content-Encoding.
		rawBody := c.Request().Body()
		if !verifier.Verify(timestamp, rawBody, signature) {
			interactionsTotal.WithLabelValues("unverified", strconv.Itoa(fiber.StatusUnauthorized)).Inc()
			return c.Status(fiber.StatusUnauthorized).SendString(invalidSignatureMsg)
		}

		var msg interaction.Interaction
		if err := json.Unmarshal(rawBody, &msg); err != nil {
			zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("Failed to parse verified interaction")
			interactionsTotal.WithLabelValues("malformed", strconv.Itoa(fiber.StatusInternalServerError)).Inc()
			return c.Status(fiber.StatusInternalServerError).JSON(FaultResponse{
				StatusCode: fiber.StatusInternalServerError,
				Message:    parseFailureMsg,
			})
		}

		if msg.Type == interaction.TypePing {
			interactionsTotal.WithLabelValues(msg.Type.String(), strconv.Itoa(fiber.StatusOK)).Inc()
			return c.Status(fiber.StatusOK).JSON(interaction.Response{Type: interaction.ResponsePong})
		}

		c.Locals(interactionLocalsKey, &msg)
		return c.Next()
	}
}

// verifiedInteraction returns the interaction stored by VerifyMiddleware.
func verifiedInteraction(c *fiber.Ctx) (*interaction.Interaction, bool) {
	msg, ok := c.Locals(interactionLocalsKey).(*interaction.Interaction)
	return msg, ok && msg != nil
}
