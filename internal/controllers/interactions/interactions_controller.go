package interactions

import (
	"context"
	"strconv"
	"time"

	"github.com/casperdash/discord-interactions-api/internal/interaction"
	"github.com/casperdash/discord-interactions-api/internal/services/profilerepo"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	// DefaultVerifyWalletURL is where users link their wallet to their Discord account.
	DefaultVerifyWalletURL = "https://discord.casperdash.io/verify-wallet"
	// DefaultAccountExplorerURL is the block explorer account page prefix.
	DefaultAccountExplorerURL = "https://cspr.live/account/"
)

type ProfileRepository interface {
	GetProfileByUserID(ctx context.Context, userID string) (*profilerepo.Profile, error)
}

// Options configures the links rendered in replies. Empty values fall back to the defaults.
type Options struct {
	VerifyWalletURL    string
	AccountExplorerURL string
}

// Dispatcher turns verified interactions into replies.
type Dispatcher struct {
	repo               ProfileRepository
	verifyWalletURL    string
	accountExplorerURL string
	now                func() time.Time
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(repo ProfileRepository, opts Options) *Dispatcher {
	d := &Dispatcher{
		repo:               repo,
		verifyWalletURL:    opts.VerifyWalletURL,
		accountExplorerURL: opts.AccountExplorerURL,
		now:                time.Now,
	}
	if d.verifyWalletURL == "" {
		d.verifyWalletURL = DefaultVerifyWalletURL
	}
	if d.accountExplorerURL == "" {
		d.accountExplorerURL = DefaultAccountExplorerURL
	}
	return d
}

// Dispatch classifies a verified interaction and builds its reply.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, msg *interaction.Interaction) Reply {
	if method != fiber.MethodPost {
		return Reply{Status: fiber.StatusOK, Body: GreetingResponse{Name: "Hello World"}}
	}
	if msg == nil {
		return errorReply(fiber.StatusBadRequest, "Unknown Request")
	}

	switch msg.Type {
	case interaction.TypePing:
		return Reply{Status: fiber.StatusOK, Body: interaction.Response{Type: interaction.ResponsePong}}
	case interaction.TypeApplicationCommand:
		return d.dispatchCommand(ctx, msg)
	case interaction.TypeMessageComponent:
		return d.dispatchComponent(ctx, msg)
	default:
		zerolog.Ctx(ctx).Warn().Int("interactionType", int(msg.Type)).Msg("Unhandled interaction type")
		return errorReply(fiber.StatusBadRequest, "Unknown Interaction")
	}
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, msg *interaction.Interaction) Reply {
	if msg.Data == nil || msg.Data.Name == "" {
		return errorReply(fiber.StatusBadRequest, "Unknown Request")
	}
	user, name, ok := msg.Invoker()
	if !ok {
		return errorReply(fiber.StatusBadRequest, "Unknown Request")
	}

	cmd := interaction.ParseCommand(msg.Data.Name)
	switch cmd {
	case interaction.CommandGetProfile:
		return d.getProfile(ctx, user, name)
	case interaction.CommandCheckWhitelist:
		return d.checkWhitelist(ctx, user, name)
	case interaction.CommandUnknown:
	}
	zerolog.Ctx(ctx).Warn().Str("command", msg.Data.Name).Msg("Unknown command")
	return errorReply(fiber.StatusBadRequest, "Unknown Type")
}

func (d *Dispatcher) dispatchComponent(ctx context.Context, msg *interaction.Interaction) Reply {
	if msg.Data != nil && msg.Data.CustomID == interaction.ComponentLinkWallet {
		return Reply{
			Status: fiber.StatusOK,
			Body: interaction.Response{
				Type: interaction.ResponseChannelMessageWithSource,
				Data: &interaction.ResponseData{Content: linkWalletClickedMsg},
			},
		}
	}
	evt := zerolog.Ctx(ctx).Warn()
	if msg.Data != nil {
		evt = evt.Str("customId", msg.Data.CustomID)
	}
	evt.Msg("Unknown component")
	return errorReply(fiber.StatusBadRequest, "Unknown Component")
}

// lookupProfile returns a nil profile without error when the user has no record.
func (d *Dispatcher) lookupProfile(ctx context.Context, userID string, cmd interaction.Command) (*profilerepo.Profile, error) {
	profile, err := d.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		if profilerepo.IsNotFoundError(err) {
			zerolog.Ctx(ctx).Debug().Str("userId", userID).Str("command", cmd.String()).Msg("No profile found")
			return nil, nil
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("userId", userID).Str("command", cmd.String()).Msg("Failed to look up profile")
		return nil, err
	}
	return profile, nil
}

func (d *Dispatcher) getProfile(ctx context.Context, user interaction.User, name string) Reply {
	profile, err := d.lookupProfile(ctx, user.ID, interaction.CommandGetProfile)
	if err != nil {
		return errorReply(fiber.StatusInternalServerError, "Internal Error")
	}
	if profile == nil || !profile.HasWallet() {
		field := interaction.EmbedField{Name: "Wallet", Value: walletNotLinkedMsg}
		return ephemeral(d.embed(user, name, field), d.linkWalletRow())
	}
	return ephemeral(d.embed(user, name, d.walletField(profile.PublicKeyAddress.String)), d.linkWalletRow())
}

func (d *Dispatcher) checkWhitelist(ctx context.Context, user interaction.User, name string) Reply {
	profile, err := d.lookupProfile(ctx, user.ID, interaction.CommandCheckWhitelist)
	if err != nil {
		return errorReply(fiber.StatusInternalServerError, "Internal Error")
	}
	if profile == nil {
		field := interaction.EmbedField{Name: "Whitelist Round Eligibility", Value: whitelistUnregistered}
		return ephemeral(d.embed(user, name, field))
	}
	msg := whitelistIneligibleMsg
	if profile.IsWhitelistWinner {
		msg = whitelistEligibleMsg
	}
	field := interaction.EmbedField{Name: "Whitelist", Value: msg}
	return ephemeral(d.embed(user, name, field), d.linkWalletRow())
}

// InteractionsController serves the interactions endpoint.
type InteractionsController struct {
	dispatcher *Dispatcher
}

// NewInteractionsController creates a new InteractionsController.
func NewInteractionsController(dispatcher *Dispatcher) *InteractionsController {
	return &InteractionsController{dispatcher: dispatcher}
}

// HandleInteraction godoc
// @Summary      Handle a Discord interaction
// @Description  Receives a signed interaction callback. Requests must carry a valid Ed25519 signature over the timestamp header followed by the raw body. PING interactions are acknowledged, GET_PROFILE and CHECK_WL commands and the link_wallet button are answered with a message.
// @Tags         Interactions
// @Accept       json
// @Produce      json
// @Param        X-Signature-Ed25519    header  string  true  "Hex encoded Ed25519 signature"
// @Param        X-Signature-Timestamp  header  string  true  "Signature timestamp"
// @Success      200  {object}  interaction.Response  "Interaction response"
// @Failure      400  {object}  ErrorResponse         "Unknown command, component or interaction"
// @Failure      401  "Invalid request signature"
// @Failure      500  {object}  FaultResponse         "Malformed payload or internal error"
// @Router       /api/interactions [post]
func (i *InteractionsController) HandleInteraction(c *fiber.Ctx) error {
	msg, ok := verifiedInteraction(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, invalidSignatureMsg)
	}
	reply := i.dispatcher.Dispatch(c.UserContext(), c.Method(), msg)
	interactionsTotal.WithLabelValues(msg.Type.String(), strconv.Itoa(reply.Status)).Inc()
	return c.Status(reply.Status).JSON(reply.Body)
}
