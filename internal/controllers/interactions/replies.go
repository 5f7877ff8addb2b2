package interactions

import (
	"fmt"
	"strings"

	"github.com/casperdash/discord-interactions-api/internal/interaction"
	"github.com/gofiber/fiber/v2"
)

const (
	embedColor      = 0x0099ff
	footerText      = "CasperDash"
	footerIconURL   = "https://assets.eggforce.io/casperdash.webp"
	linkWalletLabel = "Link Wallet"

	whitelistEligibleMsg   = ":white_check_mark: Your wallet is eligible to mint Eggs in WL Round on July 17th 2023"
	whitelistIneligibleMsg = ":x: Your wallet is unqualified to mint Eggs in WL Round. Please join us in the Public Round on July 27th 2023"
	whitelistUnregistered  = "You have never registered the Whitelist Ticket. Claim it eggforce.io/world now."
	walletNotLinkedMsg     = ":x: No wallet linked yet. Use the button below to link one."
	linkWalletClickedMsg   = "Clicked the button"
)

// jsISOTime matches the millisecond precision UTC format Discord embeds use.
const jsISOTime = "2006-01-02T15:04:05.000Z07:00"

// embed builds the common profile embed for the invoking user.
func (d *Dispatcher) embed(user interaction.User, name string, field interaction.EmbedField) interaction.Embed {
	return interaction.Embed{
		Color:  embedColor,
		Author: &interaction.EmbedAuthor{Name: name},
		Fields: []interaction.EmbedField{
			{Name: "ID", Value: user.ID},
			field,
		},
		Timestamp: d.now().UTC().Format(jsISOTime),
		Footer:    &interaction.EmbedFooter{Text: footerText, IconURL: footerIconURL},
	}
}

func (d *Dispatcher) linkWalletRow() interaction.Component {
	return interaction.Component{
		Type: interaction.ComponentActionRow,
		Components: []interaction.Component{
			{
				Type:  interaction.ComponentButton,
				Label: linkWalletLabel,
				Style: interaction.ButtonLink,
				URL:   d.verifyWalletURL,
			},
		},
	}
}

func (d *Dispatcher) walletField(address string) interaction.EmbedField {
	url := strings.TrimSuffix(d.accountExplorerURL, "/") + "/" + address
	return interaction.EmbedField{
		Name:  "Wallet",
		Value: fmt.Sprintf(":white_check_mark: [%s](%s)", address, url),
	}
}

// ephemeral wraps embeds in a message only the invoking user can see.
func ephemeral(embed interaction.Embed, components ...interaction.Component) Reply {
	return Reply{
		Status: fiber.StatusOK,
		Body: interaction.Response{
			Type: interaction.ResponseChannelMessageWithSource,
			Data: &interaction.ResponseData{
				Embeds:     []interaction.Embed{embed},
				Components: components,
				Flags:      interaction.FlagEphemeral,
			},
		},
	}
}

func errorReply(status int, msg string) Reply {
	return Reply{Status: status, Body: ErrorResponse{Error: msg}}
}
