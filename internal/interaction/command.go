package interaction

import "strings"

// Command is one of the slash commands this application answers.
type Command int

const (
	CommandUnknown Command = iota
	CommandGetProfile
	CommandCheckWhitelist
)

// ComponentLinkWallet is the custom id of the link wallet button.
const ComponentLinkWallet = "link_wallet"

var commandNames = map[Command]string{
	CommandGetProfile:     "GET_PROFILE",
	CommandCheckWhitelist: "CHECK_WL",
}

// ParseCommand matches name case-insensitively against the known command names.
func ParseCommand(name string) Command {
	for cmd, cmdName := range commandNames {
		if strings.EqualFold(name, cmdName) {
			return cmd
		}
	}
	return CommandUnknown
}

// String returns the registered command name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
