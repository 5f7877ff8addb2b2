package interaction

// Type is the kind of interaction Discord delivered.
type Type int

const (
	TypePing Type = iota + 1
	TypeApplicationCommand
	TypeMessageComponent
	TypeApplicationCommandAutocomplete
	TypeModalSubmit
)

// String returns the lowercase name of the interaction type.
func (t Type) String() string {
	switch t {
	case TypePing:
		return "ping"
	case TypeApplicationCommand:
		return "application_command"
	case TypeMessageComponent:
		return "message_component"
	case TypeApplicationCommandAutocomplete:
		return "application_command_autocomplete"
	case TypeModalSubmit:
		return "modal_submit"
	default:
		return "unknown"
	}
}

// Interaction is the verified payload of an inbound interaction callback.
type Interaction struct {
	ID            string  `json:"id"`
	ApplicationID string  `json:"application_id"`
	Type          Type    `json:"type"`
	Data          *Data   `json:"data,omitempty"`
	GuildID       string  `json:"guild_id,omitempty"`
	ChannelID     string  `json:"channel_id,omitempty"`
	Member        *Member `json:"member,omitempty"`
	// User is only set when the interaction was invoked in a DM.
	User  *User  `json:"user,omitempty"`
	Token string `json:"token"`
}

// Data carries the command or component specific fields of an interaction.
type Data struct {
	// Name is the invoked command name for application commands.
	Name    string   `json:"name,omitempty"`
	Options []Option `json:"options,omitempty"`
	// CustomID identifies the clicked component for message components.
	CustomID      string        `json:"custom_id,omitempty"`
	ComponentType ComponentType `json:"component_type,omitempty"`
}

// Option is a single command option value.
type Option struct {
	Name  string `json:"name"`
	Type  int    `json:"type"`
	Value any    `json:"value,omitempty"`
}

// Member is the guild member that invoked the interaction.
type Member struct {
	Nick string `json:"nick,omitempty"`
	User *User  `json:"user,omitempty"`
}

// User is a Discord user.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username,omitempty"`
	GlobalName string `json:"global_name,omitempty"`
}

// Invoker returns the user that triggered the interaction and the name to display for them.
// Guild interactions carry the user on the member, DM interactions on the top level.
func (i *Interaction) Invoker() (User, string, bool) {
	if i.Member != nil && i.Member.User != nil && i.Member.User.ID != "" {
		name := i.Member.Nick
		if name == "" {
			name = displayName(i.Member.User)
		}
		return *i.Member.User, name, true
	}
	if i.User != nil && i.User.ID != "" {
		return *i.User, displayName(i.User), true
	}
	return User{}, "", false
}

func displayName(u *User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

// ResponseType is the kind of interaction callback returned to Discord.
type ResponseType int

const (
	ResponsePong                             ResponseType = 1
	ResponseChannelMessageWithSource         ResponseType = 4
	ResponseDeferredChannelMessageWithSource ResponseType = 5
	ResponseDeferredUpdateMessage            ResponseType = 6
	ResponseUpdateMessage                    ResponseType = 7
)

// MessageFlags is a bit set of message flags.
type MessageFlags int

// FlagEphemeral makes a reply visible only to the invoking user.
const FlagEphemeral MessageFlags = 1 << 6

// Response is the interaction callback body.
type Response struct {
	Type ResponseType  `json:"type"`
	Data *ResponseData `json:"data,omitempty"`
}

// ResponseData is the message attached to a callback.
type ResponseData struct {
	Content    string       `json:"content,omitempty"`
	Embeds     []Embed      `json:"embeds,omitempty"`
	Components []Component  `json:"components,omitempty"`
	Flags      MessageFlags `json:"flags,omitempty"`
}

type Embed struct {
	Color     int          `json:"color,omitempty"`
	Author    *EmbedAuthor `json:"author,omitempty"`
	Fields    []EmbedField `json:"fields,omitempty"`
	Timestamp string       `json:"timestamp,omitempty"`
	Footer    *EmbedFooter `json:"footer,omitempty"`
}

type EmbedAuthor struct {
	Name string `json:"name"`
}

type EmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

// ComponentType is the kind of a message component.
type ComponentType int

const (
	ComponentActionRow ComponentType = 1
	ComponentButton    ComponentType = 2
)

// ButtonStyle is the visual style of a button component.
type ButtonStyle int

const (
	ButtonPrimary   ButtonStyle = 1
	ButtonSecondary ButtonStyle = 2
	ButtonSuccess   ButtonStyle = 3
	ButtonDanger    ButtonStyle = 4
	ButtonLink      ButtonStyle = 5
)

// Component is an action row or one of its children.
type Component struct {
	Type       ComponentType `json:"type"`
	Components []Component   `json:"components,omitempty"`
	Label      string        `json:"label,omitempty"`
	Style      ButtonStyle   `json:"style,omitempty"`
	URL        string        `json:"url,omitempty"`
	CustomID   string        `json:"custom_id,omitempty"`
}
