package interaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want Command
	}{
		{name: "get_profile", want: CommandGetProfile},
		{name: "GET_PROFILE", want: CommandGetProfile},
		{name: "Get_Profile", want: CommandGetProfile},
		{name: "check_wl", want: CommandCheckWhitelist},
		{name: "CHECK_WL", want: CommandCheckWhitelist},
		{name: "check-wl", want: CommandUnknown},
		{name: "get_profile ", want: CommandUnknown},
		{name: "", want: CommandUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCommand(tt.name))
		})
	}
	assert.Equal(t, "GET_PROFILE", CommandGetProfile.String())
	assert.Equal(t, "CHECK_WL", CommandCheckWhitelist.String())
	assert.Equal(t, "UNKNOWN", CommandUnknown.String())
}

func TestInvoker(t *testing.T) {
	t.Parallel()

	t.Run("guild member with nick", func(t *testing.T) {
		var msg Interaction
		err := json.Unmarshal([]byte(`{"type":2,"data":{"name":"get_profile"},"member":{"nick":"Bob","user":{"id":"123","username":"bobby"}}}`), &msg)
		require.NoError(t, err)
		user, name, ok := msg.Invoker()
		require.True(t, ok)
		assert.Equal(t, "123", user.ID)
		assert.Equal(t, "Bob", name)
		assert.Equal(t, TypeApplicationCommand, msg.Type)
		assert.Equal(t, "get_profile", msg.Data.Name)
	})

	t.Run("guild member without nick", func(t *testing.T) {
		msg := Interaction{Member: &Member{User: &User{ID: "1", Username: "alice", GlobalName: "Alice"}}}
		_, name, ok := msg.Invoker()
		require.True(t, ok)
		assert.Equal(t, "Alice", name)
	})

	t.Run("dm user", func(t *testing.T) {
		msg := Interaction{User: &User{ID: "7", Username: "carol"}}
		user, name, ok := msg.Invoker()
		require.True(t, ok)
		assert.Equal(t, "7", user.ID)
		assert.Equal(t, "carol", name)
	})

	t.Run("no user", func(t *testing.T) {
		msg := Interaction{Member: &Member{Nick: "ghost"}}
		_, _, ok := msg.Invoker()
		assert.False(t, ok)
	})
}

func TestResponseEncoding(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Response{Type: ResponsePong})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":1}`, string(b))

	b, err = json.Marshal(Response{
		Type: ResponseChannelMessageWithSource,
		Data: &ResponseData{Content: "hi", Flags: FlagEphemeral},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":4,"data":{"content":"hi","flags":64}}`, string(b))
}
