package hotkey

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		desc string
		want Binding
	}{
		{"ctrl+shift+v", Binding{Modifiers: ModCtrl | ModShift, Key: "v"}},
		{"<ctrl>+<shift>+v", Binding{Modifiers: ModCtrl | ModShift, Key: "v"}},
		{"Cmd+Alt+C", Binding{Modifiers: ModSuper | ModAlt, Key: "c"}},
		{"command+option+c", Binding{Modifiers: ModSuper | ModAlt, Key: "c"}},
		{" control + shift + 1 ", Binding{Modifiers: ModCtrl | ModShift, Key: "1"}},
		{"super+f12", Binding{Modifiers: ModSuper, Key: "f12"}},
		{"alt+return", Binding{Modifiers: ModAlt, Key: "enter"}},
		{"ctrl+esc", Binding{Modifiers: ModCtrl, Key: "escape"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Parse(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, desc := range []string{
		"",
		"v",
		"ctrl+",
		"hyper+v",
		"ctrl+ctrl+v",
		"ctrl+f13",
		"ctrl+f0",
		"ctrl+f01",
		"ctrl+pageup",
		"shift+ctrl",
	} {
		t.Run(desc, func(t *testing.T) {
			_, err := Parse(desc)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidBinding), "error %v does not wrap ErrInvalidBinding", err)
		})
	}
}

func mustParse(t *testing.T, desc string) Binding {
	t.Helper()
	b, err := Parse(desc)
	require.NoError(t, err)
	return b
}

func TestBinding_String(t *testing.T) {
	assert.Equal(t, "ctrl+shift+v", mustParse(t, "shift+ctrl+v").String())
	assert.Equal(t, "cmd+alt+c", mustParse(t, "alt+cmd+c").String())
	assert.Equal(t, "ctrl+cmd+alt+shift+space", mustParse(t, "shift+alt+meta+ctrl+space").String())

	// String output parses back to the same binding
	b := mustParse(t, "<option>+<command>+f5")
	again, err := Parse(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestBinding_Has(t *testing.T) {
	b := mustParse(t, "ctrl+shift+v")
	assert.True(t, b.Has(ModCtrl))
	assert.True(t, b.Has(ModCtrl|ModShift))
	assert.False(t, b.Has(ModAlt))
}

func TestRegistrationHint(t *testing.T) {
	assert.Contains(t, hintFor("darwin"), "Accessibility")
	assert.Contains(t, hintFor("linux"), "X11")
	assert.True(t, strings.Contains(hintFor("windows"), "another application"))
	assert.NotEmpty(t, RegistrationHint())
}
