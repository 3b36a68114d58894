package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestClipboardPrefersFirstTool(t *testing.T) {
	cw := newClipboardWriter("linux", lookPathFor("xsel", "wl-copy"))
	assert.True(t, cw.IsAvailable())
	assert.Equal(t, "xsel", cw.Tool())
}

func TestClipboardMissingTools(t *testing.T) {
	cw := newClipboardWriter("linux", lookPathFor())
	assert.False(t, cw.IsAvailable())
	assert.Equal(t, "clipboard tool not found (install xclip or xsel or wl-copy)", cw.Error())
	assert.Error(t, cw.Write("Mallard\t0.1"))
}

func TestClipboardUnsupportedPlatform(t *testing.T) {
	cw := newClipboardWriter("plan9", lookPathFor("pbcopy"))
	assert.False(t, cw.IsAvailable())
	assert.Contains(t, cw.Error(), "plan9")
}
