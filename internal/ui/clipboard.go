package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardTool is an external command that reads text on stdin.
type clipboardTool struct {
	name string
	args []string
}

// clipboardTools lists candidates per platform in preference order.
func clipboardTools(goos string) []clipboardTool {
	switch goos {
	case "darwin":
		return []clipboardTool{{name: "pbcopy"}}
	case "linux", "freebsd", "openbsd":
		return []clipboardTool{
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "xsel", args: []string{"--clipboard", "--input"}},
			{name: "wl-copy"},
		}
	case "windows":
		return []clipboardTool{{name: "clip"}}
	default:
		return nil
	}
}

// ClipboardWriter copies text through the first available platform tool.
type ClipboardWriter struct {
	tool   *clipboardTool
	errMsg string
}

// NewClipboardWriter resolves a clipboard tool on PATH.
func NewClipboardWriter() *ClipboardWriter {
	return newClipboardWriter(runtime.GOOS, exec.LookPath)
}

func newClipboardWriter(goos string, lookPath func(string) (string, error)) *ClipboardWriter {
	tools := clipboardTools(goos)
	if len(tools) == 0 {
		return &ClipboardWriter{errMsg: fmt.Sprintf("unsupported platform: %s", goos)}
	}

	names := make([]string, 0, len(tools))
	for i := range tools {
		if _, err := lookPath(tools[i].name); err == nil {
			return &ClipboardWriter{tool: &tools[i]}
		}
		names = append(names, tools[i].name)
	}
	return &ClipboardWriter{
		errMsg: fmt.Sprintf("clipboard tool not found (install %s)", strings.Join(names, " or ")),
	}
}

// IsAvailable returns whether clipboard operations are supported.
func (cw *ClipboardWriter) IsAvailable() bool {
	return cw.tool != nil
}

// Tool names the command used for copying, or "".
func (cw *ClipboardWriter) Tool() string {
	if cw.tool == nil {
		return ""
	}
	return cw.tool.name
}

// Error returns the reason clipboard is unavailable.
func (cw *ClipboardWriter) Error() string {
	return cw.errMsg
}

// Write copies text to the system clipboard.
func (cw *ClipboardWriter) Write(text string) error {
	if cw.tool == nil {
		return fmt.Errorf("clipboard unavailable: %s", cw.errMsg)
	}
	cmd := exec.Command(cw.tool.name, cw.tool.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cw.tool.name, err)
	}
	return nil
}
