package ui

import (
	"fmt"
	"io"
	"os"
)

// SetTerminalBackground emits OSC 11 so the terminal's default background
// matches the theme base color. Every ANSI reset and unstyled cell then falls
// back to the theme color instead of the terminal's configured default.
// The returned function restores the original default via OSC 111.
func SetTerminalBackground(hexColor string) func() {
	return setTermBg(os.Stdout, hexColor)
}

// setTermBg is the testable core, writing to w instead of stdout.
func setTermBg(w io.Writer, hexColor string) func() {
	if hexColor == "" {
		return func() {}
	}
	fmt.Fprintf(w, "\033]11;%s\033\\", hexColor)

	return func() {
		fmt.Fprint(w, "\033]111\033\\")
	}
}
