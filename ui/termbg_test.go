package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTerminalBackground_EmitsOSC11(t *testing.T) {
	var buf bytes.Buffer
	restore := setTermBg(&buf, "#2e3440")
	assert.Equal(t, "\033]11;#2e3440\033\\", buf.String())

	buf.Reset()
	restore()
	assert.Equal(t, "\033]111\033\\", buf.String())
}

func TestSetTerminalBackground_EmptyColorIsNoop(t *testing.T) {
	var buf bytes.Buffer
	restore := setTermBg(&buf, "")
	assert.Empty(t, buf.String())
	restore()
	assert.Empty(t, buf.String())
}
