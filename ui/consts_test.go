package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBannerSpansSixLines(t *testing.T) {
	assert.Len(t, strings.Split(Banner(), "\n"), 6)
	assert.Equal(t, 65, BannerWidth)
}

func TestGradientTextPreservesLineCount(t *testing.T) {
	in := "one\ntwo\nthree"
	out := GradientText(in, GradientStart, GradientEnd)
	assert.Equal(t, 3, len(strings.Split(out, "\n")))
}

func TestFillBackgroundExtendsHeight(t *testing.T) {
	out := FillBackground("a\nb", 10, 5, ColorBase)
	assert.Equal(t, 5, len(strings.Split(out, "\n")))
}

func TestFillBackgroundNoopOnZeroHeight(t *testing.T) {
	assert.Equal(t, "a", FillBackground("a", 10, 0, ColorBase))
}
