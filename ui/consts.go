package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The base ROLLCALL banner, 6 rows tall.
var bannerRaw = `██████╗  ██████╗ ██╗     ██╗      ██████╗ █████╗ ██╗     ██╗
██╔══██╗██╔═══██╗██║     ██║     ██╔════╝██╔══██╗██║     ██║
██████╔╝██║   ██║██║     ██║     ██║     ███████║██║     ██║
██╔══██╗██║   ██║██║     ██║     ██║     ██╔══██║██║     ██║
██║  ██║╚██████╔╝███████╗███████╗╚██████╗██║  ██║███████╗███████╗
╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚══════╝`

// bannerText is the gradient-rendered banner, computed once.
var bannerText = GradientText(bannerRaw, GradientStart, GradientEnd)

// BannerWidth is the cell width of the banner art's widest line.
var BannerWidth = lipgloss.Width(bannerRaw)

// Banner returns the gradient-rendered application banner.
func Banner() string {
	return bannerText
}

// AdjustPaneWidth adjusts the content width of a bordered pane.
func AdjustPaneWidth(width int) int {
	return width - 2 // just enough margin for borders
}

func parseHexColor(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	rv, _ := strconv.ParseUint(hex[0:2], 16, 8)
	gv, _ := strconv.ParseUint(hex[2:4], 16, 8)
	bv, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return uint8(rv), uint8(gv), uint8(bv)
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// GradientText renders s with a left-to-right color gradient per line.
func GradientText(s, startHex, endHex string) string {
	sr, sg, sb := parseHexColor(startHex)
	er, eg, eb := parseHexColor(endHex)

	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for li, line := range lines {
		runes := []rune(line)
		n := len(runes)
		var b strings.Builder
		for i, r := range runes {
			t := 0.0
			if n > 1 {
				t = float64(i) / float64(n-1)
			}
			c := fmt.Sprintf("#%02x%02x%02x",
				lerpByte(sr, er, t), lerpByte(sg, eg, t), lerpByte(sb, eb, t))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
		}
		out[li] = b.String()
	}
	return strings.Join(out, "\n")
}
