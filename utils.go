package progressw

import (
	"runtime"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
)

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && runtime.GOOS != "windows"
}

// VisibleLen returns the number of terminal cells s occupies once escape
// sequences are stripped.
func VisibleLen(s string) int {
	return runewidth.StringWidth(stripansi.Strip(s))
}

// repeat is strings.Repeat that tolerates negative counts.
func repeat(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	return strings.Repeat(s, n)
}

// truncateVisible keeps the first n visible cells of s, escape sequences removed.
func truncateVisible(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.Truncate(stripansi.Strip(s), n, "")
}
