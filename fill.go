package progressw

import (
	"math"
	"strings"
)

// ComputeBar builds the glyphs of a bar width cells wide. With more than one
// precise glyph and an unfinished bar, the cell after the filled part shows
// the partial glyph matching the fractional fill.
func ComputeBar(width, completed, total int, complete, incomplete string, precise []string, finished bool) string {
	width = MaxInt(width, 0)
	if total <= 0 {
		return repeat(incomplete, width)
	}
	exact := float64(width) * float64(completed) / float64(total)
	filled := MinInt(MaxInt(int(math.Floor(exact)), 0), width)

	partial := ""
	if len(precise) > 1 && !finished && filled < width {
		fraction := exact - float64(filled)
		i := MinInt(MaxInt(int(math.Floor(float64(len(precise))*fraction)), 0), len(precise)-1)
		partial = precise[i]
	}

	var b strings.Builder
	b.WriteString(repeat(complete, filled))
	rest := width - filled
	if partial != "" {
		b.WriteString(partial)
		rest--
	}
	b.WriteString(repeat(incomplete, rest))
	return b.String()
}
