package progressw

import (
	"sort"
	"strings"
)

type Token = string

const (
	TokenBar       Token = ":bar"
	TokenTitle     Token = ":title"
	TokenPercent   Token = ":percent"
	TokenTime      Token = ":time"
	TokenEta       Token = ":eta"
	TokenCompleted Token = ":completed"
	TokenTotal     Token = ":total"
	TokenText      Token = ":text"
)

type match struct {
	start, end int
	value      string
}

// RenderTemplate replaces the first occurrence of every token in tmpl with
// its value. Matches are located on tmpl itself, so a value
// that itself contains a token is emitted verbatim.
func RenderTemplate(tmpl string, tokens map[Token]string) string {
	matches := make([]match, 0, len(tokens))
	for token, value := range tokens {
		if token == "" {
			continue
		}
		if i := strings.Index(tmpl, token); i >= 0 {
			matches = append(matches, match{start: i, end: i + len(token), value: value})
		}
	}
	if len(matches) == 0 {
		return tmpl
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].start == matches[j].start {
			// prefer the longest token on a tie
			return matches[i].end > matches[j].end
		}
		return matches[i].start < matches[j].start
	})

	var b strings.Builder
	cur := 0
	for _, m := range matches {
		if m.start < cur {
			continue
		}
		b.WriteString(tmpl[cur:m.start])
		b.WriteString(m.value)
		cur = m.end
	}
	b.WriteString(tmpl[cur:])
	return b.String()
}
