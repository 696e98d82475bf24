package progressw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTemplate(t *testing.T) {
	tokens := map[Token]string{
		TokenTitle:     "download",
		TokenPercent:   "50.00%",
		TokenBar:       "#####-----",
		TokenTime:      "1.0s",
		TokenCompleted: "5",
		TokenTotal:     "10",
	}
	assert.Equal(t, "download 50.00% #####----- 1.0s 5/10", RenderTemplate(DefaultDisplay, tokens))
}

func TestRenderTemplateFirstMatchOnly(t *testing.T) {
	got := RenderTemplate(":text :text", map[Token]string{TokenText: "a"})
	assert.Equal(t, "a :text", got)
}

func TestRenderTemplateNotRescanned(t *testing.T) {
	got := RenderTemplate(":title [:bar]", map[Token]string{
		TokenTitle: "my :bar title",
		TokenBar:   "==",
	})
	assert.Equal(t, "my :bar title [==]", got)
}

func TestRenderTemplateOrderIndependent(t *testing.T) {
	tokens := map[Token]string{TokenTotal: "10", TokenCompleted: "3", TokenEta: "-"}
	assert.Equal(t, "10/3 eta -", RenderTemplate(":total/:completed eta :eta", tokens))
	assert.Equal(t, "- 3/10", RenderTemplate(":eta :completed/:total", tokens))
}

func TestRenderTemplateMissingToken(t *testing.T) {
	assert.Equal(t, "no tokens here", RenderTemplate("no tokens here", map[Token]string{TokenBar: "x"}))
	assert.Equal(t, ":eta", RenderTemplate(":eta", map[Token]string{TokenBar: "x"}))
	assert.Equal(t, "", RenderTemplate("", map[Token]string{TokenBar: "x"}))
}

func TestRenderTemplateEmptyValue(t *testing.T) {
	assert.Equal(t, " 1.0s", RenderTemplate(":title :time", map[Token]string{TokenTitle: "", TokenTime: "1.0s"}))
}
