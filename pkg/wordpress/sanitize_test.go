package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "rendered comment", StripHTML("<b>rendered comment</b>"))
}

func TestStripHTMLNested(t *testing.T) {
	assert.Equal(t, "a reply with emphasis", StripHTML("<p>a reply <em>with <b>emphasis</b></em></p>"))
}

func TestStripHTMLEntities(t *testing.T) {
	assert.Equal(t, "fish & chips <tasty>", StripHTML("<p>fish &amp; chips &lt;tasty&gt;</p>"))
}

func TestStripHTMLPlainText(t *testing.T) {
	assert.Equal(t, "already plain", StripHTML("already plain"))
}

func TestStripHTMLEmpty(t *testing.T) {
	assert.Equal(t, "", StripHTML(""))
	assert.Equal(t, "", StripHTML("<br><img src=\"x.png\">"))
}
