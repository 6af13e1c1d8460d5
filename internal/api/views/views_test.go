package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdownEscapesModelHTML(t *testing.T) {
	out := string(RenderMarkdown("### Flight Options:\n<script>alert(1)</script> Flight A"))

	assert.Contains(t, out, "<h3>Flight Options:</h3>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt; Flight A")
	assert.NotContains(t, out, "<script>")
}

func TestTemplatesParse(t *testing.T) {
	tmpl := Templates()
	assert.NotNil(t, tmpl.Lookup("index.html"))
}
