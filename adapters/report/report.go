// Package report renders test results as markdown and as HTML for the
// host's rich-text views.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"statplug/domain/table"
)

// Markdown renders a rendered result table as a markdown report
func Markdown(m table.Model) (string, error) {
	rows, err := m.AsTable()
	if err != nil {
		return "", err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", m.Title)
	for i, row := range rows {
		cells := make([]string, width)
		copy(cells, row)
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
		if i == 0 {
			b.WriteString("|" + strings.Repeat(" --- |", width) + "\n")
		}
	}
	return b.String(), nil
}

// HTML renders a rendered result table as an HTML fragment
func HTML(m table.Model) (string, error) {
	md, err := Markdown(m)
	if err != nil {
		return "", err
	}
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer)), nil
}
