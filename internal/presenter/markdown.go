package presenter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/naka-gawa/github-portfolio/internal/usecase"
	"github.com/nao1215/markdown"
)

// MarkdownRenderer writes views as a Markdown document.
type MarkdownRenderer struct {
	w io.Writer
}

// NewMarkdownRenderer creates a MarkdownRenderer that outputs to the given writer.
func NewMarkdownRenderer(w io.Writer) *MarkdownRenderer {
	return &MarkdownRenderer{w: w}
}

// Render writes one section per card. summary is optional.
func (r *MarkdownRenderer) Render(owner string, v View, summary *usecase.Summary) error {
	md := markdown.NewMarkdown(r.w)

	md.H1("Projetos de " + owner)
	md.PlainText("")
	md.PlainText("Filtro: " + activeLabel(v.Controls))
	md.PlainText("")

	switch {
	case v.IsError:
		md.Cautionf("%s", v.Message)
		md.PlainText("")
	case v.Message != "":
		md.Note(v.Message)
		md.PlainText("")
	}

	for _, card := range v.Cards {
		md.H2(card.Title)
		md.PlainText("")
		md.PlainText(card.Description)
		md.PlainText("")
		if len(card.Languages) > 0 {
			md.PlainText(codeSpans(card.Languages))
			md.PlainText("")
		}
		md.PlainText(fmt.Sprintf("[Ver detalhes](%s)", card.Link))
		md.PlainText("")
	}

	if summary != nil && len(summary.Tags) > 0 {
		writeSummary(md, summary)
	}

	return md.Build()
}

func writeSummary(md *markdown.Markdown, summary *usecase.Summary) {
	md.H2("Resumo")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Tags))
	for _, tc := range summary.Tags {
		rows = append(rows, []string{
			tc.Tag,
			strconv.Itoa(tc.Count),
			strconv.FormatFloat(tc.Percent, 'f', 1, 64) + "%",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Tag", "Projetos", "Percentual"},
		Rows:   rows,
	})
	md.PlainText("")
	md.PlainText(fmt.Sprintf("Total: %d projetos. Mediana do tamanho das descrições: %.0f caracteres.",
		summary.Total, summary.MedianDescriptionLength))
	md.PlainText("")
}

func activeLabel(controls []FilterControl) string {
	for _, c := range controls {
		if c.Active {
			return c.Label
		}
	}
	return "-"
}

func codeSpans(tags []string) string {
	spans := make([]string, 0, len(tags))
	for _, tag := range tags {
		spans = append(spans, "`"+tag+"`")
	}
	return strings.Join(spans, " ")
}
