package presenter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/naka-gawa/github-portfolio/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(sel domain.FilterSelection) *State {
	s := NewState()
	s.LoadCompleted([]domain.ProjectCard{
		card("etl", "python", "aws"),
		card("jobs", "scala", "spark"),
	})
	s.SelectFilter(sel)
	return s
}

func TestTextRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf).Render(loadedState(domain.FilterAll).View()))

	out := buf.String()
	assert.Contains(t, out, "● Todos")
	assert.Contains(t, out, "etl")
	assert.Contains(t, out, "jobs")
	assert.Contains(t, out, "https://x.io/etl")
	assert.Contains(t, out, "spark")
}

func TestTextRenderer_RenderMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(&buf).Render(loadedState(domain.FilterSelection("rust")).View()))

	out := buf.String()
	assert.Contains(t, out, EmptyMessage)
	assert.NotContains(t, out, "https://x.io/etl")
}

func TestMarkdownRenderer_Render(t *testing.T) {
	s := loadedState(domain.FilterPython)
	summary, err := usecase.Summarize(s.Projects())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownRenderer(&buf).Render("brodyandre", s.View(), summary))

	out := buf.String()
	assert.Contains(t, out, "# Projetos de brodyandre")
	assert.Contains(t, out, "Filtro: Python")
	assert.Contains(t, out, "## etl")
	assert.NotContains(t, out, "## jobs")
	assert.Contains(t, out, "`python` `aws`")
	assert.Contains(t, out, "[Ver detalhes](https://x.io/etl)")
	assert.Contains(t, out, "## Resumo")
}

func TestMarkdownRenderer_RenderError(t *testing.T) {
	s := NewState()
	s.LoadFailed(errors.New("boom"))

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownRenderer(&buf).Render("brodyandre", s.View(), nil))

	assert.Contains(t, buf.String(), "Erro ao carregar projetos: boom")
}

func TestRenderPage(t *testing.T) {
	testCases := []struct {
		name        string
		state       *State
		dark        bool
		contains    []string
		notContains []string
	}{
		{
			name:  "cards and checked control",
			state: loadedState(domain.FilterSpark),
			contains: []string{
				`<h3>jobs</h3>`,
				`<span class="linguagem-tag spark">spark</span>`,
				`href="/?filter=spark" role="radio" aria-checked="true"`,
				`href="/?filter=all" role="radio" aria-checked="false"`,
				`target="_blank" rel="noopener noreferrer"`,
				`aria-pressed="false"`,
			},
			notContains: []string{`<h3>etl</h3>`, `class="dark-theme"`},
		},
		{
			name:        "placeholder when nothing matches",
			state:       loadedState(domain.FilterSelection("rust")),
			contains:    []string{EmptyMessage},
			notContains: []string{`class="projeto-card"`},
		},
		{
			name: "error message",
			state: func() *State {
				s := NewState()
				s.LoadFailed(&domain.FetchFailedError{StatusCode: 502})
				return s
			}(),
			contains:    []string{`class="erro"`, "Erro HTTP 502"},
			notContains: []string{`class="projeto-card"`},
		},
		{
			name:     "dark theme",
			state:    loadedState(domain.FilterAll),
			dark:     true,
			contains: []string{`<body class="dark-theme">`, `aria-pressed="true"`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderPage(&buf, Page{Owner: "brodyandre", View: tc.state.View(), DarkTheme: tc.dark}))

			out := buf.String()
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderProject(t *testing.T) {
	c := card("etl", "python")
	c.Readme = "# ETL\n\nUm pipeline **robusto**.\n\n<script>alert(1)</script>\n\n| a | b |\n|---|---|\n| 1 | 2 |"

	var buf bytes.Buffer
	require.NoError(t, RenderProject(&buf, "brodyandre", c, false))

	out := buf.String()
	assert.Contains(t, out, "<h1>ETL</h1>")
	assert.Contains(t, out, "<strong>robusto</strong>")
	assert.Contains(t, out, "<table>")
	assert.NotContains(t, out, "<script>alert(1)</script>")
}

func TestRenderReadme_Empty(t *testing.T) {
	html, err := RenderReadme("")
	require.NoError(t, err)
	assert.Contains(t, string(html), domain.DescriptionFallback)
}
