package presenter

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Page is the data of the portfolio page.
type Page struct {
	Owner     string
	View      View
	DarkTheme bool
}

// ProjectPage is the data of a project's README page.
type ProjectPage struct {
	Owner     string
	Card      domain.ProjectCard
	Readme    template.HTML
	DarkTheme bool
}

// Raw HTML inside READMEs is dropped by goldmark unless WithUnsafe is set.
var readmeMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var (
	pageTemplate    = template.Must(template.New("page").Parse(layoutHTML + pageHTML))
	projectTemplate = template.Must(template.New("project").Parse(layoutHTML + projectHTML))
)

// RenderPage writes the portfolio page.
func RenderPage(w io.Writer, p Page) error {
	return pageTemplate.ExecuteTemplate(w, "layout", p)
}

// RenderProject writes the README page of a card.
func RenderProject(w io.Writer, owner string, card domain.ProjectCard, darkTheme bool) error {
	readme, err := RenderReadme(card.Readme)
	if err != nil {
		return fmt.Errorf("rendering README of %s: %w", card.Title, err)
	}
	return projectTemplate.ExecuteTemplate(w, "layout", ProjectPage{
		Owner:     owner,
		Card:      card,
		Readme:    readme,
		DarkTheme: darkTheme,
	})
}

// RenderReadme converts README markdown to HTML.
func RenderReadme(readme string) (template.HTML, error) {
	if readme == "" {
		return template.HTML("<p>" + template.HTMLEscapeString(domain.DescriptionFallback) + "</p>"), nil
	}
	var buf bytes.Buffer
	if err := readmeMarkdown.Convert([]byte(readme), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

const layoutHTML = `{{define "layout"}}<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Portfólio de {{.Owner}}</title>
<style>
body{font-family:system-ui,sans-serif;margin:0 auto;max-width:960px;padding:1rem;background:#fff;color:#1f2328}
body.dark-theme{background:#0d1117;color:#e6edf3}
.filtro a{margin-right:.5rem;padding:.25rem .75rem;border:1px solid #d0d7de;border-radius:1rem;text-decoration:none;color:inherit}
.filtro a.active{background:#0969da;color:#fff}
#lista-projetos{display:grid;grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:1rem;margin-top:1rem}
.projeto-card{border:1px solid #d0d7de;border-radius:.5rem;padding:1rem}
.linguagem-tag{display:inline-block;margin-right:.25rem;padding:0 .5rem;border-radius:.5rem;background:#6e7781;color:#fff;font-size:.8rem}
.linguagem-tag.python{background:#3572a5}.linguagem-tag.spark{background:#e25a1c}.linguagem-tag.aws{background:#ff9900}
.erro{color:red}
</style>
</head>
<body{{if .DarkTheme}} class="dark-theme"{{end}}>
<header>
<form method="post" action="/theme/toggle">
<button id="theme-toggle" type="submit" aria-pressed="{{if .DarkTheme}}true{{else}}false{{end}}">{{if .DarkTheme}}🌞{{else}}🌓{{end}}</button>
</form>
</header>
{{template "content" .}}
</body>
</html>
{{end}}`

const pageHTML = `{{define "content"}}
<section id="projetos">
<h2>Projetos de {{.Owner}}</h2>
<nav class="filtro" role="radiogroup" aria-label="Filtrar projetos">
{{range .View.Controls}}<a href="/?filter={{.Key}}" role="radio" aria-checked="{{.AriaChecked}}"{{if .Active}} class="active"{{end}}>{{.Label}}</a>
{{end}}</nav>
<div id="lista-projetos">
{{if .View.Message}}<p{{if .View.IsError}} class="erro"{{end}}>{{.View.Message}}</p>{{end}}
{{range .View.Cards}}<div class="projeto-card">
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
<div class="projeto-linguagens">{{range .Languages}}<span class="linguagem-tag {{.}}">{{.}}</span>{{end}}</div>
<a href="{{.Link}}" class="projeto-link" target="_blank" rel="noopener noreferrer">Ver detalhes</a>
<a href="/projects/{{.Title}}" class="projeto-readme">README</a>
</div>
{{end}}</div>
</section>
<section id="contato">
<h2>Contato</h2>
<form id="form-contato" method="post" action="/contact">
<input name="nome" placeholder="Nome">
<input name="email" type="email" placeholder="E-mail">
<textarea name="mensagem" placeholder="Mensagem"></textarea>
<button type="submit">Enviar</button>
</form>
</section>
{{end}}`

const projectHTML = `{{define "content"}}
<article>
<p><a href="/">← Voltar</a></p>
<h2>{{.Card.Title}}</h2>
<div class="projeto-linguagens">{{range .Card.Languages}}<span class="linguagem-tag {{.}}">{{.}}</span>{{end}}</div>
<div class="readme">{{.Readme}}</div>
<p><a href="{{.Card.Link}}" target="_blank" rel="noopener noreferrer">Ver no GitHub</a></p>
</article>
{{end}}`
