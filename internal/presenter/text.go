package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tagColors = map[string]lipgloss.Color{
	"python": lipgloss.Color("#3572A5"),
	"spark":  lipgloss.Color("#E25A1C"),
	"aws":    lipgloss.Color("#FF9900"),
	"scala":  lipgloss.Color("#C22D40"),
}

const defaultTagColor = lipgloss.Color("#6E7781")

// TextRenderer draws views as bordered cards for a terminal.
type TextRenderer struct {
	w        io.Writer
	renderer *lipgloss.Renderer

	card    lipgloss.Style
	title   lipgloss.Style
	link    lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

// NewTextRenderer creates a TextRenderer whose color profile follows w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	r := lipgloss.NewRenderer(w)
	return &TextRenderer{
		w:        w,
		renderer: r,
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#30363D")).
			Padding(0, 1).
			Width(78),
		title:   r.NewStyle().Bold(true),
		link:    r.NewStyle().Underline(true).Foreground(lipgloss.Color("#58A6FF")),
		muted:   r.NewStyle().Faint(true),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F85149")),
	}
}

// Render writes the filter bar followed by the cards or the view's message.
func (t *TextRenderer) Render(v View) error {
	if _, err := fmt.Fprintln(t.w, t.filterBar(v.Controls)); err != nil {
		return err
	}
	if v.Message != "" {
		style := t.muted
		if v.IsError {
			style = t.failure
		}
		_, err := fmt.Fprintln(t.w, style.Render(v.Message))
		return err
	}
	for _, card := range v.Cards {
		lines := []string{t.title.Render(card.Title), card.Description}
		if len(card.Languages) > 0 {
			lines = append(lines, t.tags(card.Languages))
		}
		lines = append(lines, t.link.Render(card.Link))
		body := lipgloss.JoinVertical(lipgloss.Left, lines...)
		if _, err := fmt.Fprintln(t.w, t.card.Render(body)); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextRenderer) filterBar(controls []FilterControl) string {
	parts := make([]string, 0, len(controls))
	for _, c := range controls {
		if c.Active {
			parts = append(parts, t.title.Render("● "+c.Label))
		} else {
			parts = append(parts, t.muted.Render("○ "+c.Label))
		}
	}
	return strings.Join(parts, "  ")
}

func (t *TextRenderer) tags(tags []string) string {
	badges := make([]string, 0, len(tags))
	for _, tag := range tags {
		color, ok := tagColors[tag]
		if !ok {
			color = defaultTagColor
		}
		badges = append(badges, t.renderer.NewStyle().Bold(true).Foreground(color).Render(tag))
	}
	return strings.Join(badges, " ")
}
