package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/naka-gawa/github-portfolio/internal/presenter"
	"github.com/naka-gawa/github-portfolio/internal/usecase"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func validFormat(format string) bool {
	switch format {
	case formatText, formatJSON, formatMarkdown:
		return true
	}
	return false
}

// jsonOutput is the JSON document printed when --summary is set or the load failed.
type jsonOutput struct {
	Projects []domain.ProjectCard `json:"projects"`
	Summary  *usecase.Summary     `json:"summary,omitempty"`
	Error    string               `json:"error,omitempty"`
}

func renderProjects(w io.Writer, format, owner string, state *presenter.State, withSummary bool) error {
	view := state.View()

	var summary *usecase.Summary
	if withSummary && !view.IsError {
		var err error
		summary, err = usecase.Summarize(view.Cards)
		if err != nil {
			return fmt.Errorf("failed to summarize projects: %w", err)
		}
	}

	switch format {
	case formatJSON:
		var v any = view.Cards
		if view.IsError || summary != nil {
			out := jsonOutput{Projects: view.Cards, Summary: summary}
			if view.IsError {
				out.Projects = []domain.ProjectCard{}
				out.Error = state.Err().Error()
			}
			v = out
		} else if view.Cards == nil {
			v = []domain.ProjectCard{}
		}
		// Marshal the results into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonData))
		return err
	case formatMarkdown:
		return presenter.NewMarkdownRenderer(w).Render(owner, view, summary)
	default:
		if err := presenter.NewTextRenderer(w).Render(view); err != nil {
			return err
		}
		if summary != nil {
			for _, tc := range summary.Tags {
				if _, err := fmt.Fprintf(w, "  %-12s %3d  %5.1f%%\n", tc.Tag, tc.Count, tc.Percent); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
