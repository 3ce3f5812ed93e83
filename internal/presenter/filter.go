// Package presenter turns loaded project cards into what the user sees:
// the filtered card list, the filter controls and the status messages.
package presenter

import (
	"github.com/naka-gawa/github-portfolio/internal/domain"
)

// Filter returns the projects matching sel, in their original order.
// An unrecognized selection matches nothing.
func Filter(projects []domain.ProjectCard, sel domain.FilterSelection) []domain.ProjectCard {
	filtered := make([]domain.ProjectCard, 0, len(projects))
	switch sel {
	case domain.FilterAll:
		filtered = append(filtered, projects...)
	case domain.FilterPython, domain.FilterSpark, domain.FilterAWS:
		for _, p := range projects {
			if p.HasTag(string(sel)) {
				filtered = append(filtered, p)
			}
		}
	}
	return filtered
}

// FilterControl is one of the mutually exclusive filter selectors.
type FilterControl struct {
	Key    domain.FilterSelection
	Label  string
	Active bool
}

// AriaChecked is the value of the control's aria-checked attribute.
func (c FilterControl) AriaChecked() string {
	if c.Active {
		return "true"
	}
	return "false"
}

var filterLabels = map[domain.FilterSelection]string{
	domain.FilterAll:    "Todos",
	domain.FilterPython: "Python",
	domain.FilterSpark:  "Spark",
	domain.FilterAWS:    "AWS",
}

// FilterControls returns the selector set with active marked as checked.
// When active is not a known filter, no control is checked.
func FilterControls(active domain.FilterSelection) []FilterControl {
	controls := make([]FilterControl, 0, len(domain.Filters))
	for _, key := range domain.Filters {
		controls = append(controls, FilterControl{
			Key:    key,
			Label:  filterLabels[key],
			Active: key == active,
		})
	}
	return controls
}
