// Package domain contains the core data structures and domain logic for the application.
package domain

import "slices"

// RepositorySummary is the subset of a GitHub repository the portfolio needs.
// Optional fields stay nil when the API omits them or returns null.
type RepositorySummary struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	HTMLURL     string  `json:"html_url"`
}

// GetDescription returns the description, or "" if it is absent.
func (r RepositorySummary) GetDescription() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// GetLanguage returns the primary language, or "" if it is absent.
func (r RepositorySummary) GetLanguage() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// ProjectCard is the displayable project derived from one repository and its README.
// It is the core domain entity of this application.
type ProjectCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Languages   []string `json:"languages"`
	Link        string   `json:"link"`

	// Readme keeps the decoded README for the detail page.
	Readme string `json:"-"`
}

// NewProjectCard builds a card from a repository and its README text.
// An empty readme stands for "README unavailable".
func NewProjectCard(repo RepositorySummary, readme string) ProjectCard {
	return ProjectCard{
		Title:       repo.Name,
		Description: ExtractDescription(readme),
		Languages:   Classify(repo),
		Link:        repo.HTMLURL,
		Readme:      readme,
	}
}

// HasTag reports whether the card carries the given category tag.
func (p ProjectCard) HasTag(tag string) bool {
	return slices.Contains(p.Languages, tag)
}

// FilterSelection is the category filter applied to the project list.
type FilterSelection string

const (
	FilterAll    FilterSelection = "all"
	FilterPython FilterSelection = FilterSelection(TagPython)
	FilterSpark  FilterSelection = FilterSelection(TagSpark)
	FilterAWS    FilterSelection = FilterSelection(TagAWS)
)

// Filters lists the selectable filters in display order.
var Filters = []FilterSelection{FilterAll, FilterPython, FilterSpark, FilterAWS}
