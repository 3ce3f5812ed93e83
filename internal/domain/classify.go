package domain

import (
	"slices"
	"strings"
)

// Category tags added on top of the repository language.
const (
	TagAWS    = "aws"
	TagSpark  = "spark"
	TagPython = "python"
)

// Classify derives the ordered tag set of a repository: its lowercased
// language first, then aws, spark and python. A tag never appears twice.
func Classify(repo RepositorySummary) []string {
	tags := make([]string, 0, 4)
	add := func(tag string) {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}

	language := strings.ToLower(repo.GetLanguage())
	name := strings.ToLower(repo.Name)
	description := strings.ToLower(repo.GetDescription())

	if language != "" {
		add(language)
	}
	if strings.Contains(name, TagAWS) || strings.Contains(description, TagAWS) {
		add(TagAWS)
	}
	if strings.Contains(name, TagSpark) || language == "scala" {
		add(TagSpark)
	}
	if language == TagPython {
		add(TagPython)
	}
	return tags
}
