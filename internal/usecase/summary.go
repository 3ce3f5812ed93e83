package usecase

import (
	"sort"
	"unicode/utf8"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-portfolio/internal/domain"
)

// TagCount is the number of projects carrying a tag.
type TagCount struct {
	Tag     string  `json:"tag"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary describes the tag distribution of a project list.
type Summary struct {
	Total                   int        `json:"total"`
	Tags                    []TagCount `json:"tags"`
	MedianDescriptionLength float64    `json:"median_description_length"`
}

// Summarize counts the tags of projects. Tags are sorted by count, then by name.
func Summarize(projects []domain.ProjectCard) (*Summary, error) {
	summary := &Summary{Total: len(projects), Tags: []TagCount{}}
	if len(projects) == 0 {
		return summary, nil
	}

	counts := make(map[string]int)
	lengths := make(stats.Float64Data, 0, len(projects))
	for _, p := range projects {
		for _, tag := range p.Languages {
			counts[tag]++
		}
		lengths = append(lengths, float64(utf8.RuneCountInString(p.Description)))
	}

	median, err := stats.Median(lengths)
	if err != nil {
		return nil, err
	}
	summary.MedianDescriptionLength = median

	for tag, count := range counts {
		percent, err := stats.Round(float64(count)*100/float64(len(projects)), 1)
		if err != nil {
			return nil, err
		}
		summary.Tags = append(summary.Tags, TagCount{Tag: tag, Count: count, Percent: percent})
	}
	sort.Slice(summary.Tags, func(i, j int) bool {
		if summary.Tags[i].Count != summary.Tags[j].Count {
			return summary.Tags[i].Count > summary.Tags[j].Count
		}
		return summary.Tags[i].Tag < summary.Tags[j].Tag
	})
	return summary, nil
}
