package presenter

import (
	"fmt"
	"testing"

	"github.com/naka-gawa/github-portfolio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func card(title string, tags ...string) domain.ProjectCard {
	if tags == nil {
		tags = []string{}
	}
	return domain.ProjectCard{
		Title:       title,
		Description: "Descrição de " + title + " com detalhes suficientes.",
		Languages:   tags,
		Link:        "https://x.io/" + title,
	}
}

func titles(cards []domain.ProjectCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func TestFilter(t *testing.T) {
	projects := []domain.ProjectCard{
		card("p0", "javascript"),
		card("p1", "python", "aws"),
		card("p2", "scala", "spark"),
		card("p3"),
		card("p4", "python", "spark"),
		card("p5", "go"),
		card("p6", "hcl", "aws"),
		card("p7", "java"),
		card("p8", "html"),
		card("p9", "shell"),
	}

	testCases := []struct {
		name     string
		filter   domain.FilterSelection
		expected []string
	}{
		{name: "all keeps every project", filter: domain.FilterAll, expected: []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}},
		{name: "python keeps tagged projects in order", filter: domain.FilterPython, expected: []string{"p1", "p4"}},
		{name: "spark", filter: domain.FilterSpark, expected: []string{"p2", "p4"}},
		{name: "aws", filter: domain.FilterAWS, expected: []string{"p1", "p6"}},
		{name: "unknown filter yields nothing", filter: domain.FilterSelection("go"), expected: []string{}},
		{name: "empty filter yields nothing", filter: "", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, titles(Filter(projects, tc.filter)))
		})
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	projects := []domain.ProjectCard{card("a", "python"), card("b")}

	filtered := Filter(projects, domain.FilterAll)
	filtered[0].Title = "changed"

	assert.Equal(t, "a", projects[0].Title)
}

func TestFilterControls(t *testing.T) {
	testCases := []struct {
		active         domain.FilterSelection
		expectedActive []bool
	}{
		{active: domain.FilterAll, expectedActive: []bool{true, false, false, false}},
		{active: domain.FilterAWS, expectedActive: []bool{false, false, false, true}},
		{active: "rust", expectedActive: []bool{false, false, false, false}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("active %s", tc.active), func(t *testing.T) {
			controls := FilterControls(tc.active)
			assert.Len(t, controls, len(domain.Filters))
			for i, c := range controls {
				assert.Equal(t, domain.Filters[i], c.Key)
				assert.Equal(t, tc.expectedActive[i], c.Active)
				assert.Equal(t, fmt.Sprint(tc.expectedActive[i]), c.AriaChecked())
				assert.NotEmpty(t, c.Label)
			}
		})
	}
}
