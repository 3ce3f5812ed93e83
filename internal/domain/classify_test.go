package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		repo     RepositorySummary
		expected []string
	}{
		{
			name:     "no language and no keywords yields no tags",
			repo:     RepositorySummary{Name: "dotfiles"},
			expected: []string{},
		},
		{
			name:     "language is lowercased",
			repo:     RepositorySummary{Name: "site", Language: ptr("JavaScript")},
			expected: []string{"javascript"},
		},
		{
			name:     "python language is not duplicated",
			repo:     RepositorySummary{Name: "etl", Language: ptr("Python")},
			expected: []string{"python"},
		},
		{
			name:     "aws in name",
			repo:     RepositorySummary{Name: "AWS-Glue-Jobs", Language: ptr("Python")},
			expected: []string{"python", "aws"},
		},
		{
			name:     "aws in description only",
			repo:     RepositorySummary{Name: "lake", Description: ptr("Deploys to Aws Lambda")},
			expected: []string{"aws"},
		},
		{
			name:     "scala implies spark",
			repo:     RepositorySummary{Name: "jobs", Language: ptr("Scala")},
			expected: []string{"scala", "spark"},
		},
		{
			name:     "spark in name with python language keeps detection order",
			repo:     RepositorySummary{Name: "pyspark-aws-pipeline", Language: ptr("Python")},
			expected: []string{"python", "aws", "spark"},
		},
		{
			name:     "spark in description alone does not tag spark",
			repo:     RepositorySummary{Name: "notes", Description: ptr("spark experiments")},
			expected: []string{},
		},
		{
			name:     "language equal to a category tag is not repeated",
			repo:     RepositorySummary{Name: "aws-spark", Language: ptr("Spark")},
			expected: []string{"spark", "aws"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tags := Classify(tc.repo)
			assert.Equal(t, tc.expected, tags)

			seen := make(map[string]bool, len(tags))
			for _, tag := range tags {
				assert.False(t, seen[tag], "duplicate tag %q", tag)
				seen[tag] = true
			}
		})
	}
}

func TestNewProjectCard(t *testing.T) {
	repo := RepositorySummary{
		Name:     "spark-streaming",
		Language: ptr("Scala"),
		HTMLURL:  "https://github.com/brodyandre/spark-streaming",
	}

	card := NewProjectCard(repo, "")

	assert.Equal(t, "spark-streaming", card.Title)
	assert.Equal(t, DescriptionFallback, card.Description)
	assert.Equal(t, []string{"scala", "spark"}, card.Languages)
	assert.Equal(t, "https://github.com/brodyandre/spark-streaming", card.Link)
	assert.True(t, card.HasTag("spark"))
	assert.False(t, card.HasTag("python"))
}
