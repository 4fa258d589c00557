package newsclip_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/stretchr/testify/assert"
)

func TestAssess_AllFieldsPresent(t *testing.T) {
	t.Parallel()

	q := newsclip.Assess(strings.Repeat("a", 600), "Headline", []string{"Jane Doe"}, "2024-05-01")

	assert.Equal(t, 1.0, q.ContentScore)
	assert.Equal(t, 1.0, q.TitleScore)
	assert.Equal(t, 1.0, q.AuthorScore)
	assert.Equal(t, 1.0, q.DateScore)
	assert.Equal(t, 1.0, q.Overall)
	assert.Equal(t, newsclip.GradeExcellent, q.Grade)
}

func TestAssess_ContentScoreScalesWithLength(t *testing.T) {
	t.Parallel()

	q := newsclip.Assess(strings.Repeat("a", 250), "", nil, "")
	assert.InDelta(t, 0.5, q.ContentScore, 0.001)

	q = newsclip.Assess(strings.Repeat("a", 5000), "", nil, "")
	assert.Equal(t, 1.0, q.ContentScore)
}

func TestAssess_SentinelTitleScoresZero(t *testing.T) {
	t.Parallel()

	q := newsclip.Assess("body", newsclip.TitleNotFound, nil, "")

	assert.Equal(t, 0.0, q.TitleScore)
}

// Adding a previously absent field raises the overall score by exactly 0.25,
// given the four-field equal-weight average.
func TestAssess_Monotonicity(t *testing.T) {
	t.Parallel()

	content := strings.Repeat("a", 600)

	base := newsclip.Assess(content, "", nil, "")
	withTitle := newsclip.Assess(content, "Headline", nil, "")
	withAuthor := newsclip.Assess(content, "Headline", []string{"Jane Doe"}, "")
	withDate := newsclip.Assess(content, "Headline", []string{"Jane Doe"}, "May 1, 2024")

	assert.InDelta(t, 0.25, base.Overall, 0.001)
	assert.InDelta(t, 0.50, withTitle.Overall, 0.001)
	assert.InDelta(t, 0.75, withAuthor.Overall, 0.001)
	assert.InDelta(t, 1.00, withDate.Overall, 0.001)
}

func TestAssess_Grades(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		title   string
		authors []string
		date    string
		want    newsclip.Grade
	}{
		{"all fields", strings.Repeat("a", 600), "T", []string{"Jane Doe"}, "2024", newsclip.GradeExcellent},
		{"three fields", strings.Repeat("a", 600), "T", []string{"Jane Doe"}, "", newsclip.GradeGood},
		{"body and title", strings.Repeat("a", 600), "T", nil, "", newsclip.GradeFair},
		{"nothing", "", "", nil, "", newsclip.GradePoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := newsclip.Assess(tt.content, tt.title, tt.authors, tt.date)
			assert.Equal(t, tt.want, q.Grade)
		})
	}
}
