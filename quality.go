package newsclip

// TitleNotFound marks an extraction whose title could not be recovered.
// It scores zero in quality assessment.
const TitleNotFound = "not found"

// Grade buckets a composite quality score.
type Grade string

// Quality grades.
const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradePoor      Grade = "poor"
)

// Quality scores a completed extraction. Each component score is in [0,1];
// Overall is their equal-weight mean.
type Quality struct {
	ContentScore float64 `json:"contentScore"`
	TitleScore   float64 `json:"titleScore"`
	AuthorScore  float64 `json:"authorScore"`
	DateScore    float64 `json:"dateScore"`
	Overall      float64 `json:"overall"`
	Grade        Grade   `json:"grade"`
}

// fullContentLength is the body length at which the content score saturates.
const fullContentLength = 500

// Assess scores a completed extraction. This is the sole signal the
// orchestrator uses for escalation and the sole signal callers use to decide
// whether to accept a result or fall back to manual input.
func Assess(content, title string, authors []string, publishedAt string) Quality {
	q := Quality{}

	q.ContentScore = float64(len(content)) / fullContentLength
	if q.ContentScore > 1 {
		q.ContentScore = 1
	}
	if title != "" && title != TitleNotFound {
		q.TitleScore = 1
	}
	if len(authors) > 0 {
		q.AuthorScore = 1
	}
	if publishedAt != "" {
		q.DateScore = 1
	}

	q.Overall = (q.ContentScore + q.TitleScore + q.AuthorScore + q.DateScore) / 4

	switch {
	case q.Overall > 0.8:
		q.Grade = GradeExcellent
	case q.Overall > 0.6:
		q.Grade = GradeGood
	case q.Overall > 0.4:
		q.Grade = GradeFair
	default:
		q.Grade = GradePoor
	}

	return q
}
