// Package extract provides extraction orchestration. It coordinates the
// escalating fetch strategies, article extraction, quality assessment, and
// batch processing of article URLs.
package extract

import (
	"context"
	"time"

	"github.com/fwojciec/newsclip"
)

// DefaultMinQuality is the quality score below which the pipeline escalates
// to the next fetch strategy.
const DefaultMinQuality = 0.5

// DefaultDeadline bounds a whole extraction across all strategy attempts.
const DefaultDeadline = 120 * time.Second

// minDocumentBytes is the smallest fetched document worth parsing. Anything
// shorter cannot contain an article and escalates immediately.
const minDocumentBytes = 200

// Ensure Pipeline implements newsclip.URLExtractor at compile time.
var _ newsclip.URLExtractor = (*Pipeline)(nil)

// Pipeline runs fetch strategies in escalation order until one yields an
// article of acceptable quality. Strategies are tried cheapest first; a
// strategy that fails outright or produces quality below MinQuality hands
// over to the next one. The best article seen so far is kept, so a deadline
// or exhausted strategy list still returns a usable partial result when one
// exists.
type Pipeline struct {
	Strategies []newsclip.FetchStrategy
	Extractor  newsclip.ArticleExtractor

	// MinQuality is the escalation threshold. Defaults to DefaultMinQuality.
	MinQuality float64

	// Deadline bounds the whole extraction when the caller's context carries
	// no deadline of its own. Defaults to DefaultDeadline.
	Deadline time.Duration
}

// ExtractURL fetches and extracts the article at the given URL.
//
// Returns ENOTFOUND when every strategy fails outright, ETIMEOUT when the
// deadline expires before any strategy produced a result, and the
// best-quality article otherwise.
func (p *Pipeline) ExtractURL(ctx context.Context, url string) (*newsclip.Article, error) {
	minQuality := p.MinQuality
	if minQuality == 0 {
		minQuality = DefaultMinQuality
	}

	if _, ok := ctx.Deadline(); !ok {
		deadline := p.Deadline
		if deadline == 0 {
			deadline = DefaultDeadline
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	start := time.Now()
	var tried []newsclip.Method
	var best *newsclip.Article

	for _, strategy := range p.Strategies {
		if ctx.Err() != nil {
			if best != nil {
				return best, nil
			}
			return nil, newsclip.DeadlineError(strategy.Name(), time.Since(start))
		}

		tried = append(tried, strategy.Name())

		doc, err := strategy.Attempt(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				if best != nil {
					return best, nil
				}
				return nil, newsclip.DeadlineError(strategy.Name(), time.Since(start))
			}
			continue
		}

		if len(doc.HTML) < minDocumentBytes {
			continue
		}

		article, err := p.Extractor.Extract(doc)
		if err != nil {
			continue
		}

		if best == nil || article.Quality.Overall > best.Quality.Overall {
			best = article
		}
		if article.Quality.Overall >= minQuality {
			return article, nil
		}
	}

	if best != nil {
		return best, nil
	}
	return nil, newsclip.NoContentError(tried)
}
