package main

import (
	"fmt"

	"github.com/fwojciec/newsclip"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := newsclip.ArticleFilter{Limit: c.Limit}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsclip extract --save' to store one.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  %-24s  %.2f  %s\n", a.ID, a.Domain, a.Quality.Overall, a.Title)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "\n%s\n\n", a.Body)
		}
	}

	return nil
}
