package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/newsclip"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article, err := deps.Extractor.ExtractURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Articles.CreateArticle(deps.Ctx, article); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving: %s\n", newsclip.ErrorMessage(err))
			return err
		}
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(article)
	}

	printArticle(deps, article)
	return nil
}

// printArticle writes a human-readable article summary.
func printArticle(deps *Dependencies, article *newsclip.Article) {
	fmt.Fprintf(deps.Stdout, "Title:     %s\n", article.Title)
	if len(article.Authors) > 0 {
		fmt.Fprintf(deps.Stdout, "Authors:   %s\n", strings.Join(article.Authors, ", "))
	}
	if article.PublishedAt != "" {
		fmt.Fprintf(deps.Stdout, "Published: %s\n", article.PublishedAt)
	}
	fmt.Fprintf(deps.Stdout, "Domain:    %s\n", article.Domain)
	if article.Topic != "" {
		fmt.Fprintf(deps.Stdout, "Topic:     %s\n", article.Topic)
	}
	fmt.Fprintf(deps.Stdout, "Quality:   %.2f (%s) via %s\n",
		article.Quality.Overall, article.Quality.Grade, article.Method)
	fmt.Fprintf(deps.Stdout, "\n%s\n", article.Body)
}
