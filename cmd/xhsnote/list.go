package main

import (
	"fmt"

	"github.com/fwojciec/xhsnote"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	notes, err := deps.Notes.All(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stdout, noticeEmpty)
		return nil
	}

	for i, n := range notes {
		fmt.Fprintf(deps.Stdout, "%d. %s  %s  点赞 %d | 收藏 %d | 评论 %d\n",
			i+1, n.Title, n.SourceURL, n.Likes, n.Favorites, n.Comments)
	}

	return nil
}

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	n, err := deps.Notes.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, n)
	return nil
}
