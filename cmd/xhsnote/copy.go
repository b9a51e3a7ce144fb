package main

import (
	"fmt"

	"github.com/fwojciec/xhsnote"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	notes, err := deps.Notes.All(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stderr, noticeEmpty)
		return nil
	}

	text := xhsnote.FormatClipboard(notes)
	if c.Stdout {
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	if err := deps.Clipboard.WriteText(text); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Use --stdout to print the notes instead")
		return err
	}

	fmt.Fprintf(deps.Stdout, "已复制 %d 篇笔记到剪贴板\n", len(notes))
	return nil
}
