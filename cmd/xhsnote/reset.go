package main

import (
	"fmt"

	"github.com/fwojciec/xhsnote"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm removal of every note\n")
		return xhsnote.Errorf(xhsnote.EINVALID, "use --force to confirm removal of every note")
	}

	n, err := deps.Notes.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	if err := deps.Notes.Reset(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "已清空 %d 篇笔记\n", n)
	return nil
}
