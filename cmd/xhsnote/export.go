package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/xhsnote"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	exporter, ok := deps.Exporters[c.Format]
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unsupported format %q\n", c.Format)
		return xhsnote.Errorf(xhsnote.EINVALID, "unsupported format %q", c.Format)
	}

	notes, err := deps.Notes.All(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stderr, noticeEmpty)
		return nil
	}

	name := xhsnote.ExportFilename(deps.Now(), exporter.Extension())
	path, err := deps.Files.Write(deps.Ctx, name, func(w io.Writer) error {
		return exporter.Export(w, notes)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "已导出 %d 篇笔记到 %s\n", len(notes), path)
	return nil
}
