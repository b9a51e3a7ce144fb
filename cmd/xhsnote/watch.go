package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fwojciec/xhsnote"
	"github.com/fwojciec/xhsnote/fsnotify"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	if err := checkNotePage(deps, c.URL); err != nil {
		return err
	}

	w := fsnotify.NewWatcher(c.File,
		fsnotify.WithDebounce(c.Debounce),
		fsnotify.WithLogger(deps.Logger),
	)

	fmt.Fprintf(deps.Stdout, "Watching %s (Ctrl+C to stop)\n", c.File)
	return w.Run(deps.Ctx, c.check(deps))
}

// check returns the callback run for every change of the watched page.
// The previous extraction is remembered so unchanged pages are not stored
// again.
func (c *WatchCmd) check(deps *Dependencies) fsnotify.CheckFunc {
	var prev *xhsnote.Extraction

	return func(ctx context.Context) error {
		data, err := os.ReadFile(c.File)
		if err != nil {
			deps.Logger.Warn("page not readable", "path", c.File, "err", err)
			return nil
		}

		ext, err := deps.Extractor.Extract(string(data), c.URL, xhsnote.ExtractOptions{RetainTags: c.KeepTags})
		switch xhsnote.ErrorCode(err) {
		case "":
		case xhsnote.ENOTFOUND:
			fmt.Fprintln(deps.Stderr, noticeNotFound)
			return nil
		case xhsnote.EINVALID:
			fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
			return nil
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
			return err
		}

		if checkNotePage(deps, ext.Note.SourceURL) != nil {
			return nil
		}

		if ext.Unchanged(prev) {
			deps.Logger.Debug("page unchanged", "url", ext.Note.SourceURL)
			return nil
		}

		if err := deps.Notes.Upsert(ctx, ext.Note); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
			return err
		}
		prev = ext

		fmt.Fprintf(deps.Stdout, "已采集：%s\n", ext.Note.Title)
		return nil
	}
}
