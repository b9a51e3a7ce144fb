package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/xhsnote"
)

// Notices shown to the user.
const (
	noticeNotFound    = "未找到内容，请确保在笔记页面使用"
	noticeNotNotePage = "请进入笔记页面以使用采集功能"
	noticeEmpty       = "还没有采集任何笔记！"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := checkNotePage(deps, c.URL); err != nil {
		return err
	}

	page, err := readPage(deps.Stdin, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	ext, err := capture(deps, page, c.URL, c.KeepTags)
	if err != nil {
		return err
	}

	n, err := deps.Notes.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "已采集：%s\n", ext.Note.Title)
	fmt.Fprintf(deps.Stdout, "共 %d 篇笔记\n", n)
	return nil
}

// checkNotePage rejects an explicit address that is not a note page.
func checkNotePage(deps *Dependencies, url string) error {
	if url == "" || xhsnote.IsNotePage(url) {
		return nil
	}
	fmt.Fprintln(deps.Stderr, noticeNotNotePage)
	return xhsnote.Errorf(xhsnote.EINVALID, "%q is not a note page", url)
}

// readPage reads the page from the named file, or from stdin for "" and "-".
func readPage(stdin io.Reader, name string) (string, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(data), nil
}

// capture extracts the note from page and stores it.
func capture(deps *Dependencies, page, url string, keepTags bool) (*xhsnote.Extraction, error) {
	ext, err := deps.Extractor.Extract(page, url, xhsnote.ExtractOptions{RetainTags: keepTags})
	if err != nil {
		if xhsnote.ErrorCode(err) == xhsnote.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, noticeNotFound)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		}
		return nil, err
	}

	// The address may come from the page itself.
	if err := checkNotePage(deps, ext.Note.SourceURL); err != nil {
		return nil, err
	}

	if err := deps.Notes.Upsert(deps.Ctx, ext.Note); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", xhsnote.ErrorMessage(err))
		return nil, err
	}

	return ext, nil
}
