package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/xhsnote"
	"github.com/fwojciec/xhsnote/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Now       func() time.Time
	Notes     xhsnote.NoteStore
	Extractor xhsnote.Extractor
	Exporters map[string]xhsnote.Exporter
	Files     *fs.ExportWriter
	Clipboard xhsnote.Clipboard
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config Config `embed:""`

	Extract ExtractCmd `cmd:"" help:"Capture the note from a saved page"`
	Watch   WatchCmd   `cmd:"" help:"Capture the note again whenever a saved page changes"`
	List    ListCmd    `cmd:"" help:"List captured notes"`
	Count   CountCmd   `cmd:"" help:"Show the number of captured notes"`
	Copy    CopyCmd    `cmd:"" help:"Copy all notes to the clipboard"`
	Export  ExportCmd  `cmd:"" help:"Export all notes to a dated file"`
	Reset   ResetCmd   `cmd:"" help:"Remove all captured notes"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" optional:"" help:"Saved page HTML (reads stdin when omitted or -)"`
	URL      string `help:"Note address (defaults to the address declared by the page)"`
	KeepTags bool   `name:"keep-tags" help:"Append topic tags to the note body"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	File     string        `arg:"" help:"Saved page HTML to watch"`
	URL      string        `help:"Note address (defaults to the address declared by the page)"`
	KeepTags bool          `name:"keep-tags" help:"Append topic tags to the note body"`
	Debounce time.Duration `default:"500ms" help:"Quiet period after a change before capturing"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// CountCmd is the "count" subcommand.
type CountCmd struct{}

// CopyCmd is the "copy" subcommand.
type CopyCmd struct {
	Stdout bool `help:"Print the text instead of copying it"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" default:"csv" enum:"csv,xlsx" help:"File format (csv, xlsx)"`
}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Force bool `help:"Confirm removal of every note"`
}
