package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/xhsnote"
	"github.com/fwojciec/xhsnote/clipboard"
	"github.com/fwojciec/xhsnote/csv"
	xfs "github.com/fwojciec/xhsnote/fs"
	"github.com/fwojciec/xhsnote/goquery"
	"github.com/fwojciec/xhsnote/json"
	xslog "github.com/fwojciec/xhsnote/slog"
	"github.com/fwojciec/xhsnote/sqlite"
	"github.com/fwojciec/xhsnote/xlsx"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env: %v\n", err)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for commands reading a page from stdin.
	Stdin io.Reader

	// Now returns the current time. Used for capture timestamps and
	// export file names.
	Now func() time.Time

	// Clipboard receives the copy command output. Defaults to the system
	// clipboard.
	Clipboard xhsnote.Clipboard

	// SQLite database, when the sqlite store is selected.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:     os.Stdin,
		Now:       time.Now,
		Clipboard: clipboard.NewWriter(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xhsnote"),
		kong.Description("Capture XiaoHongShu notes from saved pages and export them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xhsnote --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := &cli.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(stderr, cfg.LogLevel)
	deps.Logger = logger

	profile := goquery.DefaultProfile()
	if cfg.Profile != "" {
		if profile, err = goquery.LoadProfile(cfg.Profile); err != nil {
			return err
		}
	}

	slots, err := m.openSlots(cfg, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	deps.Notes = xslog.NewLoggingNoteStore(json.NewNoteStore(slots, xhsnote.StorageKey, logger), logger)
	deps.Extractor = xslog.NewLoggingExtractor(
		goquery.NewExtractor(profile, goquery.WithLogger(logger), goquery.WithClock(m.Now)),
		logger,
	)
	deps.Exporters = map[string]xhsnote.Exporter{
		"csv":  csv.NewExporter(),
		"xlsx": xlsx.NewExporter(),
	}
	deps.Files = xfs.NewExportWriter(cfg.Out)
	deps.Clipboard = m.Clipboard

	return kongCtx.Run(deps)
}

// openSlots opens the slot storage selected by the configuration.
func (m *Main) openSlots(cfg *Config, stderr io.Writer) (xhsnote.SlotStore, error) {
	switch cfg.Store {
	case StoreFS:
		dir := cfg.DB
		if dir == "" {
			dir = filepath.Join(dataDir(), "notes")
		}
		return xfs.NewSlotStore(dir), nil
	default:
		path := cfg.DB
		if path == "" {
			path = filepath.Join(dataDir(), "xhsnote.db")
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set XHSNOTE_DB to use a different database path\n")
			return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		return sqlite.NewSlotStore(m.DB), nil
	}
}

// newLogger returns a text logger writing to w at the named level.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".xhsnote")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
