package main

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreFS     = "fs"
)

// Config holds the global flags shared by every command.
type Config struct {
	DB       string `name:"db" env:"XHSNOTE_DB" help:"Database file (sqlite) or directory (fs)"`
	Store    string `env:"XHSNOTE_STORE" default:"sqlite" enum:"sqlite,fs" help:"Note storage backend (sqlite, fs)"`
	Profile  string `env:"XHSNOTE_PROFILE" help:"Selector profile YAML"`
	LogLevel string `name:"log-level" env:"XHSNOTE_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	Out      string `env:"XHSNOTE_OUT" default:"." help:"Directory for exported files"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Store, validation.Required, validation.In(StoreSQLite, StoreFS)),
		validation.Field(&c.LogLevel, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Out, validation.Required),
	)
}
