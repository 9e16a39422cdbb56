package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	appName  = "folderstar"
	fileName = "config"
	fileType = "yaml"

	// EnvPrefix prefixes every environment override (FOLDERSTAR_DATABASE, ...)
	EnvPrefix = "FOLDERSTAR"
)

// Config keys
const (
	KeyDatabase      = "database"
	KeyRoots         = "roots"
	KeyLanguage      = "language"
	KeyRevealCommand = "reveal_command"
	KeyEditor        = "editor"
	KeyDebugLog      = "debug_log"
)

// DefaultLanguage is the collation language used to sort folder names
const DefaultLanguage = "en"

// Config holds the resolved settings shared by every front end
type Config struct {
	Database      string   // Path of the SQLite state database
	Roots         []string // Workspace roots; defaults to the working directory
	Language      string   // BCP 47 tag for name collation
	RevealCommand string   // Overrides the platform file manager
	Editor        string   // Editor used to open folders in a new window
	DebugLog      string   // TUI log file; empty disables logging
}

// Dir returns the folderstar config directory
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appName)
	}
	return filepath.Join(home, ".config", appName)
}

// FilePath returns the full path to the config file
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// DefaultDatabasePath returns the default database location under the XDG
// data directory
func DefaultDatabasePath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName, "state.db")
}

// New returns a viper instance reading path (FilePath when empty) and
// FOLDERSTAR_* environment variables, with defaults applied
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(KeyDatabase, DefaultDatabasePath())
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyRoots, []string{})
	v.SetDefault(KeyRevealCommand, "")
	v.SetDefault(KeyEditor, "")
	v.SetDefault(KeyDebugLog, "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}
	v.SetConfigFile(path)
	v.SetConfigType(fileType)

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	return v, nil
}

// Load resolves the configuration from path and the environment
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
// Flags bound with BindPFlag take precedence over file and environment.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Database:      v.GetString(KeyDatabase),
		Roots:         roots(v),
		Language:      v.GetString(KeyLanguage),
		RevealCommand: v.GetString(KeyRevealCommand),
		Editor:        v.GetString(KeyEditor),
		DebugLog:      v.GetString(KeyDebugLog),
	}

	if len(cfg.Roots) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cfg.Roots = []string{wd}
	}

	for i, root := range cfg.Roots {
		abs, err := filepath.Abs(expandHome(root))
		if err != nil {
			return nil, fmt.Errorf("resolving root %s: %w", root, err)
		}
		cfg.Roots[i] = abs
	}

	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}

	return cfg, nil
}

// roots reads the roots key. The environment carries a single string in
// the OS path-list format; files and flags carry a list.
func roots(v *viper.Viper) []string {
	var out []string
	switch raw := v.Get(KeyRoots).(type) {
	case string:
		out = filepath.SplitList(raw)
	default:
		out = v.GetStringSlice(KeyRoots)
	}

	nonEmpty := out[:0]
	for _, r := range out {
		if r != "" {
			nonEmpty = append(nonEmpty, r)
		}
	}
	return nonEmpty
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
