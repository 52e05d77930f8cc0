// Package config loads the cint command line configuration.
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/calebcase/cint/integer"
	"github.com/calebcase/cint/internal/archive"
	"github.com/calebcase/cint/internal/dump"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// EnvPath names the environment variable holding the default config path.
const EnvPath = "CINT_CONFIG"

// Color modes
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config of the cint command.
type Config struct {
	// Chunk is the number of digits printed per write.
	Chunk int `toml:"chunk"`

	// DumpFormat is the default format of the dump command.
	DumpFormat string `toml:"dump_format"`

	// ArchiveFormat is the default format of pack and unpack.
	ArchiveFormat string `toml:"archive_format"`

	// Color is one of auto, on or off.
	Color string `toml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Chunk:         integer.DefaultChunk,
		DumpFormat:    dump.Packed.String(),
		ArchiveFormat: string(archive.BSV),
		Color:         ColorAuto,
	}
}

// Path returns the config path to use: path if set, otherwise the value of
// $CINT_CONFIG.
func Path(path string) string {
	if path != "" {
		return path
	}

	return os.Getenv(EnvPath)
}

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, Error.New("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return Config{}, Error.New("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, Error.New("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() (err error) {
	if c.Chunk < 1 {
		return Error.New("chunk must be positive: %d", c.Chunk)
	}

	_, err = dump.ParseFormat(c.DumpFormat)
	if err != nil {
		return err
	}

	_, err = archive.ParseFormat(c.ArchiveFormat)
	if err != nil {
		return err
	}

	switch c.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return Error.New("invalid color mode %q", c.Color)
	}

	return nil
}
