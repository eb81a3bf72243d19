package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Variant selects the rule set.
type Variant string

const (
	// VariantClassic classifies minerals by shape and starts immediately.
	VariantClassic Variant = "classic"
	// VariantColors classifies minerals by colour and has start/stop controls.
	VariantColors Variant = "colors"
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the runtime knobs, read from an optional TOML file and
// overridden by command line flags.
type Settings struct {
	Variant  Variant `toml:"variant"`
	Seed     int64   `toml:"seed"` // 0 - от текущего времени
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	HookStep int     `toml:"hook_step"`
	Mute     bool    `toml:"mute"`
	Verbose  bool    `toml:"verbose"`
	Catalog  string  `toml:"catalog"` // путь к TOML каталогу минералов
	Pprof    string  `toml:"pprof"`
}

func DefaultSettings() Settings {
	return Settings{
		Variant:  VariantClassic,
		Width:    ScreenWidth,
		Height:   ScreenHeight,
		HookStep: HookStep,
	}
}

// MaxHookLength is the farthest the hook extends: the canvas height.
func (s Settings) MaxHookLength() int {
	return s.Height
}

// Validate checks the settings. The hook must come back to exactly
// HookMinLength, so its step has to divide the travel range.
func (s Settings) Validate() error {
	switch s.Variant {
	case VariantClassic, VariantColors:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidSettings, s.Variant)
	}
	if s.Width <= 2*MineralMarginX {
		return fmt.Errorf("%w: width %d too small", ErrInvalidSettings, s.Width)
	}
	if s.Height <= MineralTopReserve {
		return fmt.Errorf("%w: height %d must exceed %v", ErrInvalidSettings, s.Height, MineralTopReserve)
	}
	if s.HookStep <= 0 {
		return fmt.Errorf("%w: hook step must be positive, got %d", ErrInvalidSettings, s.HookStep)
	}
	if travel := s.MaxHookLength() - HookMinLength; travel%s.HookStep != 0 {
		return fmt.Errorf("%w: hook step %d does not divide hook travel %d", ErrInvalidSettings, s.HookStep, travel)
	}
	return nil
}

// LoadSettings reads path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidSettings, undecoded, path)
	}
	return s, s.Validate()
}

// FromCommandLine parses args, loads the file named by -config and applies
// every flag that was set explicitly on top of it.
func FromCommandLine(name string, args []string, output io.Writer) (Settings, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	defaults := DefaultSettings()
	configPath := fs.String("config", "", "path to a TOML settings file")
	variant := fs.String("variant", string(defaults.Variant), "rule set: classic or colors")
	seed := fs.Int64("seed", 0, "random seed, 0 for time based")
	mute := fs.Bool("mute", false, "disable sound effects")
	verbose := fs.Bool("v", false, "log session events")
	catalog := fs.String("catalog", "", "path to a TOML mineral catalog")
	pprof := fs.String("pprof", "", "serve net/http/pprof on this address")
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	s, err := LoadSettings(*configPath)
	if err != nil {
		return s, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			s.Variant = Variant(*variant)
		case "seed":
			s.Seed = *seed
		case "mute":
			s.Mute = *mute
		case "v":
			s.Verbose = *verbose
		case "catalog":
			s.Catalog = *catalog
		case "pprof":
			s.Pprof = *pprof
		}
	})
	return s, s.Validate()
}
