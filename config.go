package glcanvas

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// Tessellator names accepted by Config.Tessellator.
const (
	EarcutTessellator   = "earcut"
	Poly2triTessellator = "poly2tri"
)

// Config holds the tunable parameters of a Context. The zero value is not valid, start from
// DefaultConfig.
type Config struct {
	ArcTolerance     float64 `toml:"arc_tolerance"`      // max chord error of arcs in pixels
	CurveTolerance   float64 `toml:"curve_tolerance"`    // max flattening error of Béziers in pixels
	Tessellator      string  `toml:"tessellator"`        // earcut or poly2tri
	TextureCacheSize int     `toml:"texture_cache_size"` // number of pattern textures kept on the GPU
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ArcTolerance:     0.5,
		CurveTolerance:   0.25,
		Tessellator:      EarcutTessellator,
		TextureCacheSize: 32,
	}
}

// Validate returns an error if any of the values is unusable.
func (cfg Config) Validate() error {
	if !finite(cfg.ArcTolerance) || cfg.ArcTolerance <= 0.0 {
		return fmt.Errorf("arc_tolerance must be positive: %w", ErrIndexSize)
	} else if !finite(cfg.CurveTolerance) || cfg.CurveTolerance <= 0.0 {
		return fmt.Errorf("curve_tolerance must be positive: %w", ErrIndexSize)
	} else if cfg.Tessellator != EarcutTessellator && cfg.Tessellator != Poly2triTessellator {
		return fmt.Errorf("unknown tessellator %q: %w", cfg.Tessellator, ErrSyntax)
	} else if cfg.TextureCacheSize < 1 {
		return fmt.Errorf("texture_cache_size must be at least 1: %w", ErrIndexSize)
	}
	return nil
}

// DecodeConfig reads a TOML configuration. Keys that are absent keep their default value.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		return Config{}, fmt.Errorf("unknown config key %s: %w", undecoded[0], ErrSyntax)
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a TOML configuration file. Keys that are absent keep their default value.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		return Config{}, fmt.Errorf("%s: unknown config key %s: %w", filename, undecoded[0], ErrSyntax)
	}
	return cfg, cfg.Validate()
}

// String returns the configuration in TOML.
func (cfg Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err.Error()
	}
	return buf.String()
}
