// Package config holds the position and style option sets that drive
// diagram generation, and loads them from TOML.
//
// A configuration file has two tables:
//
//	[position]
//	lifeline_center_horizontal_spacing = 150
//	message_vertical_spacing = 30
//	self_call_horizontal_width = 30
//	activation_width = 10
//	parts_extra_vertical_spacing = 0
//
//	[style]
//	line_width_of_message = 1.5
//	line_color_of_message = "#333333"
//	text_font_of_lifeline = "Helvetica"
//	text_size_of_lifeline = 14
//
// Every style key is optional. Unset style keys produce no style attribute
// at all, so draw.io falls back to its own defaults.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

// Config is the complete option set read from a configuration file.
type Config struct {
	Position Position `toml:"position"`
	Style    Style    `toml:"style"`
}

// Position holds the spacing options consumed by the layout collaborator
// and, for ActivationWidth, by geometry construction.
type Position struct {
	LifelineCenterHorizontalSpacing float64 `toml:"lifeline_center_horizontal_spacing"`
	MessageVerticalSpacing          float64 `toml:"message_vertical_spacing"`
	SelfCallHorizontalWidth         float64 `toml:"self_call_horizontal_width"`
	ActivationWidth                 float64 `toml:"activation_width"`
	PartsExtraVerticalSpacing       float64 `toml:"parts_extra_vertical_spacing"`
}

// ActivationWidthDecimal returns the activation width as an exact decimal.
func (p Position) ActivationWidthDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.ActivationWidth)
}

// Style holds the optional presentation overrides. Pointer fields are nil
// and string fields are blank when the option is not set.
type Style struct {
	MessageAutoSeq bool `toml:"message_auto_seq"`

	LineWidthOfLifeline   *decimal.Decimal `toml:"line_width_of_lifeline"`
	LineWidthOfActivation *decimal.Decimal `toml:"line_width_of_activation"`
	LineWidthOfMessage    *decimal.Decimal `toml:"line_width_of_message"`

	LineColorOfLifeline   string `toml:"line_color_of_lifeline"`
	LineColorOfActivation string `toml:"line_color_of_activation"`
	LineColorOfMessage    string `toml:"line_color_of_message"`

	BoxColorOfLifeline   string `toml:"box_color_of_lifeline"`
	BoxColorOfActivation string `toml:"box_color_of_activation"`

	TextFontOfLifeline  string `toml:"text_font_of_lifeline"`
	TextFontOfMessage   string `toml:"text_font_of_message"`
	TextSizeOfLifeline  *int   `toml:"text_size_of_lifeline"`
	TextSizeOfMessage   *int   `toml:"text_size_of_message"`
	TextColorOfLifeline string `toml:"text_color_of_lifeline"`
	TextColorOfMessage  string `toml:"text_color_of_message"`
}

// Default returns the built-in configuration: standard spacing and no
// style overrides.
func Default() *Config {
	return &Config{
		Position: Position{
			LifelineCenterHorizontalSpacing: 150,
			MessageVerticalSpacing:          30,
			SelfCallHorizontalWidth:         30,
			ActivationWidth:                 10,
			PartsExtraVerticalSpacing:       0,
		},
	}
}

// Decode reads a TOML configuration from r on top of [Default].
// Keys that do not belong to the schema are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the configuration file at path.
// An empty path yields [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open config %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks every option. Zero-valued optional settings are valid.
func (c *Config) Validate() error {
	if err := c.Position.Validate(); err != nil {
		return err
	}
	return c.Style.Validate()
}

// Validate checks the spacing options.
func (p Position) Validate() error {
	checks := []struct {
		key string
		v   float64
	}{
		{"lifeline_center_horizontal_spacing", p.LifelineCenterHorizontalSpacing},
		{"message_vertical_spacing", p.MessageVerticalSpacing},
		{"self_call_horizontal_width", p.SelfCallHorizontalWidth},
		{"activation_width", p.ActivationWidth},
	}
	for _, c := range checks {
		if err := errors.ValidatePositive(c.key, c.v); err != nil {
			return err
		}
	}
	if p.PartsExtraVerticalSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "parts_extra_vertical_spacing: must not be negative, got %v", p.PartsExtraVerticalSpacing)
	}
	return nil
}

// Validate checks the style overrides.
func (s Style) Validate() error {
	widths := []struct {
		key string
		v   *decimal.Decimal
	}{
		{"line_width_of_lifeline", s.LineWidthOfLifeline},
		{"line_width_of_activation", s.LineWidthOfActivation},
		{"line_width_of_message", s.LineWidthOfMessage},
	}
	for _, w := range widths {
		if w.v != nil && !w.v.IsPositive() {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: must be positive, got %s", w.key, w.v)
		}
	}

	colors := []struct{ key, v string }{
		{"line_color_of_lifeline", s.LineColorOfLifeline},
		{"line_color_of_activation", s.LineColorOfActivation},
		{"line_color_of_message", s.LineColorOfMessage},
		{"box_color_of_lifeline", s.BoxColorOfLifeline},
		{"box_color_of_activation", s.BoxColorOfActivation},
		{"text_color_of_lifeline", s.TextColorOfLifeline},
		{"text_color_of_message", s.TextColorOfMessage},
	}
	for _, c := range colors {
		if err := errors.ValidateColor(c.key, c.v); err != nil {
			return err
		}
	}

	if err := errors.ValidateFontSize("text_size_of_lifeline", s.TextSizeOfLifeline); err != nil {
		return err
	}
	return errors.ValidateFontSize("text_size_of_message", s.TextSizeOfMessage)
}

// LifelineFont returns the text overrides for lifeline labels.
func (s Style) LifelineFont() Font {
	return Font{Face: s.TextFontOfLifeline, Size: s.TextSizeOfLifeline, Color: s.TextColorOfLifeline}
}

// MessageFont returns the text overrides for message labels.
func (s Style) MessageFont() Font {
	return Font{Face: s.TextFontOfMessage, Size: s.TextSizeOfMessage, Color: s.TextColorOfMessage}
}

// Font is a set of optional text overrides.
type Font struct {
	Face  string
	Size  *int
	Color string
}
