package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/matzehuels/seqdraw/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Position.ActivationWidth != 10 {
		t.Errorf("ActivationWidth = %v, want 10", cfg.Position.ActivationWidth)
	}
	if got := cfg.Position.ActivationWidthDecimal().String(); got != "10" {
		t.Errorf("ActivationWidthDecimal() = %s, want 10", got)
	}
	if cfg.Style.LineWidthOfMessage != nil || cfg.Style.LineColorOfMessage != "" {
		t.Error("Default() should not set style overrides")
	}
}

func TestDecode(t *testing.T) {
	input := `
[position]
activation_width = 16
lifeline_center_horizontal_spacing = 200

[style]
message_auto_seq = true
line_width_of_message = 1.5
line_width_of_lifeline = 2
line_width_of_activation = "0.75"
line_color_of_lifeline = "#336699"
line_color_of_message = "red"
text_font_of_message = "Courier New"
text_size_of_message = 14
`
	cfg, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if cfg.Position.ActivationWidth != 16 {
		t.Errorf("ActivationWidth = %v, want 16", cfg.Position.ActivationWidth)
	}
	if cfg.Position.LifelineCenterHorizontalSpacing != 200 {
		t.Errorf("LifelineCenterHorizontalSpacing = %v, want 200", cfg.Position.LifelineCenterHorizontalSpacing)
	}
	// untouched keys keep their defaults
	if cfg.Position.MessageVerticalSpacing != 30 {
		t.Errorf("MessageVerticalSpacing = %v, want default 30", cfg.Position.MessageVerticalSpacing)
	}
	if !cfg.Style.MessageAutoSeq {
		t.Error("MessageAutoSeq = false, want true")
	}
	widths := []struct {
		name string
		got  *decimal.Decimal
		want string
	}{
		{"message", cfg.Style.LineWidthOfMessage, "1.5"},
		{"lifeline", cfg.Style.LineWidthOfLifeline, "2"},
		{"activation", cfg.Style.LineWidthOfActivation, "0.75"},
	}
	for _, w := range widths {
		if w.got == nil || w.got.String() != w.want {
			t.Errorf("line width of %s = %v, want %s", w.name, w.got, w.want)
		}
	}
	if cfg.Style.LineColorOfMessage != "red" {
		t.Errorf("LineColorOfMessage = %q, want red", cfg.Style.LineColorOfMessage)
	}

	font := cfg.Style.MessageFont()
	if font.Face != "Courier New" || font.Size == nil || *font.Size != 14 || font.Color != "" {
		t.Errorf("MessageFont() = %+v", font)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", "[position\nactivation_width = 1"},
		{"unknown key", "[style]\nline_width = 2"},
		{"unknown table", "[theme]\nname = \"dark\""},
		{"zero activation width", "[position]\nactivation_width = 0"},
		{"negative extra spacing", "[position]\nparts_extra_vertical_spacing = -5"},
		{"color breaking the style", "[style]\nline_color_of_message = \"blue;dashed=1\""},
		{"color with key separator", "[style]\nbox_color_of_lifeline = \"fill=red\""},
		{"small font", "[style]\ntext_size_of_lifeline = 8"},
		{"zero line width", "[style]\nline_width_of_activation = 0"},
		{"negative line width", "[style]\nline_width_of_message = -1.5"},
		{"non-numeric line width", "[style]\nline_width_of_message = \"wide\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Decode() = nil error, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load(\"\") error = %v", err)
		}
		if cfg.Position.ActivationWidth != Default().Position.ActivationWidth {
			t.Error("Load(\"\") should return defaults")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seqdraw.toml")
		if err := os.WriteFile(path, []byte("[style]\nbox_color_of_activation = \"#eeeeee\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Style.BoxColorOfActivation != "#eeeeee" {
			t.Errorf("BoxColorOfActivation = %q", cfg.Style.BoxColorOfActivation)
		}
	})
}
