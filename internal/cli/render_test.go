package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/seqdraw/pkg/drawio"
	"github.com/matzehuels/seqdraw/pkg/errors"
)

const testLayout = `{
  "total_width": 400,
  "lifeline_box_width": 80,
  "lifeline_box_height": 40,
  "lifeline_total_height": 300,
  "lifelines": [
    {"name": "A", "center_x": 100, "start_y": 10},
    {"name": "B", "center_x": 300, "start_y": 10}
  ],
  "activations": {"1": [{"top_y": 50, "bottom_y": 90}]},
  "messages": [
    {"kind": "request", "text": "call()", "start_x": 100, "end_x": 300, "middle_y": 50},
    {"kind": "response", "text": "ok", "start_x": 300, "end_x": 100, "middle_y": 90}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"explicit output", "out/seq.drawio", "layout.json", "out/seq.drawio"},
		{"derived from json", "", "diagrams/login.json", "diagrams/login.drawio"},
		{"derived without extension", "", "login", "login.drawio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input); got != tt.want {
				t.Errorf("outputPath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "login.json", testLayout)

	out, err := runCLI(t, "render", input)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "login.drawio") {
		t.Errorf("output should name the generated file:\n%s", out)
	}

	f, err := os.Open(filepath.Join(dir, "login.drawio"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := drawio.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// 2 lifelines + 1 activation + 2 messages
	if got := len(doc.Root.Objects); got != 5 {
		t.Errorf("len(Objects) = %d, want 5", got)
	}
}

func TestRenderCommandWithConfig(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "layout.json", testLayout)
	cfg := writeFile(t, dir, "style.toml", "[style]\nline_color_of_message = \"#ff0000\"\n")
	output := filepath.Join(dir, "custom.drawio")

	if _, err := runCLI(t, "render", input, "-c", cfg, "-o", output); err != nil {
		t.Fatalf("render error = %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "strokeColor=#ff0000;endArrow=block;") {
		t.Error("config override missing from message style")
	}
}

func TestRenderCommandNothingToDraw(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "empty.json", `{"lifelines": [{"name": "A"}], "messages": []}`)

	out, err := runCLI(t, "render", input)
	if err != nil {
		t.Fatalf("render of an empty layout should succeed, got %v", err)
	}
	if !strings.Contains(out, "no messages specified") {
		t.Errorf("expected warning, got:\n%s", out)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "layout.json", testLayout)
	badCfg := writeFile(t, dir, "bad.toml", "[style]\ntext_size_of_message = 4\n")

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing layout", []string{"render", filepath.Join(dir, "nope.json")}, errors.ErrCodeFileNotFound},
		{"invalid config", []string{"render", input, "-c", badCfg}, errors.ErrCodeInvalidConfig},
		{"unwritable output", []string{"render", input, "-o", filepath.Join(dir, "no", "such", "dir.drawio")}, errors.ErrCodeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "layout.json", testLayout)

	out, err := runCLI(t, "inspect", input)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"lifelines", "2 (1 request, 1 response, 0 self, 0 async)", "nodes"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(out, "seqdraw") {
		t.Error("bash completion should mention the binary name")
	}
}

func TestRenderBundledExample(t *testing.T) {
	example := filepath.Join("..", "..", "examples", "login")
	output := filepath.Join(t.TempDir(), "login.drawio")

	_, err := runCLI(t, "render", filepath.Join(example, "layout.json"),
		"-c", filepath.Join(example, "seqdraw.toml"), "-o", output)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := drawio.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	// description + 3 lifelines + 2 activations + 6 messages
	if got := len(doc.Root.Objects); got != 12 {
		t.Errorf("len(Objects) = %d, want 12", got)
	}
	if label := doc.Root.Objects[1].Label; label != `<font style="font-size: 14px">Browser</font>` {
		t.Errorf("lifeline label = %q", label)
	}
}
