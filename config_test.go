package thunk

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		input string
		want  *Config
	}{
		{
			input: "",
			want:  DefaultConfig(),
		},
		{
			input: "max_depth: 50\ncolor: never\nshow_tree: true\n",
			want: &Config{
				MaxDepth: 50,
				Color:    ColorNever,
				ShowTree: true,
			},
		},
		{
			input: "history: ~/h\nshow_tokens: true\n",
			want: &Config{
				MaxDepth:   DefaultMaxDepth,
				Color:      ColorAuto,
				History:    "~/h",
				ShowTokens: true,
			},
		},
		{
			input: "color: \"\"\n",
			want:  DefaultConfig(),
		},
	}
	for _, test := range tests {
		got, err := DecodeConfig(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	_, err := DecodeConfig(strings.NewReader("max_depht: 3\n"))
	if err == nil || !strings.Contains(err.Error(), "max_depht") {
		t.Errorf("want unknown field error but got %v", err)
	}

	_, err = DecodeConfig(strings.NewReader("max_depth: 0\ncolor: sometimes\n"))
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("want *ConfigError but got %v", err)
	}
	want := []string{
		"max_depth must be positive, got 0",
		`color must be one of auto, always, never, got "sometimes"`,
	}
	if diff := cmp.Diff(want, cerr.Issues); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(ConfigEnv, "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("missing home config: (-want +got)\n%s", diff)
	}

	if err := os.WriteFile(filepath.Join(dir, ".thunk.yml"), []byte("max_depth: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 7 {
		t.Errorf("want max_depth 7 from home config but got %d", cfg.MaxDepth)
	}

	other := filepath.Join(dir, "other.yml")
	if err := os.WriteFile(other, []byte("max_depth: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigEnv, other)
	cfg, err = LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != 9 {
		t.Errorf("want max_depth 9 from $%s but got %d", ConfigEnv, cfg.MaxDepth)
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("color: purple\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadConfig(bad)
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Path != bad {
		t.Errorf("want *ConfigError for %s but got %v", bad, err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error for explicit path but got %v", err)
	}
}

func TestConfigHelpers(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cfg := DefaultConfig()
	if got, want := cfg.HistoryPath(), filepath.Join(dir, ".thunk_history"); got != want {
		t.Errorf("want %q but got %q", want, got)
	}
	cfg.History = "~/hist"
	if got, want := cfg.HistoryPath(), filepath.Join(dir, "hist"); got != want {
		t.Errorf("want %q but got %q", want, got)
	}
	cfg.History = "/tmp/hist"
	if got := cfg.HistoryPath(); got != "/tmp/hist" {
		t.Errorf("want /tmp/hist but got %q", got)
	}

	for _, test := range []struct {
		mode     ColorMode
		terminal bool
		want     bool
	}{
		{ColorAuto, true, true},
		{ColorAuto, false, false},
		{ColorAlways, false, true},
		{ColorNever, true, false},
	} {
		cfg.Color = test.mode
		if got := cfg.UseColor(test.terminal); got != test.want {
			t.Errorf("%s with terminal=%v: want %v but got %v", test.mode, test.terminal, test.want, got)
		}
	}

	cfg.MaxDepth = 3
	if got := cfg.Interpreter().maxDepth; got != 3 {
		t.Errorf("want interpreter depth 3 but got %d", got)
	}
}
