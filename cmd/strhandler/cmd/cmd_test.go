package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/stringhandler/core/errors"
)

const fruits = "Orange, ÄãÈëÍïÕöÛü, Juice"

// run executes the command tree and returns stdout, stderr and the error
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{"ascii default language", "", []string{"ascii", "ãàéèíìõòúù"}, "aaeeiioouu"},
		{"ascii german", "", []string{"--lang", "de", "ascii", "Grüße"}, "Gruesse"},
		{"ascii stdin", "Ærø\n", []string{"--lang", "da", "ascii"}, "Aeroe"},
		{"is-ascii", "", []string{"is-ascii", "plain"}, "true"},
		{"length", "", []string{"length", fruits}, "25"},
		{"length latin1", "\xe4bc", []string{"length", "--encoding", "ISO-8859-1"}, "3"},
		{"validate", "", []string{"validate", fruits}, "ok"},
		{"upper stdin", "straße\n", []string{"upper"}, "STRASSE"},
		{"upper turkish", "", []string{"--lang", "tr", "upper", "istanbul"}, "İSTANBUL"},
		{"lower", "", []string{"lower", "ÄÖÜ"}, "äöü"},
		{"ucfirst", "", []string{"ucfirst", "ärger"}, "Ärger"},
		{"substr start", "", []string{"substr", "--start", "20", fruits}, "Juice"},
		{"substr negative", "", []string{"substr", "--start", "-5", "--length", "2", fruits}, "Ju"},
		{"finish", "", []string{"finish", "path//", "/"}, "path/"},
		{"start", "", []string{"start", "//path", "/"}, "/path"},
		{"wrap", "", []string{"wrap", "*bold*", "*"}, "*bold*"},
		{"wrap force", "", []string{"wrap", "--force", "*bold*", "*"}, "**bold**"},
		{"quote", "", []string{"quote", "x"}, "'x'"},
		{"quote double", "", []string{"quote", "--double", "x"}, `"x"`},
		{"starts-with", "", []string{"starts-with", fruits, "Apple", "Orange"}, "true"},
		{"starts-with empty needle", "", []string{"starts-with", fruits, ""}, "false"},
		{"ends-with empty needle", "", []string{"ends-with", fruits, ""}, "true"},
		{"join", "", []string{"join", ", ", "a", " ", "b"}, "a, b"},
		{"replace-first", "", []string{"replace-first", "a", "o", "banana"}, "bonana"},
		{"replace-last", "", []string{"replace-last", "a", "o", "banana"}, "banano"},
		{"in", "", []string{"in", "Apple", "Pear", "Apple"}, "true"},
		{"in case sensitive", "", []string{"in", "apple", "Apple"}, "false"},
		{"in ignore case", "", []string{"in", "-i", "STRASSE", "straße"}, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := run(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", err, stderr)
			}
			if got := strings.TrimSuffix(stdout, "\n"); got != tt.expected {
				t.Errorf("got %q; want %q", got, tt.expected)
			}
		})
	}
}

func TestAsciiUnknownLanguage(t *testing.T) {
	stdout, stderr, err := run(t, "", "--lang", "ja", "ascii", "Grüße")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(stdout) != "Grüße" {
		t.Errorf("fallback printed %q", stdout)
	}
	if !strings.Contains(stderr, "LOOKUP") {
		t.Errorf("expected the lookup failure in the log, got %q", stderr)
	}

	_, _, err = run(t, "", "--lang", "ja", "ascii", "--strict", "Grüße")
	if !errors.IsLookupError(err) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if status := ExitStatus(err); status != 66 {
		t.Errorf("ExitStatus() = %d; want 66", status)
	}
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected int
	}{
		{"invalid utf-8", "ab\xff", []string{"validate"}, 65},
		{"undecodable", "\x81", []string{"length", "--encoding", "Shift_JIS"}, 65},
		{"unknown encoding", "abc", []string{"length", "--encoding", "no-such-charset"}, 64},
		{"negative random length", "", []string{"random", "--length", "-1"}, 64},
		{"bad locale", "", []string{"--lang", "not a tag!", "upper", "x"}, 64},
		{"bad log format", "", []string{"--log-format", "xml", "is-ascii", "x"}, 64},
		{"missing config", "", []string{"--config", "does-not-exist.toml", "is-ascii", "x"}, 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if status := ExitStatus(err); status != tt.expected {
				t.Errorf("ExitStatus(%v) = %d; want %d", err, status, tt.expected)
			}
		})
	}

	if ExitStatus(nil) != 0 {
		t.Error("ExitStatus(nil) != 0")
	}
}

func TestRandom(t *testing.T) {
	stdout, _, err := run(t, "", "random", "--length", "32")
	if err != nil {
		t.Fatal(err)
	}
	token := strings.TrimSpace(stdout)
	if len(token) != 32 {
		t.Errorf("len = %d; want 32", len(token))
	}

	stdout, _, err = run(t, "", "random")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.TrimSpace(stdout)); n != 16 {
		t.Errorf("default length = %d; want 16", n)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()

	table := filepath.Join(dir, "tables.yaml")
	if err := os.WriteFile(table, []byte("de:\n  \"ß\": \"sz\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := filepath.Join(dir, "strhandler.toml")
	content := "[translit]\nlanguage = \"de\"\ntables = [\"" + filepath.ToSlash(table) + "\"]\n\n[random]\nlength = 8\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "", "--config", cfg, "random")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.TrimSpace(stdout)); n != 8 {
		t.Errorf("configured length = %d; want 8", n)
	}

	stdout, _, err = run(t, "", "--config", cfg, "ascii", "Grüße")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(stdout); got != "Gruesze" {
		t.Errorf("configured table gave %q; want %q", got, "Gruesze")
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "--log-format", "json", "is-ascii", "x")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "settings resolved") {
		t.Errorf("expected debug output, got %q", stderr)
	}
	if !strings.Contains(stderr, "correlation_id") {
		t.Errorf("expected a correlation id, got %q", stderr)
	}
}

func TestInfo(t *testing.T) {
	stdout, _, err := run(t, "", "info")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"stringhandler", "MIT", "msto63"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("info output lacks %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = run(t, "", "info", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var info map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("info --json is not JSON: %v", err)
	}
	if info["name"] != "stringhandler" {
		t.Errorf("name = %v", info["name"])
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "strhandler v") {
		t.Errorf("unexpected version output %q", stdout)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.InvalidArgument(errors.ModuleCLI, "test", "x", 1, "y"))
	if !strings.Contains(buf.String(), "Fehler: ") {
		t.Errorf("got %q", buf.String())
	}
}
