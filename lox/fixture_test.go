package lox

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// fixture is one scripted scenario: a source program plus the output and
// diagnostics it must produce. The corpus lives in testdata/*.yaml so new
// language cases can be added without touching Go code.
type fixture struct {
	Name   string   `yaml:"name"`
	Source string   `yaml:"source"`
	Output []string `yaml:"output"`
	Errors []string `yaml:"errors"`
}

func readFixtures(t *testing.T, path string) []fixture {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var fixtures []fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return fixtures
}

func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixture files found under testdata")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			for _, fx := range readFixtures(t, path) {
				fx := fx
				t.Run(fx.Name, func(t *testing.T) {
					runFixture(t, fx)
				})
			}
		})
	}
}

func runFixture(t *testing.T, fx fixture) {
	t.Helper()
	var out, errs bytes.Buffer
	runner := New()
	runner.SetOutput(&out)
	runner.SetErrorOutput(&errs)

	runErr := runner.Run(fx.Source)
	if len(fx.Errors) == 0 && runErr != nil {
		t.Fatalf("unexpected error: %v\nstderr: %s", runErr, errs.String())
	}
	if len(fx.Errors) > 0 && runErr == nil {
		t.Fatalf("expected errors %v, got none", fx.Errors)
	}

	got := splitLines(out.String())
	if len(got) != len(fx.Output) {
		t.Fatalf("output got %q, want %q", got, fx.Output)
	}
	for i, line := range fx.Output {
		if got[i] != line {
			t.Errorf("output line %d: got %q, want %q", i, got[i], line)
		}
	}

	for _, want := range fx.Errors {
		if !strings.Contains(errs.String(), want) {
			t.Errorf("diagnostics %q do not mention %q", errs.String(), want)
		}
	}
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
