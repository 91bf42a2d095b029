// Package fixtures discovers and runs Orlang conformance fixtures: small
// programs paired with the output, diagnostics and outcome they must produce.
package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firo1919/orlang/pkg/driver"
)

// ManifestName is the file that marks a fixture directory.
const ManifestName = "fixture.yml"

// DefaultEntry is the program file used when a manifest names none.
const DefaultEntry = "main.orl"

// Fixture is one loaded conformance case.
type Fixture struct {
	Name        string
	Dir         string
	Description string
	Source      string
	Stdout      []string
	Stderr      []string
	Outcome     driver.Outcome
}

type manifestFile struct {
	Description string   `yaml:"description"`
	Entry       string   `yaml:"entry"`
	Source      string   `yaml:"source"`
	Stdout      []string `yaml:"stdout"`
	Stderr      []string `yaml:"stderr"`
	Outcome     string   `yaml:"outcome"`
}

// Discover walks root and loads every fixture below it, sorted by name.
func Discover(root string) ([]*Fixture, error) {
	var fixtures []*Fixture
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != ManifestName {
			return nil
		}
		fixture, err := Load(filepath.Dir(path))
		if err != nil {
			return err
		}
		if rel, relErr := filepath.Rel(root, fixture.Dir); relErr == nil {
			fixture.Name = filepath.ToSlash(rel)
		}
		fixtures = append(fixtures, fixture)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fixtures: discover %s: %w", root, err)
	}
	sort.Slice(fixtures, func(i, j int) bool { return fixtures[i].Name < fixtures[j].Name })
	return fixtures, nil
}

// Load reads the fixture manifest in dir along with its program source.
func Load(dir string) (*Fixture, error) {
	manifestPath := filepath.Join(dir, ManifestName)
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", manifestPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixtures: %s is empty", manifestPath)
		}
		return nil, fmt.Errorf("fixtures: parse %s: %w", manifestPath, err)
	}

	var issues driver.ValidationError
	outcome, ok := driver.ParseOutcome(raw.Outcome)
	if !ok {
		issues.Issues = append(issues.Issues, fmt.Sprintf("outcome %q must be ok, static-error or runtime-error", raw.Outcome))
	}
	if raw.Entry != "" && raw.Source != "" {
		issues.Issues = append(issues.Issues, "entry and source are mutually exclusive")
	}
	if len(issues.Issues) > 0 {
		return nil, fmt.Errorf("fixtures: %s: %w", manifestPath, &issues)
	}

	source := raw.Source
	if source == "" {
		entry := raw.Entry
		if entry == "" {
			entry = DefaultEntry
		}
		data, err := os.ReadFile(filepath.Join(dir, entry))
		if err != nil {
			return nil, fmt.Errorf("fixtures: read entry for %s: %w", dir, err)
		}
		source = string(data)
	}

	return &Fixture{
		Name:        filepath.Base(dir),
		Dir:         dir,
		Description: raw.Description,
		Source:      source,
		Stdout:      raw.Stdout,
		Stderr:      raw.Stderr,
		Outcome:     outcome,
	}, nil
}

// Result records what a fixture run produced and how it differed from the
// expectation.
type Result struct {
	Fixture    *Fixture
	Outcome    driver.Outcome
	Stdout     []string
	Stderr     []string
	Mismatches []string
}

// Passed reports whether the run matched every expectation.
func (r Result) Passed() bool {
	return len(r.Mismatches) == 0
}

// Run executes the fixture in a fresh session.
func Run(f *Fixture) Result {
	var stdout, stderr bytes.Buffer
	session := driver.NewSession(&stdout, &stderr)
	outcome := session.Run(f.Source)

	result := Result{
		Fixture: f,
		Outcome: outcome,
		Stdout:  splitLines(stdout.String()),
		Stderr:  splitLines(stderr.String()),
	}
	if outcome != f.Outcome {
		result.Mismatches = append(result.Mismatches, fmt.Sprintf("outcome: got %s, want %s", outcome, f.Outcome))
	}
	result.Mismatches = append(result.Mismatches, compareLines("stdout", result.Stdout, f.Stdout)...)
	result.Mismatches = append(result.Mismatches, compareLines("stderr", result.Stderr, f.Stderr)...)
	return result
}

// RunAll runs fixtures in order.
func RunAll(fixtures []*Fixture) []Result {
	results := make([]Result, 0, len(fixtures))
	for _, f := range fixtures {
		results = append(results, Run(f))
	}
	return results
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func compareLines(stream string, got, want []string) []string {
	var out []string
	if len(got) != len(want) {
		out = append(out, fmt.Sprintf("%s: got %d lines, want %d", stream, len(got), len(want)))
	}
	for idx := 0; idx < len(got) && idx < len(want); idx++ {
		if got[idx] != want[idx] {
			out = append(out, fmt.Sprintf("%s line %d: got %q, want %q", stream, idx+1, got[idx], want[idx]))
		}
	}
	return out
}
