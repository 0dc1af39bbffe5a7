package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultInterval is the per-keystroke delay used when a script does not
// configure one.
const DefaultInterval = 75 * time.Millisecond

// scriptFile is the on-disk YAML shape. Authored steps are coarser than
// runtime nodes: a text step carries a whole string and is split into one
// node per grapheme cluster at load time.
type scriptFile struct {
	Name      string     `yaml:"name,omitempty"`
	Selector  string     `yaml:"selector"`
	ClearAttr string     `yaml:"clear_attr,omitempty"`
	Loop      bool       `yaml:"loop,omitempty"`
	Defaults  *defaults  `yaml:"defaults,omitempty"`
	Steps     []stepFile `yaml:"steps"`
}

type defaults struct {
	Interval string `yaml:"interval,omitempty"`
}

type stepFile struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
	Dir   string `yaml:"dir,omitempty"`
	Delay string `yaml:"delay,omitempty"`
}

// Load reads, validates, and compiles a script YAML file.
//
// Decoding is strict: unknown fields are rejected so that typos like
// "step:" for "steps:" fail loudly instead of silently producing an empty
// script. The file is also checked against the embedded CUE schema before
// compilation, which yields positioned errors for shape mistakes.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse validates and compiles script YAML held in memory.
func Parse(data []byte) (*Script, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var file scriptFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // reject unknown fields (typos)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	sc, err := compile(&file)
	if err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return sc, nil
}

// compile lowers the authored file into a runtime Script.
func compile(file *scriptFile) (*Script, error) {
	interval := DefaultInterval
	if file.Defaults != nil && file.Defaults.Interval != "" {
		d, err := time.ParseDuration(file.Defaults.Interval)
		if err != nil {
			return nil, fmt.Errorf("defaults.interval: %w", err)
		}
		interval = d
	}

	sc := &Script{
		Name:      file.Name,
		Selector:  file.Selector,
		ClearAttr: file.ClearAttr,
		Loop:      file.Loop,
	}

	for i, step := range file.Steps {
		delay := interval
		if step.Delay != "" {
			d, err := time.ParseDuration(step.Delay)
			if err != nil {
				return nil, fmt.Errorf("steps[%d].delay: %w", i, err)
			}
			delay = d
		}

		kind := Kind(step.Type)
		switch kind {
		case KindText:
			if step.Value == "" {
				return nil, fmt.Errorf("steps[%d]: value is required", i)
			}
			// One node per grapheme cluster, each waiting one keystroke
			// interval, mirroring how a typist emits a string.
			sc.Nodes = append(sc.Nodes, Split(step.Value, delay)...)
		case KindTag, KindDelay, KindClear, KindMove, KindDelete:
			sc.Nodes = append(sc.Nodes, Node{
				Kind:  kind,
				Value: step.Value,
				Dir:   Direction(step.Dir),
				Delay: delay,
			})
		default:
			return nil, fmt.Errorf("steps[%d]: unknown step type %q", i, step.Type)
		}
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}
