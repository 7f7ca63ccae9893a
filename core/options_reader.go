package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexmk92/combobox/core/types"
)

// OptionsReader reads option lists from files. Two formats are understood:
//
// YAML (.yaml/.yml): a sequence whose items are either options
// (label/value/disabled) or groups (group/options).
//
// Everything else is read as a grouped key/value list:
//
//	# comment
//	Ungrouped = u
//	[Fruit]
//	Apple = apple
//	Durian = durian ; disabled
//	Banana
//
// A line without "=" uses its text as both label and value.
type OptionsReader struct {
	entries []types.Entry
}

func NewOptionsReader() *OptionsReader {
	return &OptionsReader{}
}

// LoadFile loads and parses an options file, replacing anything read before.
func (r *OptionsReader) LoadFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open options file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return r.loadYAML(file)
	default:
		return r.loadFromReader(file)
	}
}

// Entries returns the parsed option list in file order.
func (r *OptionsReader) Entries() []types.Entry {
	return r.entries
}

// Count returns the number of options, group children included.
func (r *OptionsReader) Count() int {
	return len(FlattenOptions(r.entries))
}

func (r *OptionsReader) loadFromContent(content string) error {
	return r.loadFromReader(strings.NewReader(content))
}

func (r *OptionsReader) loadFromReader(src io.Reader) error {
	scanner := bufio.NewScanner(src)
	var entries []types.Entry
	var current *types.Group

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
		}
		current = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// [Group name] starts a new group
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			current = &types.Group{Label: strings.TrimSpace(strings.Trim(line, "[]"))}
			continue
		}

		option, ok := parseOptionLine(line)
		if !ok {
			continue
		}

		if current != nil {
			current.Options = append(current.Options, option)
		} else {
			entries = append(entries, option)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading options: %w", err)
	}

	r.entries = entries
	return nil
}

func parseOptionLine(line string) (types.Option, bool) {
	var option types.Option

	body, attrs, _ := strings.Cut(line, ";")
	for _, attr := range strings.Split(attrs, ";") {
		if strings.TrimSpace(attr) == "disabled" {
			option.IsDisabled = true
		}
	}

	label, value, found := strings.Cut(body, "=")
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if !found || value == "" {
		value = label
	}
	if label == "" {
		return option, false
	}

	option.Label = label
	option.Value = value
	return option, true
}

// yamlEntry is the union of the two yaml item shapes.
type yamlEntry struct {
	Label    string         `yaml:"label"`
	Value    any            `yaml:"value"`
	Disabled bool           `yaml:"disabled"`
	Group    string         `yaml:"group"`
	Options  []types.Option `yaml:"options"`
}

func (r *OptionsReader) loadYAML(src io.Reader) error {
	var items []yamlEntry
	if err := yaml.NewDecoder(src).Decode(&items); err != nil && err != io.EOF {
		return fmt.Errorf("failed to parse options yaml: %w", err)
	}

	entries := make([]types.Entry, 0, len(items))
	for _, item := range items {
		if item.Group != "" {
			entries = append(entries, types.Group{Label: item.Group, Options: item.Options})
			continue
		}

		value := item.Value
		if value == nil {
			value = item.Label
		}
		entries = append(entries, types.Option{Label: item.Label, Value: value, IsDisabled: item.Disabled})
	}

	r.entries = entries
	return nil
}
