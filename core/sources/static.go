package sources

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/alexmk92/combobox/core/types"
)

// StaticSource serves options given on the command line as "label=value" (or a
// bare label, used as both).
type StaticSource struct {
	args []string
}

var _ types.Source = (*StaticSource)(nil)

func NewStaticSource(args []string) *StaticSource {
	return &StaticSource{args: args}
}

func (s *StaticSource) Load(ctx context.Context) ([]types.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parseLines(s.args), nil
}

func (s *StaticSource) Name() string {
	return "static"
}

// ParseOption parses one "label=value" item. The second result is false for a
// blank item.
func ParseOption(item string) (types.Option, bool) {
	label, value, found := strings.Cut(item, "=")
	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)
	if label == "" {
		return types.Option{}, false
	}
	if !found || value == "" {
		value = label
	}
	return types.Option{Label: label, Value: value}, true
}

func parseLines(lines []string) []types.Entry {
	return lo.FilterMap(lines, func(line string, _ int) (types.Entry, bool) {
		option, ok := ParseOption(line)
		return option, ok
	})
}
