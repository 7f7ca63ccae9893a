package core

import (
	"github.com/samber/lo"

	"github.com/alexmk92/combobox/core/types"
)

// MatchConfig carries everything the option matcher needs besides the option
// list and the input text.
type MatchConfig struct {
	// Filter is applied to every option. Nil means DefaultFilter.
	Filter FilterFunc
	// NoFilter turns filtering off entirely: every option passes.
	NoFilter bool
	// HideSelected removes options already present in Selected.
	HideSelected bool
	Selected     []types.Option
}

// VisibleOptions returns the entries that should be shown for the given input,
// in source order. Groups are kept only when at least one child survives, and
// then only with their surviving children.
func VisibleOptions(entries []types.Entry, input string, cfg MatchConfig) []types.Entry {
	visible := make([]types.Entry, 0, len(entries))

	for _, entry := range entries {
		switch e := entry.(type) {
		case types.Option:
			if optionVisible(e, input, cfg) {
				visible = append(visible, e)
			}
		case types.Group:
			children := lo.Filter(e.Options, func(o types.Option, _ int) bool {
				return optionVisible(o, input, cfg)
			})
			if len(children) > 0 {
				visible = append(visible, types.Group{Label: e.Label, Options: children})
			}
		}
	}

	return visible
}

// FlattenOptions lists every option of an entry list, group children inline.
func FlattenOptions(entries []types.Entry) []types.Option {
	return lo.FlatMap(entries, func(entry types.Entry, _ int) []types.Option {
		switch e := entry.(type) {
		case types.Option:
			return []types.Option{e}
		case types.Group:
			return e.Options
		}
		return nil
	})
}

// FocusableOptions drops the disabled options from a flat visible list.
func FocusableOptions(options []types.Option, isDisabled func(types.Option) bool) []types.Option {
	return lo.Reject(options, func(o types.Option, _ int) bool {
		return isDisabled(o)
	})
}

func optionVisible(option types.Option, input string, cfg MatchConfig) bool {
	if cfg.HideSelected && containsOption(cfg.Selected, option) {
		return false
	}
	if cfg.NoFilter {
		return true
	}

	filter := cfg.Filter
	if filter == nil {
		filter = DefaultFilter
	}
	return filter(option, input)
}

func containsOption(options []types.Option, option types.Option) bool {
	return lo.ContainsBy(options, func(o types.Option) bool {
		return o.Equal(option)
	})
}

func indexOfOption(options []types.Option, option *types.Option) int {
	if option == nil {
		return -1
	}
	_, index, found := lo.FindIndexOf(options, func(o types.Option) bool {
		return o.Equal(*option)
	})
	if !found {
		return -1
	}
	return index
}
