package core

import (
	"github.com/samber/lo"

	"github.com/alexmk92/combobox/core/types"
)

// ChangeEvent is the structured notification produced by the selection engine.
// The engine functions return a nil event when nothing changed.
type ChangeEvent struct {
	Value types.Value
	Meta  types.ActionMeta
}

// ApplySelect commits target into the current selection. isDisabled may be nil,
// in which case the option's own flag decides. Disabled targets and (in multi
// mode) targets already selected are no-ops.
func ApplySelect(current []types.Option, target types.Option, mode types.Mode, isDisabled func(types.Option) bool) ([]types.Option, *ChangeEvent) {
	if optionDisabled(target, isDisabled) {
		return current, nil
	}

	var next []types.Option
	if mode == types.ModeMulti {
		if containsOption(current, target) {
			return current, nil
		}
		next = make([]types.Option, 0, len(current)+1)
		next = append(next, current...)
		next = append(next, target)
	} else {
		next = []types.Option{target}
	}

	return next, &ChangeEvent{
		Value: types.NewValue(mode, next),
		Meta:  types.ActionMeta{Action: types.ActionSelectOption, Option: &target},
	}
}

// ApplyRemove removes target from the selection (remove-value). A nil target
// removes the last selected option (pop-value). Removing something that is not
// selected, or popping an empty selection, is a no-op.
func ApplyRemove(current []types.Option, target *types.Option, mode types.Mode) ([]types.Option, *ChangeEvent) {
	if len(current) == 0 {
		return current, nil
	}

	if target == nil {
		last := current[len(current)-1]
		next := lo.Slice(current, 0, len(current)-1)
		return next, &ChangeEvent{
			Value: types.NewValue(mode, next),
			Meta:  types.ActionMeta{Action: types.ActionPopValue, Option: &last},
		}
	}

	if !containsOption(current, *target) {
		return current, nil
	}

	removed := *target
	next := lo.Reject(current, func(o types.Option, _ int) bool {
		return o.Equal(removed)
	})
	return next, &ChangeEvent{
		Value: types.NewValue(mode, next),
		Meta:  types.ActionMeta{Action: types.ActionRemoveValue, Option: &removed},
	}
}

// ApplyClear empties the selection. Clearing an already empty selection is a
// no-op so that no change event is produced.
func ApplyClear(current []types.Option, mode types.Mode) ([]types.Option, *ChangeEvent) {
	if len(current) == 0 {
		return current, nil
	}

	next := []types.Option{}
	return next, &ChangeEvent{
		Value: types.NewValue(mode, nil),
		Meta:  types.ActionMeta{Action: types.ActionClear},
	}
}

func optionDisabled(option types.Option, isDisabled func(types.Option) bool) bool {
	if isDisabled != nil {
		return isDisabled(option)
	}
	return option.IsDisabled
}
