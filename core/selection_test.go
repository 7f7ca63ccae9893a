package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmk92/combobox/core/types"
)

func TestApplySelectSingle(t *testing.T) {
	options := numberOptions()

	next, ev := ApplySelect([]types.Option{options[1]}, options[3], types.ModeSingle, nil)

	require.NotNil(t, ev)
	assert.Equal(t, []types.Option{options[3]}, next)
	assert.Equal(t, types.ActionSelectOption, ev.Meta.Action)
	assert.Equal(t, &options[3], ev.Value.Single())
	assert.Equal(t, options[3], *ev.Meta.Option)
}

func TestApplySelectMulti(t *testing.T) {
	options := numberOptions()
	current := []types.Option{options[1]}

	next, ev := ApplySelect(current, options[0], types.ModeMulti, nil)

	require.NotNil(t, ev)
	assert.Equal(t, []types.Option{options[1], options[0]}, next)
	assert.Equal(t, next, ev.Value.Multi())
	assert.Len(t, current, 1, "input slice must not be modified")
}

func TestApplySelectRejectsDuplicate(t *testing.T) {
	options := numberOptions()
	current := []types.Option{options[1], options[2]}

	next, ev := ApplySelect(current, options[2], types.ModeMulti, nil)

	assert.Nil(t, ev)
	assert.Equal(t, current, next)
}

func TestApplySelectDisabled(t *testing.T) {
	disabled := types.Option{Label: "x", Value: "x", IsDisabled: true}

	_, ev := ApplySelect(nil, disabled, types.ModeSingle, nil)
	assert.Nil(t, ev)

	_, ev = ApplySelect(nil, disabled, types.ModeMulti, nil)
	assert.Nil(t, ev)

	t.Run("predicate overrides flag", func(t *testing.T) {
		never := func(types.Option) bool { return false }
		_, ev := ApplySelect(nil, disabled, types.ModeSingle, never)
		assert.NotNil(t, ev)

		always := func(types.Option) bool { return true }
		_, ev = ApplySelect(nil, types.Option{Label: "y", Value: "y"}, types.ModeSingle, always)
		assert.Nil(t, ev)
	})
}

func TestApplyRemove(t *testing.T) {
	options := numberOptions()
	current := []types.Option{options[0], options[1], options[2]}

	t.Run("pop removes last", func(t *testing.T) {
		next, ev := ApplyRemove(current, nil, types.ModeMulti)
		require.NotNil(t, ev)
		assert.Equal(t, []types.Option{options[0], options[1]}, next)
		assert.Equal(t, types.ActionPopValue, ev.Meta.Action)
		assert.Equal(t, options[2], *ev.Meta.Option)
	})

	t.Run("remove explicit target", func(t *testing.T) {
		next, ev := ApplyRemove(current, &options[1], types.ModeMulti)
		require.NotNil(t, ev)
		assert.Equal(t, []types.Option{options[0], options[2]}, next)
		assert.Equal(t, types.ActionRemoveValue, ev.Meta.Action)
		assert.Equal(t, next, ev.Value.Multi())
	})

	t.Run("remove missing target is a no-op", func(t *testing.T) {
		_, ev := ApplyRemove(current, &options[9], types.ModeMulti)
		assert.Nil(t, ev)
	})

	t.Run("pop empty is a no-op", func(t *testing.T) {
		_, ev := ApplyRemove(nil, nil, types.ModeMulti)
		assert.Nil(t, ev)
	})

	assert.Len(t, current, 3, "input slice must not be modified")
}

func TestApplyClear(t *testing.T) {
	options := numberOptions()

	t.Run("single yields null", func(t *testing.T) {
		next, ev := ApplyClear([]types.Option{options[0]}, types.ModeSingle)
		require.NotNil(t, ev)
		assert.Empty(t, next)
		assert.True(t, ev.Value.IsNull())
		assert.Nil(t, ev.Value.Single())
		assert.Equal(t, types.ActionClear, ev.Meta.Action)
	})

	t.Run("multi yields empty sequence", func(t *testing.T) {
		next, ev := ApplyClear([]types.Option{options[0], options[1]}, types.ModeMulti)
		require.NotNil(t, ev)
		assert.Empty(t, next)
		assert.NotNil(t, ev.Value.Multi())
		assert.Empty(t, ev.Value.Multi())
		assert.Equal(t, types.ActionClear, ev.Meta.Action)
	})

	t.Run("already empty is a no-op", func(t *testing.T) {
		_, ev := ApplyClear(nil, types.ModeMulti)
		assert.Nil(t, ev)
	})
}
