package components

import (
	"fmt"

	"github.com/alexmk92/combobox/ui/types"
)

// Registry is the lookup-by-name override map for render slots. A slot without
// an override falls back to its default renderer.
type Registry struct {
	// Private property accessible to any file in the components package
	renderers map[types.Slot]any
	defaults  map[types.Slot]any
}

func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[types.Slot]any),
		defaults:  Defaults(),
	}
}

// Register overrides a slot. The renderer must implement the slot's interface.
func (r *Registry) Register(slot types.Slot, renderer any) error {
	if !fits(slot, renderer) {
		return fmt.Errorf("renderer %T does not fit slot %s", renderer, slot)
	}

	// Overwrite the renderer if the slot was already overridden
	r.renderers[slot] = renderer
	return nil
}

// Reset drops the override for a slot.
func (r *Registry) Reset(slot types.Slot) {
	delete(r.renderers, slot)
}

// Get returns the override for a slot, or the default when there is none.
func (r *Registry) Get(slot types.Slot) any {
	if renderer, exists := r.renderers[slot]; exists {
		return renderer
	}
	return r.defaults[slot]
}

// Overridden reports whether a slot has an override.
func (r *Registry) Overridden(slot types.Slot) bool {
	_, exists := r.renderers[slot]
	return exists
}

func (r *Registry) Control() types.ControlRenderer {
	return r.Get(types.SlotControl).(types.ControlRenderer)
}

func (r *Registry) Input() types.InputRenderer {
	return r.Get(types.SlotInput).(types.InputRenderer)
}

func (r *Registry) Placeholder() types.TextRenderer {
	return r.Get(types.SlotPlaceholder).(types.TextRenderer)
}

func (r *Registry) SingleValue() types.ValueRenderer {
	return r.Get(types.SlotSingleValue).(types.ValueRenderer)
}

func (r *Registry) MultiValue() types.ValueRenderer {
	return r.Get(types.SlotMultiValue).(types.ValueRenderer)
}

func (r *Registry) ClearIndicator() types.IndicatorRenderer {
	return r.Get(types.SlotClearIndicator).(types.IndicatorRenderer)
}

func (r *Registry) DropdownIndicator() types.IndicatorRenderer {
	return r.Get(types.SlotDropdownIndicator).(types.IndicatorRenderer)
}

func (r *Registry) Menu() types.MenuRenderer {
	return r.Get(types.SlotMenu).(types.MenuRenderer)
}

func (r *Registry) GroupHeading() types.GroupHeadingRenderer {
	return r.Get(types.SlotGroupHeading).(types.GroupHeadingRenderer)
}

func (r *Registry) Option() types.OptionRenderer {
	return r.Get(types.SlotOption).(types.OptionRenderer)
}

func (r *Registry) NoOptionsMessage() types.TextRenderer {
	return r.Get(types.SlotNoOptionsMessage).(types.TextRenderer)
}

func (r *Registry) LoadingMessage() types.TextRenderer {
	return r.Get(types.SlotLoadingMessage).(types.TextRenderer)
}

func (r *Registry) LiveRegion() types.TextRenderer {
	return r.Get(types.SlotLiveRegion).(types.TextRenderer)
}

func fits(slot types.Slot, renderer any) bool {
	var ok bool

	switch slot {
	case types.SlotControl:
		_, ok = renderer.(types.ControlRenderer)
	case types.SlotInput:
		_, ok = renderer.(types.InputRenderer)
	case types.SlotPlaceholder, types.SlotNoOptionsMessage, types.SlotLoadingMessage, types.SlotLiveRegion:
		_, ok = renderer.(types.TextRenderer)
	case types.SlotSingleValue, types.SlotMultiValue:
		_, ok = renderer.(types.ValueRenderer)
	case types.SlotClearIndicator, types.SlotDropdownIndicator:
		_, ok = renderer.(types.IndicatorRenderer)
	case types.SlotMenu:
		_, ok = renderer.(types.MenuRenderer)
	case types.SlotGroupHeading:
		_, ok = renderer.(types.GroupHeadingRenderer)
	case types.SlotOption:
		_, ok = renderer.(types.OptionRenderer)
	}

	return ok
}
