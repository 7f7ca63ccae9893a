package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/alexmk92/combobox/core/types"
)

// Config collects every behavior flag and formatting hook of a Select. Build one
// with DefaultConfig and override what you need; the zero value is not a
// sensible configuration because several flags default to true.
type Config struct {
	IsMulti    bool
	IsDisabled bool
	// IsClearable shows the clear indicator. Clearing (including through
	// EscapeClearsValue) never happens without it.
	IsClearable bool
	// IsSearchable allows typing filter text. When false the input is read only.
	IsSearchable bool
	// HideSelectedOptions removes selected options from the menu. Nil follows
	// IsMulti.
	HideSelectedOptions   *bool
	BackspaceRemovesValue bool
	// EscapeClearsValue clears the value on Escape, but only while the menu is
	// closed. Escape on an open menu only closes it.
	EscapeClearsValue bool
	TabSelectsValue   bool
	OpenMenuOnFocus   bool
	OpenMenuOnClick   bool
	CloseMenuOnSelect bool
	BlurInputOnSelect bool
	AutoFocus         bool

	// Delimiter joins multi values in the hidden form field.
	Delimiter   string
	Name        string
	Placeholder string
	PageSize    int
	// InstanceID prefixes every element id. Empty means a generated one.
	InstanceID string

	// FilterOption replaces DefaultFilter. DisableFiltering makes every option
	// pass regardless of FilterOption.
	FilterOption     FilterFunc
	DisableFiltering bool
	// IsOptionDisabled replaces the option's own IsDisabled flag.
	IsOptionDisabled  func(types.Option) bool
	NoOptionsMessage  func(inputValue string) string
	LoadingMessage    func(inputValue string) string
	FormatOptionLabel func(option types.Option, context types.LabelContext) string

	AriaLabel       string
	AriaLabelledBy  string
	AriaDescribedBy string

	// Logger receives transition logs at debug level. Nil means log.Default().
	Logger *log.Logger
}

// Handlers are the outward notifications. Any of them may be nil.
type Handlers struct {
	OnChange      func(value types.Value, meta types.ActionMeta)
	OnInputChange func(text string, meta types.InputActionMeta)
	OnMenuOpen    func()
	OnMenuClose   func()
	OnFocus       func()
	OnBlur        func()
}

func DefaultConfig() Config {
	return Config{
		IsSearchable:          true,
		BackspaceRemovesValue: true,
		TabSelectsValue:       true,
		OpenMenuOnFocus:       true,
		OpenMenuOnClick:       true,
		CloseMenuOnSelect:     true,
		Delimiter:             ",",
		Placeholder:           "Select...",
		PageSize:              DefaultPageSize,
	}
}

// Bool is a helper for the optional flags.
func Bool(v bool) *bool {
	return &v
}

func (c Config) Mode() types.Mode {
	if c.IsMulti {
		return types.ModeMulti
	}
	return types.ModeSingle
}

func (c Config) hideSelected() bool {
	if c.HideSelectedOptions != nil {
		return *c.HideSelectedOptions
	}
	return c.IsMulti
}

func (c Config) optionDisabled(option types.Option) bool {
	return optionDisabled(option, c.IsOptionDisabled)
}

func (c Config) noOptionsMessage(input string) string {
	if c.NoOptionsMessage != nil {
		return c.NoOptionsMessage(input)
	}
	return "No options"
}

func (c Config) loadingMessage(input string) string {
	if c.LoadingMessage != nil {
		return c.LoadingMessage(input)
	}
	return "Loading..."
}

func (c Config) formatLabel(option types.Option, context types.LabelContext) string {
	if c.FormatOptionLabel != nil {
		return c.FormatOptionLabel(option, context)
	}
	return option.Label
}

func (c Config) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// Settings is the file form of Config. Only plain flags can live in a file; the
// hooks stay in code. Nil pointers leave the Config field untouched.
type Settings struct {
	Mode                  string  `yaml:"mode"`
	IsDisabled            *bool   `yaml:"disabled"`
	IsClearable           *bool   `yaml:"clearable"`
	IsSearchable          *bool   `yaml:"searchable"`
	HideSelectedOptions   *bool   `yaml:"hide_selected_options"`
	BackspaceRemovesValue *bool   `yaml:"backspace_removes_value"`
	EscapeClearsValue     *bool   `yaml:"escape_clears_value"`
	TabSelectsValue       *bool   `yaml:"tab_selects_value"`
	OpenMenuOnFocus       *bool   `yaml:"open_menu_on_focus"`
	OpenMenuOnClick       *bool   `yaml:"open_menu_on_click"`
	CloseMenuOnSelect     *bool   `yaml:"close_menu_on_select"`
	AutoFocus             *bool   `yaml:"auto_focus"`
	Delimiter             *string `yaml:"delimiter"`
	Name                  *string `yaml:"name"`
	Placeholder           *string `yaml:"placeholder"`
	PageSize              *int    `yaml:"page_size"`
	NoOptionsMessage      *string `yaml:"no_options_message"`
	Filter                string  `yaml:"filter"`
	AriaLabel             *string `yaml:"aria_label"`
}

// LoadSettings reads a yaml settings file.
func LoadSettings(path string) (Settings, error) {
	var s Settings

	content, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(content, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// Apply merges the set fields onto cfg.
func (s Settings) Apply(cfg *Config) error {
	if s.Mode != "" {
		mode, err := ParseMode(s.Mode)
		if err != nil {
			return err
		}
		cfg.IsMulti = mode == types.ModeMulti
	}

	setBool(&cfg.IsDisabled, s.IsDisabled)
	setBool(&cfg.IsClearable, s.IsClearable)
	setBool(&cfg.IsSearchable, s.IsSearchable)
	setBool(&cfg.BackspaceRemovesValue, s.BackspaceRemovesValue)
	setBool(&cfg.EscapeClearsValue, s.EscapeClearsValue)
	setBool(&cfg.TabSelectsValue, s.TabSelectsValue)
	setBool(&cfg.OpenMenuOnFocus, s.OpenMenuOnFocus)
	setBool(&cfg.OpenMenuOnClick, s.OpenMenuOnClick)
	setBool(&cfg.CloseMenuOnSelect, s.CloseMenuOnSelect)
	setBool(&cfg.AutoFocus, s.AutoFocus)
	if s.HideSelectedOptions != nil {
		cfg.HideSelectedOptions = Bool(*s.HideSelectedOptions)
	}

	if s.Delimiter != nil {
		cfg.Delimiter = *s.Delimiter
	}
	if s.Name != nil {
		cfg.Name = *s.Name
	}
	if s.Placeholder != nil {
		cfg.Placeholder = *s.Placeholder
	}
	if s.PageSize != nil {
		cfg.PageSize = *s.PageSize
	}
	if s.AriaLabel != nil {
		cfg.AriaLabel = *s.AriaLabel
	}
	if s.NoOptionsMessage != nil {
		msg := *s.NoOptionsMessage
		cfg.NoOptionsMessage = func(string) string { return msg }
	}

	switch strings.ToLower(strings.TrimSpace(s.Filter)) {
	case "":
	case "default":
		cfg.FilterOption = nil
		cfg.DisableFiltering = false
	case "fuzzy":
		cfg.FilterOption = FuzzyFilter
	case "prefix":
		fc := DefaultFilterConfig()
		fc.MatchFrom = MatchStart
		cfg.FilterOption = NewFilter(fc)
	case "none":
		cfg.DisableFiltering = true
	default:
		return fmt.Errorf("invalid filter '%s', valid options are: default, fuzzy, prefix, none", s.Filter)
	}

	return nil
}

// ParseMode parses "single" or "multi".
func ParseMode(s string) (types.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return types.ModeSingle, nil
	case "multi":
		return types.ModeMulti, nil
	default:
		return types.ModeSingle, fmt.Errorf("invalid mode '%s', valid options are: single, multi", s)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
