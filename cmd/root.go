package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexmk92/combobox/core"
	"github.com/alexmk92/combobox/core/sources"
	"github.com/alexmk92/combobox/core/types"
	"github.com/alexmk92/combobox/ui"
)

// ErrCancelled is returned when the user quits without submitting.
var ErrCancelled = errors.New("selection cancelled")

// NewRootCmd builds the combobox command. Positional arguments are the options
// ("label" or "label=value") unless a file or command source is chosen.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "combobox [OPTION...]",
		Short:         "Pick one or more values from a filterable list",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: runCombobox,
	}

	flags := rootCmd.Flags()
	flags.BoolP("multi", "m", false, "Allow selecting several values")
	flags.Bool("clearable", false, "Show the clear indicator")
	flags.Bool("searchable", true, "Allow typing filter text")
	flags.Bool("hide-selected", false, "Hide selected options from the menu (defaults to --multi)")
	flags.Bool("backspace-removes", true, "Backspace on empty input removes the last value")
	flags.Bool("escape-clears", false, "Escape on a closed menu clears the value")
	flags.Bool("tab-selects", true, "Tab selects the focused option")
	flags.Bool("open-on-focus", true, "Open the menu when the control gains focus")
	flags.Bool("open-on-click", true, "Open the menu when the control is clicked")
	flags.Bool("close-on-select", true, "Close the menu after selecting")
	flags.StringP("delimiter", "d", ",", "Separator for multiple values in the output")
	flags.StringP("name", "n", "", "Print the result as name=value")
	flags.StringP("placeholder", "p", "Select...", "Text shown while nothing is selected")
	flags.StringP("label", "l", "", "Title shown above the control")
	flags.Int("page-size", core.DefaultPageSize, "Options moved by page up and page down")
	flags.String("filter", "default", "Filter strategy: default, fuzzy, prefix, none")
	flags.StringP("config", "c", "", "YAML settings file")
	flags.StringP("options-file", "f", "", "Read options from a file (text or YAML)")
	flags.String("options-cmd", "", "Read options from the output of a shell command")
	flags.Bool("debug", false, "Log state transitions at debug level")
	flags.String("log-file", "", "Write logs to this file")

	return rootCmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func runCombobox(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Logger = logger

	source, err := resolveSource(cmd, args)
	if err != nil {
		return err
	}
	sel := core.NewSelect(nil, cfg, core.Handlers{})
	logger.Debug("starting", "instance", sel.Config().InstanceID, "source", source.Name(), "mode", cfg.Mode())

	model := ui.Start(sel, source, nil)
	p := tea.NewProgram(model, tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run combobox: %w", err)
	}

	if err := model.Err(); err != nil {
		return err
	}

	value, ok := model.Result()
	if !ok {
		return ErrCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

// buildConfig layers the configuration: defaults, then the settings file, then
// COMBOBOX_MODE, then every flag given on the command line.
func buildConfig(cmd *cobra.Command) (core.Config, error) {
	cfg := core.DefaultConfig()
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		settings, err := core.LoadSettings(path)
		if err != nil {
			return cfg, err
		}
		if err := settings.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("invalid settings in %s: %w", path, err)
		}
	}

	if modeStr := os.Getenv("COMBOBOX_MODE"); modeStr != "" {
		mode, err := core.ParseMode(modeStr)
		if err != nil {
			return cfg, fmt.Errorf("COMBOBOX_MODE environment variable error: %w", err)
		}
		cfg.IsMulti = mode == types.ModeMulti
	}

	if err := flagSettings(cmd).Apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// flagSettings collects the flags that were set explicitly, so unset flags never
// override the settings file.
func flagSettings(cmd *cobra.Command) core.Settings {
	flags := cmd.Flags()
	var s core.Settings

	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}
	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	if multi := boolFlag("multi"); multi != nil {
		s.Mode = types.ModeSingle.String()
		if *multi {
			s.Mode = types.ModeMulti.String()
		}
	}
	s.IsClearable = boolFlag("clearable")
	s.IsSearchable = boolFlag("searchable")
	s.HideSelectedOptions = boolFlag("hide-selected")
	s.BackspaceRemovesValue = boolFlag("backspace-removes")
	s.EscapeClearsValue = boolFlag("escape-clears")
	s.TabSelectsValue = boolFlag("tab-selects")
	s.OpenMenuOnFocus = boolFlag("open-on-focus")
	s.OpenMenuOnClick = boolFlag("open-on-click")
	s.CloseMenuOnSelect = boolFlag("close-on-select")
	s.Delimiter = stringFlag("delimiter")
	s.Name = stringFlag("name")
	s.Placeholder = stringFlag("placeholder")
	s.AriaLabel = stringFlag("label")

	if flags.Changed("page-size") {
		v, _ := flags.GetInt("page-size")
		s.PageSize = &v
	}
	if flags.Changed("filter") {
		s.Filter, _ = flags.GetString("filter")
	}

	return s
}

// resolveSource picks the option source. Explicit flags win over
// COMBOBOX_SOURCE, which in turn decides how the positional args are read.
func resolveSource(cmd *cobra.Command, args []string) (types.Source, error) {
	flags := cmd.Flags()

	if path, _ := flags.GetString("options-file"); path != "" {
		return sources.GetSource(sources.SourceFile, []string{path})
	}
	if command, _ := flags.GetString("options-cmd"); command != "" {
		return sources.GetSource(sources.SourceCommand, []string{command})
	}

	kind, err := sources.GetSourceKindFromEnv()
	if err != nil {
		return nil, err
	}
	if kind == sources.SourceStatic && len(args) == 0 {
		return nil, errors.New("no options given: pass them as arguments or use --options-file or --options-cmd")
	}
	return sources.GetSource(kind, args)
}

// newLogger writes to --log-file when given, at debug level with --debug. The
// terminal belongs to the TUI otherwise, so warnings and errors are held back
// and written to stderr by closeLog once the program has exited.
func newLogger(cmd *cobra.Command) (*log.Logger, func(), error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("log-file")
	debug, _ := flags.GetBool("debug")

	opts := log.Options{
		Prefix:          "combobox",
		ReportTimestamp: true,
	}

	if path == "" {
		var held bytes.Buffer
		opts.Level = log.WarnLevel
		closeLog := func() {
			_, _ = io.Copy(cmd.ErrOrStderr(), &held)
		}
		return log.NewWithOptions(&held, opts), closeLog, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if debug {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(f, opts), func() { _ = f.Close() }, nil
}
