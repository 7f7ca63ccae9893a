package sources

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexmk92/combobox/core/types"
)

// SourceKind represents where the option list comes from
type SourceKind int

const (
	SourceStatic SourceKind = iota
	SourceFile
	SourceCommand
	SourceUnknown
)

// String returns the string representation of the source kind
func (k SourceKind) String() string {
	switch k {
	case SourceStatic:
		return "static"
	case SourceFile:
		return "file"
	case SourceCommand:
		return "command"
	default:
		return "unknown"
	}
}

// ParseSourceKind parses a string to SourceKind
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "static":
		return SourceStatic, nil
	case "file":
		return SourceFile, nil
	case "command", "cmd":
		return SourceCommand, nil
	default:
		return SourceStatic, fmt.Errorf("invalid source '%s', valid options are: static, file, command", s)
	}
}

// GetSourceKindFromEnv reads COMBOBOX_SOURCE, defaulting to static when unset.
func GetSourceKindFromEnv() (SourceKind, error) {
	kindStr := os.Getenv("COMBOBOX_SOURCE")
	if kindStr == "" {
		return SourceStatic, nil
	}

	kind, err := ParseSourceKind(kindStr)
	if err != nil {
		return SourceStatic, fmt.Errorf("COMBOBOX_SOURCE environment variable error: %w", err)
	}

	return kind, nil
}

// GetSource returns the source for a kind. For static sources args are the
// option arguments, for files the first arg is the path, and for commands the
// args are joined into one shell command line.
func GetSource(kind SourceKind, args []string) (types.Source, error) {
	switch kind {
	case SourceStatic:
		return NewStaticSource(args), nil
	case SourceFile:
		if len(args) == 0 || args[0] == "" {
			return nil, fmt.Errorf("file source requires a path")
		}
		return NewFileSource(args[0]), nil
	case SourceCommand:
		if len(args) == 0 {
			return nil, fmt.Errorf("command source requires a command")
		}
		source := NewCommandSource(strings.Join(args, " "))
		if !source.IsInstalled() {
			return nil, fmt.Errorf("no shell available to run option command")
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unknown source: %v", kind)
	}
}
