package sources

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/alexmk92/combobox/core/types"
)

// CommandSource runs a shell command and turns every non-empty stdout line
// into an option ("label=value" or a bare label).
type CommandSource struct {
	command string
	shell   string
}

var _ types.Source = (*CommandSource)(nil)

func NewCommandSource(command string) *CommandSource {
	return &CommandSource{command: command, shell: "sh"}
}

func (s *CommandSource) Load(ctx context.Context) ([]types.Entry, error) {
	cmd := exec.CommandContext(ctx, s.shell, "-c", s.command)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run option command %q: %w", s.command, err)
	}

	return parseLines(strings.Split(string(output), "\n")), nil
}

func (s *CommandSource) Name() string {
	return "command"
}

// IsInstalled reports whether the shell used to run the command exists.
func (s *CommandSource) IsInstalled() bool {
	_, err := exec.LookPath(s.shell)
	return err == nil
}
