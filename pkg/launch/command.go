package launch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// BundleToken is replaced by the absolute bundle path in a command template
const BundleToken = "{bundle}"

// ErrEmptyCommand is returned when the command template has no program
var ErrEmptyCommand = errors.New("launch command is empty")

// BuildCommand splits template on whitespace and substitutes the bundle
// path for every BundleToken. When the template has no token the path is
// appended as the last argument. The path is always a single argument, so
// spaces in it are preserved.
func BuildCommand(template, bundlePath string) ([]string, error) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	argv := make([]string, 0, len(fields)+1)
	substituted := false
	for _, f := range fields {
		if strings.Contains(f, BundleToken) {
			f = strings.ReplaceAll(f, BundleToken, bundlePath)
			substituted = true
		}
		argv = append(argv, f)
	}
	if !substituted {
		argv = append(argv, bundlePath)
	}
	return argv, nil
}

// Runner executes an external command and waits for it to exit
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// ExecRunner runs commands with os/exec, sharing the launcher's stdio
type ExecRunner struct{}

// Run executes argv and blocks until it exits
func (ExecRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
