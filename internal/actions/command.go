package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/alexisbeaulieu97/zzbutton/internal/button"
	zzerrors "github.com/alexisbeaulieu97/zzbutton/pkg/errors"
)

// CommandOptions configures a shell command action.
type CommandOptions struct {
	Command string
	Shell   string
	WorkDir string
	Env     map[string]string
}

// Command runs a shell command. The promise resolves with the command's
// trimmed stdout and rejects with a *errors.CommandError on non-zero exit.
func Command(opts CommandOptions) button.Action {
	return Func(func(ctx context.Context) (any, error) {
		return runCommand(ctx, opts)
	})
}

func runCommand(ctx context.Context, opts CommandOptions) (string, error) {
	shell, shellArgs, err := determineShell(opts.Shell)
	if err != nil {
		return "", err
	}

	args := append(shellArgs, opts.Command)
	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Env = buildEnv(opts.Env)
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &zzerrors.CommandError{
				Command:  opts.Command,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("run %q: %w", opts.Command, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func determineShell(explicit string) (string, []string, error) {
	if explicit != "" {
		return explicit, []string{"-c"}, nil
	}

	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C"}, nil
	}

	if path, err := exec.LookPath("bash"); err == nil {
		return path, []string{"-c"}, nil
	}

	if path, err := exec.LookPath("sh"); err == nil {
		return path, []string{"-c"}, nil
	}

	return "", nil, fmt.Errorf("no suitable shell found")
}

func buildEnv(custom map[string]string) []string {
	env := os.Environ()
	for k, v := range custom {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}
