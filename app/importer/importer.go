package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Request carries everything the downstream importer needs for one run.
type Request struct {
	PostsPath        string
	Env              string
	Connection       string
	Clear            bool
	TagToEntity      bool
	SkipConfirmation bool
	AuthorsPath      string // optional
	DefaultUsername  string // optional
}

// Args renders the request as importer options.
func (r Request) Args() []string {
	args := []string{
		"--posts=" + r.PostsPath,
		"--env=" + r.Env,
		"--connection=" + r.Connection,
	}

	if r.Clear {
		args = append(args, "--clear")
	}
	if r.TagToEntity {
		args = append(args, "--tag-to-entity")
	}
	if r.SkipConfirmation {
		args = append(args, "--skip-confirmation")
	}
	if r.AuthorsPath != "" {
		args = append(args, "--authors="+r.AuthorsPath)
	}
	if r.DefaultUsername != "" {
		args = append(args, "--defaultUsername="+r.DefaultUsername)
	}

	return args
}

// Importer persists an intermediate posts document.
type Importer interface {
	Import(ctx context.Context, req Request) error
}

// CommandImporter runs the downstream importer as a child process attached
// to this process's standard streams, so its confirmation prompt reaches
// the user.
type CommandImporter struct {
	config *Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewCommandImporter(config *Config) *CommandImporter {
	return &CommandImporter{
		config: config,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

func (ci *CommandImporter) Import(ctx context.Context, req Request) error {
	args := append(append([]string(nil), ci.config.Args...), req.Args()...)

	cmd := exec.CommandContext(ctx, ci.config.Command, args...)
	cmd.Dir = ci.config.Dir
	cmd.Env = ci.config.environ()
	cmd.Stdin = ci.stdin
	cmd.Stdout = ci.stdout
	cmd.Stderr = ci.stderr

	slog.Debug("Running importer", "command", ci.config.Command, "args", args, "dir", ci.config.Dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("importer exited with status %d: %w", exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to run importer %s: %w", ci.config.Command, err)
	}

	return nil
}
