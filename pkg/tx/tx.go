package tx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrNoProject      = errors.New("tx: no .tx directory found")
	ErrNoCommand      = errors.New("tx: no command given")
	ErrUnknownCommand = errors.New("tx: unknown command")
	ErrCommandFailed  = errors.New("tx: command failed")
)

// Commands lists the sub-commands passed through to the client.
var Commands = []string{"init", "push", "pull", "status", "set", "config"}

const projectDir = ".tx"

// FindRoot walks up from dir to the first directory containing .tx.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		info, err := os.Stat(filepath.Join(dir, projectDir))
		if err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// Options configures Run.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	// Binary is the client executable. Defaults to "tx" on PATH.
	Binary string
	// Dir is where the project search starts. Defaults to the working directory.
	Dir string
}

// Run executes args[0] with the remaining args in the project root.
func Run(ctx context.Context, args []string, opts Options) error {
	if len(args) == 0 {
		return ErrNoCommand
	}
	cmd := args[0]
	if !slices.Contains(Commands, cmd) {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	if opts.Binary == "" {
		opts.Binary = "tx"
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	root, err := FindRoot(opts.Dir)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	c := exec.CommandContext(ctx, opts.Binary, args...)
	c.Dir = root
	c.Stdout = opts.Stdout
	c.Stderr = &stderr
	if opts.Stderr != nil {
		c.Stderr = io.MultiWriter(&stderr, opts.Stderr)
	}

	opts.Logger.DebugContext(ctx, "running tx", slog.String("command", cmd), slog.String("root", root))

	if err := c.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return errors.Join(ErrCommandFailed, err)
		}
		return errors.Join(ErrCommandFailed, err, errors.New(lastLine(msg)))
	}
	return nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
