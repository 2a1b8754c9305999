package blocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner starts an external command in a working directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// OSRunner runs commands with the given stdio, the process's own by default.
type OSRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSRunner creates an OSRunner attached to the process's stdio.
func NewOSRunner() *OSRunner {
	return &OSRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *OSRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout

	// Keep a copy of stderr for the error while still streaming it.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if r.Stderr != nil {
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	}

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(lastLine(stderr.String())); msg != "" {
			return fmt.Errorf("%s %s failed: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}

	return nil
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Invocation is one recorded MockRunner call.
type Invocation struct {
	Dir  string
	Name string
	Args []string
}

// MockRunner records invocations instead of running them.
type MockRunner struct {
	Calls []Invocation

	// Err is returned from every Run call when set
	Err error
}

func (m *MockRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	m.Calls = append(m.Calls, Invocation{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Err
}
