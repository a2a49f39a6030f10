package fork

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// waitDelay bounds how long Wait keeps reading output after the process is killed
const waitDelay = 100 * time.Millisecond

// Process is a command started as a child process and awaited to completion.
type Process struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
}

// NewProcess returns new unstarted process instance.
// Process is killed when ctx is done.
func NewProcess(ctx context.Context, command string, opts ...ProcessOpt) *Process {
	p := &Process{
		cmd:    exec.CommandContext(ctx, command),
		stdout: new(buffer),
		stderr: new(buffer),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.cmd.Stdout = p.stdout
	p.cmd.Stderr = p.stderr
	p.cmd.WaitDelay = waitDelay

	return p
}

// Run starts the process and waits for it to exit.
// Non-zero exit code is not an error: it is returned to caller as is.
func (p *Process) Run(ctx context.Context) (exitCode int, err error) {
	if err := p.start(ctx); err != nil {
		return -1, fmt.Errorf("cannot start process %q: %w", p, err)
	}

	err = p.cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return exitErr.ExitCode(), nil
	}
	if ctx.Err() != nil {
		return -1, fmt.Errorf("process %q interrupted: %w", p, ctx.Err())
	}
	return -1, err
}

func (p *Process) start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stdout returns everything the process has written to stdout so far.
func (p *Process) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *Process) Stderr() []byte {
	return p.stderr.Bytes()
}

// String returns a human-readable representation of process command.
func (p *Process) String() string {
	return p.cmd.String()
}
