package main

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"

	"github.com/Yandex-Practicum/ftracker/internal/fork"
)

const runProcessTimeout = 10 * time.Second

type Env struct {
	*fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	return &Env{
		EnvT:       fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		Ctx:        ctx,
		t:          t,
	}
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

// Result is an outcome of a single ftracker run
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Lines returns non-empty stdout lines
func (r Result) Lines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func BinaryPath(e *Env) string {
	return fixenv.Cache(e, flagTargetBinaryPath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", flagTargetBinaryPath)
		_, err := os.Stat(flagTargetBinaryPath)
		if err != nil {
			return "", err
		}
		return flagTargetBinaryPath, nil
	})
}

// RunTracker runs ftracker binary with given args and waits for it to exit
func RunTracker(e *Env, args ...string) Result {
	ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
	defer cancel()

	p := fork.NewProcess(ctx, BinaryPath(e), fork.WithArgs(args...))
	e.Logf("Запускаю %s", p)

	exitCode, err := p.Run(ctx)
	if err != nil {
		e.t.Fatalf("Не удалось выполнить процесс %s: %v", p, err)
	}

	res := Result{
		ExitCode: exitCode,
		Stdout:   string(p.Stdout()),
		Stderr:   string(p.Stderr()),
	}
	if res.Stderr != "" {
		e.Logf("Получен STDERR лог процесса:\n\n%s", res.Stderr)
	}
	return res
}
