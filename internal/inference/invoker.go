// Package inference invokes the external natural-language inference process.
// The collaborator contract is positional: the interpreter command receives
// the script path and the JSON-serialized transcript as arguments, replies
// on stdout, reports diagnostics on stderr, and signals success with a zero
// exit status.
package inference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Sentinel errors for invocation outcomes.
var (
	// ErrInvocation indicates the process failed to start, exited
	// non-zero, timed out, or produced no reply.
	ErrInvocation = errors.New("inference invocation failed")
	// ErrBusy indicates the concurrent invocation bound is exhausted.
	ErrBusy = errors.New("inference capacity exhausted")
)

// Invoker performs a synchronous inference call over a serialized transcript
// and returns the raw reply text.
type Invoker interface {
	Invoke(ctx context.Context, transcript []byte) (string, error)
}

type process struct {
	command string
	script  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewProcess creates an Invoker that spawns one external process per call.
// Each invocation is bounded by the configured wall-clock timeout and is
// killed when the caller's context is cancelled. Invocations are never
// retried; the collaborator is not assumed idempotent or cheap.
func NewProcess(command, script string, timeout time.Duration, logger *slog.Logger) Invoker {
	return &process{
		command: command,
		script:  script,
		timeout: timeout,
		logger:  logger.With("system", "inference"),
	}
}

func (p *process) Invoke(ctx context.Context, transcript []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.command, p.script, string(transcript))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if err != nil {
		diagnostic := strings.TrimSpace(stderr.String())

		p.logger.Error("invocation failed",
			"command", p.command,
			"script", p.script,
			"elapsed", elapsed,
			"stderr", diagnostic,
			"error", err,
		)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("%w: %v after %s", ErrInvocation, ctxErr, elapsed)
		}
		if diagnostic != "" {
			return "", fmt.Errorf("%w: %s", ErrInvocation, diagnostic)
		}
		return "", fmt.Errorf("%w: %v", ErrInvocation, err)
	}

	if stdout.Len() == 0 {
		return "", fmt.Errorf("%w: process exited zero with empty stdout", ErrInvocation)
	}

	p.logger.Info("invocation complete",
		"elapsed", elapsed,
		"stdout_bytes", stdout.Len(),
	)

	return stdout.String(), nil
}
