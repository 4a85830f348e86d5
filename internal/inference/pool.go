package inference

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

type pool struct {
	invoker Invoker
	slots   *semaphore.Weighted
	logger  *slog.Logger
}

// NewPool wraps an Invoker with admission control: at most maxConcurrent
// invocations run at once, and requests beyond the bound are rejected
// immediately with ErrBusy rather than queued. A slot is freed when its
// invocation returns, including on timeout or cancellation.
func NewPool(invoker Invoker, maxConcurrent int, logger *slog.Logger) Invoker {
	return &pool{
		invoker: invoker,
		slots:   semaphore.NewWeighted(int64(maxConcurrent)),
		logger:  logger.With("system", "inference-pool"),
	}
}

func (p *pool) Invoke(ctx context.Context, transcript []byte) (string, error) {
	if !p.slots.TryAcquire(1) {
		p.logger.Warn("invocation rejected, all slots busy")
		return "", ErrBusy
	}
	defer p.slots.Release(1)

	return p.invoker.Invoke(ctx, transcript)
}
