// Package archive writes completed orchestrations to blob storage as an
// operator-facing audit trail. Archiving is best-effort: failures are
// logged and never surface to the caller.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/freightops/manifest/pkg/storage"
)

// System persists orchestration records to the archive container.
type System interface {
	Archive(ctx context.Context, key string, record any) error
}

type blobArchive struct {
	store  storage.System
	logger *slog.Logger
}

// New creates an archive system backed by blob storage.
func New(store storage.System, logger *slog.Logger) System {
	return &blobArchive{
		store:  store,
		logger: logger.With("system", "archive"),
	}
}

func (a *blobArchive) Archive(ctx context.Context, key string, record any) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal archive record: %w", err)
	}

	if err := a.store.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("archive %s: %w", key, err)
	}

	a.logger.Info("orchestration archived", "key", key, "bytes", len(data))
	return nil
}
