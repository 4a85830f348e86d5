package api

import (
	"fmt"

	"github.com/freightops/manifest/internal/archive"
	"github.com/freightops/manifest/internal/chat"
	"github.com/freightops/manifest/internal/classifications"
	"github.com/freightops/manifest/internal/config"
	"github.com/freightops/manifest/internal/inference"
	"github.com/freightops/manifest/internal/tasks"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Chat            chat.System
	Tasks           tasks.System
	Classifications classifications.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) *Domain {
	tasksSystem := tasks.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	classificationsSystem := classifications.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	invoker := inference.NewPool(
		inference.NewProcess(
			cfg.Inference.Command,
			cfg.Inference.Script,
			cfg.Inference.TimeoutDuration(),
			runtime.Logger,
		),
		cfg.Inference.MaxConcurrent,
		runtime.Logger,
	)

	snapshots := tasks.NewSnapshotter(
		snapshotURL(cfg),
		cfg.Snapshot.TimeoutDuration(),
	)

	chatSystem := chat.New(
		invoker,
		snapshots,
		classificationsSystem,
		archive.New(runtime.Storage, runtime.Logger),
		runtime.Logger,
	)

	return &Domain{
		Chat:            chatSystem,
		Tasks:           tasksSystem,
		Classifications: classificationsSystem,
	}
}

// snapshotURL resolves the task-snapshot endpoint, defaulting to the
// service's own task listing when no external URL is configured.
func snapshotURL(cfg *config.Config) string {
	if cfg.Snapshot.URL != "" {
		return cfg.Snapshot.URL
	}
	return fmt.Sprintf("http://%s%s/tasks", cfg.Server.Addr(), cfg.API.BasePath)
}
