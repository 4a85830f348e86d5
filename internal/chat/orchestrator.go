package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/freightops/manifest/internal/archive"
	"github.com/freightops/manifest/internal/classifications"
	"github.com/freightops/manifest/internal/inference"
	"github.com/freightops/manifest/internal/tasks"
)

// Result is the outcome assembled for the caller. Success is true whenever
// inference itself succeeded; extraction and persistence failures degrade
// the result rather than failing it. Saved is set only on the classify path
// and reports the actual persistence outcome.
type Result struct {
	Success  bool       `json:"success"`
	Reply    string     `json:"reply,omitempty"`
	RecordID *uuid.UUID `json:"record_id,omitempty"`
	Saved    *bool      `json:"saved,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// System defines the public contract for the chat orchestration pipeline.
type System interface {
	Handler() *Handler
	Run(ctx context.Context, transcript Transcript) (*Result, error)
}

type orchestrator struct {
	invoker   inference.Invoker
	snapshots tasks.Snapshotter
	store     classifications.System
	archive   archive.System
	logger    *slog.Logger
}

// New creates the orchestration system from its collaborators: the bounded
// inference invoker, the task-snapshot source, the classification store,
// and the transcript archive.
func New(
	invoker inference.Invoker,
	snapshots tasks.Snapshotter,
	store classifications.System,
	archive archive.System,
	logger *slog.Logger,
) System {
	return &orchestrator{
		invoker:   invoker,
		snapshots: snapshots,
		store:     store,
		archive:   archive,
		logger:    logger.With("system", "chat"),
	}
}

func (o *orchestrator) Handler() *Handler {
	return NewHandler(o, o.logger)
}

// Run executes the pipeline: route, augment, invoke, sanitize, and on the
// classify path extract and persist. Only transcript validation and
// invocation failures return an error; everything downstream degrades the
// result instead.
func (o *orchestrator) Run(ctx context.Context, transcript Transcript) (*Result, error) {
	if err := transcript.Validate(); err != nil {
		return nil, err
	}

	mode := DetectMode(transcript)
	transcript = o.augment(ctx, transcript)

	serialized, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("serialize transcript: %w", err)
	}

	raw, err := o.invoker.Invoke(ctx, serialized)
	if err != nil {
		return nil, err
	}

	reply := Sanitize(raw, mode)
	result := &Result{Success: true, Reply: reply}

	var payload *classifications.Payload
	if mode == ModeClassify {
		payload = o.extract(reply)
		saved := false
		result.Saved = &saved
	}

	g, gctx := errgroup.WithContext(ctx)

	if payload != nil {
		g.Go(func() error {
			if record, err := o.store.Insert(gctx, *payload); err != nil {
				o.logger.Error("classification persist failed", "error", err)
			} else {
				result.RecordID = &record.ID
				*result.Saved = true
			}
			return nil
		})
	}

	g.Go(func() error {
		o.archiveRun(gctx, mode, transcript, reply, payload)
		return nil
	})

	g.Wait()

	o.logger.Info("orchestration complete",
		"mode", mode,
		"turns", len(transcript),
		"persisted", result.RecordID != nil,
	)

	return result, nil
}

// augment appends the current task table as a system turn so the model has
// situational awareness. The snapshot is a soft dependency: on failure the
// transcript passes through unchanged.
func (o *orchestrator) augment(ctx context.Context, transcript Transcript) Transcript {
	snapshot, err := o.snapshots.Snapshot(ctx)
	if err != nil {
		o.logger.Warn("task snapshot unavailable, proceeding unaugmented", "error", err)
		return transcript
	}

	return transcript.Append(SystemTurn(tasks.RenderSnapshot(snapshot)))
}

// extract recovers a classification payload from the sanitized reply.
// All failure modes are logged and reported as nil; the caller still
// returns the reply to the user.
func (o *orchestrator) extract(reply string) *classifications.Payload {
	payload, err := ExtractPayload(reply)
	if err != nil {
		o.logger.Warn("payload extraction failed",
			"error", err,
			"reply", reply,
		)
		return nil
	}
	return payload
}

type archiveRecord struct {
	Mode       Mode                     `json:"mode"`
	Transcript Transcript               `json:"transcript"`
	Reply      string                   `json:"reply"`
	Payload    *classifications.Payload `json:"payload,omitempty"`
	ArchivedAt time.Time                `json:"archived_at"`
}

func (o *orchestrator) archiveRun(
	ctx context.Context,
	mode Mode,
	transcript Transcript,
	reply string,
	payload *classifications.Payload,
) {
	key := fmt.Sprintf("%s/%s.json", time.Now().UTC().Format("2006/01/02"), uuid.New())

	record := archiveRecord{
		Mode:       mode,
		Transcript: transcript,
		Reply:      reply,
		Payload:    payload,
		ArchivedAt: time.Now().UTC(),
	}

	if err := o.archive.Archive(ctx, key, record); err != nil {
		o.logger.Warn("orchestration archive failed", "key", key, "error", err)
	}
}
