package classifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/freightops/manifest/pkg/pagination"
	"github.com/freightops/manifest/pkg/query"
	"github.com/freightops/manifest/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a classification repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "classifications"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Classification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ProductTitle", "ProductDescription", "HSCode")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count classifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanClassification)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Classification, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Insert(ctx context.Context, payload Payload) (*Classification, error) {
	insertQ := `
		INSERT INTO classifications(
			hs_code, confidence, product_title, product_description,
			first_two_digits, broader_description
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, hs_code, confidence, product_title, product_description,
				  first_two_digits, broader_description, created_at`

	insertArgs := []any{
		payload.HSCode,
		payload.Confidence,
		payload.ProductTitle,
		payload.ProductDescription,
		payload.FirstTwoDigits,
		payload.BroaderDescription,
	}

	c, err := repository.QueryOne(ctx, r.db, insertQ, insertArgs, scanClassification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("classification stored",
		"id", c.ID,
		"hs_code", c.HSCode,
		"confidence", c.Confidence,
	)
	return &c, nil
}
