package navigations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/ern-portal/internal/catalog"
	"github.com/JaimeStill/ern-portal/pkg/pagination"
	"github.com/JaimeStill/ern-portal/pkg/repository"
	"github.com/JaimeStill/ern-portal/pkg/routing"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	table      *routing.Table
	tracker    *catalog.Tracker
	logger     *slog.Logger
	pagination pagination.Config
}

func New(
	db *sql.DB,
	table *routing.Table,
	tracker *catalog.Tracker,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		table:      table,
		tracker:    tracker,
		logger:     logger.With("system", "navigations"),
		pagination: pagination,
	}
}

func (r *repo) Record(ctx context.Context, req routing.NavigationRequest) (*Result, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	nav, err := r.table.Navigate(req)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO navigations (id, route_name, target_path, origin, scroll_x, scroll_y)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, route_name, target_path, origin, scroll_x, scroll_y, created_at`

	args := []any{
		uuid.New(), nav.Route.Name, req.TargetPath, req.Origin,
		nav.Scroll.X, nav.Scroll.Y,
	}

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Navigation, error) {
		return repository.QueryOne(ctx, tx, q, args, scanNavigation)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.tracker.Record(nav.Route.Name)
	r.logger.Debug("navigation recorded", "id", record.ID, "route", record.RouteName)

	return &Result{
		Navigation: record,
		Route:      nav.Route,
		Scroll:     nav.Scroll,
	}, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Navigation], error) {
	page.Normalize(r.pagination)
	qb := listQuery(page, filters)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count navigations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	navs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanNavigation)
	if err != nil {
		return nil, fmt.Errorf("query navigations: %w", err)
	}

	result := pagination.NewPageResult(navs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Navigation, error) {
	q, args := findQuery(id)

	nav, err := repository.QueryOne(ctx, r.db, q, args, scanNavigation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &nav, nil
}
