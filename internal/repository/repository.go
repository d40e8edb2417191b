package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"portfolio/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Repository groups every content repository over a single pool.
type Repository struct {
	db          *pgxpool.Pool
	Profile     ProfileRepository
	Academy     AcademyRepository
	Experience  ExperienceRepository
	Certificate CertificationRepository
	Company     CompanyLogoRepository
	Submission  SubmissionRepository
	Testimonial TestimonialRepository
	Project     ProjectRepository
	ActionPhoto ActionPhotoRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:          db,
		Profile:     NewProfileRepo(db),
		Academy:     NewAcademyRepo(db),
		Experience:  NewExperienceRepo(db),
		Certificate: NewCertificationRepo(db),
		Company:     NewCompanyLogoRepo(db),
		Submission:  NewSubmissionRepo(db),
		Testimonial: NewTestimonialRepo(db),
		Project:     NewProjectRepo(db),
		ActionPhoto: NewActionPhotoRepo(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

type baseRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func newBaseRepo(db *pgxpool.Pool) baseRepo {
	return baseRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// mapPgError translates constraint failures into storage sentinels.
func mapPgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		if strings.HasSuffix(pgErr.ConstraintName, "_singleton_key") {
			return storage.ErrSingletonViolation
		}
		return fmt.Errorf("%w (%s)", storage.ErrUniqueViolation, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return storage.ErrNotFound
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation,
		pgerrcode.StringDataRightTruncationDataException, pgerrcode.InvalidDatetimeFormat:
		return fmt.Errorf("%w (%s)", storage.ErrInvalidValue, pgErr.Message)
	}

	return err
}

// insert runs an INSERT ... RETURNING id.
func (r baseRepo) insert(ctx context.Context, ib sq.InsertBuilder) (uuid.UUID, error) {
	query, args, err := ib.Suffix("RETURNING id").ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, mapPgError(err)
	}

	return id, nil
}

// updateFields applies a column patch restricted to allowed columns.
// touch sets updated_at for tables that carry it.
func (r baseRepo) updateFields(
	ctx context.Context,
	table string,
	id uuid.UUID,
	updates map[string]interface{},
	allowed map[string]bool,
	touch bool,
) error {
	if len(updates) == 0 {
		return storage.ErrNoFields
	}

	fields := make([]string, 0, len(updates))
	for field := range updates {
		if !allowed[field] {
			return fmt.Errorf("field '%s' is not allowed for update: %w", field, storage.ErrInvalidValue)
		}
		fields = append(fields, field)
	}
	sort.Strings(fields)

	ub := r.sb.Update(table)
	if touch {
		ub = ub.Set("updated_at", time.Now())
	}
	for _, field := range fields {
		ub = ub.Set(field, updates[field])
	}

	query, args, err := ub.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}

	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (r baseRepo) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	query, args, err := r.sb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return mapPgError(err)
	}

	if result.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// queryAll runs a select and scans every row with scan.
func queryAll[T any](ctx context.Context, db *pgxpool.Pool, sb sq.SelectBuilder, scan func(scanner) (T, error)) ([]T, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// queryOne returns storage.ErrNotFound when the select yields no row.
func queryOne[T any](ctx context.Context, db *pgxpool.Pool, sb sq.SelectBuilder, scan func(scanner) (T, error)) (T, error) {
	var zero T

	query, args, err := sb.ToSql()
	if err != nil {
		return zero, err
	}

	item, err := scan(db.QueryRow(ctx, query, args...))
	if err != nil {
		return zero, mapPgError(err)
	}

	return item, nil
}

// search builds a case-insensitive OR match of q across columns.
func search(q string, columns ...string) sq.Sqlizer {
	pattern := "%" + strings.TrimSpace(q) + "%"

	or := sq.Or{}
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}

	return or
}
