package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the subset of pgxpool.Pool and pgx.Conn used by PgxStore.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgx.Conn)(nil)

// PgxStore reads videos with plain SQL over pgx.
type PgxStore struct {
	db Querier
}

func NewPgxStore(db Querier) *PgxStore {
	return &PgxStore{db: db}
}

func (s *PgxStore) FindMany(ctx context.Context, q Query) ([]IntroVideo, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("invalid video query: %w", err)
	}

	rows, err := s.db.Query(ctx, selectStatement(q), q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]IntroVideo, 0, q.Limit)
	for rows.Next() {
		var row pgxRow
		if err := rows.Scan(row.targets(q.Fields)...); err != nil {
			return nil, err
		}
		videos = append(videos, row.video())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

// selectStatement renders q as SQL. The row limit is bound as $1.
func selectStatement(q Query) string {
	sql := "SELECT " + q.selectList() + " FROM videos"
	if order := q.orderClause(); order != "" {
		sql += " ORDER BY " + order
	}
	return sql + " LIMIT $1"
}

// pgxRow holds one scanned row. The writer may leave any column NULL, which
// reads back as the zero value.
type pgxRow struct {
	id          pgtype.Text
	title       pgtype.Text
	description pgtype.Text
	thumbnail   pgtype.Text
	videoURL    pgtype.Text
	price       pgtype.Float8
	createdAt   *time.Time
}

func (r *pgxRow) targets(fields []string) []any {
	targets := make([]any, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			targets = append(targets, &r.id)
		case "title":
			targets = append(targets, &r.title)
		case "description":
			targets = append(targets, &r.description)
		case "thumbnail":
			targets = append(targets, &r.thumbnail)
		case "video_url":
			targets = append(targets, &r.videoURL)
		case "price":
			targets = append(targets, &r.price)
		case "created_at":
			targets = append(targets, &r.createdAt)
		}
	}
	return targets
}

func (r *pgxRow) video() IntroVideo {
	v := IntroVideo{
		ID:          r.id.String,
		Title:       r.title.String,
		Description: r.description.String,
		Thumbnail:   r.thumbnail.String,
		VideoURL:    r.videoURL.String,
		Price:       r.price.Float64,
	}
	if r.createdAt != nil {
		v.CreatedAt = *r.createdAt
	}
	return v
}
