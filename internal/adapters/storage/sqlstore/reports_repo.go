package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petcare-hub/internal/domain/lostfound"

	sq "github.com/Masterminds/squirrel"
)

var reportColumns = []string{
	"id", "kind", "name", "pet_type", "breed", "color", "age",
	"location", "report_date", "image", "description",
	"contact", "phone", "status", "reporter_id",
	"created_at", "resolved_at",
}

type ReportsRepo struct {
	s *Store
}

func NewReportsRepo(s *Store) *ReportsRepo {
	return &ReportsRepo{s: s}
}

func (r *ReportsRepo) Create(ctx context.Context, rep lostfound.Report) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("lost_found_reports").Columns(reportColumns...).Values(
		rep.ID,
		string(rep.Kind),
		rep.Name,
		rep.Type,
		rep.Breed,
		rep.Color,
		rep.Age,
		rep.Location,
		rep.Date.String(),
		rep.Image,
		rep.Description,
		rep.Contact,
		rep.Phone,
		string(rep.Status),
		rep.ReporterID,
		toNanos(rep.CreatedAt),
		nullNanos(rep.ResolvedAt),
	))
	return err
}

func (r *ReportsRepo) Update(ctx context.Context, rep lostfound.Report) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Update("lost_found_reports").SetMap(map[string]any{
		"name":        rep.Name,
		"breed":       rep.Breed,
		"color":       rep.Color,
		"age":         rep.Age,
		"location":    rep.Location,
		"description": rep.Description,
		"contact":     rep.Contact,
		"phone":       rep.Phone,
		"status":      string(rep.Status),
		"resolved_at": nullNanos(rep.ResolvedAt),
	}).Where(sq.Eq{"id": rep.ID}))
	if err != nil {
		return err
	}
	if n == 0 {
		return lostfound.ErrNotFound
	}
	return nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id string) (lostfound.Report, error) {
	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(reportColumns...).From("lost_found_reports").Where(sq.Eq{"id": id}))
	if err != nil {
		return lostfound.Report{}, err
	}
	rep, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return lostfound.Report{}, lostfound.ErrNotFound
	}
	return rep, err
}

func (r *ReportsRepo) List(ctx context.Context) ([]lostfound.Report, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(reportColumns...).From("lost_found_reports").
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]lostfound.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func scanReport(sc scanner) (lostfound.Report, error) {
	var (
		rep          lostfound.Report
		kind, status string
		day          string
		created      int64
		resolved     sql.NullInt64
	)
	if err := sc.Scan(
		&rep.ID,
		&kind,
		&rep.Name,
		&rep.Type,
		&rep.Breed,
		&rep.Color,
		&rep.Age,
		&rep.Location,
		&day,
		&rep.Image,
		&rep.Description,
		&rep.Contact,
		&rep.Phone,
		&status,
		&rep.ReporterID,
		&created,
		&resolved,
	); err != nil {
		return lostfound.Report{}, err
	}

	d, err := parseDate(day)
	if err != nil {
		return lostfound.Report{}, err
	}
	rep.Date = d
	rep.Kind = lostfound.Kind(kind)
	rep.Status = lostfound.Status(status)
	rep.CreatedAt = fromNanos(created)
	if resolved.Valid {
		t := fromNanos(resolved.Int64)
		rep.ResolvedAt = &t
	}
	return rep, nil
}
