package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"petcare-hub/internal/domain/pets"

	sq "github.com/Masterminds/squirrel"
)

var petColumns = []string{
	"id", "owner_user_id",
	"name", "species", "breed", "sex",
	"birth_date", "notes",
	"created_at", "updated_at",
}

type PetsRepo struct {
	s *Store
}

func NewPetsRepo(s *Store) *PetsRepo {
	return &PetsRepo{s: s}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("pets").Columns(petColumns...).Values(
		p.ID,
		p.OwnerUserID,
		p.Name,
		string(p.Species),
		p.Breed,
		string(p.Sex),
		toNullDate(p.BirthDate),
		p.Notes,
		toNanos(p.CreatedAt),
		toNanos(p.UpdatedAt),
	))
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Update("pets").SetMap(map[string]any{
		"name":       p.Name,
		"species":    string(p.Species),
		"breed":      p.Breed,
		"sex":        string(p.Sex),
		"birth_date": toNullDate(p.BirthDate),
		"notes":      p.Notes,
		"updated_at": toNanos(p.UpdatedAt),
	}).Where(sq.Eq{"id": p.ID}))
	if err != nil {
		return err
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(petColumns...).From("pets").Where(sq.Eq{"id": id}))
	if err != nil {
		return pets.Pet{}, err
	}
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	out := make([]pets.Pet, 0)
	if ownerUserID == "" {
		return out, nil
	}

	rows, err := query(ctx, r.s.db, r.s.sb.Select(petColumns...).From("pets").
		Where(sq.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(sc scanner) (pets.Pet, error) {
	var (
		p                pets.Pet
		species, sex     string
		bd               sql.NullString
		created, updated int64
	)
	if err := sc.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&species,
		&p.Breed,
		&sex,
		&bd,
		&p.Notes,
		&created,
		&updated,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Sex = pets.Sex(sex)
	p.CreatedAt = fromNanos(created)
	p.UpdatedAt = fromNanos(updated)
	bdate, err := parseNullDate(bd)
	if err != nil {
		return pets.Pet{}, err
	}
	p.BirthDate = bdate
	return p, nil
}
