package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petcare-hub/internal/domain/vaccinations"

	sq "github.com/Masterminds/squirrel"
)

var vaccinationColumns = []string{
	"id", "pet_id", "owner_user_id", "name",
	"administered_on", "dose", "total_doses", "age_months", "next_due",
	"notes", "created_at",
}

type VaccinationsRepo struct {
	s *Store
}

func NewVaccinationsRepo(s *Store) *VaccinationsRepo {
	return &VaccinationsRepo{s: s}
}

func (r *VaccinationsRepo) Create(ctx context.Context, v vaccinations.Vaccination) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("vaccinations").Columns(vaccinationColumns...).Values(
		v.ID,
		v.PetID,
		v.OwnerUserID,
		v.Name,
		v.AdministeredOn.String(),
		v.Dose,
		v.TotalDoses,
		v.AgeMonths,
		v.NextDue.String(),
		v.Notes,
		toNanos(v.CreatedAt),
	))
	return err
}

func (r *VaccinationsRepo) GetByID(ctx context.Context, id string) (vaccinations.Vaccination, error) {
	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(vaccinationColumns...).From("vaccinations").Where(sq.Eq{"id": id}))
	if err != nil {
		return vaccinations.Vaccination{}, err
	}
	v, err := scanVaccination(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vaccinations.Vaccination{}, vaccinations.ErrNotFound
	}
	return v, err
}

func (r *VaccinationsRepo) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(vaccinationColumns...).From("vaccinations").
		Where(sq.Eq{"pet_id": petID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccinations.Vaccination, 0)
	for rows.Next() {
		v, err := scanVaccination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinationsRepo) Delete(ctx context.Context, id string) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Delete("vaccinations").Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return vaccinations.ErrNotFound
	}
	return nil
}

func scanVaccination(sc scanner) (vaccinations.Vaccination, error) {
	var (
		v                     vaccinations.Vaccination
		administered, nextDue string
		created               int64
	)
	if err := sc.Scan(
		&v.ID,
		&v.PetID,
		&v.OwnerUserID,
		&v.Name,
		&administered,
		&v.Dose,
		&v.TotalDoses,
		&v.AgeMonths,
		&nextDue,
		&v.Notes,
		&created,
	); err != nil {
		return vaccinations.Vaccination{}, err
	}

	var err error
	if v.AdministeredOn, err = parseDate(administered); err != nil {
		return vaccinations.Vaccination{}, err
	}
	if v.NextDue, err = parseDate(nextDue); err != nil {
		return vaccinations.Vaccination{}, err
	}
	v.CreatedAt = fromNanos(created)
	return v, nil
}
