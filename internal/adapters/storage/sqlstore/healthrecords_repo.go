package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"petcare-hub/internal/domain/healthrecords"

	sq "github.com/Masterminds/squirrel"
)

var medicationColumns = []string{
	"id", "pet_id", "owner_user_id", "name", "dosage", "frequency",
	"start_date", "end_date", "next_dose", "status", "notes", "created_at",
}

type MedicationsRepo struct {
	s *Store
}

func NewMedicationsRepo(s *Store) *MedicationsRepo {
	return &MedicationsRepo{s: s}
}

func (r *MedicationsRepo) Create(ctx context.Context, m healthrecords.Medication) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("medications").Columns(medicationColumns...).Values(
		m.ID,
		m.PetID,
		m.OwnerUserID,
		m.Name,
		m.Dosage,
		m.Frequency,
		m.StartDate.String(),
		toNullDate(m.EndDate),
		toNullDate(m.NextDose),
		string(m.Status),
		m.Notes,
		toNanos(m.CreatedAt),
	))
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (healthrecords.Medication, error) {
	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(medicationColumns...).From("medications").Where(sq.Eq{"id": id}))
	if err != nil {
		return healthrecords.Medication{}, err
	}
	m, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return healthrecords.Medication{}, healthrecords.ErrNotFound
	}
	return m, err
}

func (r *MedicationsRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Medication, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(medicationColumns...).From("medications").
		Where(sq.Eq{"pet_id": petID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MedicationsRepo) UpdateStatus(ctx context.Context, id string, status healthrecords.MedicationStatus) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Update("medications").
		Set("status", string(status)).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return healthrecords.ErrNotFound
	}
	return nil
}

func scanMedication(sc scanner) (healthrecords.Medication, error) {
	var (
		m             healthrecords.Medication
		start, status string
		end, next     sql.NullString
		created       int64
	)
	if err := sc.Scan(
		&m.ID,
		&m.PetID,
		&m.OwnerUserID,
		&m.Name,
		&m.Dosage,
		&m.Frequency,
		&start,
		&end,
		&next,
		&status,
		&m.Notes,
		&created,
	); err != nil {
		return healthrecords.Medication{}, err
	}

	var err error
	if m.StartDate, err = parseDate(start); err != nil {
		return healthrecords.Medication{}, err
	}
	if m.EndDate, err = parseNullDate(end); err != nil {
		return healthrecords.Medication{}, err
	}
	if m.NextDose, err = parseNullDate(next); err != nil {
		return healthrecords.Medication{}, err
	}
	m.Status = healthrecords.MedicationStatus(status)
	m.CreatedAt = fromNanos(created)
	return m, nil
}

var appointmentColumns = []string{
	"id", "pet_id", "owner_user_id", "kind", "appointment_date", "appointment_time",
	"vet", "location", "state", "notes", "created_at",
}

type AppointmentsRepo struct {
	s *Store
}

func NewAppointmentsRepo(s *Store) *AppointmentsRepo {
	return &AppointmentsRepo{s: s}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a healthrecords.Appointment) error {
	_, err := exec(ctx, r.s.db, r.s.sb.Insert("appointments").Columns(appointmentColumns...).Values(
		a.ID,
		a.PetID,
		a.OwnerUserID,
		a.Type,
		a.Date.String(),
		a.Time,
		a.Vet,
		a.Location,
		string(a.State),
		a.Notes,
		toNanos(a.CreatedAt),
	))
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (healthrecords.Appointment, error) {
	row, err := queryRow(ctx, r.s.db, r.s.sb.Select(appointmentColumns...).From("appointments").Where(sq.Eq{"id": id}))
	if err != nil {
		return healthrecords.Appointment{}, err
	}
	a, err := scanAppointment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return healthrecords.Appointment{}, healthrecords.ErrNotFound
	}
	return a, err
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID string) ([]healthrecords.Appointment, error) {
	rows, err := query(ctx, r.s.db, r.s.sb.Select(appointmentColumns...).From("appointments").
		Where(sq.Eq{"pet_id": petID}).
		OrderBy("created_at ASC", "id ASC"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthrecords.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentsRepo) UpdateState(ctx context.Context, id string, state healthrecords.AppointmentState) error {
	n, err := exec(ctx, r.s.db, r.s.sb.Update("appointments").
		Set("state", string(state)).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	if n == 0 {
		return healthrecords.ErrNotFound
	}
	return nil
}

func scanAppointment(sc scanner) (healthrecords.Appointment, error) {
	var (
		a          healthrecords.Appointment
		day, state string
		created    int64
	)
	if err := sc.Scan(
		&a.ID,
		&a.PetID,
		&a.OwnerUserID,
		&a.Type,
		&day,
		&a.Time,
		&a.Vet,
		&a.Location,
		&state,
		&a.Notes,
		&created,
	); err != nil {
		return healthrecords.Appointment{}, err
	}

	var err error
	if a.Date, err = parseDate(day); err != nil {
		return healthrecords.Appointment{}, err
	}
	a.State = healthrecords.AppointmentState(state)
	a.CreatedAt = fromNanos(created)
	return a, nil
}
