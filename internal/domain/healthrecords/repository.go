package healthrecords

import "context"

type MedicationRepository interface {
	Create(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)
	ListByPet(ctx context.Context, petID string) ([]Medication, error)
	UpdateStatus(ctx context.Context, id string, status MedicationStatus) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByPet(ctx context.Context, petID string) ([]Appointment, error)
	UpdateState(ctx context.Context, id string, state AppointmentState) error
}
