package clinic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Appointment ("turno") binds a patient, a doctor, a date-time and
// the specialty it is booked under. It is immutable once created.
type Appointment struct {
	id        uuid.UUID
	patient   *Patient
	doctor    *Doctor
	dateTime  time.Time
	specialty *Specialty
}

// NewAppointment validates and builds an appointment. The weekday of
// dateTime must be among the specialty's valid days.
func NewAppointment(patient *Patient, doctor *Doctor, dateTime time.Time, specialty *Specialty) (*Appointment, error) {
	if patient == nil || doctor == nil {
		return nil, &ValidationError{Field: "turno", Reason: "paciente y médico son requeridos"}
	}
	if specialty == nil {
		return nil, &ValidationError{Field: "turno", Reason: "la especialidad es requerida"}
	}

	weekday := WeekdayName(dateTime)
	if !specialty.HasDay(weekday) {
		return nil, &ValidationError{
			Field:     "fecha_hora",
			Weekday:   weekday,
			Available: specialty.Days(),
		}
	}

	return &Appointment{
		id:        uuid.New(),
		patient:   patient,
		doctor:    doctor,
		dateTime:  dateTime,
		specialty: specialty,
	}, nil
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) Patient() *Patient     { return a.patient }
func (a *Appointment) Doctor() *Doctor       { return a.doctor }
func (a *Appointment) DateTime() time.Time   { return a.dateTime }
func (a *Appointment) Specialty() *Specialty { return a.specialty }

func (a *Appointment) String() string {
	return fmt.Sprintf("Turno - Paciente: %s, Médico: %s, Fecha y Hora: %s, Especialidad: %s",
		a.patient, a.doctor, a.dateTime.Format("02/01/2006 15:04"), a.specialty)
}
