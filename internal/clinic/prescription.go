package clinic

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prescription ("receta") is an ordered medication list issued by a
// doctor to a patient.
type Prescription struct {
	id          uuid.UUID
	patient     *Patient
	doctor      *Doctor
	medications []string
	issuedAt    time.Time
}

// NewPrescription builds a prescription. A zero issuedAt defaults to
// the current time. List-shape rules (count, entry format, duplicates)
// are enforced by Clinic.IssuePrescription; here only the bare minimum
// holds: both parties present and at least one medication.
func NewPrescription(patient *Patient, doctor *Doctor, medications []string, issuedAt time.Time) (*Prescription, error) {
	if patient == nil || doctor == nil {
		return nil, &ValidationError{Field: "receta", Reason: "paciente y médico son requeridos"}
	}
	if len(medications) == 0 {
		return nil, &InvalidPrescriptionError{Reason: "debe haber al menos un medicamento"}
	}
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}
	return &Prescription{
		id:          uuid.New(),
		patient:     patient,
		doctor:      doctor,
		medications: append([]string(nil), medications...),
		issuedAt:    issuedAt,
	}, nil
}

func (r *Prescription) ID() uuid.UUID       { return r.id }
func (r *Prescription) Patient() *Patient   { return r.patient }
func (r *Prescription) Doctor() *Doctor     { return r.doctor }
func (r *Prescription) IssuedAt() time.Time { return r.issuedAt }

// Medications returns a copy of the medication list in issue order.
func (r *Prescription) Medications() []string {
	return append([]string(nil), r.medications...)
}

// AddMedication appends a medication to an already-issued
// prescription.
func (r *Prescription) AddMedication(medication string) {
	r.medications = append(r.medications, medication)
}

func (r *Prescription) String() string {
	return fmt.Sprintf("Receta [%s]: %s - Prescrita por %s para %s",
		r.issuedAt.Format("02/01/2006"),
		strings.Join(r.medications, ", "),
		r.doctor.Name(), r.patient.Name())
}
