package clinic

import "fmt"

// MedicalHistory ("historia clínica") is a per-patient append-only log
// of appointments and prescriptions. One is created with the patient
// and lives as long as the clinic.
type MedicalHistory struct {
	patient       *Patient
	appointments  []*Appointment
	prescriptions []*Prescription
}

func NewMedicalHistory(patient *Patient) *MedicalHistory {
	return &MedicalHistory{patient: patient}
}

func (h *MedicalHistory) Patient() *Patient { return h.patient }

// AddAppointment appends an appointment to the log.
func (h *MedicalHistory) AddAppointment(a *Appointment) error {
	if a == nil {
		return &ValidationError{Field: "turno", Reason: "no puede ser nulo"}
	}
	h.appointments = append(h.appointments, a)
	return nil
}

// AddPrescription appends a prescription to the log.
func (h *MedicalHistory) AddPrescription(r *Prescription) error {
	if r == nil {
		return &ValidationError{Field: "receta", Reason: "no puede ser nula"}
	}
	h.prescriptions = append(h.prescriptions, r)
	return nil
}

// Appointments returns the logged appointments in scheduling order.
func (h *MedicalHistory) Appointments() []*Appointment {
	return append([]*Appointment(nil), h.appointments...)
}

// Prescriptions returns the logged prescriptions in issue order.
func (h *MedicalHistory) Prescriptions() []*Prescription {
	return append([]*Prescription(nil), h.prescriptions...)
}

func (h *MedicalHistory) String() string {
	turnos := "Sin turnos"
	if n := len(h.appointments); n > 0 {
		turnos = fmt.Sprintf("%d turno(s)", n)
	}
	recetas := "Sin recetas"
	if n := len(h.prescriptions); n > 0 {
		recetas = fmt.Sprintf("%d receta(s)", n)
	}
	return fmt.Sprintf("Historia Clínica de %s - %s, %s", h.patient.Name(), turnos, recetas)
}
