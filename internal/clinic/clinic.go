package clinic

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clinic is the root aggregate. It owns the patient and doctor
// registries, the specialty directory, the global appointment list and
// the per-patient medical histories; every other entity is reachable
// only through it. One instance is built at process start and torn
// down at process end, nothing is persisted.
type Clinic struct {
	patients     map[string]*Patient
	patientIDs   []string // DNI in registration order
	doctors      map[string]*Doctor
	doctorIDs    []string // licenses in registration order
	specialties  []*Specialty
	appointments []*Appointment
	histories    map[string]*MedicalHistory

	log *slog.Logger
	now func() time.Time
}

func New(log *slog.Logger) *Clinic {
	if log == nil {
		log = slog.Default()
	}
	return &Clinic{
		patients:  make(map[string]*Patient),
		doctors:   make(map[string]*Doctor),
		histories: make(map[string]*MedicalHistory),
		log:       log,
		now:       time.Now,
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

// AddPatient registers a patient and opens their medical history.
func (c *Clinic) AddPatient(p *Patient) error {
	if p == nil {
		return &ValidationError{Field: "paciente", Reason: "no puede ser nulo"}
	}
	if _, exists := c.patients[p.DNI()]; exists {
		return &PatientAlreadyExistsError{DNI: p.DNI()}
	}
	c.patients[p.DNI()] = p
	c.patientIDs = append(c.patientIDs, p.DNI())
	c.histories[p.DNI()] = NewMedicalHistory(p)
	c.log.Info("paciente registrado", slog.String("dni", p.DNI()))
	return nil
}

// AddDoctor registers a doctor.
func (c *Clinic) AddDoctor(d *Doctor) error {
	if d == nil {
		return &ValidationError{Field: "medico", Reason: "no puede ser nulo"}
	}
	if _, exists := c.doctors[d.License()]; exists {
		return &DoctorAlreadyExistsError{License: d.License()}
	}
	c.doctors[d.License()] = d
	c.doctorIDs = append(c.doctorIDs, d.License())
	c.log.Info("médico registrado", slog.String("matricula", d.License()))
	return nil
}

// RegisterSpecialty adds a specialty to the directory. Uniqueness is
// checked on the trimmed, case-folded name.
func (c *Clinic) RegisterSpecialty(sp *Specialty) error {
	if sp == nil {
		return &ValidationError{Field: "especialidad", Reason: "no puede ser nula"}
	}
	key := normalizeName(sp.Name())
	for _, existing := range c.specialties {
		if normalizeName(existing.Name()) == key {
			return &ValidationError{
				Field:  "especialidad",
				Reason: fmt.Sprintf("la especialidad %q ya está registrada", sp.Name()),
			}
		}
	}
	c.specialties = append(c.specialties, sp)
	c.log.Info("especialidad registrada", slog.String("nombre", sp.Name()))
	return nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// DoctorByLicense returns the doctor registered under license.
func (c *Clinic) DoctorByLicense(license string) (*Doctor, error) {
	d, ok := c.doctors[license]
	if !ok {
		return nil, &DoctorNotFoundError{License: license}
	}
	return d, nil
}

// SpecialtyByName resolves a directory entry by name (trim +
// case-fold).
func (c *Clinic) SpecialtyByName(name string) (*Specialty, error) {
	key := normalizeName(name)
	for _, sp := range c.specialties {
		if normalizeName(sp.Name()) == key {
			return sp, nil
		}
	}
	return nil, &ValidationError{
		Field:  "especialidad",
		Reason: fmt.Sprintf("la especialidad %q no está registrada", name),
	}
}

// Patients returns the registered patients in registration order.
func (c *Clinic) Patients() []*Patient {
	out := make([]*Patient, 0, len(c.patientIDs))
	for _, dni := range c.patientIDs {
		out = append(out, c.patients[dni])
	}
	return out
}

// Doctors returns the registered doctors in registration order.
func (c *Clinic) Doctors() []*Doctor {
	out := make([]*Doctor, 0, len(c.doctorIDs))
	for _, license := range c.doctorIDs {
		out = append(out, c.doctors[license])
	}
	return out
}

// Specialties returns the directory in registration order.
func (c *Clinic) Specialties() []*Specialty {
	return append([]*Specialty(nil), c.specialties...)
}

// Appointments returns the global appointment list in scheduling
// order.
func (c *Clinic) Appointments() []*Appointment {
	return append([]*Appointment(nil), c.appointments...)
}

// History returns the medical history of the patient with the given
// DNI.
func (c *Clinic) History(dni string) (*MedicalHistory, error) {
	if _, ok := c.patients[dni]; !ok {
		return nil, &PatientNotFoundError{DNI: dni}
	}
	return c.histories[dni], nil
}

// PatientExists reports membership, with no side effects.
func (c *Clinic) PatientExists(dni string) bool {
	_, ok := c.patients[dni]
	return ok
}

// DoctorExists reports membership, with no side effects.
func (c *Clinic) DoctorExists(license string) bool {
	_, ok := c.doctors[license]
	return ok
}

// AppointmentIsFree reports whether no existing appointment matches
// both the doctor's license and the exact date-time.
func (c *Clinic) AppointmentIsFree(license string, dateTime time.Time) bool {
	for _, a := range c.appointments {
		if a.Doctor().License() == license && a.DateTime().Equal(dateTime) {
			return false
		}
	}
	return true
}

// AppointmentByID resolves an appointment by its identifier.
func (c *Clinic) AppointmentByID(id uuid.UUID) (*Appointment, error) {
	for _, a := range c.appointments {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, &ValidationError{
		Field:  "turno",
		Reason: fmt.Sprintf("no existe un turno con id %s", id),
	}
}

// PrescriptionByID resolves a prescription by its identifier, scanning
// the histories in patient registration order.
func (c *Clinic) PrescriptionByID(id uuid.UUID) (*Prescription, error) {
	for _, dni := range c.patientIDs {
		for _, r := range c.histories[dni].Prescriptions() {
			if r.ID() == id {
				return r, nil
			}
		}
	}
	return nil, &ValidationError{
		Field:  "receta",
		Reason: fmt.Sprintf("no existe una receta con id %s", id),
	}
}

// DoctorSpecialtyOn returns the first of the doctor's specialties that
// serves the given day, or nil when the doctor has none active on it.
func (c *Clinic) DoctorSpecialtyOn(license, day string) (*Specialty, error) {
	d, err := c.DoctorByLicense(license)
	if err != nil {
		return nil, err
	}
	return d.SpecialtyActiveOn(day), nil
}

// ---------------------------------------------------------------------------
// Scheduling
// ---------------------------------------------------------------------------

// ScheduleAppointment validates and records an appointment. Check
// order is fixed: patient, doctor, duplicate, past date, day-of-week
// (via NewAppointment). Nothing mutates until every check has passed.
func (c *Clinic) ScheduleAppointment(dateTime time.Time, dni, license string, specialty *Specialty) (*Appointment, error) {
	patient, ok := c.patients[dni]
	if !ok {
		return nil, &PatientNotFoundError{DNI: dni}
	}
	doctor, ok := c.doctors[license]
	if !ok {
		return nil, &DoctorNotFoundError{License: license}
	}

	// Duplicate detection runs before the past-date check.
	for _, a := range c.appointments {
		if a.DateTime().Equal(dateTime) && a.Patient() == patient && a.Doctor() == doctor {
			return nil, &DuplicateAppointmentError{Doctor: doctor.Name(), DateTime: dateTime}
		}
	}

	// Only the date component counts; the time of day is ignored.
	today := dateOnly(c.now())
	if dateOnly(dateTime).Before(today) {
		return nil, &ValidationError{Field: "fecha_hora", Reason: "no se pueden agendar turnos en el pasado"}
	}

	appt, err := NewAppointment(patient, doctor, dateTime, specialty)
	if err != nil {
		return nil, err
	}

	c.appointments = append(c.appointments, appt)
	if h, ok := c.histories[dni]; ok {
		_ = h.AddAppointment(appt)
	}
	c.log.Info("turno agendado",
		slog.String("dni", dni),
		slog.String("matricula", license),
		slog.Time("fecha_hora", dateTime),
	)
	return appt, nil
}

// ---------------------------------------------------------------------------
// Prescriptions
// ---------------------------------------------------------------------------

// IssuePrescription validates the medication list and appends a
// prescription dated now to the patient's history. Rule order is
// fixed: empty list, over 10 entries, blank or too-short entry (in
// list order), case-insensitive duplicates.
func (c *Clinic) IssuePrescription(dni, license string, medications []string) (*Prescription, error) {
	patient, ok := c.patients[dni]
	if !ok {
		return nil, &PatientNotFoundError{DNI: dni}
	}
	doctor, ok := c.doctors[license]
	if !ok {
		return nil, &DoctorNotFoundError{License: license}
	}

	if len(medications) == 0 {
		return nil, &InvalidPrescriptionError{Reason: "debe contener al menos un medicamento"}
	}
	if len(medications) > 10 {
		return nil, &InvalidPrescriptionError{Reason: "no puede contener más de 10 medicamentos"}
	}
	for _, m := range medications {
		if strings.TrimSpace(m) == "" {
			return nil, &InvalidPrescriptionError{Reason: "los nombres de medicamentos no pueden estar vacíos"}
		}
		if len([]rune(strings.TrimSpace(m))) < 2 {
			return nil, &InvalidPrescriptionError{Reason: "los nombres de medicamentos deben tener al menos 2 caracteres"}
		}
	}
	seen := make(map[string]struct{}, len(medications))
	for _, m := range medications {
		key := strings.ToLower(strings.TrimSpace(m))
		if _, dup := seen[key]; dup {
			return nil, &InvalidPrescriptionError{Reason: "no puede contener medicamentos duplicados"}
		}
		seen[key] = struct{}{}
	}

	receta, err := NewPrescription(patient, doctor, medications, c.now())
	if err != nil {
		return nil, err
	}
	if err := c.histories[dni].AddPrescription(receta); err != nil {
		return nil, err
	}
	c.log.Info("receta emitida",
		slog.String("dni", dni),
		slog.String("matricula", license),
		slog.Int("medicamentos", len(medications)),
	)
	return receta, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
