package clinic

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
)

// testNow is a Monday. All scheduling tests pin the clock here so
// past/future checks are deterministic.
var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestClinic(t *testing.T) *Clinic {
	t.Helper()
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = func() time.Time { return testNow }
	return c
}

// registerBase sets up the fixture shared by the scheduling tests:
// patient 12345678, specialty Cardiología (Lunes) and doctor 98765
// holding it.
func registerBase(t *testing.T, c *Clinic) (*Patient, *Doctor, *Specialty) {
	t.Helper()
	p := mustPatient(t, "12345678", "Juan Pérez", "01/01/1980")
	if err := c.AddPatient(p); err != nil {
		t.Fatalf("AddPatient() error = %v", err)
	}
	cardio := mustSpecialty(t, "Cardiología", "Lunes")
	if err := c.RegisterSpecialty(cardio); err != nil {
		t.Fatalf("RegisterSpecialty() error = %v", err)
	}
	d := mustDoctor(t, "98765", "Dr. López", cardio)
	if err := c.AddDoctor(d); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}
	return p, d, cardio
}

func TestAddPatientDuplicate(t *testing.T) {
	c := newTestClinic(t)
	if err := c.AddPatient(mustPatient(t, "123", "Ana", "10/05/1990")); err != nil {
		t.Fatalf("AddPatient() error = %v", err)
	}

	err := c.AddPatient(mustPatient(t, "123", "Otra Ana", "11/05/1990"))
	var dup *PatientAlreadyExistsError
	if !errors.As(err, &dup) {
		t.Fatalf("AddPatient() error = %v, want *PatientAlreadyExistsError", err)
	}
	if dup.DNI != "123" {
		t.Errorf("DNI = %q, want %q", dup.DNI, "123")
	}
}

func TestAddDoctorDuplicate(t *testing.T) {
	c := newTestClinic(t)
	if err := c.AddDoctor(mustDoctor(t, "98765", "Dr. López")); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}

	err := c.AddDoctor(mustDoctor(t, "98765", "Dr. Otro"))
	var dup *DoctorAlreadyExistsError
	if !errors.As(err, &dup) {
		t.Fatalf("AddDoctor() error = %v, want *DoctorAlreadyExistsError", err)
	}
}

func TestRegisterSpecialtyDuplicateName(t *testing.T) {
	c := newTestClinic(t)
	if err := c.RegisterSpecialty(mustSpecialty(t, "Pediatría", "Lunes")); err != nil {
		t.Fatalf("RegisterSpecialty() error = %v", err)
	}

	// Scenario F: same name modulo case and surrounding whitespace.
	err := c.RegisterSpecialty(mustSpecialty(t, " pediatría ", "Martes"))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("RegisterSpecialty() error = %v, want *ValidationError", err)
	}
	if got := len(c.Specialties()); got != 1 {
		t.Errorf("Specialties() length = %d, want 1", got)
	}
}

func TestListInsertionOrder(t *testing.T) {
	c := newTestClinic(t)
	for _, dni := range []string{"3", "1", "2"} {
		if err := c.AddPatient(mustPatient(t, dni, "Paciente "+dni, "01/01/1980")); err != nil {
			t.Fatalf("AddPatient(%q) error = %v", dni, err)
		}
	}
	for _, lic := range []string{"c", "a", "b"} {
		if err := c.AddDoctor(mustDoctor(t, lic, "Dr. "+lic)); err != nil {
			t.Fatalf("AddDoctor(%q) error = %v", lic, err)
		}
	}

	patients := c.Patients()
	for i, want := range []string{"3", "1", "2"} {
		if patients[i].DNI() != want {
			t.Errorf("Patients()[%d].DNI() = %q, want %q", i, patients[i].DNI(), want)
		}
	}
	doctors := c.Doctors()
	for i, want := range []string{"c", "a", "b"} {
		if doctors[i].License() != want {
			t.Errorf("Doctors()[%d].License() = %q, want %q", i, doctors[i].License(), want)
		}
	}
}

func TestDoctorByLicense(t *testing.T) {
	c := newTestClinic(t)
	d := mustDoctor(t, "98765", "Dr. López")
	if err := c.AddDoctor(d); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}

	got, err := c.DoctorByLicense("98765")
	if err != nil {
		t.Fatalf("DoctorByLicense() error = %v", err)
	}
	if got != d {
		t.Error("DoctorByLicense() returned a different doctor")
	}

	_, err = c.DoctorByLicense("00000")
	var nf *DoctorNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("DoctorByLicense() error = %v, want *DoctorNotFoundError", err)
	}
}

func TestScheduleAppointment(t *testing.T) {
	// Scenario A: a valid Monday appointment lands once in the global
	// list and once in the patient's history.
	c := newTestClinic(t)
	p, d, cardio := registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	appt, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio)
	if err != nil {
		t.Fatalf("ScheduleAppointment() error = %v", err)
	}
	if appt.Patient() != p || appt.Doctor() != d {
		t.Error("appointment does not reference the registered patient/doctor")
	}

	if got := c.Appointments(); len(got) != 1 || got[0] != appt {
		t.Errorf("Appointments() = %v, want exactly the scheduled appointment", got)
	}
	h, err := c.History("12345678")
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if got := h.Appointments(); len(got) != 1 || got[0] != appt {
		t.Errorf("history appointments = %v, want exactly the scheduled appointment", got)
	}
}

func TestScheduleAppointmentUnknownParties(t *testing.T) {
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	_, err := c.ScheduleAppointment(monday, "99999999", "98765", cardio)
	var pnf *PatientNotFoundError
	if !errors.As(err, &pnf) {
		t.Fatalf("unknown patient: error = %v, want *PatientNotFoundError", err)
	}

	_, err = c.ScheduleAppointment(monday, "12345678", "00000", cardio)
	var dnf *DoctorNotFoundError
	if !errors.As(err, &dnf) {
		t.Fatalf("unknown doctor: error = %v, want *DoctorNotFoundError", err)
	}
}

func TestScheduleAppointmentDuplicate(t *testing.T) {
	// Scenario B: the exact same (date-time, patient, doctor) again
	// fails with DuplicateAppointmentError even though the slot is in
	// the future and otherwise valid.
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	if _, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio); err != nil {
		t.Fatalf("first ScheduleAppointment() error = %v", err)
	}

	_, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio)
	var dup *DuplicateAppointmentError
	if !errors.As(err, &dup) {
		t.Fatalf("second ScheduleAppointment() error = %v, want *DuplicateAppointmentError", err)
	}
	if dup.Doctor != "Dr. López" || !dup.DateTime.Equal(monday) {
		t.Errorf("DuplicateAppointmentError = %+v, want doctor name and date-time", dup)
	}
	if got := len(c.Appointments()); got != 1 {
		t.Errorf("Appointments() length = %d, want 1 (no partial mutation)", got)
	}
}

func TestScheduleAppointmentDuplicatePrecedesPastCheck(t *testing.T) {
	// The duplicate scan runs before the past-date rule, so repeating
	// a past appointment that somehow exists reports the duplicate,
	// not the past date. Build that state by scheduling first and then
	// moving the clock forward.
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	if _, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio); err != nil {
		t.Fatalf("ScheduleAppointment() error = %v", err)
	}
	c.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }

	_, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio)
	var dup *DuplicateAppointmentError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateAppointmentError before the past-date check", err)
	}
}

func TestScheduleAppointmentDayNotServed(t *testing.T) {
	// Scenario C: a Thursday slot against a Lunes/Miércoles specialty
	// names the available days.
	c := newTestClinic(t)
	p := mustPatient(t, "111", "Ana", "10/05/1990")
	if err := c.AddPatient(p); err != nil {
		t.Fatalf("AddPatient() error = %v", err)
	}
	sp := mustSpecialty(t, "Neurología", "Lunes", "Miércoles")
	if err := c.RegisterSpecialty(sp); err != nil {
		t.Fatalf("RegisterSpecialty() error = %v", err)
	}
	if err := c.AddDoctor(mustDoctor(t, "222", "Dr. Silva", sp)); err != nil {
		t.Fatalf("AddDoctor() error = %v", err)
	}

	thursday := time.Date(2025, 3, 13, 10, 0, 0, 0, time.UTC)
	_, err := c.ScheduleAppointment(thursday, "111", "222", sp)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ScheduleAppointment() error = %v, want *ValidationError", err)
	}
	if verr.Weekday != "Jueves" {
		t.Errorf("Weekday = %q, want %q", verr.Weekday, "Jueves")
	}
	if len(verr.Available) != 2 || verr.Available[0] != "Lunes" || verr.Available[1] != "Miércoles" {
		t.Errorf("Available = %v, want [Lunes Miércoles]", verr.Available)
	}
	if got := len(c.Appointments()); got != 0 {
		t.Errorf("Appointments() length = %d, want 0 (no partial mutation)", got)
	}
}

func TestScheduleAppointmentPastDate(t *testing.T) {
	// Scenario E: strictly earlier date fails even when everything
	// else is valid. Time of day is ignored, so earlier today passes.
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)

	pastMonday := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	_, err := c.ScheduleAppointment(pastMonday, "12345678", "98765", cardio)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("past date: error = %v, want *ValidationError", err)
	}

	// testNow is Monday 09:00; an earlier hour the same day is fine.
	earlierToday := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	if _, err := c.ScheduleAppointment(earlierToday, "12345678", "98765", cardio); err != nil {
		t.Fatalf("same-day earlier hour: error = %v, want success", err)
	}
}

func TestAppointmentIsFree(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	if !c.AppointmentIsFree("98765", monday) {
		t.Error("AppointmentIsFree() = false before any scheduling")
	}

	sp, _ := c.SpecialtyByName("Cardiología")
	if _, err := c.ScheduleAppointment(monday, "12345678", "98765", sp); err != nil {
		t.Fatalf("ScheduleAppointment() error = %v", err)
	}

	if c.AppointmentIsFree("98765", monday) {
		t.Error("AppointmentIsFree() = true for a taken slot")
	}
	if !c.AppointmentIsFree("98765", monday.Add(time.Hour)) {
		t.Error("AppointmentIsFree() = false for a different hour")
	}
	if !c.AppointmentIsFree("00000", monday) {
		t.Error("AppointmentIsFree() = false for a different doctor")
	}
}

func TestAppointmentByID(t *testing.T) {
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)
	monday := time.Date(2025, 3, 17, 10, 0, 0, 0, time.UTC)

	appt, err := c.ScheduleAppointment(monday, "12345678", "98765", cardio)
	if err != nil {
		t.Fatalf("ScheduleAppointment() error = %v", err)
	}

	got, err := c.AppointmentByID(appt.ID())
	if err != nil {
		t.Fatalf("AppointmentByID() error = %v", err)
	}
	if got != appt {
		t.Error("AppointmentByID() returned a different appointment")
	}

	_, err = c.AppointmentByID(uuid.New())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("AppointmentByID() with unknown id: error = %v, want *ValidationError", err)
	}
}

func TestPrescriptionByID(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)

	receta, err := c.IssuePrescription("12345678", "98765", []string{"Aspirina"})
	if err != nil {
		t.Fatalf("IssuePrescription() error = %v", err)
	}

	got, err := c.PrescriptionByID(receta.ID())
	if err != nil {
		t.Fatalf("PrescriptionByID() error = %v", err)
	}
	if got != receta {
		t.Error("PrescriptionByID() returned a different prescription")
	}

	_, err = c.PrescriptionByID(uuid.New())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("PrescriptionByID() with unknown id: error = %v, want *ValidationError", err)
	}
}

func TestIssuePrescription(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)

	receta, err := c.IssuePrescription("12345678", "98765", []string{"Aspirina", "Ibuprofeno"})
	if err != nil {
		t.Fatalf("IssuePrescription() error = %v", err)
	}
	if !receta.IssuedAt().Equal(testNow) {
		t.Errorf("IssuedAt() = %v, want clinic clock %v", receta.IssuedAt(), testNow)
	}

	h, _ := c.History("12345678")
	if got := h.Prescriptions(); len(got) != 1 || got[0] != receta {
		t.Errorf("history prescriptions = %v, want exactly the issued one", got)
	}
}

func TestIssuePrescriptionValidation(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)

	eleven := make([]string, 11)
	for i := range eleven {
		eleven[i] = "Medicamento" + string(rune('A'+i))
	}

	tests := []struct {
		name string
		meds []string
	}{
		{"empty list", nil},
		{"over ten entries", eleven},
		{"blank entry", []string{"Aspirina", "   "}},
		{"single char entry", []string{"Aspirina", "X"}},
		{"duplicate case-insensitive", []string{"Aspirina", "aspirina"}}, // Scenario D
		{"duplicate after trim", []string{"Aspirina", " Aspirina "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.IssuePrescription("12345678", "98765", tt.meds)
			var inv *InvalidPrescriptionError
			if !errors.As(err, &inv) {
				t.Fatalf("IssuePrescription() error = %v, want *InvalidPrescriptionError", err)
			}
		})
	}

	h, _ := c.History("12345678")
	if got := len(h.Prescriptions()); got != 0 {
		t.Errorf("history prescriptions length = %d, want 0 (no partial mutation)", got)
	}
}

func TestIssuePrescriptionUnknownParties(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)

	_, err := c.IssuePrescription("99999999", "98765", []string{"Aspirina"})
	var pnf *PatientNotFoundError
	if !errors.As(err, &pnf) {
		t.Fatalf("unknown patient: error = %v, want *PatientNotFoundError", err)
	}

	_, err = c.IssuePrescription("12345678", "00000", []string{"Aspirina"})
	var dnf *DoctorNotFoundError
	if !errors.As(err, &dnf) {
		t.Fatalf("unknown doctor: error = %v, want *DoctorNotFoundError", err)
	}
}

func TestHistoryUnknownPatient(t *testing.T) {
	c := newTestClinic(t)
	_, err := c.History("nadie")
	var pnf *PatientNotFoundError
	if !errors.As(err, &pnf) {
		t.Fatalf("History() error = %v, want *PatientNotFoundError", err)
	}
}

func TestExistenceChecks(t *testing.T) {
	c := newTestClinic(t)
	registerBase(t, c)

	if !c.PatientExists("12345678") || c.PatientExists("0") {
		t.Error("PatientExists() membership mismatch")
	}
	if !c.DoctorExists("98765") || c.DoctorExists("0") {
		t.Error("DoctorExists() membership mismatch")
	}
}

func TestDoctorSpecialtyOn(t *testing.T) {
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)

	sp, err := c.DoctorSpecialtyOn("98765", "Lunes")
	if err != nil {
		t.Fatalf("DoctorSpecialtyOn() error = %v", err)
	}
	if sp != cardio {
		t.Errorf("DoctorSpecialtyOn() = %v, want Cardiología", sp)
	}

	sp, err = c.DoctorSpecialtyOn("98765", "Viernes")
	if err != nil {
		t.Fatalf("DoctorSpecialtyOn() error = %v", err)
	}
	if sp != nil {
		t.Errorf("DoctorSpecialtyOn() = %v, want nil for an off day", sp)
	}

	if _, err := c.DoctorSpecialtyOn("00000", "Lunes"); err == nil {
		t.Error("DoctorSpecialtyOn() with unknown license: expected error")
	}
}

func TestSpecialtyByName(t *testing.T) {
	c := newTestClinic(t)
	_, _, cardio := registerBase(t, c)

	tests := []struct {
		name string
		want *Specialty
	}{
		{"Cardiología", cardio},
		{"cardiología", cardio},
		{" CARDIOLOGÍA ", cardio},
	}
	for _, tt := range tests {
		got, err := c.SpecialtyByName(tt.name)
		if err != nil {
			t.Fatalf("SpecialtyByName(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("SpecialtyByName(%q) = %v, want Cardiología", tt.name, got)
		}
	}

	if _, err := c.SpecialtyByName("Dermatología"); err == nil {
		t.Error("SpecialtyByName() with unregistered name: expected error")
	}
}
