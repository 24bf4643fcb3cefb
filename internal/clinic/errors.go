package clinic

import (
	"fmt"
	"strings"
	"time"
)

// Error kinds mirror the failures the menu frontend has to tell apart.
// Every type carries the structured context it was raised with so the
// caller can rebuild or localize the message without string parsing.

// ValidationError reports malformed input at construction time: a
// blank required field, a bad date, an invalid or duplicate weekday, a
// past-dated appointment, or a day the specialty does not serve. For
// the day-availability failure Weekday and Available are set.
type ValidationError struct {
	Field     string
	Reason    string
	Weekday   string
	Available []string
}

func (e *ValidationError) Error() string {
	if e.Weekday != "" {
		avail := "ningún día"
		if len(e.Available) > 0 {
			avail = strings.Join(e.Available, ", ")
		}
		return fmt.Sprintf("no se atiende el día %s; días disponibles: %s", e.Weekday, avail)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// PatientNotFoundError reports a reference to an unregistered DNI.
type PatientNotFoundError struct {
	DNI string
}

func (e *PatientNotFoundError) Error() string {
	return fmt.Sprintf("no existe un paciente con DNI %s", e.DNI)
}

// PatientAlreadyExistsError reports a registration collision on DNI.
type PatientAlreadyExistsError struct {
	DNI string
}

func (e *PatientAlreadyExistsError) Error() string {
	return fmt.Sprintf("ya existe un paciente con DNI %s", e.DNI)
}

// DoctorNotFoundError reports a reference to an unregistered license.
type DoctorNotFoundError struct {
	License string
}

func (e *DoctorNotFoundError) Error() string {
	return fmt.Sprintf("no existe un médico con matrícula %s", e.License)
}

// DoctorAlreadyExistsError reports a registration collision on license.
type DoctorAlreadyExistsError struct {
	License string
}

func (e *DoctorAlreadyExistsError) Error() string {
	return fmt.Sprintf("ya existe un médico con matrícula %s", e.License)
}

// DuplicateAppointmentError reports an exact (date-time, patient,
// doctor) collision.
type DuplicateAppointmentError struct {
	Doctor   string
	DateTime time.Time
}

func (e *DuplicateAppointmentError) Error() string {
	return fmt.Sprintf("ya existe un turno con el Dr. %s el %s",
		e.Doctor, e.DateTime.Format("02/01/2006 15:04"))
}

// InvalidPrescriptionError reports a medication list that violates the
// count, format or duplication rules.
type InvalidPrescriptionError struct {
	Reason string
}

func (e *InvalidPrescriptionError) Error() string {
	return fmt.Sprintf("receta inválida: %s", e.Reason)
}
