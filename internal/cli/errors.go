package cli

import (
	"errors"
	"fmt"

	"github.com/mserradell/clinica_backend/internal/clinic"
)

// printError maps a domain error to the message the menu shows. No
// error kind is fatal; the loop always continues.
func (m *Menu) printError(err error) {
	var (
		patientNotFound *clinic.PatientNotFoundError
		patientExists   *clinic.PatientAlreadyExistsError
		doctorNotFound  *clinic.DoctorNotFoundError
		doctorExists    *clinic.DoctorAlreadyExistsError
		duplicate       *clinic.DuplicateAppointmentError
		invalidReceta   *clinic.InvalidPrescriptionError
		validation      *clinic.ValidationError
	)

	switch {
	case errors.As(err, &patientNotFound):
		fmt.Fprintf(m.out, "Error - Paciente no encontrado: %s\n", err)
	case errors.As(err, &patientExists):
		fmt.Fprintf(m.out, "Error: %s\n", err)
	case errors.As(err, &doctorNotFound):
		fmt.Fprintf(m.out, "Error - Médico no encontrado: %s\n", err)
	case errors.As(err, &doctorExists):
		fmt.Fprintf(m.out, "Error: %s\n", err)
	case errors.As(err, &duplicate):
		fmt.Fprintf(m.out, "Error: %s\n", err)
	case errors.As(err, &invalidReceta):
		fmt.Fprintf(m.out, "Error - Receta inválida: %s\n", err)
	case errors.As(err, &validation):
		fmt.Fprintf(m.out, "Error de validación: %s\n", err)
	default:
		fmt.Fprintf(m.out, "Error: %s\n", err)
	}

	m.log.Warn("operación rechazada", "error", err)
}
