package clinic

import (
	"fmt"
	"strings"
	"time"
)

// birthDateLayout is the display form birth dates are entered and kept
// in. Parsing with time.Parse also rejects impossible calendar dates
// such as 30/02/2021.
const birthDateLayout = "02/01/2006"

// Patient is a registered patient. The birth date is stored as the
// original validated string so the display accessor round-trips the
// exact input.
type Patient struct {
	dni       string
	name      string
	birthDate string
}

// NewPatient validates and builds a patient record.
func NewPatient(dni, name, birthDate string) (*Patient, error) {
	if strings.TrimSpace(dni) == "" {
		return nil, &ValidationError{Field: "dni", Reason: "no puede estar vacío"}
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "nombre", Reason: "no puede estar vacío"}
	}
	if _, err := time.Parse(birthDateLayout, birthDate); err != nil {
		return nil, &ValidationError{
			Field:  "fecha_nacimiento",
			Reason: fmt.Sprintf("formato de fecha inválido %q, debe ser dd/mm/aaaa", birthDate),
		}
	}
	return &Patient{dni: dni, name: name, birthDate: birthDate}, nil
}

func (p *Patient) DNI() string       { return p.dni }
func (p *Patient) Name() string      { return p.name }
func (p *Patient) BirthDate() string { return p.birthDate }

func (p *Patient) SetDNI(dni string)   { p.dni = dni }
func (p *Patient) SetName(name string) { p.name = name }

// SetBirthDate replaces the birth date, revalidating so the stored
// string stays a real calendar date.
func (p *Patient) SetBirthDate(birthDate string) error {
	if _, err := time.Parse(birthDateLayout, birthDate); err != nil {
		return &ValidationError{
			Field:  "fecha_nacimiento",
			Reason: fmt.Sprintf("formato de fecha inválido %q, debe ser dd/mm/aaaa", birthDate),
		}
	}
	p.birthDate = birthDate
	return nil
}

func (p *Patient) String() string {
	return fmt.Sprintf("Paciente: %s (DNI: %s) - Nacimiento: %s", p.name, p.dni, p.birthDate)
}
