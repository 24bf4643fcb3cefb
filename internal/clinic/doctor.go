package clinic

import (
	"fmt"
	"strings"
)

// normalizeName folds a specialty name for identity checks: trimmed
// and case-insensitive, display casing untouched.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Doctor is a registered doctor holding an ordered collection of
// specialties. A lone specialty is just a one-element collection;
// there is no scalar form.
type Doctor struct {
	license     string
	name        string
	specialties []*Specialty
}

// NewDoctor validates and builds a doctor record. Specialties may be
// zero, one or many.
func NewDoctor(license, name string, specialties ...*Specialty) (*Doctor, error) {
	if strings.TrimSpace(license) == "" {
		return nil, &ValidationError{Field: "matricula", Reason: "no puede estar vacía"}
	}
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "nombre", Reason: "no puede estar vacío"}
	}
	return &Doctor{
		license:     license,
		name:        name,
		specialties: append([]*Specialty(nil), specialties...),
	}, nil
}

func (d *Doctor) License() string { return d.license }
func (d *Doctor) Name() string    { return d.name }

// Specialties returns a copy of the specialty collection in the order
// the specialties were attached.
func (d *Doctor) Specialties() []*Specialty {
	return append([]*Specialty(nil), d.specialties...)
}

func (d *Doctor) SetLicense(license string) { d.license = license }
func (d *Doctor) SetName(name string)       { d.name = name }

// AddSpecialty attaches a further specialty. Specialty identity is
// name equality, so re-adding the same specialty (or another one with
// the same name) is rejected.
func (d *Doctor) AddSpecialty(sp *Specialty) error {
	if sp == nil {
		return &ValidationError{Field: "especialidad", Reason: "no puede ser nula"}
	}
	key := normalizeName(sp.Name())
	for _, existing := range d.specialties {
		if normalizeName(existing.Name()) == key {
			return &ValidationError{
				Field:  "especialidad",
				Reason: fmt.Sprintf("la especialidad %s ya está asignada al médico", sp.Name()),
			}
		}
	}
	d.specialties = append(d.specialties, sp)
	return nil
}

// SpecialtyActiveOn scans the doctor's specialties in order and
// returns the first one serving the given day, or nil when none does.
func (d *Doctor) SpecialtyActiveOn(day string) *Specialty {
	for _, sp := range d.specialties {
		if sp.HasDay(day) {
			return sp
		}
	}
	return nil
}

func (d *Doctor) String() string {
	names := make([]string, len(d.specialties))
	for i, sp := range d.specialties {
		names[i] = sp.Name()
	}
	return fmt.Sprintf("Dr. %s - %s (Matrícula: %s)", d.name, strings.Join(names, ", "), d.license)
}
