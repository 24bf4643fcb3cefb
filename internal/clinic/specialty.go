package clinic

import (
	"fmt"
	"strings"
)

// Specialty is a practice domain together with the weekdays it is
// offered on. Day names are kept in the form they were entered;
// comparisons are case- and accent-insensitive.
type Specialty struct {
	name string
	days []string
}

// NewSpecialty validates and builds a specialty. Each day must be one
// of the seven accepted weekday names and no two days may normalize to
// the same weekday.
func NewSpecialty(name string, days []string) (*Specialty, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "especialidad", Reason: "no puede estar vacía"}
	}

	seen := make(map[string]struct{}, len(days))
	for _, day := range days {
		key := normalizeDay(day)
		if _, dup := seen[key]; dup {
			return nil, &ValidationError{
				Field:  "dias",
				Reason: fmt.Sprintf("la especialidad %s contiene días duplicados", name),
			}
		}
		seen[key] = struct{}{}
	}
	for _, day := range days {
		if !isValidDay(day) {
			return nil, &ValidationError{
				Field: "dias",
				Reason: fmt.Sprintf("el día %q no es válido, debe ser uno de: %s",
					day, strings.Join(ValidDayNames, ", ")),
			}
		}
	}

	return &Specialty{name: name, days: append([]string(nil), days...)}, nil
}

func (s *Specialty) Name() string { return s.name }

// Days returns a copy of the day list in entry order.
func (s *Specialty) Days() []string {
	return append([]string(nil), s.days...)
}

// HasDay reports whether day is among the specialty's days. A blank
// argument or an empty day set yields false.
func (s *Specialty) HasDay(day string) bool {
	if strings.TrimSpace(day) == "" || len(s.days) == 0 {
		return false
	}
	key := normalizeDay(day)
	for _, d := range s.days {
		if normalizeDay(d) == key {
			return true
		}
	}
	return false
}

// AddDay appends a day as-is, without re-running the constructor's
// enumeration and duplicate checks.
func (s *Specialty) AddDay(day string) {
	s.days = append(s.days, day)
}

// Rename changes the display name.
func (s *Specialty) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "especialidad", Reason: "no puede estar vacía"}
	}
	s.name = name
	return nil
}

func (s *Specialty) String() string {
	if len(s.days) == 0 {
		return fmt.Sprintf("Especialidad: %s - Sin días asignados", s.name)
	}
	return fmt.Sprintf("Especialidad: %s - Días disponibles: %s", s.name, strings.Join(s.days, ", "))
}
