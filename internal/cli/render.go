package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/mserradell/clinica_backend/internal/clinic"
)

// shortID abbreviates an entity identifier for display; the menu only
// needs enough of it to tell entries apart.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

func (m *Menu) listPatients() {
	fmt.Fprintln(m.out, "\n--- TODOS LOS PACIENTES ---")
	patients := m.clinic.Patients()
	if len(patients) == 0 {
		fmt.Fprintln(m.out, "No hay pacientes registrados.")
		return
	}
	if !m.cfg.CLI.Tables {
		for i, p := range patients {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, p)
		}
		return
	}

	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"DNI", "Nombre", "Nacimiento"})
	for _, p := range patients {
		table.Append([]string{p.DNI(), p.Name(), p.BirthDate()})
	}
	table.Render()
}

func (m *Menu) listDoctors() {
	fmt.Fprintln(m.out, "\n--- TODOS LOS MÉDICOS ---")
	doctors := m.clinic.Doctors()
	if len(doctors) == 0 {
		fmt.Fprintln(m.out, "No hay médicos registrados.")
		return
	}
	if !m.cfg.CLI.Tables {
		for i, d := range doctors {
			fmt.Fprintf(m.out, "%d. %s\n", i+1, d)
		}
		return
	}

	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"Matrícula", "Nombre", "Especialidades"})
	for _, d := range doctors {
		table.Append([]string{d.License(), d.Name(), specialtyNames(d.Specialties())})
	}
	table.Render()
}

func (m *Menu) listAppointments() {
	fmt.Fprintln(m.out, "\n--- TODOS LOS TURNOS ---")
	appointments := m.clinic.Appointments()
	if len(appointments) == 0 {
		fmt.Fprintln(m.out, "No hay turnos registrados")
		return
	}
	if !m.cfg.CLI.Tables {
		for i, a := range appointments {
			fmt.Fprintf(m.out, "%d. [%s] %s\n", i+1, shortID(a.ID()), a)
		}
		return
	}

	table := tablewriter.NewWriter(m.out)
	table.SetHeader([]string{"ID", "Fecha y Hora", "Paciente", "Médico", "Especialidad"})
	for _, a := range appointments {
		table.Append([]string{
			shortID(a.ID()),
			a.DateTime().Format(dateTimeLayout),
			a.Patient().Name(),
			a.Doctor().Name(),
			a.Specialty().Name(),
		})
	}
	table.Render()
}

func specialtyNames(specialties []*clinic.Specialty) string {
	names := make([]string, len(specialties))
	for i, sp := range specialties {
		names[i] = sp.Name()
	}
	return strings.Join(names, ", ")
}
