package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mserradell/clinica_backend/config"
	"github.com/mserradell/clinica_backend/internal/clinic"
)

const dateTimeLayout = "02/01/2006 15:04"

// Menu is the interactive text frontend over the clinic facade. It
// owns nothing but the streams it reads and writes; all state lives in
// the Clinic.
type Menu struct {
	clinic *clinic.Clinic
	cfg    *config.Config
	in     *bufio.Scanner
	out    io.Writer
	log    *slog.Logger
}

func New(c *clinic.Clinic, cfg *config.Config, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	return &Menu{
		clinic: c,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    log,
	}
}

// Run drives the menu loop until the user quits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.prompt("Seleccione una opción (1-12): ")
		if !ok {
			return m.in.Err()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.addPatient()
		case "2":
			m.addDoctor()
		case "3":
			m.scheduleAppointment()
		case "4":
			m.issuePrescription()
		case "5":
			m.viewHistory()
		case "6":
			m.listAppointments()
		case "7":
			m.listPatients()
		case "8":
			m.listDoctors()
		case "9":
			m.findDoctor()
		case "10":
			m.addSpecialty()
		case "11":
			m.specialtyAvailability()
		case "12":
			fmt.Fprintln(m.out, "¡Gracias por usar el sistema de la clínica!")
			return nil
		default:
			fmt.Fprintln(m.out, "Opción inválida. Por favor seleccione del 1 al 12.")
		}
	}
}

func (m *Menu) printMenu() {
	sep := strings.Repeat("=", 50)
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, sep)
	fmt.Fprintln(m.out, m.cfg.Clinic.Name)
	fmt.Fprintln(m.out, sep)
	fmt.Fprintln(m.out, "1. Agregar paciente")
	fmt.Fprintln(m.out, "2. Agregar médico")
	fmt.Fprintln(m.out, "3. Agendar turno")
	fmt.Fprintln(m.out, "4. Emitir receta")
	fmt.Fprintln(m.out, "5. Ver historia clínica")
	fmt.Fprintln(m.out, "6. Ver todos los turnos")
	fmt.Fprintln(m.out, "7. Ver todos los pacientes")
	fmt.Fprintln(m.out, "8. Ver todos los médicos")
	fmt.Fprintln(m.out, "9. Buscar médico por matrícula")
	fmt.Fprintln(m.out, "10. Agregar especialidad")
	fmt.Fprintln(m.out, "11. Consultar especialidad disponible")
	fmt.Fprintln(m.out, "12. Salir")
	fmt.Fprintln(m.out, sep)
}

// prompt prints a label and reads one line. ok is false once input is
// exhausted, which ends the loop cleanly under piped input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func (m *Menu) addPatient() {
	fmt.Fprintln(m.out, "\n--- AGREGAR PACIENTE ---")
	dni, ok := m.prompt("DNI: ")
	if !ok {
		return
	}
	name, ok := m.prompt("Nombre completo: ")
	if !ok {
		return
	}
	birthDate, ok := m.prompt("Fecha de nacimiento (dd/mm/aaaa): ")
	if !ok {
		return
	}

	p, err := clinic.NewPatient(dni, name, birthDate)
	if err != nil {
		m.printError(err)
		return
	}
	if err := m.clinic.AddPatient(p); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Paciente %s agregado exitosamente\n", name)
}

func (m *Menu) addDoctor() {
	fmt.Fprintln(m.out, "\n--- AGREGAR MÉDICO ---")
	license, ok := m.prompt("Matrícula: ")
	if !ok {
		return
	}
	name, ok := m.prompt("Nombre completo: ")
	if !ok {
		return
	}
	spName, ok := m.prompt("Especialidad (opcional, debe estar registrada): ")
	if !ok {
		return
	}

	var specialties []*clinic.Specialty
	if strings.TrimSpace(spName) != "" {
		sp, err := m.clinic.SpecialtyByName(spName)
		if err != nil {
			m.printError(err)
			return
		}
		specialties = append(specialties, sp)
	}

	d, err := clinic.NewDoctor(license, name, specialties...)
	if err != nil {
		m.printError(err)
		return
	}
	if err := m.clinic.AddDoctor(d); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Médico %s agregado exitosamente\n", name)
}

func (m *Menu) addSpecialty() {
	fmt.Fprintln(m.out, "\n--- AGREGAR ESPECIALIDAD ---")
	name, ok := m.prompt("Tipo de especialidad: ")
	if !ok {
		return
	}
	fmt.Fprintln(m.out, "Ingrese los días disponibles (uno por línea, Enter vacío para terminar):")

	var days []string
	for {
		day, ok := m.prompt("Día: ")
		if !ok {
			return
		}
		if strings.TrimSpace(day) == "" {
			break
		}
		days = append(days, strings.TrimSpace(day))
	}

	sp, err := clinic.NewSpecialty(name, days)
	if err != nil {
		m.printError(err)
		return
	}
	if err := m.clinic.RegisterSpecialty(sp); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Especialidad %s agregada exitosamente\n", name)
	if len(days) > 0 {
		fmt.Fprintf(m.out, "Días disponibles: %s\n", strings.Join(days, ", "))
	}
}

// ---------------------------------------------------------------------------
// Scheduling and prescriptions
// ---------------------------------------------------------------------------

func (m *Menu) scheduleAppointment() {
	fmt.Fprintln(m.out, "\n--- AGENDAR TURNO ---")
	dni, ok := m.prompt("DNI del paciente: ")
	if !ok {
		return
	}
	license, ok := m.prompt("Matrícula del médico: ")
	if !ok {
		return
	}
	spName, ok := m.prompt("Especialidad: ")
	if !ok {
		return
	}
	dateStr, ok := m.prompt("Fecha y hora (dd/mm/aaaa HH:MM): ")
	if !ok {
		return
	}

	dateTime, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(dateStr), time.Local)
	if err != nil {
		fmt.Fprintf(m.out, "Error de formato: la fecha debe ser dd/mm/aaaa HH:MM\n")
		return
	}
	sp, err := m.clinic.SpecialtyByName(spName)
	if err != nil {
		m.printError(err)
		return
	}

	appt, err := m.clinic.ScheduleAppointment(dateTime, strings.TrimSpace(dni), strings.TrimSpace(license), sp)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Turno agendado exitosamente (ID %s)\n", shortID(appt.ID()))
	fmt.Fprintln(m.out, appt)
}

func (m *Menu) issuePrescription() {
	fmt.Fprintln(m.out, "\n--- EMITIR RECETA ---")
	dni, ok := m.prompt("DNI del paciente: ")
	if !ok {
		return
	}
	license, ok := m.prompt("Matrícula del médico: ")
	if !ok {
		return
	}
	medsStr, ok := m.prompt("Medicamentos (separados por coma): ")
	if !ok {
		return
	}

	var meds []string
	for _, med := range strings.Split(medsStr, ",") {
		meds = append(meds, strings.TrimSpace(med))
	}

	receta, err := m.clinic.IssuePrescription(strings.TrimSpace(dni), strings.TrimSpace(license), meds)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Receta emitida exitosamente (ID %s)\n", shortID(receta.ID()))
	fmt.Fprintln(m.out, receta)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func (m *Menu) viewHistory() {
	fmt.Fprintln(m.out, "\n--- VER HISTORIA CLÍNICA ---")
	dni, ok := m.prompt("DNI del paciente: ")
	if !ok {
		return
	}

	h, err := m.clinic.History(strings.TrimSpace(dni))
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, h)
	for _, appt := range h.Appointments() {
		fmt.Fprintf(m.out, "  %s\n", appt)
	}
	for _, receta := range h.Prescriptions() {
		fmt.Fprintf(m.out, "  %s\n", receta)
	}
}

func (m *Menu) findDoctor() {
	fmt.Fprintln(m.out, "\n--- BUSCAR MÉDICO ---")
	license, ok := m.prompt("Matrícula del médico: ")
	if !ok {
		return
	}

	d, err := m.clinic.DoctorByLicense(strings.TrimSpace(license))
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Médico encontrado: %s\n", d)
}

func (m *Menu) specialtyAvailability() {
	fmt.Fprintln(m.out, "\n--- CONSULTAR ESPECIALIDAD DISPONIBLE ---")
	license, ok := m.prompt("Matrícula del médico: ")
	if !ok {
		return
	}
	day, ok := m.prompt("Día de la semana: ")
	if !ok {
		return
	}

	sp, err := m.clinic.DoctorSpecialtyOn(strings.TrimSpace(license), day)
	if err != nil {
		m.printError(err)
		return
	}
	if sp == nil {
		fmt.Fprintf(m.out, "El médico no tiene especialidades disponibles el día %s\n", strings.TrimSpace(day))
		return
	}
	fmt.Fprintf(m.out, "Especialidad disponible el día %s: %s\n", strings.TrimSpace(day), sp.Name())
}
