package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/rooms"
	"github.com/hms/hms/internal/domain/roster"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/session"
)

// Menu drives the interactive session. Every menu action maps to
// exactly one service operation; failures are reported and the loop
// continues.
type Menu struct {
	sess *session.Session
	in   *Prompter
	out  io.Writer
	pal  Palette
}

func NewMenu(sess *session.Session, in *Prompter, out io.Writer, pal Palette) *Menu {
	return &Menu{sess: sess, in: in, out: out, pal: pal}
}

const menuText = `
 1) Add patient           9) Discharge patient
 2) Add doctor           10) Available rooms
 3) List people          11) Add prescription
 4) Remove person        12) List prescriptions
 5) Schedule appointment 13) Open bill
 6) Cancel appointment   14) Add charge
 7) List appointments    15) Pay bill
 8) Assign room          16) List bills
                         17) Reports
 0) Exit
`

// Run loops until the operator exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Fprintln(m.out, m.pal.Title("Hospital Administration Console"))
	for {
		fmt.Fprint(m.out, menuText)
		choice, err := m.in.Int("choice")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if choice == 0 {
			fmt.Fprintln(m.out, m.pal.OK("goodbye"))
			return nil
		}
		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintln(m.out, m.pal.Error(err.Error()))
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.addPatient(ctx)
	case 2:
		return m.addDoctor(ctx)
	case 3:
		return m.listPeople(ctx)
	case 4:
		return m.removePerson(ctx)
	case 5:
		return m.scheduleAppointment(ctx)
	case 6:
		return m.cancelAppointment(ctx)
	case 7:
		return m.listAppointments(ctx)
	case 8:
		return m.assignRoom(ctx)
	case 9:
		return m.dischargePatient(ctx)
	case 10:
		return m.availableRooms()
	case 11:
		return m.addPrescription(ctx)
	case 12:
		return m.listPrescriptions(ctx)
	case 13:
		return m.openBill(ctx)
	case 14:
		return m.addCharge(ctx)
	case 15:
		return m.payBill(ctx)
	case 16:
		return m.listBills(ctx)
	case 17:
		return m.reports(ctx)
	default:
		fmt.Fprintln(m.out, m.pal.Warn("unknown choice"))
		return nil
	}
}

func (m *Menu) addPatient(ctx context.Context) error {
	name, err := m.in.String("name")
	if err != nil {
		return err
	}
	condition, err := m.in.String("condition")
	if err != nil {
		return err
	}
	p, err := m.sess.Roster.AddPatient(ctx, name, condition)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("patient %s added (%s)", p.Name, shortID(p.ID.String()))))
	return nil
}

func (m *Menu) addDoctor(ctx context.Context) error {
	name, err := m.in.String("name")
	if err != nil {
		return err
	}
	specialty, err := m.in.String("specialty")
	if err != nil {
		return err
	}
	d, err := m.sess.Roster.AddDoctor(ctx, name, specialty)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("doctor %s added (%s)", d.Name, shortID(d.ID.String()))))
	return nil
}

func (m *Menu) listPeople(ctx context.Context) error {
	people, err := m.sess.Roster.All(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		detail := ""
		switch v := p.(type) {
		case *roster.Patient:
			detail = v.Condition
		case *roster.Doctor:
			detail = v.Specialty
		}
		rows = append(rows, []string{shortID(p.PersonID().String()), string(p.Kind()), p.PersonName(), detail})
	}
	Table(m.out, []string{"ID", "KIND", "NAME", "DETAIL"}, rows)
	return nil
}

func (m *Menu) removePerson(ctx context.Context) error {
	people, err := m.sess.Roster.All(ctx)
	if err != nil {
		return err
	}
	if len(people) == 0 {
		fmt.Fprintln(m.out, m.pal.Warn("roster is empty"))
		return nil
	}
	for i, p := range people {
		fmt.Fprintf(m.out, " %d) %s %s\n", i+1, p.Kind(), p.PersonName())
	}
	idx, err := m.in.Int("person #")
	if err != nil {
		return err
	}
	if idx < 1 || idx > len(people) {
		return fmt.Errorf("no such person")
	}
	if err := m.sess.Roster.Remove(ctx, people[idx-1].PersonID()); err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.pal.OK("removed"))
	return nil
}

func (m *Menu) choosePatient(ctx context.Context) (*roster.Patient, error) {
	patients, err := m.sess.Roster.Patients(ctx)
	if err != nil {
		return nil, err
	}
	if len(patients) == 0 {
		return nil, fmt.Errorf("no patients on the roster")
	}
	for i, p := range patients {
		fmt.Fprintf(m.out, " %d) %s (%s)\n", i+1, p.Name, p.Condition)
	}
	idx, err := m.in.Int("patient #")
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > len(patients) {
		return nil, fmt.Errorf("no such patient")
	}
	return patients[idx-1], nil
}

func (m *Menu) chooseDoctor(ctx context.Context) (*roster.Doctor, error) {
	doctors, err := m.sess.Roster.Doctors(ctx)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, fmt.Errorf("no doctors on the roster")
	}
	for i, d := range doctors {
		fmt.Fprintf(m.out, " %d) %s (%s)\n", i+1, d.Name, d.Specialty)
	}
	idx, err := m.in.Int("doctor #")
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > len(doctors) {
		return nil, fmt.Errorf("no such doctor")
	}
	return doctors[idx-1], nil
}

func (m *Menu) scheduleAppointment(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	d, err := m.chooseDoctor(ctx)
	if err != nil {
		return err
	}
	when, err := m.in.Date("when")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "booking...")
	a, err := m.sess.Scheduler.Schedule(ctx, p.ID, d.ID, when)
	if err != nil {
		if errors.Is(err, scheduling.ErrDuplicateAppointment) {
			m.sess.Metrics.DuplicateRejected()
			return fmt.Errorf("that appointment already exists")
		}
		return err
	}
	m.sess.Metrics.AppointmentScheduled()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("booked %s with %s at %s",
		p.Name, d.Name, a.When.Format(DateLayout))))
	return nil
}

func (m *Menu) cancelAppointment(ctx context.Context) error {
	appts, err := m.sess.Scheduler.All(ctx)
	if err != nil {
		return err
	}
	if len(appts) == 0 {
		fmt.Fprintln(m.out, m.pal.Warn("no appointments booked"))
		return nil
	}
	for i, a := range appts {
		fmt.Fprintf(m.out, " %d) %s  patient=%s doctor=%s\n",
			i+1, a.When.Format(DateLayout), shortID(a.PatientID.String()), shortID(a.DoctorID.String()))
	}
	idx, err := m.in.Int("appointment #")
	if err != nil {
		return err
	}
	if idx < 1 || idx > len(appts) {
		return fmt.Errorf("no such appointment")
	}
	if err := m.sess.Scheduler.Delete(ctx, appts[idx-1].ID); err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			return fmt.Errorf("appointment already gone")
		}
		return err
	}
	m.sess.Metrics.AppointmentCancelled()
	fmt.Fprintln(m.out, m.pal.OK("cancelled"))
	return nil
}

func (m *Menu) listAppointments(ctx context.Context) error {
	appts, err := m.sess.Scheduler.All(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, []string{
			shortID(a.ID.String()),
			m.personName(ctx, a.PatientID),
			m.personName(ctx, a.DoctorID),
			a.When.Format(DateLayout),
		})
	}
	Table(m.out, []string{"ID", "PATIENT", "DOCTOR", "WHEN"}, rows)
	return nil
}

func (m *Menu) assignRoom(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "available: %v\n", m.sess.Rooms.AvailableRooms())
	roomID, err := m.in.String("room")
	if err != nil {
		return err
	}
	if err := m.sess.Rooms.Assign(p, roomID); err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidRoom):
			return fmt.Errorf("room %s does not exist", roomID)
		case errors.Is(err, rooms.ErrRoomOccupied):
			return fmt.Errorf("room %s is occupied", roomID)
		}
		return err
	}
	m.sess.Metrics.PatientAdmitted()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("%s admitted to room %s", p.Name, roomID)))
	return nil
}

func (m *Menu) dischargePatient(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	if err := m.sess.Rooms.Discharge(p); err != nil {
		if errors.Is(err, rooms.ErrNotAdmitted) {
			return fmt.Errorf("%s is not admitted", p.Name)
		}
		return err
	}
	m.sess.Metrics.PatientDischarged()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("%s discharged", p.Name)))
	return nil
}

func (m *Menu) availableRooms() error {
	rooms := m.sess.Rooms.AvailableRooms()
	if len(rooms) == 0 {
		fmt.Fprintln(m.out, m.pal.Warn("no rooms available"))
		return nil
	}
	fmt.Fprintf(m.out, "available rooms: %v\n", rooms)
	return nil
}

func (m *Menu) addPrescription(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	med, err := m.in.String("medication")
	if err != nil {
		return err
	}
	if err := m.sess.Pharmacy.Add(p, med); err != nil {
		return err
	}
	m.sess.Metrics.PrescriptionAdded()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("prescribed %s for %s", med, p.Name)))
	return nil
}

func (m *Menu) listPrescriptions(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	meds := m.sess.Pharmacy.List(p)
	if len(meds) == 0 {
		fmt.Fprintln(m.out, m.pal.Warn("no prescriptions on record"))
		return nil
	}
	for i, med := range meds {
		fmt.Fprintf(m.out, " %d) %s\n", i+1, med)
	}
	return nil
}

func (m *Menu) openBill(ctx context.Context) error {
	p, err := m.choosePatient(ctx)
	if err != nil {
		return err
	}
	b, err := m.sess.Ledger.Open(ctx, p.ID)
	if err != nil {
		return err
	}
	m.sess.Metrics.BillOpened()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("bill %s opened for %s", shortID(b.ID.String()), p.Name)))
	return nil
}

func (m *Menu) chooseBill(ctx context.Context) (*billing.Bill, error) {
	bills, err := m.sess.Ledger.Bills(ctx)
	if err != nil {
		return nil, err
	}
	if len(bills) == 0 {
		return nil, fmt.Errorf("no bills open")
	}
	cur := m.sess.Config.Currency
	for i, b := range bills {
		fmt.Fprintf(m.out, " %d) %s  patient=%s  total=%s%.2f\n",
			i+1, shortID(b.ID.String()), m.personName(ctx, b.PatientID), cur, b.Total())
	}
	idx, err := m.in.Int("bill #")
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > len(bills) {
		return nil, fmt.Errorf("no such bill")
	}
	return bills[idx-1], nil
}

func (m *Menu) addCharge(ctx context.Context) error {
	b, err := m.chooseBill(ctx)
	if err != nil {
		return err
	}
	desc, err := m.in.String("description")
	if err != nil {
		return err
	}
	amount, err := m.in.Float("amount")
	if err != nil {
		return err
	}
	m.sess.Ledger.AddCharge(b, billing.Charge{Description: desc, Amount: amount})
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("charge added, total now %s%.2f", m.sess.Config.Currency, b.Total())))
	return nil
}

func (m *Menu) payBill(ctx context.Context) error {
	b, err := m.chooseBill(ctx)
	if err != nil {
		return err
	}
	if err := m.sess.Ledger.Pay(ctx, b); err != nil {
		return err
	}
	m.sess.Metrics.BillPaid()
	fmt.Fprintln(m.out, m.pal.OK(fmt.Sprintf("bill settled: %s%.2f", m.sess.Config.Currency, b.Total())))
	return nil
}

func (m *Menu) listBills(ctx context.Context) error {
	bills, err := m.sess.Ledger.Bills(ctx)
	if err != nil {
		return err
	}
	cur := m.sess.Config.Currency
	rows := make([][]string, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, []string{
			shortID(b.ID.String()),
			m.personName(ctx, b.PatientID),
			strconv.Itoa(len(b.Charges)),
			fmt.Sprintf("%s%.2f", cur, b.Total()),
		})
	}
	Table(m.out, []string{"ID", "PATIENT", "CHARGES", "TOTAL"}, rows)
	return nil
}

func (m *Menu) reports(ctx context.Context) error {
	counts, err := m.sess.Reports.DoctorAppointmentCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.pal.Title("Appointments per doctor"))
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.DoctorName, c.Specialty, strconv.Itoa(c.Appointments)})
	}
	Table(m.out, []string{"DOCTOR", "SPECIALTY", "APPOINTMENTS"}, rows)

	statuses, err := m.sess.Reports.PatientStatuses(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, m.pal.Title("Patient status"))
	cur := m.sess.Config.Currency
	rows = rows[:0]
	for _, s := range statuses {
		room := s.RoomNumber
		if room == "" {
			room = "-"
		}
		rows = append(rows, []string{
			s.Name, s.Condition, room, strconv.FormatBool(s.Admitted),
			strconv.Itoa(s.Prescriptions), fmt.Sprintf("%s%.2f", cur, s.BilledTotal),
		})
	}
	Table(m.out, []string{"PATIENT", "CONDITION", "ROOM", "ADMITTED", "RX", "BILLED"}, rows)

	top, err := m.sess.Reports.TopBillingPatient(ctx)
	if err != nil {
		return err
	}
	if top != nil {
		fmt.Fprintf(m.out, "highest biller: %s (%s%.2f over %d bill(s))\n", top.Name, cur, top.Total, top.Bills)
	}

	sum, err := m.sess.Reports.SessionSummary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "patients=%d doctors=%d appointments=%d bills=%d occupied=%d available=%v\n",
		sum.Patients, sum.Doctors, sum.Appointments, sum.Bills, sum.OccupiedRooms, sum.AvailableRooms)

	snap := m.sess.Metrics.Snapshot()
	fmt.Fprintf(m.out, "session activity: scheduled=%d duplicates=%d cancelled=%d admissions=%d discharges=%d rx=%d bills=%d payments=%d\n",
		snap.Scheduled, snap.DuplicateRejected, snap.AppointmentsDropped,
		snap.Admissions, snap.Discharges, snap.Prescriptions, snap.BillsOpened, snap.Payments)
	return nil
}

// personName best-effort resolves a roster id for display; ids of
// deleted people render as a shortened uuid.
func (m *Menu) personName(ctx context.Context, id uuid.UUID) string {
	p, err := m.sess.Roster.FindByID(ctx, id)
	if err != nil {
		return shortID(id.String())
	}
	return p.PersonName()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
