package endpoint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
	"gorm.io/gorm"
)

var appointmentKind = recordKind{
	entity:   "appointment",
	label:    "Appointment",
	newModel: func() interface{} { return &model.Appointment{} },
}

// ErrBookingRejected marks a date and time refused by the booking rules.
var ErrBookingRejected = errors.New("booking rejected")

// BookingRules are the optional scheduling limits. The zero value allows every booking.
type BookingRules struct {
	// MaxPerDay caps the appointments of one doctor on one date; 0 disables the cap.
	MaxPerDay            int
	PreventDoubleBooking bool
}

// check applies the rules to a booking of doctorID. exclude leaves out the
// appointment being edited.
func (r BookingRules) check(tx *gorm.DB, doctorID uint, date, tm string, exclude uint) error {
	if r.MaxPerDay > 0 {
		var count int64
		q := tx.Model(&model.Appointment{}).Where("doctor_id = ? AND appointment_date = ?", doctorID, date)
		if exclude != 0 {
			q = q.Where("id <> ?", exclude)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(r.MaxPerDay) {
			return fmt.Errorf("%w: doctor %d already has %d appointments on %s", ErrBookingRejected, doctorID, count, date)
		}
	}

	if r.PreventDoubleBooking {
		var count int64
		q := tx.Model(&model.Appointment{}).
			Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ?", doctorID, date, tm)
		if exclude != 0 {
			q = q.Where("id <> ?", exclude)
		}
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: doctor %d is already booked on %s at %s", ErrBookingRejected, doctorID, date, tm)
		}
	}
	return nil
}

// nextAppointmentToken advances the counter of date and returns the new token,
// e.g. 20250115-003. Numbers are never handed out twice for the same day.
func nextAppointmentToken(tx *gorm.DB, date string) (string, error) {
	var counter model.AppointmentToken
	err := tx.Where("day = ?", date).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = model.AppointmentToken{Day: date}
	} else if err != nil {
		return "", err
	}

	counter.Number++
	counter.Code = fmt.Sprintf("%s-%03d", strings.ReplaceAll(date, "-", ""), counter.Number)
	if err := tx.Save(&counter).Error; err != nil {
		return "", err
	}
	return counter.Code, nil
}

// collectParticipants loops until existing patient and doctor ids are given.
func collectParticipants(c *console.Context, db *gorm.DB) (uint, uint, error) {
	patientID, err := c.In.ExistingID("Enter patient ID: ", patientKind.label, existsFunc(db, patientKind))
	if err != nil {
		return 0, 0, err
	}
	doctorID, err := c.In.ExistingID("Enter doctor ID: ", doctorKind.label, existsFunc(db, doctorKind))
	if err != nil {
		return 0, 0, err
	}
	return patientID, doctorID, nil
}

func collectSlot(in *console.Collector) (string, string, error) {
	date, err := in.Date("Enter appointment date (YYYY-MM-DD): ")
	if err != nil {
		return "", "", err
	}
	tm, err := in.Time("Enter appointment time (HH:MM): ")
	if err != nil {
		return "", "", err
	}
	return date, tm, nil
}

// ScheduleAppointment books an appointment. The rules check, the token and the
// insert share one transaction; a rejected slot asks for another date and time.
func ScheduleAppointment(rules BookingRules) console.HandlerFunc {
	return func(c *console.Context) {
		db, ok := requireDB(c)
		if !ok {
			return
		}

		fmt.Fprintln(c.Out, "\n--- Schedule Appointment ---")
		patientID, doctorID, err := collectParticipants(c, db)
		if inputAborted(c, err) {
			return
		}

		var appointment model.Appointment
		for {
			date, tm, err := collectSlot(c.In)
			if inputAborted(c, err) {
				return
			}

			appointment = model.Appointment{
				PatientID:       patientID,
				DoctorID:        doctorID,
				AppointmentDate: date,
				AppointmentTime: tm,
			}
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := rules.check(tx, doctorID, date, tm, 0); err != nil {
					return err
				}
				token, err := nextAppointmentToken(tx, date)
				if err != nil {
					return err
				}
				appointment.Token = token
				return tx.Create(&appointment).Error
			})
			if errors.Is(err, ErrBookingRejected) {
				util.CallUserError(c.Out, util.ErrorParams{
					Msg: "This slot is not available. Please choose another date or time.",
					Err: err,
				})
				continue
			}
			if err != nil {
				util.CallServerError(c.ErrOut, util.ErrorParams{
					Msg: "Failed to schedule appointment",
					Err: err,
				})
				return
			}
			break
		}

		middleware.GetActivity(c).LogRecordAdded(middleware.GetActionID(c), appointmentKind.entity, appointment.ID)
		util.CallSuccess(c.Out, fmt.Sprintf("Appointment scheduled successfully. Token number: %s", appointment.Token))
	}
}

func appointmentListQuery(db *gorm.DB) *gorm.DB {
	return db.Table("appointments").
		Select("appointments.id, appointments.token, appointments.patient_id, patients.full_name AS patient_name, " +
			"appointments.doctor_id, doctors.full_name AS doctor_name, doctors.specialization, " +
			"appointments.appointment_date, appointments.appointment_time").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id")
}

func printAppointments(c *console.Context, rows []model.ListAppointmentResponse) {
	fmt.Fprintf(c.Out, "%-5s %-13s %-22s %-22s %-18s %-11s %-5s\n",
		"ID", "Token", "Patient", "Doctor", "Specialization", "Date", "Time")
	for _, a := range rows {
		fmt.Fprintf(c.Out, "%-5d %-13s %-22s %-22s %-18s %-11s %-5s\n",
			a.ID, a.Token, a.PatientName, a.DoctorName, a.Specialization, a.AppointmentDate, a.AppointmentTime)
	}
}

// ViewAppointments lists appointments with patient and doctor names, by date then time.
func ViewAppointments(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	var rows []model.ListAppointmentResponse
	err := appointmentListQuery(db).
		Order("appointments.appointment_date, appointments.appointment_time, appointments.id").
		Scan(&rows).Error
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to fetch appointments",
			Err: err,
		})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Appointment List ---")
	if len(rows) == 0 {
		fmt.Fprintln(c.Out, "No appointments found.")
		return
	}
	printAppointments(c, rows)
	fmt.Fprintf(c.Out, "\nTotal appointments: %d\n", len(rows))
}

// EditAppointment re-enters every field of an appointment. The token is kept.
func EditAppointment(rules BookingRules) console.HandlerFunc {
	return func(c *console.Context) {
		db, ok := requireDB(c)
		if !ok {
			return
		}

		fmt.Fprintln(c.Out, "\n--- Edit Appointment ---")
		id, ok := lookupID(c, db, appointmentKind, "Enter appointment ID to edit: ")
		if !ok {
			return
		}

		fmt.Fprintln(c.Out, "Enter new details:")
		patientID, doctorID, err := collectParticipants(c, db)
		if inputAborted(c, err) {
			return
		}

		var affected int64
		for {
			date, tm, err := collectSlot(c.In)
			if inputAborted(c, err) {
				return
			}

			fields := model.AppointmentFields{
				PatientID:       patientID,
				DoctorID:        doctorID,
				AppointmentDate: date,
				AppointmentTime: tm,
			}
			err = db.Transaction(func(tx *gorm.DB) error {
				if err := rules.check(tx, doctorID, date, tm, id); err != nil {
					return err
				}
				res := tx.Model(&model.Appointment{}).Where("id = ?", id).Updates(fields.Updates())
				affected = res.RowsAffected
				return res.Error
			})
			if errors.Is(err, ErrBookingRejected) {
				util.CallUserError(c.Out, util.ErrorParams{
					Msg: "This slot is not available. Please choose another date or time.",
					Err: err,
				})
				continue
			}
			if err != nil {
				util.CallServerError(c.ErrOut, util.ErrorParams{
					Msg: "Failed to update appointment",
					Err: err,
				})
				return
			}
			break
		}

		if affected == 0 {
			util.CallUserError(c.Out, util.ErrorParams{Msg: "No appointment was updated."})
			return
		}
		middleware.GetActivity(c).LogRecordUpdated(middleware.GetActionID(c), appointmentKind.entity, id)
		util.CallSuccess(c.Out, "Appointment updated successfully.")
	}
}

func DeleteAppointment(c *console.Context) {
	deleteRecord(c, appointmentKind)
}

// LookupAppointmentByToken shows the appointment holding a token number.
func LookupAppointmentByToken(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Lookup Appointment ---")
	token, err := c.In.RequiredText("Enter token number: ", "Token number")
	if inputAborted(c, err) {
		return
	}

	var rows []model.ListAppointmentResponse
	if err := appointmentListQuery(db).Where("appointments.token = ?", token).Scan(&rows).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to look up appointment",
			Err: err,
		})
		return
	}
	if len(rows) == 0 {
		util.CallNotFound(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("No appointment found with token %s.", token),
		})
		return
	}
	printAppointments(c, rows)
}
