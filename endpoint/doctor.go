package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
)

var doctorKind = recordKind{
	entity:   "doctor",
	label:    "Doctor",
	newModel: func() interface{} { return &model.Doctor{} },
}

func collectDoctorFields(in *console.Collector) (model.DoctorFields, error) {
	var f model.DoctorFields
	var err error

	if f.FullName, err = in.RequiredText("Enter doctor's full name: ", "Full name"); err != nil {
		return f, err
	}
	if f.Specialization, err = in.RequiredText("Enter specialization: ", "Specialization"); err != nil {
		return f, err
	}
	if f.Contact, err = in.Contact("Enter contact number (10 digits): "); err != nil {
		return f, err
	}
	return f, nil
}

func AddDoctor(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Add Doctor ---")
	fields, err := collectDoctorFields(c.In)
	if inputAborted(c, err) {
		return
	}

	doctor := model.NewDoctor(fields)
	if err := db.Create(&doctor).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to add doctor",
			Err: err,
		})
		return
	}

	middleware.GetActivity(c).LogRecordAdded(middleware.GetActionID(c), doctorKind.entity, doctor.ID)
	util.CallSuccess(c.Out, fmt.Sprintf("Doctor added successfully with ID %d.", doctor.ID))
}

func ViewDoctors(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	var doctors []model.Doctor
	if err := db.Order("id").Find(&doctors).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to fetch doctors",
			Err: err,
		})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Doctor List ---")
	if len(doctors) == 0 {
		fmt.Fprintln(c.Out, "No doctors found.")
		return
	}

	fmt.Fprintf(c.Out, "%-5s %-25s %-25s %-12s\n", "ID", "Full Name", "Specialization", "Contact")
	for _, d := range doctors {
		fmt.Fprintf(c.Out, "%-5d %-25s %-25s %-12s\n", d.ID, d.FullName, d.Specialization, d.Contact)
	}
	fmt.Fprintf(c.Out, "\nTotal doctors: %d\n", len(doctors))
}

func EditDoctor(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Edit Doctor ---")
	id, ok := lookupID(c, db, doctorKind, "Enter doctor ID to edit: ")
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "Enter new details:")
	fields, err := collectDoctorFields(c.In)
	if inputAborted(c, err) {
		return
	}

	res := db.Model(&model.Doctor{}).Where("id = ?", id).Updates(fields.Updates())
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to update doctor",
			Err: res.Error,
		})
		return
	}
	if res.RowsAffected == 0 {
		util.CallUserError(c.Out, util.ErrorParams{Msg: "No doctor was updated."})
		return
	}

	middleware.GetActivity(c).LogRecordUpdated(middleware.GetActionID(c), doctorKind.entity, id)
	util.CallSuccess(c.Out, "Doctor updated successfully.")
}

// DeleteDoctor removes a doctor together with the doctor's appointments.
func DeleteDoctor(c *console.Context) {
	deleteRecord(c, doctorKind)
}
