package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
)

var patientKind = recordKind{
	entity:   "patient",
	label:    "Patient",
	newModel: func() interface{} { return &model.Patient{} },
}

func collectPatientFields(in *console.Collector) (model.PatientFields, error) {
	var f model.PatientFields
	var err error

	if f.FullName, err = in.RequiredText("Enter full name: ", "Full name"); err != nil {
		return f, err
	}
	if f.Age, err = in.PositiveInt("Enter age: ", "Age"); err != nil {
		return f, err
	}
	if f.Weight, err = in.PositiveFloat("Enter weight (kg): ", "Weight"); err != nil {
		return f, err
	}
	if f.Address, err = in.RequiredText("Enter address: ", "Address"); err != nil {
		return f, err
	}
	if f.Contact, err = in.Contact("Enter contact number (10 digits): "); err != nil {
		return f, err
	}
	if f.Gender, err = in.Gender("Enter gender (M/F/O): "); err != nil {
		return f, err
	}
	return f, nil
}

func AddPatient(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Add Patient ---")
	fields, err := collectPatientFields(c.In)
	if inputAborted(c, err) {
		return
	}

	patient := model.NewPatient(fields)
	if err := db.Create(&patient).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to add patient",
			Err: err,
		})
		return
	}

	middleware.GetActivity(c).LogRecordAdded(middleware.GetActionID(c), patientKind.entity, patient.ID)
	util.CallSuccess(c.Out, fmt.Sprintf("Patient added successfully with ID %d.", patient.ID))
}

func ViewPatients(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	var patients []model.Patient
	if err := db.Order("id").Find(&patients).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to fetch patients",
			Err: err,
		})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Patient List ---")
	if len(patients) == 0 {
		fmt.Fprintln(c.Out, "No patients found.")
		return
	}

	fmt.Fprintf(c.Out, "%-5s %-25s %-5s %-8s %-30s %-12s %-6s\n", "ID", "Full Name", "Age", "Weight", "Address", "Contact", "Gender")
	for _, p := range patients {
		fmt.Fprintf(c.Out, "%-5d %-25s %-5d %-8.2f %-30s %-12s %-6s\n", p.ID, p.FullName, p.Age, p.Weight, p.Address, p.Contact, p.Gender)
	}
	fmt.Fprintf(c.Out, "\nTotal patients: %d\n", len(patients))
}

// EditPatient replaces every field of an existing patient.
func EditPatient(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Edit Patient ---")
	id, ok := lookupID(c, db, patientKind, "Enter patient ID to edit: ")
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "Enter new details:")
	fields, err := collectPatientFields(c.In)
	if inputAborted(c, err) {
		return
	}

	res := db.Model(&model.Patient{}).Where("id = ?", id).Updates(fields.Updates())
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{
			Msg: "Failed to update patient",
			Err: res.Error,
		})
		return
	}
	if res.RowsAffected == 0 {
		util.CallUserError(c.Out, util.ErrorParams{Msg: "No patient was updated."})
		return
	}

	middleware.GetActivity(c).LogRecordUpdated(middleware.GetActionID(c), patientKind.entity, id)
	util.CallSuccess(c.Out, "Patient updated successfully.")
}

func DeletePatient(c *console.Context) {
	deleteRecord(c, patientKind)
}
