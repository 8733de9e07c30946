package endpoint

import "github.com/ariebrainware/clinic-desk/console"

// ClinicMenu builds the menu tree of the clinic program.
func ClinicMenu(title string, rules BookingRules) *console.Menu {
	doctors := &console.Menu{
		Title: "DOCTOR MANAGEMENT",
		Items: []console.Item{
			{Key: "1", Label: "Add Doctor", Action: AddDoctor},
			{Key: "2", Label: "Edit Doctor", Action: EditDoctor},
			{Key: "3", Label: "Delete Doctor", Action: DeleteDoctor},
			{Key: "4", Label: "View Doctors", Action: ViewDoctors},
		},
	}
	patients := &console.Menu{
		Title: "PATIENT MANAGEMENT",
		Items: []console.Item{
			{Key: "1", Label: "Add Patient", Action: AddPatient},
			{Key: "2", Label: "Edit Patient", Action: EditPatient},
			{Key: "3", Label: "Delete Patient", Action: DeletePatient},
			{Key: "4", Label: "View Patients", Action: ViewPatients},
		},
	}
	appointments := &console.Menu{
		Title: "APPOINTMENT MANAGEMENT",
		Items: []console.Item{
			{Key: "g", Label: "Schedule Appointment", Action: ScheduleAppointment(rules)},
			{Key: "h", Label: "Edit Appointment", Action: EditAppointment(rules)},
			{Key: "i", Label: "Delete Appointment", Action: DeleteAppointment},
			{Key: "j", Label: "View Appointments", Action: ViewAppointments},
			{Key: "k", Label: "Lookup by Token Number", Action: LookupAppointmentByToken},
		},
	}

	receptionist := &console.Menu{
		Title:     "RECEPTIONIST SECTION",
		BackLabel: "Logout",
		Items: []console.Item{
			{Key: "1", Label: "Doctor Management", Sub: doctors},
			{Key: "2", Label: "Patient Management", Sub: patients},
			{Key: "3", Label: "Appointment Management", Sub: appointments},
		},
	}
	admin := &console.Menu{
		Title:     "ADMIN SECTION",
		BackLabel: "Logout",
		Items: []console.Item{
			{Key: "1", Label: "View All System Data", Sub: &console.Menu{
				Title: "SYSTEM DATA",
				Items: []console.Item{
					{Key: "1", Label: "View All Doctors", Action: ViewDoctors},
					{Key: "2", Label: "View All Patients", Action: ViewPatients},
					{Key: "3", Label: "View All Appointments", Action: ViewAppointments},
				},
			}},
			{Key: "2", Label: "Generate Reports", Sub: &console.Menu{
				Title: "REPORTS",
				Items: []console.Item{
					{Key: "1", Label: "Daily Appointment Report", Action: ComingSoon("Daily appointment report")},
					{Key: "2", Label: "Doctor Workload Report", Action: ComingSoon("Doctor workload report")},
					{Key: "3", Label: "Patient Statistics", Action: ComingSoon("Patient statistics")},
				},
			}},
			{Key: "3", Label: "Recent Activity", Action: ViewActivity},
		},
	}

	return &console.Menu{
		Title:     title,
		BackLabel: "Exit",
		Items: []console.Item{
			{Key: "1", Label: "Receptionist Section", Sub: receptionist},
			{Key: "2", Label: "Admin Section", Sub: admin},
		},
	}
}

// RentalMenu builds the menu tree of the rental program.
func RentalMenu(title string) *console.Menu {
	rooms := &console.Menu{
		Title:     "ROOM MANAGEMENT",
		BackLabel: "Return",
		Items: []console.Item{
			{Key: "1", Label: "Add Room", Action: AddRoom},
			{Key: "2", Label: "View Rooms", Action: ViewRooms},
			{Key: "3", Label: "Edit Room", Action: EditRoom},
			{Key: "4", Label: "Delete Room", Action: DeleteRoom},
		},
	}
	flats := &console.Menu{
		Title:     "FLAT MANAGEMENT",
		BackLabel: "Return",
		Items: []console.Item{
			{Key: "1", Label: "Add Flat", Action: AddFlat},
			{Key: "2", Label: "View Flats", Action: ViewFlats},
			{Key: "3", Label: "Edit Flat", Action: EditFlat},
			{Key: "4", Label: "Delete Flat", Action: DeleteFlat},
			{Key: "5", Label: "Assign Rooms to Flat", Action: AssignRoomToFlat},
		},
	}

	return &console.Menu{
		Title:     title,
		BackLabel: "Exit",
		Items: []console.Item{
			{Key: "1", Label: "Property Structure Management", Sub: &console.Menu{
				Title:     "PROPERTY STRUCTURE MANAGEMENT",
				BackLabel: "Return",
				Items: []console.Item{
					{Key: "1", Label: "Room Management", Sub: rooms},
					{Key: "2", Label: "Flat Management", Sub: flats},
				},
			}},
			{Key: "2", Label: "Tenant Management", Action: ComingSoon("Tenant management")},
			{Key: "3", Label: "Rent and Utility Management", Action: ComingSoon("Rent and utility management")},
			{Key: "4", Label: "Reports", Action: ComingSoon("Reports")},
			{Key: "5", Label: "Data Export (CSV)", Action: ComingSoon("Data export")},
		},
	}
}
