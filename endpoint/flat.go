package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
)

var flatKind = recordKind{
	entity:   "flat",
	label:    "Flat",
	newModel: func() interface{} { return &model.Flat{} },
}

func AddFlat(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Add Flat ---")
	number, err := c.In.RequiredString("Enter flat number: ", "Flat number")
	if inputAborted(c, err) {
		return
	}
	description, err := c.In.OptionalText("Enter description (optional): ")
	if inputAborted(c, err) {
		return
	}

	taken, err := numberTaken(db, flatKind, number, 0)
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to check flat number", Err: err})
		return
	}
	if taken {
		util.CallUserError(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("Flat number %s already exists.", number),
		})
		return
	}

	flat := model.Flat{Number: number, Description: model.OptionalText(description)}
	if err := db.Create(&flat).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to add flat", Err: err})
		return
	}

	middleware.GetActivity(c).LogRecordAdded(middleware.GetActionID(c), flatKind.entity, flat.ID)
	util.CallSuccess(c.Out, fmt.Sprintf("Flat added successfully with ID %d.", flat.ID))
}

// ViewFlats lists flats by number with the number of rooms assigned to each.
func ViewFlats(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	var flats []model.ListFlatResponse
	err := db.Table("flats").
		Select("flats.id, flats.number, flats.description, COUNT(rooms.id) AS room_count").
		Joins("LEFT JOIN rooms ON rooms.flat_id = flats.id").
		Group("flats.id, flats.number, flats.description").
		Order("flats.number").
		Scan(&flats).Error
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to fetch flats", Err: err})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Flat List ---")
	if len(flats) == 0 {
		fmt.Fprintln(c.Out, "No flats found.")
		return
	}

	fmt.Fprintf(c.Out, "%-5s %-12s %-35s %-6s\n", "ID", "Number", "Description", "Rooms")
	for _, f := range flats {
		fmt.Fprintf(c.Out, "%-5d %-12s %-35s %-6d\n", f.ID, f.Number, valueOrDash(f.Description), f.RoomCount)
	}
	fmt.Fprintf(c.Out, "\nTotal flats: %d\n", len(flats))
}

func EditFlat(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Edit Flat ---")
	id, ok := lookupID(c, db, flatKind, "Enter flat ID to edit: ")
	if !ok {
		return
	}

	var flat model.Flat
	if err := db.First(&flat, id).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to load flat", Err: err})
		return
	}
	fmt.Fprintf(c.Out, "Current number: %s, description: %s\n", flat.Number, valueOrDash(flat.Description))

	updates, ok := collectNumberedUpdates(c, db, flatKind, id)
	if !ok {
		return
	}
	if len(updates) == 0 {
		fmt.Fprintln(c.Out, "No changes made.")
		return
	}

	res := db.Model(&model.Flat{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to update flat", Err: res.Error})
		return
	}
	if res.RowsAffected == 0 {
		util.CallUserError(c.Out, util.ErrorParams{Msg: "No flat was updated."})
		return
	}

	middleware.GetActivity(c).LogRecordUpdated(middleware.GetActionID(c), flatKind.entity, id)
	util.CallSuccess(c.Out, "Flat updated successfully.")
}

// DeleteFlat removes a flat. Its rooms stay and become unassigned.
func DeleteFlat(c *console.Context) {
	deleteRecord(c, flatKind)
}

// AssignRoomToFlat puts an existing room into an existing flat, moving it out
// of any flat it was in.
func AssignRoomToFlat(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Assign Room to Flat ---")
	flatID, ok := lookupID(c, db, flatKind, "Enter flat ID: ")
	if !ok {
		return
	}
	roomID, ok := lookupID(c, db, roomKind, "Enter room ID to assign: ")
	if !ok {
		return
	}

	var room model.Room
	if err := db.First(&room, roomID).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to load room", Err: err})
		return
	}
	if room.FlatID != nil && *room.FlatID == flatID {
		util.CallUserError(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("Room %d is already assigned to flat %d.", roomID, flatID),
		})
		return
	}

	res := db.Model(&model.Room{}).Where("id = ?", roomID).Update("flat_id", flatID)
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to assign room", Err: res.Error})
		return
	}

	middleware.GetActivity(c).Log(util.ActivityEvent{
		EventType: util.EventRecordUpdated,
		ActionID:  middleware.GetActionID(c),
		Entity:    roomKind.entity,
		RecordID:  roomID,
		Message:   fmt.Sprintf("room %d assigned to flat %d", roomID, flatID),
		Details:   map[string]interface{}{"flat_id": flatID},
	})
	util.CallSuccess(c.Out, fmt.Sprintf("Room %d assigned to flat %d.", roomID, flatID))
}
