package endpoint

import (
	"fmt"

	"github.com/ariebrainware/clinic-desk/console"
	"github.com/ariebrainware/clinic-desk/middleware"
	"github.com/ariebrainware/clinic-desk/model"
	"github.com/ariebrainware/clinic-desk/util"
	"gorm.io/gorm"
)

var roomKind = recordKind{
	entity:   "room",
	label:    "Room",
	newModel: func() interface{} { return &model.Room{} },
}

// numberTaken reports whether another row of the table already uses number.
func numberTaken(db *gorm.DB, kind recordKind, number string, exclude uint) (bool, error) {
	var count int64
	q := db.Model(kind.newModel()).Where("number = ?", number)
	if exclude != 0 {
		q = q.Where("id <> ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func AddRoom(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Add Room ---")
	number, err := c.In.RequiredString("Enter room number: ", "Room number")
	if inputAborted(c, err) {
		return
	}
	description, err := c.In.OptionalText("Enter description (optional): ")
	if inputAborted(c, err) {
		return
	}

	taken, err := numberTaken(db, roomKind, number, 0)
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to check room number", Err: err})
		return
	}
	if taken {
		util.CallUserError(c.Out, util.ErrorParams{
			Msg: fmt.Sprintf("Room number %s already exists.", number),
		})
		return
	}

	room := model.Room{Number: number, Description: model.OptionalText(description)}
	if err := db.Create(&room).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to add room", Err: err})
		return
	}

	middleware.GetActivity(c).LogRecordAdded(middleware.GetActionID(c), roomKind.entity, room.ID)
	util.CallSuccess(c.Out, fmt.Sprintf("Room added successfully with ID %d.", room.ID))
}

// ViewRooms lists rooms by number with the flat each one is assigned to.
func ViewRooms(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	var rooms []model.ListRoomResponse
	err := db.Table("rooms").
		Select("rooms.id, rooms.number, rooms.description, flats.number AS flat_number").
		Joins("LEFT JOIN flats ON flats.id = rooms.flat_id").
		Order("rooms.number").
		Scan(&rooms).Error
	if err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to fetch rooms", Err: err})
		return
	}

	fmt.Fprintln(c.Out, "\n--- Room List ---")
	if len(rooms) == 0 {
		fmt.Fprintln(c.Out, "No rooms found.")
		return
	}

	fmt.Fprintf(c.Out, "%-5s %-12s %-35s %-10s\n", "ID", "Number", "Description", "Flat")
	for _, r := range rooms {
		fmt.Fprintf(c.Out, "%-5d %-12s %-35s %-10s\n", r.ID, r.Number, valueOrDash(r.Description), valueOrDash(r.FlatNumber))
	}
	fmt.Fprintf(c.Out, "\nTotal rooms: %d\n", len(rooms))
}

// EditRoom changes the fields that were typed; a blank answer keeps the current value.
func EditRoom(c *console.Context) {
	db, ok := requireDB(c)
	if !ok {
		return
	}

	fmt.Fprintln(c.Out, "\n--- Edit Room ---")
	id, ok := lookupID(c, db, roomKind, "Enter room ID to edit: ")
	if !ok {
		return
	}

	var room model.Room
	if err := db.First(&room, id).Error; err != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to load room", Err: err})
		return
	}
	fmt.Fprintf(c.Out, "Current number: %s, description: %s\n", room.Number, valueOrDash(room.Description))

	updates, ok := collectNumberedUpdates(c, db, roomKind, id)
	if !ok {
		return
	}
	if len(updates) == 0 {
		fmt.Fprintln(c.Out, "No changes made.")
		return
	}

	res := db.Model(&model.Room{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		util.CallServerError(c.ErrOut, util.ErrorParams{Msg: "Failed to update room", Err: res.Error})
		return
	}
	if res.RowsAffected == 0 {
		util.CallUserError(c.Out, util.ErrorParams{Msg: "No room was updated."})
		return
	}

	middleware.GetActivity(c).LogRecordUpdated(middleware.GetActionID(c), roomKind.entity, id)
	util.CallSuccess(c.Out, "Room updated successfully.")
}

// collectNumberedUpdates reads the blank-keeps-value fields shared by rooms and flats.
func collectNumberedUpdates(c *console.Context, db *gorm.DB, kind recordKind, id uint) (map[string]interface{}, bool) {
	updates := map[string]interface{}{}

	number, err := c.In.OptionalText("Enter new number (leave blank to keep current): ")
	if inputAborted(c, err) {
		return nil, false
	}
	description, err := c.In.OptionalText("Enter new description (leave blank to keep current): ")
	if inputAborted(c, err) {
		return nil, false
	}

	if number != "" {
		taken, err := numberTaken(db, kind, number, id)
		if err != nil {
			util.CallServerError(c.ErrOut, util.ErrorParams{
				Msg: fmt.Sprintf("Failed to check %s number", kind.entity),
				Err: err,
			})
			return nil, false
		}
		if taken {
			util.CallUserError(c.Out, util.ErrorParams{
				Msg: fmt.Sprintf("%s number %s already exists.", kind.label, number),
			})
			return nil, false
		}
		updates["number"] = number
	}
	if description != "" {
		updates["description"] = description
	}
	return updates, true
}

func DeleteRoom(c *console.Context) {
	deleteRecord(c, roomKind)
}
