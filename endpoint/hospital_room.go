package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type roomRequest struct {
	RoomNo       uint     `json:"room_no" binding:"required" example:"101"`
	RoomType     string   `json:"room_type" binding:"required" example:"deluxe"`
	Availability *bool    `json:"availability" binding:"required" example:"true"`
	PricePerDay  *float64 `json:"price_per_day" binding:"required" example:"3500"`
}

func (r roomRequest) input() service.RoomInput {
	return service.RoomInput{
		RoomNo:       r.RoomNo,
		RoomType:     r.RoomType,
		Availability: *r.Availability,
		PricePerDay:  *r.PricePerDay,
	}
}

// CreateRoom godoc
// @Summary      Add a room to a hospital
// @Tags         HospitalRoom
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        request body roomRequest true "Room"
// @Success      201 {object} util.APIResponse{data=model.HospitalRoom} "Hospital room created"
// @Failure      409 {object} util.APIResponse "Room number already used"
// @Router       /hospital/{hospital_id}/rooms [post]
func CreateRoom(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	var req roomRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	room, err := service.CreateRoom(c.Request.Context(), db, middleware.GetScope(c), hospitalID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "hospital_room", room.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Hospital room created", Data: room})
}

// ListRooms godoc
// @Summary      List rooms of a hospital
// @Tags         HospitalRoom
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        room_type query string false "general, sharing, deluxe or vip"
// @Param        availability query bool false "Filter by availability"
// @Success      200 {object} util.APIResponse{data=[]model.HospitalRoom}
// @Router       /hospital/{hospital_id}/rooms [get]
func ListRooms(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	availability, ok := parseBoolQuery(c, "availability")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	rooms, err := service.ListRooms(c.Request.Context(), db, middleware.GetScope(c), hospitalID, c.Query("room_type"), availability)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital rooms retrieved", Data: rooms})
}

func GetRoom(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "room_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	room, err := service.GetRoom(c.Request.Context(), db, middleware.GetScope(c), hospitalID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital room retrieved", Data: room})
}

func UpdateRoom(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "room_id")
	if !ok {
		return
	}
	var req roomRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	room, err := service.UpdateRoom(c.Request.Context(), db, middleware.GetScope(c), hospitalID, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "hospital_room", room.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital room updated", Data: room})
}

func DeleteRoom(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "room_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteRoom(c.Request.Context(), db, middleware.GetScope(c), hospitalID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "hospital_room", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital room deleted"})
}
