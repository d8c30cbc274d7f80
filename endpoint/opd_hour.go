package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type opdHourRequest struct {
	Day         string `json:"day" binding:"required" example:"Monday"`
	OpeningTime string `json:"opening_time" binding:"required" example:"08:00:00"`
	ClosingTime string `json:"closing_time" binding:"required" example:"17:00:00"`
	IsOpen      *bool  `json:"is_open" example:"true"`
}

func (r opdHourRequest) input() service.OpdHourInput {
	return service.OpdHourInput{
		Day:         r.Day,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		IsOpen:      r.IsOpen,
	}
}

// CreateOpdHour godoc
// @Summary      Create opd hours of a hospital
// @Description  Stores the opening window of one weekday. A hospital has one window per day.
// @Tags         OpdHour
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        request body opdHourRequest true "Opd hour"
// @Success      201 {object} util.APIResponse{data=model.OpdHour} "Opd hours created"
// @Failure      400 {object} util.APIResponse "Invalid day or time range"
// @Failure      403 {object} util.APIResponse "Forbidden"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Failure      409 {object} util.APIResponse "Opd hours already exist for the day"
// @Router       /hospital/{hospital_id}/opd-hours [post]
func CreateOpdHour(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	var req opdHourRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.CreateOpdHour(c.Request.Context(), db, middleware.GetScope(c), hospitalID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "opd_hour", hour.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Opd hours created", Data: hour})
}

// ListOpdHours godoc
// @Summary      List opd hours of a hospital
// @Tags         OpdHour
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse{data=[]model.OpdHour}
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{hospital_id}/opd-hours [get]
func ListOpdHours(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hours, err := service.ListOpdHours(c.Request.Context(), db, hospitalID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Opd hours retrieved", Data: hours})
}

// GetOpdHour godoc
// @Summary      Show one opd hour of a hospital
// @Tags         OpdHour
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        opd_hour_id path int true "Opd hour ID"
// @Success      200 {object} util.APIResponse{data=model.OpdHour}
// @Failure      404 {object} util.APIResponse "Opd hour not found"
// @Router       /hospital/{hospital_id}/opd-hours/{opd_hour_id} [get]
func GetOpdHour(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "opd_hour_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.GetOpdHour(c.Request.Context(), db, hospitalID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Opd hour retrieved", Data: hour})
}

// UpdateOpdHour godoc
// @Summary      Update opd hours of a hospital
// @Description  Changing the day is rejected when that day already has a window.
// @Tags         OpdHour
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        opd_hour_id path int true "Opd hour ID"
// @Param        request body opdHourRequest true "Opd hour"
// @Success      200 {object} util.APIResponse{data=model.OpdHour} "Opd hours updated"
// @Failure      400 {object} util.APIResponse "Invalid day or time range"
// @Failure      404 {object} util.APIResponse "Opd hour not found"
// @Failure      409 {object} util.APIResponse "Opd hours already exist for the day"
// @Router       /hospital/{hospital_id}/opd-hours/{opd_hour_id} [put]
func UpdateOpdHour(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "opd_hour_id")
	if !ok {
		return
	}
	var req opdHourRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.UpdateOpdHour(c.Request.Context(), db, middleware.GetScope(c), hospitalID, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "opd_hour", hour.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Opd hours updated", Data: hour})
}
