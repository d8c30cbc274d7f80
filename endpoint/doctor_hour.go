package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type doctorHourRequest struct {
	Day           string `json:"day" binding:"required" example:"Monday"`
	AvailableFrom string `json:"available_from" binding:"required" example:"09:00:00"`
	AvailableTo   string `json:"available_to" binding:"required" example:"13:00:00"`
	IsAvailable   *bool  `json:"is_available" example:"true"`
}

func (r doctorHourRequest) input() service.DoctorHourInput {
	return service.DoctorHourInput{
		Day:           r.Day,
		AvailableFrom: r.AvailableFrom,
		AvailableTo:   r.AvailableTo,
		IsAvailable:   r.IsAvailable,
	}
}

// CreateDoctorHour godoc
// @Summary      Create doctor hours
// @Description  The window must lie inside the opd hours of the doctor's hospital for the same day.
// @Tags         DoctorHour
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        doctor_id path int true "Doctor ID"
// @Param        request body doctorHourRequest true "Doctor hour"
// @Success      201 {object} util.APIResponse{data=model.DoctorHour} "Doctor hours created"
// @Failure      400 {object} util.APIResponse "Invalid window or opd hours not set"
// @Failure      403 {object} util.APIResponse "Forbidden"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Failure      409 {object} util.APIResponse "Doctor hours already exist for the day"
// @Router       /doctor/{doctor_id}/doctor-hours [post]
func CreateDoctorHour(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	var req doctorHourRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.CreateDoctorHour(c.Request.Context(), db, middleware.GetScope(c), doctorID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "doctor_hour", hour.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Doctor hours created", Data: hour})
}

// ListDoctorHours godoc
// @Summary      List doctor hours
// @Tags         DoctorHour
// @Produce      json
// @Security     BearerAuth
// @Param        doctor_id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=[]model.DoctorHour}
// @Router       /doctor/{doctor_id}/doctor-hours [get]
func ListDoctorHours(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hours, err := service.ListDoctorHours(c.Request.Context(), db, doctorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor hours retrieved", Data: hours})
}

func GetDoctorHour(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "doctor_hour_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.GetDoctorHour(c.Request.Context(), db, doctorID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor hour retrieved", Data: hour})
}

// UpdateDoctorHour godoc
// @Summary      Update doctor hours
// @Tags         DoctorHour
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        doctor_id path int true "Doctor ID"
// @Param        doctor_hour_id path int true "Doctor hour ID"
// @Param        request body doctorHourRequest true "Doctor hour"
// @Success      200 {object} util.APIResponse{data=model.DoctorHour} "Doctor hours updated"
// @Failure      400 {object} util.APIResponse "Invalid window or opd hours not set"
// @Failure      404 {object} util.APIResponse "Doctor hour not found"
// @Failure      409 {object} util.APIResponse "Doctor hours already exist for the day"
// @Router       /doctor/{doctor_id}/doctor-hours/{doctor_hour_id} [put]
func UpdateDoctorHour(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "doctor_hour_id")
	if !ok {
		return
	}
	var req doctorHourRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	hour, err := service.UpdateDoctorHour(c.Request.Context(), db, middleware.GetScope(c), doctorID, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "doctor_hour", hour.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor hours updated", Data: hour})
}

func DeleteDoctorHour(c *gin.Context) {
	doctorID, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "doctor_hour_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteDoctorHour(c.Request.Context(), db, middleware.GetScope(c), doctorID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "doctor_hour", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor hours deleted"})
}
