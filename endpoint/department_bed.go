package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type bedRequest struct {
	Availability *bool    `json:"availability" binding:"required" example:"true"`
	PricePerDay  *float64 `json:"price_per_day" binding:"required" example:"500"`
}

func (r bedRequest) input() service.BedInput {
	return service.BedInput{Availability: *r.Availability, PricePerDay: *r.PricePerDay}
}

// bedPath reads the hospital and department ids shared by every bed route.
func bedPath(c *gin.Context) (hospitalID, departmentID uint, ok bool) {
	if hospitalID, ok = parseUintParam(c, "hospital_id"); !ok {
		return
	}
	departmentID, ok = parseUintParam(c, "department_id")
	return
}

// CreateBed godoc
// @Summary      Add a bed to a department
// @Description  Issues the next bed number of the department and increments its bed count.
// @Tags         DepartmentBed
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        department_id path int true "Department ID"
// @Param        request body bedRequest true "Bed"
// @Success      201 {object} util.APIResponse{data=model.DepartmentBed} "Department bed created"
// @Failure      403 {object} util.APIResponse "Forbidden"
// @Failure      404 {object} util.APIResponse "Hospital or department not found"
// @Router       /hospital/{hospital_id}/department/{department_id}/beds [post]
func CreateBed(c *gin.Context) {
	hospitalID, departmentID, ok := bedPath(c)
	if !ok {
		return
	}
	var req bedRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	bed, err := service.CreateBed(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "department_bed", bed.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Department bed created", Data: bed})
}

// DeleteLastBed godoc
// @Summary      Remove the highest numbered bed of a department
// @Description  Refused while that bed is unavailable.
// @Tags         DepartmentBed
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        department_id path int true "Department ID"
// @Success      200 {object} util.APIResponse "Department bed deleted"
// @Failure      403 {object} util.APIResponse "Bed is unavailable or forbidden"
// @Failure      404 {object} util.APIResponse "Department has no beds"
// @Router       /hospital/{hospital_id}/department/{department_id}/beds [delete]
func DeleteLastBed(c *gin.Context) {
	hospitalID, departmentID, ok := bedPath(c)
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteLastBed(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "department_bed", departmentID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department bed deleted"})
}

// ListBeds godoc
// @Summary      List beds of a department
// @Tags         DepartmentBed
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        department_id path int true "Department ID"
// @Param        availability query bool false "Filter by availability"
// @Success      200 {object} util.APIResponse{data=[]model.DepartmentBed}
// @Router       /hospital/{hospital_id}/department/{department_id}/beds [get]
func ListBeds(c *gin.Context) {
	hospitalID, departmentID, ok := bedPath(c)
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

	beds, err := service.ListBeds(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID, availability)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department beds retrieved", Data: beds})
}

func GetBed(c *gin.Context) {
	hospitalID, departmentID, ok := bedPath(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "bed_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	bed, err := service.GetBed(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department bed retrieved", Data: bed})
}

// UpdateBed changes availability and price. The bed number never changes.
func UpdateBed(c *gin.Context) {
	hospitalID, departmentID, ok := bedPath(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "bed_id")
	if !ok {
		return
	}
	var req bedRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	bed, err := service.UpdateBed(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "department_bed", bed.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department bed updated", Data: bed})
}
