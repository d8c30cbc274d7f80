package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type hospitalRequest struct {
	Name          string `json:"name" binding:"required" example:"Bir Hospital"`
	ProvinceID    uint   `json:"province_id" binding:"required" example:"3"`
	DistrictID    uint   `json:"district_id" binding:"required" example:"27"`
	CityID        uint   `json:"city_id" binding:"required" example:"301"`
	PhoneNo       string `json:"phone_no" binding:"required" example:"014221119"`
	MobileNo      string `json:"mobile_no" example:"9801234567"`
	EmailAddress  string `json:"email_address" binding:"required,email" example:"info@birhospital.org"`
	Website       string `json:"website" binding:"required" example:"https://birhospital.org"`
	NoOfBeds      uint   `json:"no_of_beds" example:"350"`
	DepartmentIDs []uint `json:"department_ids"`
	TreatmentIDs  []uint `json:"treatment_ids"`
}

func (r hospitalRequest) input() service.HospitalInput {
	return service.HospitalInput{
		Name:          r.Name,
		ProvinceID:    r.ProvinceID,
		DistrictID:    r.DistrictID,
		CityID:        r.CityID,
		PhoneNo:       r.PhoneNo,
		MobileNo:      r.MobileNo,
		EmailAddress:  r.EmailAddress,
		Website:       r.Website,
		NoOfBeds:      r.NoOfBeds,
		DepartmentIDs: r.DepartmentIDs,
		TreatmentIDs:  r.TreatmentIDs,
	}
}

type statusRequest struct {
	Status *bool `json:"status" binding:"required" example:"true"`
}

// ListHospitals godoc
// @Summary      List every hospital
// @Tags         Hospital
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=[]model.Hospital}
// @Failure      403 {object} util.APIResponse "Super admins only"
// @Router       /hospitals [get]
func ListHospitals(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	hospitals, err := service.ListHospitals(c.Request.Context(), db, middleware.GetScope(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospitals retrieved", Data: hospitals})
}

// CreateHospital godoc
// @Summary      Register a hospital
// @Description  The hospital starts inactive. department_ids and treatment_ids seed its edge sets.
// @Tags         Hospital
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body hospitalRequest true "Hospital"
// @Success      201 {object} util.APIResponse{data=model.Hospital} "Hospital created"
// @Failure      400 {object} util.APIResponse "Invalid request body"
// @Failure      404 {object} util.APIResponse "Treatments not found"
// @Failure      409 {object} util.APIResponse "Email address or website already used"
// @Router       /hospital [post]
func CreateHospital(c *gin.Context) {
	var req hospitalRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	h, err := service.CreateHospital(c.Request.Context(), db, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "hospital", h.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Hospital created", Data: h})
}

// GetHospital godoc
// @Summary      Show a hospital with its opd hours, departments and treatments
// @Tags         Hospital
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse{data=model.HospitalDetail}
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{hospital_id} [get]
func GetHospital(c *gin.Context) {
	id, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	detail, err := service.GetHospital(c.Request.Context(), db, middleware.GetScope(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital retrieved", Data: detail})
}

func UpdateHospital(c *gin.Context) {
	id, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	var req hospitalRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	h, err := service.UpdateHospital(c.Request.Context(), db, middleware.GetScope(c), id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "hospital", h.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital updated", Data: h})
}

func SetHospitalStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.SetHospitalStatus(c.Request.Context(), db, middleware.GetScope(c), id, *req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "status", "hospital", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital status updated"})
}

// DeleteHospital godoc
// @Summary      Delete a hospital and everything it owns
// @Tags         Hospital
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse "Hospital deleted"
// @Failure      403 {object} util.APIResponse "Super admins only"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{hospital_id} [delete]
func DeleteHospital(c *gin.Context) {
	id, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteHospital(c.Request.Context(), db, middleware.GetScope(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "hospital", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Hospital deleted"})
}
