package endpoint

import (
	"net/http"
	"strconv"

	"github.com/ariebrainware/hospital-directory/identity"
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type doctorRequest struct {
	DepartmentID uint   `json:"department_id" binding:"required" example:"2"`
	RegNo        uint   `json:"reg_no" binding:"required" example:"10234"`
	EmailAddress string `json:"email_address" binding:"required,email" example:"sita@birhospital.org"`
	Degree       string `json:"degree" binding:"required" example:"MBBS, MD"`
	Speciality   string `json:"speciality" binding:"required" example:"Cardiology"`
	OnCall       bool   `json:"on_call"`

	// Used only when no user directory is configured.
	UserID       uint   `json:"user_id" example:"42"`
	FullName     string `json:"full_name" example:"Dr. Sita Sharma"`
	MobileNumber string `json:"mobile_number" example:"9801234567"`
}

// resolveProfile fills the account part of a doctor from dir, or from the
// request body when dir is nil.
func resolveProfile(c *gin.Context, dir identity.UserDirectory, req doctorRequest) (service.DoctorProfile, bool) {
	if dir == nil {
		return service.DoctorProfile{
			UserID:       req.UserID,
			FullName:     req.FullName,
			EmailAddress: req.EmailAddress,
			MobileNumber: req.MobileNumber,
		}, true
	}

	user, err := dir.LookupUser(c.Request.Context(), middleware.GetAccessToken(c), req.EmailAddress)
	if err != nil {
		util.CallError(c, identity.StatusCodeOf(err, http.StatusBadGateway), util.APIErrorParams{
			Msg: "Unable to resolve the doctor's account",
			Err: err,
		})
		return service.DoctorProfile{}, false
	}
	return service.DoctorProfile{
		UserID:       user.ID,
		FullName:     user.FullName,
		EmailAddress: user.Email,
		MobileNumber: user.Mobile,
	}, true
}

func doctorInput(c *gin.Context, dir identity.UserDirectory) (service.DoctorInput, bool) {
	var req doctorRequest
	if !bindJSONOrRespond(c, &req) {
		return service.DoctorInput{}, false
	}
	profile, ok := resolveProfile(c, dir, req)
	if !ok {
		return service.DoctorInput{}, false
	}
	return service.DoctorInput{
		DepartmentID: req.DepartmentID,
		RegNo:        req.RegNo,
		Degree:       req.Degree,
		Speciality:   req.Speciality,
		OnCall:       req.OnCall,
		Profile:      profile,
	}, true
}

// CreateDoctor godoc
// @Summary      Add a doctor to a hospital
// @Description  The department must be offered by the hospital. The doctor starts pending approval.
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        request body doctorRequest true "Doctor"
// @Success      201 {object} util.APIResponse{data=model.Doctor} "Doctor created"
// @Failure      404 {object} util.APIResponse "Department not offered by the hospital"
// @Failure      409 {object} util.APIResponse "Registration number or email taken"
// @Router       /hospital/{hospital_id}/doctors [post]
func CreateDoctor(dir identity.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		hospitalID, ok := parseUintParam(c, "hospital_id")
		if !ok {
			return
		}
		in, ok := doctorInput(c, dir)
		if !ok {
			return
		}
		db, ok := getDBOrRespond(c)
		if !ok {
			return
		}

		d, err := service.CreateDoctor(c.Request.Context(), db, middleware.GetScope(c), hospitalID, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		auditChange(c, "create", "doctor", d.ID)
		util.CallCreated(c, util.APISuccessParams{Msg: "Doctor created", Data: d})
	}
}

// ListDoctors godoc
// @Summary      List doctors of a hospital
// @Tags         Doctor
// @Produce      json
// @Security     BearerAuth
// @Param        hospital_id path int true "Hospital ID"
// @Param        department_id query int false "Only doctors of this department"
// @Success      200 {object} util.APIResponse{data=[]model.Doctor}
// @Router       /hospital/{hospital_id}/doctors [get]
func ListDoctors(c *gin.Context) {
	hospitalID, ok := parseUintParam(c, "hospital_id")
	if !ok {
		return
	}
	var departmentID uint
	if raw := c.Query("department_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			util.CallUserError(c, util.APIErrorParams{Msg: "Invalid department_id", Err: err})
			return
		}
		departmentID = uint(v)
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	doctors, err := service.ListDoctors(c.Request.Context(), db, middleware.GetScope(c), hospitalID, departmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctors retrieved", Data: doctors})
}

func GetDoctor(c *gin.Context) {
	id, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	d, err := service.GetDoctor(c.Request.Context(), db, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor retrieved", Data: d})
}

func UpdateDoctor(dir identity.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUintParam(c, "doctor_id")
		if !ok {
			return
		}
		in, ok := doctorInput(c, dir)
		if !ok {
			return
		}
		db, ok := getDBOrRespond(c)
		if !ok {
			return
		}

		d, err := service.UpdateDoctor(c.Request.Context(), db, middleware.GetScope(c), id, in)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		auditChange(c, "update", "doctor", d.ID)
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor updated", Data: d})
	}
}

func SetDoctorStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "doctor_id")
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

	d, err := service.SetDoctorStatus(c.Request.Context(), db, middleware.GetScope(c), id, *req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "status", "doctor", d.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor status updated", Data: d})
}

func DeleteDoctor(c *gin.Context) {
	id, ok := parseUintParam(c, "doctor_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteDoctor(c.Request.Context(), db, middleware.GetScope(c), id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "doctor", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor deleted"})
}
