package endpoint

import (
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type departmentRequest struct {
	Name         string `json:"name" binding:"required" example:"Cardiology"`
	NepaliName   string `json:"nepali_name" binding:"required" example:"मुटु रोग"`
	TreatmentIDs []uint `json:"treatment_ids"`
}

func (r departmentRequest) input() service.DepartmentInput {
	return service.DepartmentInput{Name: r.Name, NepaliName: r.NepaliName, TreatmentIDs: r.TreatmentIDs}
}

// ListDepartments godoc
// @Summary      List departments
// @Tags         Department
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=[]model.Department}
// @Router       /departments [get]
func ListDepartments(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	departments, err := service.ListDepartments(c.Request.Context(), db)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Departments retrieved", Data: departments})
}

// CreateDepartment godoc
// @Summary      Create a department
// @Tags         Department
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body departmentRequest true "Department"
// @Success      201 {object} util.APIResponse{data=model.Department} "Department created"
// @Failure      404 {object} util.APIResponse "Treatments not found"
// @Failure      409 {object} util.APIResponse "Department already exists"
// @Router       /department [post]
func CreateDepartment(c *gin.Context) {
	var req departmentRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	d, err := service.CreateDepartment(c.Request.Context(), db, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "department", d.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Department created", Data: d})
}

func GetDepartment(c *gin.Context) {
	id, ok := parseUintParam(c, "department_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	detail, err := service.GetDepartment(c.Request.Context(), db, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department retrieved", Data: detail})
}

func UpdateDepartment(c *gin.Context) {
	id, ok := parseUintParam(c, "department_id")
	if !ok {
		return
	}
	var req departmentRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	d, err := service.UpdateDepartment(c.Request.Context(), db, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "department", d.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department updated", Data: d})
}

// DeleteDepartment refuses departments that still have doctors.
func DeleteDepartment(c *gin.Context) {
	id, ok := parseUintParam(c, "department_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteDepartment(c.Request.Context(), db, id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "department", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Department deleted"})
}
