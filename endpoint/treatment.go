package endpoint

import (
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

type treatmentRequest struct {
	Name       string   `json:"name" binding:"required" example:"Echocardiography"`
	NepaliName string   `json:"nepali_name" binding:"required" example:"इकोकार्डियोग्राफी"`
	Type       string   `json:"type" binding:"required" example:"consulting"`
	Price      *float64 `json:"price" binding:"required" example:"2500"`
}

func (r treatmentRequest) input() service.TreatmentInput {
	return service.TreatmentInput{Name: r.Name, NepaliName: r.NepaliName, Type: r.Type, Price: *r.Price}
}

// ListTreatments godoc
// @Summary      List the treatment catalog
// @Tags         Treatment
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "general, consulting, surgical or therapy"
// @Success      200 {object} util.APIResponse{data=[]model.Treatment}
// @Router       /treatments [get]
func ListTreatments(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	treatments, err := service.ListTreatments(c.Request.Context(), db, c.Query("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Treatments retrieved", Data: treatments})
}

// CreateTreatment godoc
// @Summary      Add a treatment to the catalog
// @Tags         Treatment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body treatmentRequest true "Treatment"
// @Success      201 {object} util.APIResponse{data=model.Treatment} "Treatment created"
// @Failure      400 {object} util.APIResponse "Invalid type or price"
// @Failure      409 {object} util.APIResponse "Treatment already exists"
// @Router       /treatment [post]
func CreateTreatment(c *gin.Context) {
	var req treatmentRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	t, err := service.CreateTreatment(c.Request.Context(), db, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "create", "treatment", t.ID)
	util.CallCreated(c, util.APISuccessParams{Msg: "Treatment created", Data: t})
}

func GetTreatment(c *gin.Context) {
	id, ok := parseUintParam(c, "treatment_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	t, err := service.GetTreatment(c.Request.Context(), db, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Treatment retrieved", Data: t})
}

func UpdateTreatment(c *gin.Context) {
	id, ok := parseUintParam(c, "treatment_id")
	if !ok {
		return
	}
	var req treatmentRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	t, err := service.UpdateTreatment(c.Request.Context(), db, id, req.input())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", "treatment", t.ID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Treatment updated", Data: t})
}

func DeleteTreatment(c *gin.Context) {
	id, ok := parseUintParam(c, "treatment_id")
	if !ok {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if err := service.DeleteTreatment(c.Request.Context(), db, id); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "delete", "treatment", id)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Treatment deleted"})
}
