package endpoint

import (
	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

// SetAssociation godoc
// @Summary      Replace an edge set
// @Description  kind is one of departments, hospital_treatments or department_treatments.
// @Description  Treatment sets must resolve to at least one existing treatment.
// @Tags         Association
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind path string true "Association kind"
// @Param        owner_id path int true "Hospital or department ID"
// @Param        request body idsRequest true "Target ids"
// @Success      200 {object} util.APIResponse "Association updated"
// @Failure      400 {object} util.APIResponse "Unknown kind"
// @Failure      404 {object} util.APIResponse "Owner or treatments not found"
// @Router       /associations/{kind}/{owner_id} [put]
func SetAssociation(c *gin.Context) {
	kind, err := service.ParseAssociationKind(c.Param("kind"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	ownerID, ok := parseUintParam(c, "owner_id")
	if !ok {
		return
	}
	var req idsRequest
	if !bindJSONOrRespond(c, &req) {
		return
	}
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	if req.IDs == nil {
		req.IDs = []uint{}
	}
	if err := service.SetAssociation(c.Request.Context(), db, middleware.GetScope(c), kind, ownerID, req.IDs); err != nil {
		respondServiceError(c, err)
		return
	}

	auditChange(c, "update", string(kind), ownerID)
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Association updated"})
}
