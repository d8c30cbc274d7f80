package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ariebrainware/hospital-directory/middleware"
	"github.com/ariebrainware/hospital-directory/service"
	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return false
	}
	return true
}

func getDBOrRespond(c *gin.Context) (*gorm.DB, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database connection not available", Err: fmt.Errorf("db is nil")})
		return nil, false
	}
	return db, true
}

// parseUintParam reads a positive numeric path parameter.
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s", name),
			Err: fmt.Errorf("%s must be a positive integer, got %q", name, raw),
		})
		return 0, false
	}
	return uint(id), true
}

// parseBoolQuery returns nil when the query parameter is absent.
func parseBoolQuery(c *gin.Context, name string) (*bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s", name),
			Err: fmt.Errorf("%s must be true or false", name),
		})
		return nil, false
	}
	return &v, true
}

// respondServiceError translates a service failure into the matching status.
func respondServiceError(c *gin.Context, err error) {
	msg := "Internal server error"
	var se *service.Error
	if errors.As(err, &se) {
		msg = se.Message
	}

	params := util.APIErrorParams{Msg: msg, Err: err}
	switch service.KindOf(err) {
	case service.KindInvalidInput, service.KindInvalidRange, service.KindInvalidState:
		util.CallUserError(c, params)
	case service.KindNotFound:
		util.CallErrorNotFound(c, params)
	case service.KindConflict:
		util.CallConflict(c, params)
	case service.KindForbidden:
		scope := middleware.GetScope(c)
		util.LogForbiddenAccess(fmt.Sprint(scope.UserID), c.ClientIP(), c.Request.URL.Path, msg)
		util.CallForbidden(c, params)
	default:
		util.Logger().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		util.CallError(c, http.StatusInternalServerError, params)
	}
}

// auditChange records a successful mutation made by the current caller.
func auditChange(c *gin.Context, action, resource string, id uint) {
	scope := middleware.GetScope(c)
	util.LogResourceChanged(fmt.Sprint(scope.UserID), c.ClientIP(), action, resource, id)
}

// idsRequest is the body of every edge replacement.
type idsRequest struct {
	IDs []uint `json:"ids"`
}
