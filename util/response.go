package util

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope of every response body.
type APIResponse struct {
	StatusCode int         `json:"status_code"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

// CallError writes an error envelope with the given HTTP status and aborts the chain.
func CallError(c *gin.Context, status int, params APIErrorParams) {
	response := APIResponse{
		StatusCode: status,
		Success:    false,
		Message:    params.Msg,
	}
	if params.Err != nil {
		response.Error = params.Err.Error()
	}
	c.AbortWithStatusJSON(status, response)
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusNotFound, params)
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusBadRequest, params)
}

// CallServerError is for return API response server error
func CallServerError(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusInternalServerError, params)
}

// CallConflict is for duplicate resources
func CallConflict(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusConflict, params)
}

// CallForbidden is for callers that are known but not allowed
func CallForbidden(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusForbidden, params)
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusUnauthorized, params)
}

// CallTooManyRequests is for rate limited callers
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	CallError(c, http.StatusTooManyRequests, params)
}

// CallSuccessOK is for return API response with status code 200, you need to specify msg, and data as function parameter
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{
		StatusCode: http.StatusOK,
		Success:    true,
		Message:    params.Msg,
		Data:       params.Data,
	})
}

// CallCreated is CallSuccessOK with status code 201
func CallCreated(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusCreated, APIResponse{
		StatusCode: http.StatusCreated,
		Success:    true,
		Message:    params.Msg,
		Data:       params.Data,
	})
}

// NormalizeName normalizes a name by trimming leading/trailing whitespace
// and collapsing multiple internal spaces into single spaces.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
