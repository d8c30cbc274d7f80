package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ariebrainware/hospital-directory/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger records every state-changing request as an audit
// event. Reads are left to RequestLogger.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions || c.Request.Method == http.MethodHead {
			return
		}

		status := c.Writer.Status()
		scope := GetScope(c)
		details := map[string]interface{}{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"raw_path":    c.Request.URL.Path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  GetRequestID(c),
		}
		if scope.HospitalID != 0 {
			details["hospital_id"] = scope.HospitalID
		}

		util.LogAuditEvent(util.AuditEvent{
			EventType: util.EventEndpointCall,
			UserID:    fmt.Sprintf("%d", scope.UserID),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, status),
			Details:   details,
		})
	}
}
