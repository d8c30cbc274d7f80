package util

import (
	"encoding/json"
	"strings"

	"github.com/ariebrainware/hospital-directory/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEventType represents different types of audit events
type AuditEventType string

const (
	EventUnauthorizedAccess AuditEventType = "UNAUTHORIZED_ACCESS"
	EventForbiddenAccess    AuditEventType = "FORBIDDEN_ACCESS"
	EventRateLimitExceeded  AuditEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity AuditEventType = "SUSPICIOUS_ACTIVITY"
	EventResourceChanged    AuditEventType = "RESOURCE_CHANGED"
	EventEndpointCall       AuditEventType = "ENDPOINT_CALL"
)

// AuditEvent represents an audit event to be logged
type AuditEvent struct {
	EventType AuditEventType
	UserID    string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var auditDB *gorm.DB

// SetAuditLoggerDB sets the gorm DB used to persist audit events. A nil db
// keeps events in the log stream only.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent logs an audit event and persists it best-effort.
func LogAuditEvent(event AuditEvent) {
	loc := GetIPLocation(event.IP)

	logger.Info().
		Str("event", string(event.EventType)).
		Str("user_id", sanitizeLogValue(event.UserID)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("location", loc.String()).
		Int("details", len(event.Details)).
		Msg(sanitizeLogValue(event.Message))

	if auditDB == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}
	entry := model.AuditLog{
		EventType: string(event.EventType),
		UserID:    sanitizeLogValue(event.UserID),
		IP:        sanitizeLogValue(event.IP),
		Location:  sanitizeLogValue(loc.String()),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
		Details:   details,
	}
	if err := auditDB.Create(&entry).Error; err != nil {
		logger.Error().Err(err).Msg("failed to persist audit event")
	}
}

// LogForbiddenAccess records a caller acting outside its hospital scope.
func LogForbiddenAccess(userID, ip, resource, reason string) {
	LogAuditEvent(AuditEvent{
		EventType: EventForbiddenAccess,
		UserID:    userID,
		IP:        ip,
		Message:   "Forbidden access to " + resource + ": " + reason,
		Details:   map[string]interface{}{"resource": resource},
	})
}

// LogUnauthorizedAccess logs rejected or unverifiable credentials.
func LogUnauthorizedAccess(ip, resource, reason string) {
	LogAuditEvent(AuditEvent{
		EventType: EventUnauthorizedAccess,
		IP:        ip,
		Message:   "Unauthorized access to " + resource + ": " + reason,
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogAuditEvent(AuditEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   "Rate limit exceeded for endpoint: " + endpoint,
	})
}

// LogResourceChanged records a committed mutation.
func LogResourceChanged(userID, ip, action, resource string, id uint) {
	LogAuditEvent(AuditEvent{
		EventType: EventResourceChanged,
		UserID:    userID,
		IP:        ip,
		Message:   action + " " + resource,
		Details:   map[string]interface{}{"action": action, "resource": resource, "id": id},
	})
}
