package util

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/ariebrainware/dentist-api/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventSignupSuccess      SecurityEventType = "SIGNUP_SUCCESS"
	EventLogout             SecurityEventType = "LOGOUT"
	EventPhoneChanged       SecurityEventType = "PHONE_NUMBER_CHANGED"
	EventPatientRegistered  SecurityEventType = "PATIENT_REGISTERED"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventForbiddenAccess    SecurityEventType = "FORBIDDEN_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity SecurityEventType = "SUSPICIOUS_ACTIVITY"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType   SecurityEventType
	UserID      string
	PhoneNumber string
	Role        string
	IP          string
	UserAgent   string
	Message     string
	Details     map[string]interface{}
}

var (
	securityMu     sync.RWMutex
	securityLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "security").Logger()
	securityDB     *gorm.DB
)

// SetSecurityLogger routes security events through log.
func SetSecurityLogger(log zerolog.Logger) {
	securityMu.Lock()
	defer securityMu.Unlock()
	securityLogger = log.With().Str("component", "security").Logger()
}

// SetSecurityLoggerDB sets the database security events are persisted to.
// A nil db disables persistence.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityMu.Lock()
	defer securityMu.Unlock()
	securityDB = db
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogSecurityEvent logs a security event and persists it when a database is set.
// Persistence failures are logged and otherwise ignored.
func LogSecurityEvent(event SecurityEvent) {
	securityMu.RLock()
	log, db := securityLogger, securityDB
	securityMu.RUnlock()

	entry := log.Warn()
	if event.EventType == EventLoginSuccess || event.EventType == EventSignupSuccess ||
		event.EventType == EventLogout || event.EventType == EventPatientRegistered {
		entry = log.Info()
	}
	entry.
		Str("event", string(event.EventType)).
		Str("user_id", sanitizeLogValue(event.UserID)).
		Str("phonenumber", sanitizeLogValue(event.PhoneNumber)).
		Str("role", sanitizeLogValue(event.Role)).
		Str("ip", sanitizeLogValue(event.IP)).
		Str("user_agent", sanitizeLogValue(event.UserAgent)).
		Int("details_count", len(event.Details)).
		Msg(sanitizeLogValue(event.Message))

	if db == nil {
		return
	}

	var details datatypes.JSON
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			details = datatypes.JSON(b)
		}
	}

	row := model.SecurityLog{
		EventType:   string(event.EventType),
		UserID:      sanitizeLogValue(event.UserID),
		PhoneNumber: sanitizeLogValue(event.PhoneNumber),
		Role:        sanitizeLogValue(event.Role),
		IP:          sanitizeLogValue(event.IP),
		Location:    sanitizeLogValue(GetIPLocation(event.IP).String()),
		UserAgent:   sanitizeLogValue(event.UserAgent),
		Message:     sanitizeLogValue(event.Message),
		Details:     details,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Error().Err(err).Msg("failed to persist security event")
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(phone, role, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventLoginSuccess,
		PhoneNumber: phone,
		Role:        role,
		IP:          ip,
		UserAgent:   userAgent,
		Message:     "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(phone, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventLoginFailure,
		PhoneNumber: phone,
		IP:          ip,
		UserAgent:   userAgent,
		Message:     fmt.Sprintf("Login failed: %s", reason),
	})
}

// LogSignup logs an account being claimed or created through signup.
func LogSignup(userID uint, phone, ip, userAgent string, claimed bool) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventSignupSuccess,
		UserID:      fmt.Sprintf("%d", userID),
		PhoneNumber: phone,
		Role:        string(model.RolePatient),
		IP:          ip,
		UserAgent:   userAgent,
		Message:     "User signed up",
		Details:     map[string]interface{}{"claimed_existing": claimed},
	})
}

// LogLogout logs a logout event
func LogLogout(phone, role, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventLogout,
		PhoneNumber: phone,
		Role:        role,
		IP:          ip,
		UserAgent:   userAgent,
		Message:     "User logged out",
	})
}

// LogPhoneNumberChanged logs a self-service phone number change.
func LogPhoneNumberChanged(userID uint, oldPhone, newPhone, ip string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventPhoneChanged,
		UserID:      fmt.Sprintf("%d", userID),
		PhoneNumber: newPhone,
		IP:          ip,
		Message:     "Phone number changed",
		Details:     map[string]interface{}{"old_phonenumber": oldPhone},
	})
}

// LogPatientRegistered logs staff registering a patient.
func LogPatientRegistered(userID uint, patientPhone, staffPhone, ip string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventPatientRegistered,
		UserID:      fmt.Sprintf("%d", userID),
		PhoneNumber: patientPhone,
		IP:          ip,
		Message:     "Patient registered",
		Details:     map[string]interface{}{"registered_by": staffPhone},
	})
}

// LogUnauthorizedAccess logs requests without a usable token.
func LogUnauthorizedAccess(ip, userAgent, resource, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventUnauthorizedAccess,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Unauthorized access to %s: %s", resource, reason),
	})
}

// LogForbiddenAccess logs a valid caller reaching an operation its role does not allow.
func LogForbiddenAccess(phone, role, ip, resource string) {
	LogSecurityEvent(SecurityEvent{
		EventType:   EventForbiddenAccess,
		PhoneNumber: phone,
		Role:        role,
		IP:          ip,
		Message:     fmt.Sprintf("Forbidden access to %s", resource),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}
