package logger

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FieldStudentID     = "student_id"
	FieldMentorID      = "mentor_id"
	FieldOpportunityID = "opportunity_id"
	FieldRequestID     = "request_id"
	FieldCacheKey      = "cache_key"
)

type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, skipping entries with
// an empty key or value.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

func StudentID(id uuid.UUID) zap.Field {
	return zap.String(FieldStudentID, id.String())
}

func MentorID(id uuid.UUID) zap.Field {
	return zap.String(FieldMentorID, id.String())
}

func OpportunityID(id uuid.UUID) zap.Field {
	return zap.String(FieldOpportunityID, id.String())
}

func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
