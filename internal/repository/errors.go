package repository

import (
	"database/sql"
	"errors"

	"mentor-match/internal/database"

	"github.com/google/uuid"
)

var (
	ErrStudentProfileNotFound = errors.New("student profile not found")
	ErrMentorNotFound         = errors.New("mentor not found")
	ErrOpportunityNotFound    = errors.New("opportunity not found")
	ErrApplicationNotFound    = errors.New("application not found")
)

func isNoRows(err error) bool {
	return errors.Is(err, database.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		out = append(out, id.String())
	}
	return out
}
