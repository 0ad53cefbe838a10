package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

const mentorMatchesCachePrefix = "matches:mentors:"

type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// MentorMatchesCacheKey is keyed by the student's user id so that renames or
// email changes never orphan an entry.
func MentorMatchesCacheKey(studentID uuid.UUID) string {
	return mentorMatchesCachePrefix + studentID.String()
}

func MentorMatchesCachePattern() string {
	return mentorMatchesCachePrefix + "*"
}

func StudentIDFromCacheKey(key string) (uuid.UUID, bool) {
	key = strings.TrimSpace(key)
	if !strings.HasPrefix(key, mentorMatchesCachePrefix) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimPrefix(key, mentorMatchesCachePrefix))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

type noopMatchCache struct{}

func (noopMatchCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (noopMatchCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopMatchCache) Delete(context.Context, string) error { return nil }
func (noopMatchCache) DeleteByPattern(context.Context, string) error { return nil }
