package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventMatchesRefreshed = "matches_refreshed"
	EventTrendsUpdated    = "trends_updated"
)

type MatchesRefreshedEvent struct {
	Type      string    `json:"type"`
	StudentID uuid.UUID `json:"student_id"`
	Count     int       `json:"count"`
	Timestamp string    `json:"timestamp"`
}

type TrendsUpdatedEvent struct {
	Type      string    `json:"type"`
	MentorID  uuid.UUID `json:"mentor_id"`
	Topics    int       `json:"topics"`
	Timestamp string    `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NotifyMatchesRefreshed tells the student's own connections that a fresh
// ranking is available.
func (h *Hub) NotifyMatchesRefreshed(studentID uuid.UUID, count int) {
	if h == nil || studentID == uuid.Nil {
		return
	}
	h.publish(studentID, MatchesRefreshedEvent{
		Type:      EventMatchesRefreshed,
		StudentID: studentID,
		Count:     count,
		Timestamp: timestamp(),
	})
}

// NotifyTrendsUpdated is broadcast because every student's ranking may shift.
func (h *Hub) NotifyTrendsUpdated(mentorID uuid.UUID, topics int) {
	if h == nil {
		return
	}
	h.publish(uuid.Nil, TrendsUpdatedEvent{
		Type:      EventTrendsUpdated,
		MentorID:  mentorID,
		Topics:    topics,
		Timestamp: timestamp(),
	})
}

func (h *Hub) publish(userID uuid.UUID, evt any) {
	b, err := json.Marshal(evt)
	if err != nil {
		h.log.Warn("ws encode event", zap.Error(err))
		return
	}
	if userID == uuid.Nil {
		h.Broadcast(b)
		return
	}
	h.SendTo(userID, b)
}
