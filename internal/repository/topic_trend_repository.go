package repository

import (
	"context"
	"strings"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
)

type TopicTrendRepository interface {
	FindByMentorIDs(ctx context.Context, mentorIDs []uuid.UUID) (map[uuid.UUID][]profile.TopicTrend, error)
	ReplaceForMentor(ctx context.Context, mentorID uuid.UUID, trends []profile.TopicTrend) error
}

type PostgresTopicTrendRepository struct {
	db database.DB
}

func NewPostgresTopicTrendRepository(db database.DB) *PostgresTopicTrendRepository {
	return &PostgresTopicTrendRepository{db: db}
}

func (r *PostgresTopicTrendRepository) FindByMentorIDs(ctx context.Context, mentorIDs []uuid.UUID) (map[uuid.UUID][]profile.TopicTrend, error) {
	out := map[uuid.UUID][]profile.TopicTrend{}
	ids := uuidStrings(mentorIDs)
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT mentor_id, topic, status, total_count, last_active
		 FROM mentor_topic_trends
		 WHERE mentor_id = ANY($1::uuid[])
		 ORDER BY mentor_id, total_count DESC, topic`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var mentorID uuid.UUID
		var t profile.TopicTrend
		if err := rows.Scan(&mentorID, &t.Topic, &t.Status, &t.TotalCount, &t.LastActive); err != nil {
			return nil, err
		}
		out[mentorID] = append(out[mentorID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTopicTrendRepository) ReplaceForMentor(ctx context.Context, mentorID uuid.UUID, trends []profile.TopicTrend) error {
	if mentorID == uuid.Nil {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if _, err := tx.Exec(ctx, `DELETE FROM mentor_topic_trends WHERE mentor_id = $1`, mentorID); err != nil {
		return err
	}

	for _, t := range trends {
		topic := strings.TrimSpace(t.Topic)
		if topic == "" {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO mentor_topic_trends (mentor_id, topic, status, total_count, last_active, updated_at)
			 VALUES ($1, $2, $3, $4, $5, now())
			 ON CONFLICT (mentor_id, topic) DO UPDATE SET
				status = EXCLUDED.status,
				total_count = EXCLUDED.total_count,
				last_active = EXCLUDED.last_active,
				updated_at = EXCLUDED.updated_at`,
			mentorID, topic, t.Status, t.TotalCount, t.LastActive,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
