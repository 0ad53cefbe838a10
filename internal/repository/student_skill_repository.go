package repository

import (
	"context"

	"mentor-match/internal/database"

	"github.com/google/uuid"
)

type StudentSkillRepository interface {
	FindSkillIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresStudentSkillRepository struct {
	db database.DB
}

func NewPostgresStudentSkillRepository(db database.DB) *PostgresStudentSkillRepository {
	return &PostgresStudentSkillRepository{db: db}
}

func (r *PostgresStudentSkillRepository) FindSkillIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT skill_id FROM student_skills WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
