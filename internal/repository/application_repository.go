package repository

import (
	"context"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/opportunity"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	FindByStudentAndOpportunity(ctx context.Context, studentUserID, opportunityID uuid.UUID) (opportunity.Application, error)
	// Create inserts the application. When the student already applied the
	// stored row is returned unchanged.
	Create(ctx context.Context, a opportunity.Application) (opportunity.Application, error)
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]opportunity.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `a.id, a.student_user_id, a.opportunity_id, u.full_name, a.status,
	a.match_score, a.match_details, a.created_at`

func scanApplication(row database.Row) (opportunity.Application, error) {
	var a opportunity.Application
	err := row.Scan(&a.ID, &a.StudentUserID, &a.OpportunityID, &a.StudentName, &a.Status,
		&a.MatchScore, &a.MatchDetails, &a.CreatedAt)
	return a, err
}

func (r *PostgresApplicationRepository) FindByStudentAndOpportunity(ctx context.Context, studentUserID, opportunityID uuid.UUID) (opportunity.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications a
		 JOIN users u ON u.id = a.student_user_id
		 WHERE a.student_user_id = $1 AND a.opportunity_id = $2`,
		studentUserID, opportunityID,
	)
	a, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return opportunity.Application{}, ErrApplicationNotFound
		}
		return opportunity.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a opportunity.Application) (opportunity.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = "pending"
	}
	details := a.MatchDetails
	if len(details) == 0 {
		details = []byte("{}")
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, student_user_id, opportunity_id, status, match_score, match_details)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		 ON CONFLICT (student_user_id, opportunity_id) DO NOTHING`,
		a.ID, a.StudentUserID, a.OpportunityID, a.Status, a.MatchScore, string(details),
	)
	if err != nil {
		return opportunity.Application{}, err
	}
	return r.FindByStudentAndOpportunity(ctx, a.StudentUserID, a.OpportunityID)
}

func (r *PostgresApplicationRepository) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]opportunity.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications a
		 JOIN users u ON u.id = a.student_user_id
		 WHERE a.opportunity_id = $1
		 ORDER BY a.match_score DESC, a.created_at ASC`,
		opportunityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]opportunity.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
