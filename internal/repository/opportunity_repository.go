package repository

import (
	"context"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/opportunity"

	"github.com/google/uuid"
)

type OpportunityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error)
	FindRequirements(ctx context.Context, opportunityID uuid.UUID) ([]opportunity.Requirement, error)
}

type PostgresOpportunityRepository struct {
	db database.DB
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db}
}

func (r *PostgresOpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (opportunity.Opportunity, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, mentor_id, title, description, is_active, created_at
		 FROM opportunities WHERE id = $1`,
		id,
	)

	var o opportunity.Opportunity
	if err := row.Scan(&o.ID, &o.MentorID, &o.Title, &o.Description, &o.IsActive, &o.CreatedAt); err != nil {
		if isNoRows(err) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, err
	}
	return o, nil
}

func (r *PostgresOpportunityRepository) FindRequirements(ctx context.Context, opportunityID uuid.UUID) ([]opportunity.Requirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT os.skill_id, COALESCE(s.name, ''), os.weight
		 FROM opportunity_skills os
		 LEFT JOIN skills s ON s.id = os.skill_id
		 WHERE os.opportunity_id = $1
		 ORDER BY os.weight DESC, s.name ASC`,
		opportunityID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]opportunity.Requirement, 0)
	for rows.Next() {
		var req opportunity.Requirement
		if err := rows.Scan(&req.SkillID, &req.SkillName, &req.Weight); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
