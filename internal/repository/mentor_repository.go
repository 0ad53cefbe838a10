package repository

import (
	"context"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
)

type MentorRepository interface {
	// ListActive returns every mentor whose user account is active, ordered by
	// mentor id.
	ListActive(ctx context.Context) ([]profile.Mentor, error)
	FindByID(ctx context.Context, id uuid.UUID) (profile.Mentor, error)
}

type PostgresMentorRepository struct {
	db database.DB
}

func NewPostgresMentorRepository(db database.DB) *PostgresMentorRepository {
	return &PostgresMentorRepository{db: db}
}

const mentorColumns = `mp.id, mp.user_id, u.full_name, u.is_active,
	mp.mentor_type, mp.university, mp.company, mp.position, mp.lab_name, mp.is_verified,
	mp.bio, mp.research_areas, mp.preferred_backgrounds, mp.min_expectations,
	mp.accepting_students, mp.publications_url`

func scanMentor(row database.Row) (profile.Mentor, error) {
	var m profile.Mentor
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.IsActive,
		&m.MentorType, &m.University, &m.Company, &m.Position, &m.LabName, &m.IsVerified,
		&m.Bio, &m.ResearchAreas, &m.PreferredBackgrounds, &m.MinExpectations,
		&m.AcceptingStudents, &m.PublicationsURL,
	)
	return m, err
}

func (r *PostgresMentorRepository) ListActive(ctx context.Context) ([]profile.Mentor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+mentorColumns+`
		 FROM mentor_profiles mp
		 JOIN users u ON u.id = mp.user_id
		 WHERE u.is_active = TRUE
		 ORDER BY mp.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Mentor, 0)
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresMentorRepository) FindByID(ctx context.Context, id uuid.UUID) (profile.Mentor, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+mentorColumns+`
		 FROM mentor_profiles mp
		 JOIN users u ON u.id = mp.user_id
		 WHERE mp.id = $1`,
		id,
	)
	m, err := scanMentor(row)
	if err != nil {
		if isNoRows(err) {
			return profile.Mentor{}, ErrMentorNotFound
		}
		return profile.Mentor{}, err
	}
	return m, nil
}
