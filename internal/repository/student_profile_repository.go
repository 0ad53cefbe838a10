package repository

import (
	"context"
	"fmt"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/profile"

	"github.com/google/uuid"
)

type StudentProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Student, error)
	UpdateReadiness(ctx context.Context, userID uuid.UUID, score float64) error
}

type PostgresStudentProfileRepository struct {
	db database.DB
}

func NewPostgresStudentProfileRepository(db database.DB) *PostgresStudentProfileRepository {
	return &PostgresStudentProfileRepository{db: db}
}

func (r *PostgresStudentProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Student, error) {
	row := r.db.QueryRow(ctx,
		`SELECT sp.id, sp.user_id, u.full_name, u.email,
			sp.university, sp.degree, sp.major, sp.headline, sp.bio,
			sp.research_interests, sp.primary_skills, sp.secondary_skills, sp.is_phd_seeker,
			sp.github_url, sp.linkedin_url, sp.resume_url, sp.website_url, sp.scholar_url,
			sp.readiness_score, sp.updated_at
		 FROM student_profiles sp
		 JOIN users u ON u.id = sp.user_id
		 WHERE sp.user_id = $1`,
		userID,
	)

	var s profile.Student
	if err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Email,
		&s.University, &s.Degree, &s.Major, &s.Headline, &s.Bio,
		&s.ResearchInterests, &s.PrimarySkills, &s.SecondarySkills, &s.IsPhDSeeker,
		&s.GitHubURL, &s.LinkedInURL, &s.ResumeURL, &s.WebsiteURL, &s.ScholarURL,
		&s.ReadinessScore, &s.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			return profile.Student{}, ErrStudentProfileNotFound
		}
		return profile.Student{}, err
	}

	var err error
	if s.Educations, err = r.findEducations(ctx, s.ID); err != nil {
		return profile.Student{}, fmt.Errorf("load education: %w", err)
	}
	if s.Experiences, err = r.findExperiences(ctx, s.ID); err != nil {
		return profile.Student{}, fmt.Errorf("load experience: %w", err)
	}
	if s.Projects, err = r.findProjects(ctx, s.ID); err != nil {
		return profile.Student{}, fmt.Errorf("load projects: %w", err)
	}
	return s, nil
}

func (r *PostgresStudentProfileRepository) UpdateReadiness(ctx context.Context, userID uuid.UUID, score float64) error {
	n, err := r.db.Exec(ctx,
		`UPDATE student_profiles SET readiness_score = $1, updated_at = now() WHERE user_id = $2`,
		score, userID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStudentProfileNotFound
	}
	return nil
}

func (r *PostgresStudentProfileRepository) findEducations(ctx context.Context, studentID uuid.UUID) ([]profile.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, institution, degree, field, start_year, end_year
		 FROM student_education WHERE student_id = $1
		 ORDER BY end_year DESC NULLS FIRST, id`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Education, 0)
	for rows.Next() {
		var e profile.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Field, &e.StartYear, &e.EndYear); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresStudentProfileRepository) findExperiences(ctx context.Context, studentID uuid.UUID) ([]profile.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, description FROM student_experience WHERE student_id = $1 ORDER BY id`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Experience, 0)
	for rows.Next() {
		var e profile.Experience
		if err := rows.Scan(&e.ID, &e.Title, &e.Company, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresStudentProfileRepository) findProjects(ctx context.Context, studentID uuid.UUID) ([]profile.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, url FROM student_projects WHERE student_id = $1 ORDER BY id`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Project, 0)
	for rows.Next() {
		var p profile.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.URL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
