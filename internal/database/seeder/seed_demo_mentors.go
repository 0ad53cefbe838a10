package seeder

import (
	"context"
	"fmt"

	"mentor-match/internal/database"
)

type demoMentor struct {
	Email                string
	FullName             string
	MentorType           string
	University           string
	Company              string
	Position             string
	LabName              string
	Bio                  string
	ResearchAreas        string
	PreferredBackgrounds string
	MinExpectations      string
	AcceptingStudents    string
}

var demoMentors = []demoMentor{
	{
		Email:                "ada.lovelace@example.edu",
		FullName:             "Ada Lovelace",
		MentorType:           "academic_supervisor",
		University:           "Example University",
		Position:             "Associate Professor",
		LabName:              "Graph Learning Lab",
		Bio:                  "Works on learning over relational and molecular data.",
		ResearchAreas:        "Graph Neural Networks, Drug Discovery, Machine Learning",
		PreferredBackgrounds: "Computer Science, Mathematics, Chemistry",
		MinExpectations:      "Python, PyTorch, Linear Algebra",
		AcceptingStudents:    "Yes",
	},
	{
		Email:                "alan.turing@example.edu",
		FullName:             "Alan Turing",
		MentorType:           "academic_supervisor",
		University:           "Example University",
		Position:             "Professor",
		LabName:              "Language and Reasoning Group",
		Bio:                  "Studies language models and their reasoning failures.",
		ResearchAreas:        "Natural Language Processing, Large Language Models",
		PreferredBackgrounds: "Computer Science, Linguistics",
		MinExpectations:      "Python, Probability",
		AcceptingStudents:    "Limited",
	},
	{
		Email:                "grace.hopper@example.com",
		FullName:             "Grace Hopper",
		MentorType:           "industry_mentor",
		Company:              "Example Systems",
		Position:             "Principal Engineer",
		Bio:                  "Builds compilers and developer tooling.",
		ResearchAreas:        "Compilers, Programming Languages",
		PreferredBackgrounds: "",
		MinExpectations:      "C++, Git, Linux",
		AcceptingStudents:    "Yes",
	},
}

// DemoMentorsSeeder creates mentor users with profiles. Existing emails are
// left untouched.
type DemoMentorsSeeder struct{}

func (DemoMentorsSeeder) Name() string { return "demo_mentors" }

func (DemoMentorsSeeder) Run(ctx context.Context, db database.DB) error {
	err := EnsureSchema(ctx, db,
		TableColumns{Table: "users", Columns: []string{"id", "email", "full_name", "role"}},
		TableColumns{Table: "mentor_profiles", Columns: []string{
			"user_id", "mentor_type", "university", "company", "position", "lab_name",
			"bio", "research_areas", "preferred_backgrounds", "min_expectations", "accepting_students",
		}},
	)
	if err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Tx) error {
		for _, m := range demoMentors {
			if err := insertDemoMentor(ctx, tx, m); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertDemoMentor(ctx context.Context, tx database.Tx, m demoMentor) error {
	var userID string
	err := tx.QueryRow(
		ctx,
		`INSERT INTO users (email, full_name, role) VALUES ($1, $2, 'mentor')
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id::text`,
		m.Email,
		m.FullName,
	).Scan(&userID)
	if err != nil {
		return fmt.Errorf("user %s: %w", m.Email, err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO mentor_profiles (
			user_id, mentor_type, university, company, position, lab_name,
			bio, research_areas, preferred_backgrounds, min_expectations, accepting_students
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO NOTHING`,
		userID, m.MentorType, m.University, m.Company, m.Position, m.LabName,
		m.Bio, m.ResearchAreas, m.PreferredBackgrounds, m.MinExpectations, m.AcceptingStudents,
	); err != nil {
		return fmt.Errorf("mentor profile %s: %w", m.Email, err)
	}
	return nil
}
