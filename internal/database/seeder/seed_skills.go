package seeder

import (
	"context"

	"mentor-match/internal/database"
)

var Skills = []string{
	"Python",
	"Go",
	"C++",
	"R",
	"MATLAB",
	"PyTorch",
	"TensorFlow",
	"SQL",
	"Linear Algebra",
	"Probability",
	"Statistics",
	"Optimization",
	"Machine Learning",
	"Deep Learning",
	"Natural Language Processing",
	"Computer Vision",
	"Graph Neural Networks",
	"Reinforcement Learning",
	"Causal Inference",
	"Data Visualization",
	"Scientific Writing",
	"LaTeX",
	"Git",
	"Docker",
	"Linux",
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureSchema(ctx, db, TableColumns{Table: "skills", Columns: []string{"id", "name"}}); err != nil {
		return err
	}

	return database.InTx(ctx, db, func(tx database.Tx) error {
		for _, name := range Skills {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
				name,
			); err != nil {
				return err
			}
		}
		return nil
	})
}
