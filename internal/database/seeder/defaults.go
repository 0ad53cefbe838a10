package seeder

func Defaults() []Seeder {
	return []Seeder{
		SkillsSeeder{},
	}
}

func WithDemo() []Seeder {
	return append(Defaults(), DemoMentorsSeeder{})
}
