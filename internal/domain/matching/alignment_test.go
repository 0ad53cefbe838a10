package matching

import (
	"testing"

	"mentor-match/internal/domain/profile"

	"github.com/stretchr/testify/assert"
)

func TestAlignmentScore_NilInputs(t *testing.T) {
	assert.Equal(t, 0.0, AlignmentScore(nil, &profile.Mentor{}))
	assert.Equal(t, 0.0, AlignmentScore(&profile.Student{}, nil))
}

func TestAlignmentScore_AcademicFit(t *testing.T) {
	academic := &profile.Mentor{MentorType: profile.MentorTypeAcademic, MinExpectations: "x"}
	industry := &profile.Mentor{MentorType: profile.MentorTypeIndustry, MinExpectations: "x"}

	assert.Equal(t, 10.0, AlignmentScore(&profile.Student{IsPhDSeeker: true}, academic))
	assert.Equal(t, 5.0, AlignmentScore(&profile.Student{Degree: "Master of Science"}, academic))
	assert.Equal(t, 0.0, AlignmentScore(&profile.Student{Degree: "BSc"}, academic))

	assert.Equal(t, 10.0, AlignmentScore(&profile.Student{Projects: []profile.Project{{Title: "p"}}}, industry))
	assert.Equal(t, 0.0, AlignmentScore(&profile.Student{IsPhDSeeker: true}, industry))
}

func TestAlignmentScore_SkillOverlap(t *testing.T) {
	m := &profile.Mentor{MinExpectations: "Python, PyTorch, Linear Algebra, Statistics"}

	assert.Equal(t, 0.0, AlignmentScore(&profile.Student{}, m))
	assert.Equal(t, 10.0, AlignmentScore(&profile.Student{PrimarySkills: "python, statistics, go"}, m))
	assert.Equal(t, 20.0, AlignmentScore(&profile.Student{PrimarySkills: "Statistics,Linear Algebra,PyTorch,Python"}, m))

	assert.Equal(t, 20.0, AlignmentScore(&profile.Student{}, &profile.Mentor{}), "no expectations grants full overlap")
}

func TestAlignmentScore_Availability(t *testing.T) {
	s := &profile.Student{}
	base := &profile.Mentor{MinExpectations: "x"}

	yes := *base
	yes.AcceptingStudents = "yes"
	maybe := *base
	maybe.AcceptingStudents = "Maybe"
	no := *base
	no.AcceptingStudents = profile.AcceptingNo

	assert.Equal(t, 10.0, AlignmentScore(s, &yes))
	assert.Equal(t, 5.0, AlignmentScore(s, &maybe))
	assert.Equal(t, 0.0, AlignmentScore(s, &no))
}

func TestAlignmentScore_Range(t *testing.T) {
	s := &profile.Student{IsPhDSeeker: true, PrimarySkills: "a, b"}
	m := &profile.Mentor{MentorType: profile.MentorTypeAcademic, MinExpectations: "a, b", AcceptingStudents: "Yes"}

	assert.Equal(t, MaxAlignmentScore, AlignmentScore(s, m))
	assert.Equal(t, 40.0, MaxAlignmentScore)
}
