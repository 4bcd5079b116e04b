package extraction

import (
	"testing"

	"github.com/jonathan/smarthire/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
john@example.com
Bangalore, India

EXPERIENCE
2 years at ABC Corp working on Python data pipelines and Machine Learning
models. Built dashboards for Data Analysis using SQL.

EDUCATION
B.Sc. in Computer Science`

func TestBuildProfile_ExtractsFields(t *testing.T) {
	profile := BuildProfile(sampleResume)

	assert.Equal(t, "John Doe", profile.Name)
	assert.Equal(t, "john@example.com", profile.Email)
	assert.ElementsMatch(t, []string{"Python", "Machine Learning", "Data Analysis", "SQL"}, profile.Skills)
	assert.Equal(t, sampleResume, profile.RawText)
}

func TestBuildProfile_EmptyText(t *testing.T) {
	profile := BuildProfile("")

	require.NotNil(t, profile)
	assert.Equal(t, types.UnknownEmail, profile.Email)
	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Skills)
}

func TestBuildProfile_NoEmailUsesSentinel(t *testing.T) {
	profile := BuildProfile("Jane Smith\nSenior Tester with Selenium experience")

	assert.Equal(t, types.UnknownEmail, profile.Email)
	assert.Equal(t, "Jane Smith", profile.Name)
	assert.Contains(t, profile.Skills, "Selenium")
}

func TestMatchSkills_WordBoundaries(t *testing.T) {
	// "Going" must not match the skill "Go"
	skills := matchSkills("going forward we will keep growing")
	assert.Empty(t, skills)

	skills = matchSkills("we write services in go and java")
	assert.ElementsMatch(t, []string{"Go", "Java"}, skills)
}

func TestBuildProfile_SkillsDeduplicated(t *testing.T) {
	profile := BuildProfile("python python PYTHON everywhere")
	assert.Equal(t, []string{"Python"}, profile.Skills)
}
