package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		expected string
	}{
		{"already normalized", "dog walking", "dog walking"},
		{"mixed case", "Dog Walking", "dog walking"},
		{"surrounding whitespace", "  First Aid ", "first aid"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkill(tt.skill))
		})
	}
}

func TestMatchingSkills(t *testing.T) {
	tests := []struct {
		name      string
		volunteer []string
		required  []string
		expected  []string
	}{
		{
			name:      "partial overlap keeps required spelling",
			volunteer: []string{"dog handling", "Fundraising"},
			required:  []string{"Dog Handling", "First Aid"},
			expected:  []string{"Dog Handling"},
		},
		{
			name:      "no overlap",
			volunteer: []string{"Fundraising"},
			required:  []string{"Dog Handling"},
			expected:  []string{},
		},
		{
			name:      "duplicate required skills count once",
			volunteer: []string{"First Aid"},
			required:  []string{"first aid", "First Aid"},
			expected:  []string{"first aid"},
		},
		{
			name:      "empty required",
			volunteer: []string{"Dog Handling"},
			required:  []string{},
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchingSkills(tt.volunteer, tt.required))
		})
	}
}

func TestUniqueSkillCount(t *testing.T) {
	assert.Equal(t, 0, UniqueSkillCount(nil))
	assert.Equal(t, 1, UniqueSkillCount([]string{"First Aid", "first aid "}))
	assert.Equal(t, 2, UniqueSkillCount([]string{"First Aid", "Dog Handling"}))
}

func TestMatchPercentage(t *testing.T) {
	tests := []struct {
		name     string
		matching int
		required int
		expected int
	}{
		{"no required skills", 0, 0, 0},
		{"half", 1, 2, 50},
		{"full", 3, 3, 100},
		{"third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct := MatchPercentage(tt.matching, tt.required)
			assert.Equal(t, tt.expected, pct)
			assert.GreaterOrEqual(t, pct, 0)
			assert.LessOrEqual(t, pct, 100)
		})
	}
}

func TestOverallScore(t *testing.T) {
	assert.InDelta(t, 100.0, OverallScore(100, true), 0.001)
	assert.InDelta(t, 70.0, OverallScore(100, false), 0.001)
	assert.InDelta(t, 30.0, OverallScore(0, true), 0.001)
	assert.InDelta(t, 0.0, OverallScore(0, false), 0.001)
	assert.InDelta(t, 65.0, OverallScore(50, true), 0.001)
}
