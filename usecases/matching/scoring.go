package matching

import (
	"math"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"golang.org/x/text/cases"

	"github.com/shelterhub/shelter-backend/models"
	"github.com/shelterhub/shelter-backend/utils"
)

// NormalizeSkill maps a raw skill tag to its comparison form: trimmed and
// case folded, so "Dog Walking " and "dog walking" count as the same skill.
// A Caser is stateful and not safe for concurrent use, hence one per call.
func NormalizeSkill(skill string) string {
	return cases.Fold().String(strings.TrimSpace(skill))
}

// MatchingSkills returns the required skills the volunteer covers, keeping
// the required list's original spelling. Comparison happens on the
// normalized forms; duplicates collapsing to the same form count once.
func MatchingSkills(volunteerSkills, requiredSkills []string) []string {
	have := set.From(utils.Map(volunteerSkills, NormalizeSkill))
	seen := set.New[string](len(requiredSkills))

	matching := make([]string, 0, len(requiredSkills))
	for _, skill := range requiredSkills {
		norm := NormalizeSkill(skill)
		if have.Contains(norm) && !seen.Contains(norm) {
			seen.Insert(norm)
			matching = append(matching, strings.TrimSpace(skill))
		}
	}
	slices.Sort(matching)
	return matching
}

// UniqueSkillCount counts distinct skills after normalization. It is the
// denominator of the match percentage.
func UniqueSkillCount(skills []string) int {
	return set.From(utils.Map(skills, NormalizeSkill)).Size()
}

// MatchPercentage is the share of required skills the volunteer covers,
// rounded to the nearest integer. Events without required skills score 0.
func MatchPercentage(matchingCount, requiredCount int) int {
	return int(math.Round(SkillMatchPercent(matchingCount, requiredCount)))
}

func SkillMatchPercent(matchingCount, requiredCount int) float64 {
	if requiredCount == 0 {
		return 0
	}
	return float64(matchingCount) / float64(requiredCount) * 100
}

// OverallScore weighs skill coverage against day availability for the
// recommendation ranking.
func OverallScore(skillMatchPercent float64, availableForEvent bool) float64 {
	score := skillMatchPercent * models.SkillScoreWeight
	if availableForEvent {
		score += models.AvailabilityScoreBonus
	}
	return score
}
