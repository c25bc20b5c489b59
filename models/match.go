package models

// Weights of the recommendation score. The skill component is a percentage
// (0-100) scaled by SkillScoreWeight; availability on the event's weekday
// adds a flat AvailabilityScoreBonus.
const (
	SkillScoreWeight       = 0.7
	AvailabilityScoreBonus = 30.0

	RecommendationLimit = 10
)

// Match is the ephemeral result of scoring one volunteer against one event
// in strict mode: the volunteer overlaps the required skills and is
// available on the event's weekday at the event's time. Never persisted.
type Match struct {
	Volunteer       Volunteer
	Skills          []string
	MatchingSkills  []string
	MatchPercentage int
}

// Recommendation is the loose-mode variant used for discovery: every
// volunteer is scored, availability only checks the weekday, and the two
// components are combined into a weighted overall score.
type Recommendation struct {
	Volunteer         Volunteer
	Skills            []string
	MatchingSkills    []string
	SkillMatchPercent float64
	AvailableForEvent bool
	OverallScore      float64
}
