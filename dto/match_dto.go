package dto

import (
	"github.com/shelterhub/shelter-backend/models"
)

type APIMatch struct {
	VolunteerId     string   `json:"volunteer_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	MatchingSkills  []string `json:"matching_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

func AdaptMatchDto(m models.Match) APIMatch {
	return APIMatch{
		VolunteerId:     m.Volunteer.Id,
		Name:            m.Volunteer.Name,
		Email:           m.Volunteer.Email,
		Skills:          m.Skills,
		MatchingSkills:  m.MatchingSkills,
		MatchPercentage: m.MatchPercentage,
	}
}

type APIRecommendation struct {
	VolunteerId       string   `json:"volunteer_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Skills            []string `json:"skills"`
	MatchingSkills    []string `json:"matching_skills"`
	MatchPercentage   float64  `json:"match_percentage"`
	AvailableForEvent bool     `json:"available_for_event"`
	OverallScore      float64  `json:"overall_score"`
}

func AdaptRecommendationDto(r models.Recommendation) APIRecommendation {
	return APIRecommendation{
		VolunteerId:       r.Volunteer.Id,
		Name:              r.Volunteer.Name,
		Email:             r.Volunteer.Email,
		Skills:            r.Skills,
		MatchingSkills:    r.MatchingSkills,
		MatchPercentage:   r.SkillMatchPercent,
		AvailableForEvent: r.AvailableForEvent,
		OverallScore:      r.OverallScore,
	}
}
