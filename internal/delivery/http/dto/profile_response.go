package dto

import "internhub/internal/repository"

type ProfileResponse struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	University     string   `json:"university"`
	Major          string   `json:"major"`
	GraduationYear string   `json:"graduation_year"`
	GPA            string   `json:"gpa"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	Loaded         bool     `json:"loaded"`
}

func FromProfile(p repository.Profile, loaded bool) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		University:     p.University,
		Major:          p.Major,
		GraduationYear: p.GraduationYear,
		GPA:            p.GPA,
		Bio:            p.Bio,
		Skills:         skills,
		Loaded:         loaded,
	}
}
