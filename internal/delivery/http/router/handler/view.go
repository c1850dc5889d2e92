// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"grove/internal/domain/entity"
)

// ProfileView is the JSON shape of a profile as the API exposes it.
// It mirrors the entity field for field; the credential digest has no
// representation here at all.
type ProfileView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Batch      string    `json:"batch"`
	Education  string    `json:"education"`
	Major      string    `json:"major"`
	Job        string    `json:"job"`
	Company    string    `json:"company,omitempty"`
	Location   string    `json:"location,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Linkedin   string    `json:"linkedin,omitempty"`
	Image      string    `json:"image,omitempty"`
	Interests  []string  `json:"interests"`
	Committees []string  `json:"committees"`
	Bio        string    `json:"bio"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newProfileView(profile *entity.Profile) ProfileView {
	return ProfileView{
		ID:         profile.ID.String(),
		Name:       profile.Name,
		Email:      profile.Email,
		Batch:      profile.Batch,
		Education:  profile.Education,
		Major:      profile.Major,
		Job:        profile.Job,
		Company:    profile.Company,
		Location:   profile.Location,
		Phone:      profile.Phone,
		Linkedin:   profile.Linkedin,
		Image:      profile.Image,
		Interests:  profile.Interests,
		Committees: profile.Committees,
		Bio:        profile.Bio,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
}

func newProfileViews(profiles []*entity.Profile) []ProfileView {
	views := make([]ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newProfileView(profile))
	}

	return views
}
