// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public member record of one alumna/alumnus.
// It carries everything the directory ("the Grove") displays, and never
// any authentication secret.
type Profile struct {
	ID         uuid.UUID // The unique identifier for the member, generated at creation and never reused.
	Name       string    // The member's display name.
	Email      string    // The member's email, unique across all profiles and used as the login key. Stored normalized (lowercase).
	Batch      string    // Graduation cohort label, free text (e.g., "2010").
	Education  string    // Post-school education summary.
	Major      string    // Field of study.
	Job        string    // Current job title / position.
	Company    string    // Optional employer name.
	Location   string    // Optional current city/country.
	Phone      string    // Optional contact number.
	Linkedin   string    // Optional LinkedIn handle or URL.
	Image      string    // Optional avatar image reference.
	Interests  []string  // Ordered list of free-text interest tags. Never nil.
	Committees []string  // Ordered list of committee memberships. Never nil, may be empty.
	Bio        string    // Free-text biography.
	CreatedAt  time.Time // Set once at signup, never mutated afterwards.
	UpdatedAt  time.Time // Bumped on every mutation of the profile.
}
