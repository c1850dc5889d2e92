package memory

import (
	"context"
	"time"

	"grove/internal/domain/entity"
	"grove/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sha256Password is the stored digest of the demo password "password".
const sha256Password = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

// SeedDemoData loads two demo alumni records so a fresh local instance has a
// browsable directory. It is a no-op when the store already holds profiles.
// The demo credentials only make sense with the sha256 hasher scheme.
func SeedDemoData(store *Store) error {
	return store.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		profileRepo := factory.ProfileRepo()
		credentialRepo := factory.CredentialRepo()

		existing, err := profileRepo.ListAll(context.Background())
		if err != nil {
			return errors.Wrap(err, "failed to list profiles before seeding")
		}
		if len(existing) > 0 {
			return nil
		}

		now := time.Now()
		for _, demo := range demoProfiles(now) {
			if err := profileRepo.Create(context.Background(), demo); err != nil {
				return errors.Wrap(err, "failed to seed demo profile")
			}

			credential := &entity.Credential{
				ID:             uuid.New(),
				Email:          demo.Email,
				PasswordDigest: sha256Password,
				ProfileID:      demo.ID,
				CreatedAt:      now,
			}
			if err := credentialRepo.Create(context.Background(), credential); err != nil {
				return errors.Wrap(err, "failed to seed demo credential")
			}
		}

		return nil
	})
}

func demoProfiles(now time.Time) []*entity.Profile {
	return []*entity.Profile{
		{
			ID:         uuid.New(),
			Name:       "Arjun Sharma",
			Email:      "arjun.s@example.com",
			Batch:      "2010",
			Image:      "/placeholder.svg?height=150&width=150",
			Education:  "B.Tech, Computer Science, IIT Delhi",
			Major:      "Computer Science",
			Job:        "Software Engineer at Google",
			Location:   "Bangalore, India",
			Phone:      "+91 9876543210",
			Linkedin:   "linkedin.com/in/arjunsharma",
			Interests:  []string{"Technology", "Mentorship", "Photography"},
			Committees: []string{"Tech Committee", "Alumni Outreach"},
			Bio:        "After graduating in 2010, I pursued computer science and now work at Google. I love mentoring young tech enthusiasts.",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         uuid.New(),
			Name:       "Priya Patel",
			Email:      "priya.p@example.com",
			Batch:      "2012",
			Image:      "/placeholder.svg?height=150&width=150",
			Education:  "MBBS, AIIMS Delhi",
			Major:      "Medicine",
			Job:        "Pediatrician at Apollo Hospitals",
			Location:   "Delhi, India",
			Phone:      "+91 9876543211",
			Linkedin:   "linkedin.com/in/priyapatel",
			Interests:  []string{"Healthcare", "Child Development", "Painting"},
			Committees: []string{"Health Committee"},
			Bio:        "I'm a pediatrician passionate about child healthcare. My school years shaped my approach to understanding children's needs.",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}
}
