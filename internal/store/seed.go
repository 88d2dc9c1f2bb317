package store

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/models"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// Seed is the initial content of an empty store. Seed files are YAML; JSON
// documents are accepted as well since JSON is valid YAML.
type Seed struct {
	Users []models.User `yaml:"users" json:"users"`
	Posts []models.Post `yaml:"posts" json:"posts"`
}

// DefaultSeed returns the built-in seed used when no seed file is
// configured.
func DefaultSeed() (Seed, error) {
	return parseSeed(defaultSeed)
}

// LoadSeedFile reads and parses the seed file at path.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("error reading seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("error decoding seed: %w", err)
	}
	return seed, nil
}

// Apply stores the seed through the given repositories, users first so that
// posts can reference them. It does nothing when users already exist.
// Returns the number of users and posts written.
func (s Seed) Apply(ctx context.Context, users UserRepository, posts PostRepository) (int, int, error) {
	log := logger.FromContext(ctx)

	existing, err := users.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("error checking existing users: %w", err)
	}
	if len(existing) > 0 {
		log.Debug().Int("users", len(existing)).Msg("store already populated, seed skipped")
		return 0, 0, nil
	}

	for _, user := range s.Users {
		if _, err := users.Create(ctx, user); err != nil {
			return 0, 0, fmt.Errorf("error seeding user %d: %w", user.ID, err)
		}
	}

	for _, post := range s.Posts {
		if _, err := posts.Create(ctx, post); err != nil {
			return len(s.Users), 0, fmt.Errorf("error seeding post %d: %w", post.ID, err)
		}
	}

	return len(s.Users), len(s.Posts), nil
}
