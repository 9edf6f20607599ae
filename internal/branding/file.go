package branding

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/propforma/propforma/internal/domain"
)

// FileStore serves branding profiles from a YAML file keyed by user ID.
// The file is read once at construction; missing users resolve to the
// default profile without error.
type FileStore struct {
	profiles map[string]domain.BrandingProfile
}

// NewFileStore loads a branding profile file.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read branding file %s: %w", path, err)
	}
	profiles := make(map[string]domain.BrandingProfile)
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse branding file %s: %w", path, err)
	}
	return &FileStore{profiles: profiles}, nil
}

// Lookup returns the stored profile for userID, or the default profile when
// the user has none.
func (fs *FileStore) Lookup(_ context.Context, userID string) (domain.BrandingProfile, error) {
	if profile, ok := fs.profiles[userID]; ok {
		return profile, nil
	}
	return domain.DefaultBranding(), nil
}
