package dynamo

import (
	"context"
	"errors"

	"github.com/dive-demo-tour/api/internal/domain"
)

// SettingsRepo stores the homepage settings singleton.
type SettingsRepo struct {
	kv *KV
}

func NewSettingsRepo(kv *KV) *SettingsRepo {
	return &SettingsRepo{kv: kv}
}

// GetHomepage returns the stored settings, or the defaults when nothing has
// been saved yet.
func (r *SettingsRepo) GetHomepage(ctx context.Context) (*domain.HomepageSettings, error) {
	var s domain.HomepageSettings
	if err := r.kv.Get(ctx, keyHomepageSettings, &s); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultHomepageSettings(), nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepo) PutHomepage(ctx context.Context, s *domain.HomepageSettings) error {
	return r.kv.Set(ctx, keyHomepageSettings, s)
}
