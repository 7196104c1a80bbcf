package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dive-demo-tour/api/internal/domain"
)

// ModuleRepo provides typed KV operations for event modules.
type ModuleRepo struct {
	kv *KV
}

func NewModuleRepo(kv *KV) *ModuleRepo {
	return &ModuleRepo{kv: kv}
}

func (r *ModuleRepo) Put(ctx context.Context, m *domain.Module) error {
	return r.kv.Set(ctx, moduleKey(m.ModuleID), m)
}

func (r *ModuleRepo) Get(ctx context.Context, moduleID string) (*domain.Module, error) {
	var m domain.Module
	if err := r.kv.Get(ctx, moduleKey(moduleID), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByEvent returns the modules belonging to one event. Modules live under
// a flat prefix, so this scans all modules and filters on the event id.
func (r *ModuleRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.Module, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	modules := make([]domain.Module, 0, len(all))
	for _, m := range all {
		if m.EventID == eventID {
			modules = append(modules, m)
		}
	}
	return modules, nil
}

func (r *ModuleRepo) List(ctx context.Context) ([]domain.Module, error) {
	docs, err := r.kv.GetByPrefix(ctx, prefixModule)
	if err != nil {
		return nil, err
	}
	modules := make([]domain.Module, 0, len(docs))
	for _, doc := range docs {
		var m domain.Module
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("decode module: %v: %w", err, domain.ErrPersistence)
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func (r *ModuleRepo) Delete(ctx context.Context, moduleID string) error {
	return r.kv.Del(ctx, moduleKey(moduleID))
}
