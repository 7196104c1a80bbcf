package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dive-demo-tour/api/internal/domain"
)

// RegistrationRepo provides typed KV operations for registrations.
type RegistrationRepo struct {
	kv *KV
}

func NewRegistrationRepo(kv *KV) *RegistrationRepo {
	return &RegistrationRepo{kv: kv}
}

func (r *RegistrationRepo) Put(ctx context.Context, reg *domain.Registration) error {
	return r.kv.Set(ctx, registrationKey(reg.EventID, reg.RegistrationID), reg)
}

// ListByEvent returns all registrations for one event, in scan order.
func (r *RegistrationRepo) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	docs, err := r.kv.GetByPrefix(ctx, registrationEventPrefix(eventID))
	if err != nil {
		return nil, err
	}
	return decodeRegistrations(docs)
}

// ListAll returns all registrations across every event, in scan order.
func (r *RegistrationRepo) ListAll(ctx context.Context) ([]domain.Registration, error) {
	docs, err := r.kv.GetByPrefix(ctx, prefixRegistration)
	if err != nil {
		return nil, err
	}
	return decodeRegistrations(docs)
}

// Delete removes a registration by composite key. Idempotent.
func (r *RegistrationRepo) Delete(ctx context.Context, eventID, registrationID string) error {
	return r.kv.Del(ctx, registrationKey(eventID, registrationID))
}

func decodeRegistrations(docs []json.RawMessage) ([]domain.Registration, error) {
	regs := make([]domain.Registration, 0, len(docs))
	for _, doc := range docs {
		var reg domain.Registration
		if err := json.Unmarshal(doc, &reg); err != nil {
			return nil, fmt.Errorf("decode registration: %v: %w", err, domain.ErrPersistence)
		}
		regs = append(regs, reg)
	}
	return regs, nil
}
