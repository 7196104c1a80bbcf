package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dive-demo-tour/api/internal/domain"
)

// EventRepo provides typed KV operations for events.
type EventRepo struct {
	kv *KV
}

func NewEventRepo(kv *KV) *EventRepo {
	return &EventRepo{kv: kv}
}

func (r *EventRepo) Put(ctx context.Context, e *domain.Event) error {
	return r.kv.Set(ctx, eventKey(e.EventID), e)
}

func (r *EventRepo) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	var e domain.Event
	if err := r.kv.Get(ctx, eventKey(eventID), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepo) List(ctx context.Context) ([]domain.Event, error) {
	docs, err := r.kv.GetByPrefix(ctx, prefixEvent)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(docs))
	for _, doc := range docs {
		var e domain.Event
		if err := json.Unmarshal(doc, &e); err != nil {
			return nil, fmt.Errorf("decode event: %v: %w", err, domain.ErrPersistence)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *EventRepo) Delete(ctx context.Context, eventID string) error {
	return r.kv.Del(ctx, eventKey(eventID))
}

// DeleteRegistrations removes every registration stored under the event.
// Used when an event is deleted so its registrations don't orphan.
func (r *EventRepo) DeleteRegistrations(ctx context.Context, eventID string) error {
	docs, err := r.kv.GetByPrefix(ctx, registrationEventPrefix(eventID))
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(docs))
	for _, doc := range docs {
		var reg domain.Registration
		if err := json.Unmarshal(doc, &reg); err != nil {
			return fmt.Errorf("decode registration: %v: %w", err, domain.ErrPersistence)
		}
		keys = append(keys, registrationKey(eventID, reg.RegistrationID))
	}
	return r.kv.MDel(ctx, keys)
}
