package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dive-demo-tour/api/internal/domain"
)

// PartnerRepo provides typed KV operations for partners.
type PartnerRepo struct {
	kv *KV
}

func NewPartnerRepo(kv *KV) *PartnerRepo {
	return &PartnerRepo{kv: kv}
}

func (r *PartnerRepo) Put(ctx context.Context, p *domain.Partner) error {
	return r.kv.Set(ctx, partnerKey(p.PartnerID), p)
}

func (r *PartnerRepo) Get(ctx context.Context, partnerID string) (*domain.Partner, error) {
	var p domain.Partner
	if err := r.kv.Get(ctx, partnerKey(partnerID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PartnerRepo) List(ctx context.Context) ([]domain.Partner, error) {
	docs, err := r.kv.GetByPrefix(ctx, prefixPartner)
	if err != nil {
		return nil, err
	}
	partners := make([]domain.Partner, 0, len(docs))
	for _, doc := range docs {
		var p domain.Partner
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("decode partner: %v: %w", err, domain.ErrPersistence)
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *PartnerRepo) Delete(ctx context.Context, partnerID string) error {
	return r.kv.Del(ctx, partnerKey(partnerID))
}
