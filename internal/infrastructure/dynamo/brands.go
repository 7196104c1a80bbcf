package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dive-demo-tour/api/internal/domain"
)

// BrandRepo provides typed KV operations for brands.
type BrandRepo struct {
	kv *KV
}

func NewBrandRepo(kv *KV) *BrandRepo {
	return &BrandRepo{kv: kv}
}

func (r *BrandRepo) Put(ctx context.Context, b *domain.Brand) error {
	return r.kv.Set(ctx, brandKey(b.BrandID), b)
}

func (r *BrandRepo) Get(ctx context.Context, brandID string) (*domain.Brand, error) {
	var b domain.Brand
	if err := r.kv.Get(ctx, brandKey(brandID), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BrandRepo) List(ctx context.Context) ([]domain.Brand, error) {
	docs, err := r.kv.GetByPrefix(ctx, prefixBrand)
	if err != nil {
		return nil, err
	}
	brands := make([]domain.Brand, 0, len(docs))
	for _, doc := range docs {
		var b domain.Brand
		if err := json.Unmarshal(doc, &b); err != nil {
			return nil, fmt.Errorf("decode brand: %v: %w", err, domain.ErrPersistence)
		}
		brands = append(brands, b)
	}
	return brands, nil
}

func (r *BrandRepo) Delete(ctx context.Context, brandID string) error {
	return r.kv.Del(ctx, brandKey(brandID))
}
