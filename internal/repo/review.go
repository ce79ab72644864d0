package repo

import (
	"context"

	"github.com/estofados/outlet/internal/models"
)

func (r *GormRepo) Reviews(ctx context.Context, limit int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *GormRepo) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	return r.DB.WithContext(ctx).Create(msg).Error
}
