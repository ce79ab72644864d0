package repo

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/estofados/outlet/internal/models"
)

func (r *GormRepo) CartByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateCart inserts an empty cart for cart.UserID. When another request
// created one first, the unique user_id index makes this a no-op and the
// winner's row is returned instead.
func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	tx := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(cart)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return r.CartByUser(ctx, cart.UserID)
	}
	return cart, nil
}

// SaveCartCAS persists items/total iff nobody has written the cart since it
// was read. On success cart.Version reflects the stored value; on a lost
// race it returns ErrVersionConflict and leaves the row alone.
func (r *GormRepo) SaveCartCAS(ctx context.Context, cart *models.Cart) error {
	now := time.Now().UTC()
	res := r.DB.WithContext(ctx).
		Model(&models.Cart{}).
		Where("user_id = ? AND version = ?", cart.UserID, cart.Version).
		Select("items", "total", "version", "updated_at").
		Updates(models.Cart{
			Items:     cart.Items,
			Total:     cart.Total,
			Version:   cart.Version + 1,
			UpdatedAt: now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}

	cart.Version++
	cart.UpdatedAt = now
	return nil
}
