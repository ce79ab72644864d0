package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/mykafka"
	"github.com/estofados/outlet/internal/repo"
)

// cartSaveRetries bounds the compare-and-swap loop. A retry is only needed
// when another writer for the same user committed in between, so the bound
// is effectively the number of concurrent writers.
const cartSaveRetries = 20

type CartService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// GetOrCreate is the only place carts come into existence. Two concurrent
// first calls converge on one cart via the unique user_id index.
func (s *CartService) GetOrCreate(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.Repo.CartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !repo.IsNotFound(err) {
		return nil, err
	}

	fresh := models.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []models.CartItem{},
		Total:     0,
		UpdatedAt: time.Now().UTC(),
	}
	return s.Repo.CreateCart(ctx, &fresh)
}

// AddItem merges a product into the user's cart. If a line for the product
// already exists its quantity grows by the requested amount; otherwise a
// new line snapshots the product's current name, image and price. The
// total is recomputed and the whole cart persisted atomically.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_item", "user_id", userID)

	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}
	if productID == "" {
		return nil, fmt.Errorf("product_id is required: %w", ErrValidation)
	}

	product, err := s.Repo.ProductByID(ctx, productID)
	if err != nil {
		if repo.IsNotFound(err) {
			l.Warn("add_item_error", "reason", "unknown product", "product_id", productID)
			return nil, fmt.Errorf("product %s: %w", productID, ErrNotFound)
		}
		l.Error("add_item_error", "error", err)
		return nil, err
	}

	for attempt := 0; attempt < cartSaveRetries; attempt++ {
		cart, err := s.GetOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		merged := false
		items := make([]models.CartItem, len(cart.Items))
		copy(items, cart.Items)
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, models.CartItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.ImageURL,
				Price:        product.Price,
				Quantity:     quantity,
			})
		}

		cart.Items = items
		cart.Total = cartTotal(items)

		if err := s.Repo.SaveCartCAS(ctx, cart); err != nil {
			if errors.Is(err, repo.ErrVersionConflict) {
				continue
			}
			l.Error("add_item_error", "error", err)
			return nil, err
		}

		s.publish(ctx, userID, map[string]any{
			"type":       "cart_item_added",
			"user_id":    userID,
			"product_id": productID,
			"quantity":   quantity,
		})

		l.Info("item added", "product_id", productID, "quantity", quantity, "total", cart.Total)
		return cart, nil
	}

	return nil, fmt.Errorf("cart update contention for user %s", userID)
}

// RemoveItem drops every line matching productID (at most one exists),
// recomputes the total and persists. A user without a cart gets
// ErrNotFound; removing an absent product from an existing cart succeeds.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	l := logging.FromContext(ctx).With("svc", "cart.remove_item", "user_id", userID)

	for attempt := 0; attempt < cartSaveRetries; attempt++ {
		cart, err := s.Repo.CartByUser(ctx, userID)
		if err != nil {
			if repo.IsNotFound(err) {
				l.Warn("remove_item_error", "reason", "no cart")
				return nil, fmt.Errorf("cart for user %s: %w", userID, ErrNotFound)
			}
			l.Error("remove_item_error", "error", err)
			return nil, err
		}

		items := make([]models.CartItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			if item.ProductID != productID {
				items = append(items, item)
			}
		}

		cart.Items = items
		cart.Total = cartTotal(items)

		if err := s.Repo.SaveCartCAS(ctx, cart); err != nil {
			if errors.Is(err, repo.ErrVersionConflict) {
				continue
			}
			l.Error("remove_item_error", "error", err)
			return nil, err
		}

		s.publish(ctx, userID, map[string]any{
			"type":       "cart_item_removed",
			"user_id":    userID,
			"product_id": productID,
		})

		l.Info("item removed", "product_id", productID, "total", cart.Total)
		return cart, nil
	}

	return nil, fmt.Errorf("cart update contention for user %s", userID)
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (s *CartService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicCartEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", mykafka.TopicCartEvents, "error", err)
	}
}
