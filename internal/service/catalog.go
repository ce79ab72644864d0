package service

import (
	"context"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"github.com/estofados/outlet/internal/es"
	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/mykafka"
	"github.com/estofados/outlet/internal/repo"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	// ES is optional; without it products are simply not indexed.
	ES      *elasticsearch.Client
	ESIndex string
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type ProductInput struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	CategoryID     string         `json:"category_id"`
	ImageURL       string         `json:"image_url"`
	Images         []string       `json:"images"`
	Specifications map[string]any `json:"specifications"`
	InStock        *bool          `json:"in_stock"`
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.Categories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create_category")

	if in.Name == "" || in.Slug == "" {
		return nil, fmt.Errorf("name and slug are required: %w", ErrValidation)
	}

	category := models.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.CreateCategory(ctx, &category); err != nil {
		l.Error("create_category_error", "error", err)
		return nil, err
	}

	s.publish(ctx, category.ID, map[string]any{
		"type":        "category_created",
		"category_id": category.ID,
		"name":        category.Name,
	})

	l.Info("category created", "category_id", category.ID, "slug", category.Slug)
	return &category, nil
}

func (s *CatalogService) Products(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.Repo.Products(ctx, categoryID)
}

func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.ProductByID(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct resolves the category and stamps its name onto the product.
// The stamp is a point-in-time copy: renaming the category later leaves
// existing products untouched.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create_product")

	if in.Name == "" || in.Description == "" || in.CategoryID == "" {
		return nil, fmt.Errorf("name, description and category_id are required: %w", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative: %w", ErrValidation)
	}

	category, err := s.Repo.CategoryByID(ctx, in.CategoryID)
	if err != nil {
		if repo.IsNotFound(err) {
			l.Warn("create_product_error", "reason", "unknown category", "category_id", in.CategoryID)
			return nil, fmt.Errorf("category %s: %w", in.CategoryID, ErrInvalidReference)
		}
		l.Error("create_product_error", "error", err)
		return nil, err
	}

	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	product := models.Product{
		ID:             uuid.NewString(),
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		CategoryID:     category.ID,
		CategoryName:   category.Name,
		ImageURL:       in.ImageURL,
		Images:         in.Images,
		Specifications: in.Specifications,
		InStock:        inStock,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		l.Error("create_product_error", "error", err)
		return nil, err
	}

	if s.ES != nil {
		if err := es.IndexProduct(ctx, s.ES, s.ESIndex, &product); err != nil {
			l.Error("product index error", "product_id", product.ID, "error", err)
		}
	}

	s.publish(ctx, product.ID, map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})

	l.Info("product created", "product_id", product.ID, "category_id", product.CategoryID)
	return &product, nil
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicProductEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", mykafka.TopicProductEvents, "error", err)
	}
}
