// Package seed populates an empty catalog with the outlet's launch data.
// It is a one-time, idempotent bootstrap: when any category already exists
// the whole run is a no-op, so redeploys never duplicate rows.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/repo"
)

type categoryData struct {
	Name        string
	Slug        string
	Description string
	ImageURL    string
}

type productData struct {
	Name           string
	Description    string
	Price          float64
	CategorySlug   string
	ImageURL       string
	Specifications map[string]any
}

type reviewData struct {
	UserName     string
	UserLocation string
	Rating       int
	Comment      string
	UserImage    string
}

var categories = []categoryData{
	{"Sofás", "sofas", "Sofás modernos e confortáveis para sua sala", "https://images.unsplash.com/photo-1555041469-a586c61ea9bc"},
	{"Poltronas", "poltronas", "Poltronas decorativas e confortáveis", "https://images.unsplash.com/photo-1718049719688-764249c6800d"},
	{"Almofadas", "almofadas", "Almofadas decorativas para todos os ambientes", "https://images.unsplash.com/photo-1553114552-c4ece3a33c93"},
	{"Puffs", "puffs", "Puffs redondos e quadrados para decoração", "https://images.unsplash.com/photo-1503278034495-2865fce44a95"},
	{"Recamiers", "recamiers", "Recamiers elegantes para quarto e sala", "https://images.unsplash.com/photo-1733472107207-547dc85e1d31"},
	{"Móveis Industriais", "moveis-industriais", "Móveis industriais de ferro e madeira", "https://images.unsplash.com/photo-1682718619781-252f23e21132"},
}

var products = []productData{
	{"Sofá Moderno Verde", "Sofá moderno de 3 lugares em tecido verde com pés de madeira", 2499.90, "sofas", "https://images.unsplash.com/photo-1555041469-a586c61ea9bc", map[string]any{"lugares": "3", "material": "Tecido", "cor": "Verde"}},
	{"Sofá Cinza com Almofadas", "Sofá moderno cinza com almofadas decorativas incluídas", 3299.90, "sofas", "https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e", map[string]any{"lugares": "3", "material": "Tecido", "cor": "Cinza"}},
	{"Sofá Branco Clean", "Sofá moderno branco minimalista para ambientes clean", 2899.90, "sofas", "https://images.unsplash.com/photo-1603192399946-8bbb0703cfc4", map[string]any{"lugares": "2", "material": "Courino", "cor": "Branco"}},
	{"Poltrona Branca Moderna", "Par de poltronas brancas modernas para sala de estar", 1899.90, "poltronas", "https://images.unsplash.com/photo-1718049719688-764249c6800d", map[string]any{"material": "Courino", "cor": "Branco", "estilo": "Moderno"}},
	{"Poltrona Couro Marrom", "Poltrona decorativa em couro marrom com detalhes elegantes", 2199.90, "poltronas", "https://images.unsplash.com/photo-1601366533287-5ee4c763ae4e", map[string]any{"material": "Couro", "cor": "Marrom", "estilo": "Clássico"}},
	{"Kit Almofadas Coloridas", "Conjunto de 3 almofadas coloridas para decoração", 299.90, "almofadas", "https://images.unsplash.com/photo-1553114552-c4ece3a33c93", map[string]any{"quantidade": "3", "tamanho": "45x45cm", "material": "Algodão"}},
	{"Puff Tricotado", "Puff redondo tricotado para sala ou quarto", 399.90, "puffs", "https://images.unsplash.com/photo-1503278034495-2865fce44a95", map[string]any{"formato": "Redondo", "material": "Tricô", "cor": "Bege"}},
	{"Recamier Colorido", "Recamier para quarto com tecido colorido e design moderno", 1599.90, "recamiers", "https://images.unsplash.com/photo-1733472107207-547dc85e1d31", map[string]any{"lugares": "1", "material": "Tecido", "estilo": "Moderno"}},
	{"Mesa Industrial Ferro e Madeira", "Mesa de jantar industrial com estrutura de ferro e tampo de madeira", 1899.90, "moveis-industriais", "https://images.unsplash.com/photo-1593022445207-836cf2396054", map[string]any{"material": "Ferro e Madeira", "lugares": "6", "estilo": "Industrial"}},
}

var reviews = []reviewData{
	{"Mariana Silva", "Copacabana, RJ", 5, "Excelente qualidade! O sofá chegou no prazo e superou minhas expectativas. Recomendo!", "https://images.unsplash.com/photo-1727063453176-567739afef75"},
	{"Carlos Mendes", "Barra da Tijuca, RJ", 5, "Atendimento excepcional e produtos de primeira qualidade. Muito satisfeito!", "https://images.unsplash.com/photo-1717068342949-d596a0352889"},
	{"Ana Paula", "Ipanema, RJ", 5, "A poltrona ficou perfeita na minha sala. Conforto e elegância em um só produto!", "https://images.unsplash.com/photo-1720098110121-26aa70b87bfc"},
	{"Roberto Lima", "Tijuca, RJ", 4, "Ótima experiência de compra. Móveis de qualidade e entrega rápida.", "https://images.pexels.com/photos/2019926/pexels-photo-2019926.jpeg"},
	{"Julia Santos", "Leblon, RJ", 5, "Amei meu novo sofá! Design moderno e muito confortável. Recomendo a todos!", "https://images.unsplash.com/photo-1753161021289-1373415244b1"},
}

// Run seeds the catalog and testimonials if the database is empty.
func Run(ctx context.Context, db *gorm.DB) error {
	l := logging.FromContext(ctx).With("svc", "seed")
	r := &repo.GormRepo{DB: db}

	existing, err := r.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("seed: count categories: %w", err)
	}
	if existing > 0 {
		l.Info("catalog already seeded", "categories", existing)
		return nil
	}

	bySlug := make(map[string]*models.Category, len(categories))
	for _, data := range categories {
		category := models.Category{
			ID:          uuid.NewString(),
			Name:        data.Name,
			Slug:        data.Slug,
			Description: data.Description,
			ImageURL:    data.ImageURL,
			CreatedAt:   time.Now().UTC(),
		}
		if err := r.CreateCategory(ctx, &category); err != nil {
			return fmt.Errorf("seed: create category %s: %w", data.Slug, err)
		}
		bySlug[category.Slug] = &category
	}

	for _, data := range products {
		category, ok := bySlug[data.CategorySlug]
		if !ok {
			return fmt.Errorf("seed: product %q references unknown slug %s", data.Name, data.CategorySlug)
		}
		product := models.Product{
			ID:             uuid.NewString(),
			Name:           data.Name,
			Description:    data.Description,
			Price:          data.Price,
			CategoryID:     category.ID,
			CategoryName:   category.Name,
			ImageURL:       data.ImageURL,
			Images:         []string{data.ImageURL},
			Specifications: data.Specifications,
			InStock:        true,
			CreatedAt:      time.Now().UTC(),
		}
		if err := r.CreateProduct(ctx, &product); err != nil {
			return fmt.Errorf("seed: create product %q: %w", data.Name, err)
		}
	}

	for _, data := range reviews {
		review := models.Review{
			ID:           uuid.NewString(),
			UserName:     data.UserName,
			UserLocation: data.UserLocation,
			Rating:       data.Rating,
			Comment:      data.Comment,
			UserImage:    data.UserImage,
			CreatedAt:    time.Now().UTC(),
		}
		if err := r.CreateReview(ctx, &review); err != nil {
			return fmt.Errorf("seed: create review by %s: %w", data.UserName, err)
		}
	}

	l.Info("catalog seeded", "categories", len(categories), "products", len(products), "reviews", len(reviews))
	return nil
}
