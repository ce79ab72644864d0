package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/repo"
)

// ReviewService handles the append-only intake surfaces: testimonial
// reviews (admin-entered, despite the user_* field names) and contact
// messages.
type ReviewService struct {
	Repo *repo.GormRepo
	// Limit caps the public review listing, newest first.
	Limit int
}

type ReviewInput struct {
	UserName     string `json:"user_name"`
	UserLocation string `json:"user_location"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	UserImage    string `json:"user_image"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *ReviewService) Reviews(ctx context.Context) ([]models.Review, error) {
	limit := s.Limit
	if limit <= 0 {
		limit = 10
	}
	return s.Repo.Reviews(ctx, limit)
}

func (s *ReviewService) CreateReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	l := logging.FromContext(ctx).With("svc", "review.create")

	if in.UserName == "" || in.Comment == "" {
		return nil, fmt.Errorf("user_name and comment are required: %w", ErrValidation)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	review := models.Review{
		ID:           uuid.NewString(),
		UserName:     in.UserName,
		UserLocation: in.UserLocation,
		Rating:       in.Rating,
		Comment:      in.Comment,
		UserImage:    in.UserImage,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.CreateReview(ctx, &review); err != nil {
		l.Error("create_review_error", "error", err)
		return nil, err
	}

	l.Info("review created", "review_id", review.ID, "rating", review.Rating)
	return &review, nil
}

func (s *ReviewService) CreateContact(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	l := logging.FromContext(ctx).With("svc", "contact.create")

	if in.Name == "" || in.Email == "" || in.Message == "" {
		return nil, fmt.Errorf("name, email and message are required: %w", ErrValidation)
	}

	msg := models.ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Repo.CreateContactMessage(ctx, &msg); err != nil {
		l.Error("create_contact_error", "error", err)
		return nil, err
	}

	l.Info("contact message received", "message_id", msg.ID)
	return &msg, nil
}
