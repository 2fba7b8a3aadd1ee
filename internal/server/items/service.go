package items

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
	"github.com/dmitrijs2005/gatormarket/internal/server/validation"
)

var (
	ErrInvalidPrice = errors.New("price must be a positive number")
	ErrForbidden    = errors.New("not allowed to modify this item")
)

// CreateInput is the body of a create request. Price is checked by hand so a
// missing or zero price is reported as ErrInvalidPrice, not as a field error.
type CreateInput struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" validate:"required,oneof=school apparel living services tickets"`
	Image       string  `json:"image"`
}

type Service struct {
	repo     Repository
	validate *validation.Validator
	logger   logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Service{
		repo:     repo,
		validate: validation.New(""),
		logger:   logger.With("component", "items"),
	}
}

func (s *Service) ListActive(ctx context.Context) ([]Item, error) {
	return s.repo.ListActive(ctx)
}

// Create stores a new active item owned by seller.
func (s *Service) Create(ctx context.Context, seller *users.User, in CreateInput) (*Item, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))

	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if in.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	image := strings.TrimSpace(in.Image)
	if image == "" {
		image = CategoryImages[in.Category]
	}

	it, err := s.repo.Create(ctx, &Item{
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    in.Category,
		Image:       image,
		IsActive:    true,
		SellerID:    seller.ID,
		SellerEmail: seller.Email,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "item created", "id", it.ID, "seller", seller.Username)
	return it, nil
}

// MarkSold deactivates the item. Only its seller or an admin may do it.
func (s *Service) MarkSold(ctx context.Context, actor *users.User, id int64) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info(ctx, "item marked sold", "id", id, "by", actor.Username)
	return nil
}

// Delete removes the item. Only its seller or an admin may do it.
func (s *Service) Delete(ctx context.Context, actor *users.User, id int64) error {
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "item deleted", "id", id, "by", actor.Username)
	return nil
}

func (s *Service) authorize(ctx context.Context, actor *users.User, id int64) error {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if it.SellerID != actor.ID && !actor.IsAdmin {
		s.logger.Warn(ctx, "item change refused", "id", id, "by", actor.Username)
		return ErrForbidden
	}
	return nil
}
