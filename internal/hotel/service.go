package hotel

import (
	"context"
	"strings"
)

// CreateHotelRequest carries data to create a hotel.
type CreateHotelRequest struct {
	Name          string
	Email         string
	Location      string
	Description   string
	ContactNumber string
	IsActive      bool
	IsFeatured    bool
	ImageFileID   *string
	CreatedBy     string
}

// UpdateHotelRequest carries data for partial updates.
type UpdateHotelRequest struct {
	Name          *string
	Email         *string
	Location      *string
	Description   *string
	ContactNumber *string
	IsActive      *bool
	IsFeatured    *bool
	ImageFileID   *string
}

type Service interface {
	Create(ctx context.Context, req CreateHotelRequest) (*Hotel, error)
	GetByID(ctx context.Context, id string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, id string, req UpdateHotelRequest) (*Hotel, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateHotel(h *Hotel) error {
	h.Name = strings.TrimSpace(h.Name)
	h.Email = strings.ToLower(strings.TrimSpace(h.Email))
	h.Location = strings.TrimSpace(h.Location)

	if h.Name == "" {
		return ErrNameRequired
	}
	if h.Email == "" {
		return ErrEmailRequired
	}
	if h.Location == "" {
		return ErrLocationRequired
	}
	return nil
}

func (s *service) ensureUnique(ctx context.Context, h *Hotel) error {
	exists, err := s.repo.ExistsByNameOrEmail(ctx, h.Name, h.Email, h.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicate
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateHotelRequest) (*Hotel, error) {
	h := &Hotel{
		Name:          req.Name,
		Email:         req.Email,
		Location:      req.Location,
		Description:   strings.TrimSpace(req.Description),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
		ImageFileID:   req.ImageFileID,
	}
	if req.CreatedBy != "" {
		createdBy := req.CreatedBy
		h.CreatedBy = &createdBy
	}

	if err := validateHotel(h); err != nil {
		return nil, err
	}
	// Unique constraints still back this up against concurrent creates.
	if err := s.ensureUnique(ctx, h); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateHotelRequest) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Apply non-nil fields
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Email != nil {
		h.Email = *req.Email
	}
	if req.Location != nil {
		h.Location = *req.Location
	}
	if req.Description != nil {
		h.Description = strings.TrimSpace(*req.Description)
	}
	if req.ContactNumber != nil {
		h.ContactNumber = strings.TrimSpace(*req.ContactNumber)
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		h.IsFeatured = *req.IsFeatured
	}
	if req.ImageFileID != nil {
		h.ImageFileID = req.ImageFileID
	}

	if err := validateHotel(h); err != nil {
		return nil, err
	}
	if req.Name != nil || req.Email != nil {
		if err := s.ensureUnique(ctx, h); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
