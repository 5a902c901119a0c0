package project

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"templecms/internal/pkg/photos"
)

// ImageCleaner removes the structured images owned by a project. Wired to
// the image service in cmd/api.
type ImageCleaner interface {
	DeleteProjectImages(ctx context.Context, projectID int64) error
}

// Service handles project business logic. Amount and date invariants are
// checked here, in front of persistence, so a violating request never
// reaches the store.
type Service struct {
	repo   Repository
	images ImageCleaner
}

func NewService(repo Repository, images ImageCleaner) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*ProjectResponse, error) {
	if !req.DonationGoalAmount.IsPositive() {
		return nil, &FieldError{Field: "donation_goal_amount", Message: "must be greater than zero"}
	}

	current := decimal.Zero
	if req.CurrentDonationAmount != nil {
		current = *req.CurrentDonationAmount
	}
	if current.IsNegative() {
		return nil, &FieldError{Field: "current_donation_amount", Message: "must not be negative"}
	}

	if err := checkDateOrder(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	p := &Project{
		ProjectName:           req.ProjectName,
		Description:           req.Description,
		Photos:                photos.Encode(req.Photos),
		DonationGoalAmount:    req.DonationGoalAmount,
		CurrentDonationAmount: current,
		ProjectType:           req.ProjectType,
		ProjectNature:         req.ProjectNature,
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		DonationLinkTarget:    req.DonationLinkTarget,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*ProjectResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]ProjectResponse, error) {
	projects, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toResponses(projects), nil
}

// Update applies a partial update. Date ordering is validated against the
// effective values, i.e. supplied fields merged over the stored record.
func (s *Service) Update(ctx context.Context, id int64, req UpdateProjectRequest) (*ProjectResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.ProjectName != nil {
		fields["project_name"] = *req.ProjectName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Photos != nil {
		fields["photos"] = photos.Encode(*req.Photos)
	}
	if req.DonationGoalAmount != nil {
		if !req.DonationGoalAmount.IsPositive() {
			return nil, &FieldError{Field: "donation_goal_amount", Message: "must be greater than zero"}
		}
		fields["donation_goal_amount"] = *req.DonationGoalAmount
	}
	if req.CurrentDonationAmount != nil {
		if req.CurrentDonationAmount.IsNegative() {
			return nil, &FieldError{Field: "current_donation_amount", Message: "must not be negative"}
		}
		fields["current_donation_amount"] = *req.CurrentDonationAmount
	}
	if req.ProjectType != nil {
		fields["project_type"] = *req.ProjectType
	}
	if req.ProjectNature != nil {
		fields["project_nature"] = *req.ProjectNature
	}

	start := existing.StartDate
	if req.StartDate != nil {
		start = req.StartDate
		fields["start_date"] = *req.StartDate
	}
	end := existing.EndDate
	if req.EndDate != nil {
		end = req.EndDate
		fields["end_date"] = *req.EndDate
	}
	if err := checkDateOrder(start, end); err != nil {
		return nil, err
	}

	if req.DonationLinkTarget != nil {
		fields["donation_link_target"] = *req.DonationLinkTarget
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	fields["updated_at"] = time.Now()

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes the project row, then cleans up its images best-effort.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.images.DeleteProjectImages(ctx, id); err != nil {
		log.Printf("project_image_cleanup_failed project_id=%d error=%q", id, err)
	}
	return nil
}

// checkDateOrder rejects start > end when both dates are present. Input
// is rejected, never silently corrected.
func checkDateOrder(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return &FieldError{Field: "start_date", Message: "must not be after end_date"}
	}
	return nil
}
