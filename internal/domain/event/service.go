package event

import (
	"context"
	"log"
	"time"

	"templecms/internal/pkg/photos"
)

// ImageCleaner removes the structured images owned by an event. Wired to
// the image service in cmd/api; a local interface keeps the packages
// decoupled.
type ImageCleaner interface {
	DeleteEventImages(ctx context.Context, eventID int64) error
}

// Service handles event business logic.
type Service struct {
	repo   Repository
	images ImageCleaner
}

func NewService(repo Repository, images ImageCleaner) *Service {
	return &Service{repo: repo, images: images}
}

func (s *Service) Create(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	e := &Event{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		EventDate:   req.EventDate,
		Photos:      photos.Encode(req.Photos),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*EventResponse, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(e)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]EventResponse, error) {
	events, err := s.repo.List(ctx, filter, time.Now())
	if err != nil {
		return nil, err
	}
	return toResponses(events), nil
}

// Update applies a partial update: only supplied fields change, the rest
// keep their stored values.
func (s *Service) Update(ctx context.Context, id int64, req UpdateEventRequest) (*EventResponse, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.EventDate != nil {
		fields["event_date"] = *req.EventDate
	}
	if req.Photos != nil {
		fields["photos"] = photos.Encode(*req.Photos)
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

// Delete removes the event row, then cleans up its images best-effort. A
// failed image cleanup is logged and does not undo the delete.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.images.DeleteEventImages(ctx, id); err != nil {
		log.Printf("event_image_cleanup_failed event_id=%d error=%q", id, err)
	}
	return nil
}
