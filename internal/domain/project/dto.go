package project

import (
	"time"

	"github.com/shopspring/decimal"

	"templecms/internal/pkg/photos"
)

// CreateProjectRequest carries all project fields. Amount signs and date
// ordering are enforced by the service before persistence; the tag layer
// covers shape and enum membership.
type CreateProjectRequest struct {
	ProjectName           string           `json:"project_name" validate:"required"`
	Description           string           `json:"description" validate:"required"`
	Photos                []string         `json:"photos" validate:"omitempty,dive,url"`
	DonationGoalAmount    decimal.Decimal  `json:"donation_goal_amount" validate:"required"`
	CurrentDonationAmount *decimal.Decimal `json:"current_donation_amount"`
	ProjectType           string           `json:"project_type" validate:"required"`
	ProjectNature         Nature           `json:"project_nature" validate:"required,oneof=Continuous One-time"`
	StartDate             *time.Time       `json:"start_date"`
	EndDate               *time.Time       `json:"end_date"`
	DonationLinkTarget    DonationTarget   `json:"donation_link_target" validate:"required,oneof='Daily Dana' 'Poya Day' 'Special Projects'"`
}

// UpdateProjectRequest applies only supplied fields.
type UpdateProjectRequest struct {
	ProjectName           *string          `json:"project_name" validate:"omitempty,min=1"`
	Description           *string          `json:"description" validate:"omitempty,min=1"`
	Photos                *[]string        `json:"photos" validate:"omitempty,dive,url"`
	DonationGoalAmount    *decimal.Decimal `json:"donation_goal_amount"`
	CurrentDonationAmount *decimal.Decimal `json:"current_donation_amount"`
	ProjectType           *string          `json:"project_type" validate:"omitempty,min=1"`
	ProjectNature         *Nature          `json:"project_nature" validate:"omitempty,oneof=Continuous One-time"`
	StartDate             *time.Time       `json:"start_date"`
	EndDate               *time.Time       `json:"end_date"`
	DonationLinkTarget    *DonationTarget  `json:"donation_link_target" validate:"omitempty,oneof='Daily Dana' 'Poya Day' 'Special Projects'"`
}

// ListQuery holds the optional equality filters; empty or "all" means
// no filtering on that dimension.
type ListQuery struct {
	Nature Nature
	Target DonationTarget
}

// ProjectResponse is the wire shape with the decoded legacy photo list and
// the capped progress figure.
type ProjectResponse struct {
	Project
	Photos          []string `json:"photos"`
	ProgressPercent float64  `json:"progress_percent"`
}

func toResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		Project:         *p,
		Photos:          photos.Decode(p.Photos),
		ProgressPercent: p.ProgressPercent(),
	}
}

func toResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = toResponse(&projects[i])
	}
	return out
}
