package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Nature says whether a project runs indefinitely or has a bounded life.
type Nature string

const (
	NatureContinuous Nature = "Continuous"
	NatureOneTime    Nature = "One-time"
)

// DonationTarget routes a project's donation call-to-action to one of the
// center's fixed campaigns.
type DonationTarget string

const (
	TargetDailyDana       DonationTarget = "Daily Dana"
	TargetPoyaDay         DonationTarget = "Poya Day"
	TargetSpecialProjects DonationTarget = "Special Projects"
)

// Project is a fundraising initiative. Amounts are decimals, never floats;
// current may exceed goal (over-funding is allowed, display caps at 100%).
type Project struct {
	ID                    int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectName           string          `gorm:"column:project_name;not null" json:"project_name"`
	Description           string          `gorm:"column:description;not null" json:"description"`
	Photos                string          `gorm:"column:photos;default:'[]'" json:"-"` // JSON-encoded URL list
	DonationGoalAmount    decimal.Decimal `gorm:"column:donation_goal_amount;type:decimal(12,2);not null" json:"donation_goal_amount"`
	CurrentDonationAmount decimal.Decimal `gorm:"column:current_donation_amount;type:decimal(12,2);not null;default:0" json:"current_donation_amount"`
	ProjectType           string          `gorm:"column:project_type;not null" json:"project_type"`
	ProjectNature         Nature          `gorm:"column:project_nature;not null;index" json:"project_nature"`
	StartDate             *time.Time      `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate               *time.Time      `gorm:"column:end_date" json:"end_date,omitempty"`
	DonationLinkTarget    DonationTarget  `gorm:"column:donation_link_target;not null;index" json:"donation_link_target"`
	CreatedAt             time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// ProgressPercent is the funded share for display, capped at 100. The
// stored amount is never clamped.
func (p *Project) ProgressPercent() float64 {
	if !p.DonationGoalAmount.IsPositive() {
		return 0
	}
	pct, _ := p.CurrentDonationAmount.
		Div(p.DonationGoalAmount).
		Mul(decimal.NewFromInt(100)).
		Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
