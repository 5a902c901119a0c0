package contact

import "time"

// Status tracks triage of an inquiry from the public contact form.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusResolved Status = "resolved"
)

// Message is an inquiry a visitor submitted through the site's contact
// page.
type Message struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	Phone     *string   `gorm:"column:phone" json:"phone,omitempty"`
	Subject   string    `gorm:"column:subject;not null" json:"subject"`
	Body      string    `gorm:"column:body;not null" json:"message"`
	Status    Status    `gorm:"column:status;not null;default:new;index" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Message) TableName() string { return "contact_messages" }
