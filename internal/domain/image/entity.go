package image

import (
	"time"
)

// OwnerType tags which entity kind an image belongs to.
type OwnerType string

const (
	OwnerTypeEvent   OwnerType = "event"
	OwnerTypeProject OwnerType = "project"
)

// Owner is the tagged union identifying the single entity an image belongs
// to. Constructing one through EventOwner/ProjectOwner makes a both-set or
// neither-set owner unrepresentable.
type Owner struct {
	Type OwnerType
	ID   int64
}

func EventOwner(id int64) Owner   { return Owner{Type: OwnerTypeEvent, ID: id} }
func ProjectOwner(id int64) Owner { return Owner{Type: OwnerTypeProject, ID: id} }

// ParseOwner builds an Owner from the upload form's entity_type/entity_id
// pair.
func ParseOwner(entityType string, entityID int64) (Owner, error) {
	switch OwnerType(entityType) {
	case OwnerTypeEvent:
		return EventOwner(entityID), nil
	case OwnerTypeProject:
		return ProjectOwner(entityID), nil
	default:
		return Owner{}, ErrInvalidOwnerType
	}
}

// Image is a stored photo's metadata. The blob itself lives in the
// configured storage backend under Path; URL is its public address.
// At most one image per owner has IsFeatured set.
type Image struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Filename     string    `gorm:"column:filename;not null" json:"filename"`
	OriginalName string    `gorm:"column:original_name;not null" json:"original_name"`
	MimeType     string    `gorm:"column:mime_type;not null" json:"mime_type"`
	Size         int64     `gorm:"column:size;not null" json:"size"`
	Path         string    `gorm:"column:path;not null" json:"path"`
	URL          string    `gorm:"column:url;not null" json:"url"`
	Alt          *string   `gorm:"column:alt" json:"alt,omitempty"`
	IsFeatured   bool      `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	UploadedBy   int64     `gorm:"column:uploaded_by;not null" json:"uploaded_by"`
	OwnerType    OwnerType `gorm:"column:owner_type;not null;index:idx_images_owner" json:"owner_type"`
	OwnerID      int64     `gorm:"column:owner_id;not null;index:idx_images_owner" json:"owner_id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Image) TableName() string { return "images" }

// Owner reconstructs the tagged union from the stored pair.
func (i *Image) Owner() Owner {
	return Owner{Type: i.OwnerType, ID: i.OwnerID}
}
