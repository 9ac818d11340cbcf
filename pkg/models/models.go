package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Video is a purchasable catalog entry. Rows are written by the catalog
// admin tooling; this service only reads them.
type Video struct {
	ID          string    `gorm:"primary_key;type:varchar(36)" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `gorm:"column:video_url" json:"videoUrl"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Video) TableName() string {
	return "videos"
}

func (v *Video) BeforeCreate(scope *gorm.Scope) error {
	if v.ID != "" {
		return nil
	}
	return scope.SetColumn("ID", uuid.New().String())
}
