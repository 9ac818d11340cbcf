package catalog

import (
	"context"
	"fmt"

	"github.com/jinzhu/gorm"

	"video-catalog/pkg/models"
)

// GormStore reads videos through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindMany(ctx context.Context, q Query) ([]IntroVideo, error) {
	if err := q.validate(); err != nil {
		return nil, fmt.Errorf("invalid video query: %w", err)
	}
	// gorm v1 takes no context, so only an already-cancelled request is honoured.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tx := s.db.Model(&models.Video{}).Select(q.selectList()).Limit(q.Limit)
	if order := q.orderClause(); order != "" {
		tx = tx.Order(order)
	}

	var rows []models.Video
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	videos := make([]IntroVideo, 0, len(rows))
	for _, r := range rows {
		videos = append(videos, IntroVideo{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Thumbnail:   r.Thumbnail,
			VideoURL:    r.VideoURL,
			Price:       r.Price,
			CreatedAt:   r.CreatedAt,
		})
	}
	return videos, nil
}
