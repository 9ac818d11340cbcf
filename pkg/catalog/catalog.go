// Package catalog serves read-only views over the video catalog.
package catalog

import (
	"context"
	"errors"
	"time"
)

// IntroVideo is the public projection of a catalog video.
type IntroVideo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	VideoURL    string    `json:"videoUrl"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IntroVideoColumns are the stored columns backing IntroVideo, in field order.
var IntroVideoColumns = []string{
	"id",
	"title",
	"description",
	"thumbnail",
	"video_url",
	"price",
	"created_at",
}

// Query is a find-many request: projection, single sort key and row limit.
type Query struct {
	Fields     []string
	OrderBy    string
	Descending bool
	Limit      int
}

// Store reads videos from the backing data store.
type Store interface {
	FindMany(ctx context.Context, q Query) ([]IntroVideo, error)
}

// MediaResolver rewrites stored media references into URLs a client can fetch.
type MediaResolver interface {
	Resolve(ref string) string
}

// IntroVideoQuery selects the newest video.
func IntroVideoQuery() Query {
	fields := make([]string, len(IntroVideoColumns))
	copy(fields, IntroVideoColumns)
	return Query{
		Fields:     fields,
		OrderBy:    "created_at",
		Descending: true,
		Limit:      1,
	}
}

type Service struct {
	store Store
	media MediaResolver
}

// NewService builds a Service. media may be nil.
func NewService(store Store, media MediaResolver) *Service {
	return &Service{store: store, media: media}
}

// IntroVideos returns the most recently created video, or an empty slice when
// the catalog is empty. Store errors come back as *QueryFailure.
func (s *Service) IntroVideos(ctx context.Context) ([]IntroVideo, error) {
	q := IntroVideoQuery()

	videos, err := s.store.FindMany(ctx, q)
	if err != nil {
		var qf *QueryFailure
		if errors.As(err, &qf) {
			return nil, qf
		}
		return nil, NewQueryFailure(err)
	}

	if len(videos) > q.Limit {
		videos = videos[:q.Limit]
	}
	out := make([]IntroVideo, 0, len(videos))
	for _, v := range videos {
		if s.media != nil {
			v.Thumbnail = s.media.Resolve(v.Thumbnail)
			v.VideoURL = s.media.Resolve(v.VideoURL)
		}
		out = append(out, v)
	}
	return out, nil
}
