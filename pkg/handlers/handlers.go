package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"video-catalog/pkg/catalog"
)

const introVideosLabel = "[CATALOG_INTRO_VIDEOS]"

type IntroVideoService interface {
	IntroVideos(ctx context.Context) ([]catalog.IntroVideo, error)
}

type Handler struct {
	svc IntroVideoService
	log *log.Logger
}

// New returns a Handler. A nil logger writes to stderr.
func New(svc IntroVideoService, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return &Handler{svc: svc, log: logger}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/ping", h.Ping)
	r.GET("/api/catalog/intro-videos", h.IntroVideos)
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "ok"})
}

// IntroVideos responds with the newest catalog video. Failures keep the same
// envelope with an empty list so clients can fall back to showing nothing.
func (h *Handler) IntroVideos(c *gin.Context) {
	videos, err := h.svc.IntroVideos(c.Request.Context())
	if err != nil {
		var qf *catalog.QueryFailure
		if !errors.As(err, &qf) {
			qf = catalog.NewQueryFailure(err)
		}
		h.log.Printf("%s %s", introVideosLabel, qf.Message)
		c.JSON(http.StatusInternalServerError, gin.H{"videos": []catalog.IntroVideo{}, "error": qf.Message})
		return
	}

	if videos == nil {
		videos = []catalog.IntroVideo{}
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
