package handler

import (
	"Microblog/internal/api/dto"
	"Microblog/internal/api/middleware"
	"Microblog/internal/pkg/response"
	"Microblog/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
	maxBytes int64
}

func NewMediaHandler(mediaSvc service.MediaService, maxBytes int64) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc, maxBytes: maxBytes}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(c, service.PayloadTooLarge("File too large. Maximum allowed size is %s", middleware.HumanSize(s.maxBytes)))
			return
		}
		response.Error(c, service.ValidationFailure("Field [file] is required"))
		return
	}
	if s.maxBytes > 0 && file.Size > s.maxBytes {
		response.Error(c, service.PayloadTooLarge("File too large. Maximum allowed size is %s", middleware.HumanSize(s.maxBytes)))
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ValidationFailure("Field [file] is unreadable"))
		return
	}
	defer func() { _ = reader.Close() }()

	mediaID, err := s.mediaSvc.Upload(c.Request.Context(), file.Filename, reader, file.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	log.InfoContext(c.Request.Context(), "media upload success", "media_id", mediaID, "filename", file.Filename)
	response.Success(c, dto.MediaUploadResponse{
		Response: dto.Response{Result: true},
		MediaID:  mediaID,
	})
}
