// Package uploads accepts multipart image uploads and returns them as
// base64 data URIs for embedding in article records.
package uploads

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/pressbox-io/pressbox/internal/config"
	"github.com/pressbox-io/pressbox/internal/routes"
	"github.com/pressbox-io/pressbox/pkg/handlers"
)

type UploadResponse struct {
	Success     bool   `json:"success"`
	ImageData   string `json:"image_data"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type Handler struct {
	cfg    *config.UploadsConfig
	logger *slog.Logger
}

func NewHandler(cfg *config.UploadsConfig, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		logger: logger.With("handler", "uploads"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/uploads",
		Description: "Image uploads",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/images", Handler: h.upload},
		},
	}
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	maxSize := h.cfg.MaxUploadSizeBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+1)

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid upload: %w", err))
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	if int64(len(contents)) > maxSize {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			fmt.Errorf("file size exceeds %s limit", h.cfg.MaxUploadSize))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !slices.Contains(h.cfg.AllowedTypes, contentType) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest,
			errors.New("invalid file type, only JPEG, PNG, GIF, and WebP are allowed"))
		return
	}

	encoded := base64.StdEncoding.EncodeToString(contents)
	h.logger.Info("image uploaded", "filename", header.Filename, "size", len(contents))

	handlers.RespondJSON(w, http.StatusOK, UploadResponse{
		Success:     true,
		ImageData:   fmt.Sprintf("data:%s;base64,%s", contentType, encoded),
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        len(contents),
	})
}
