package handler

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/service"
)

// maxImageSize bounds multipart image uploads. Larger files are rejected
// with 413, never truncated.
const maxImageSize = 16 << 20

// WardrobeService defines garment, image and tag operations used by the
// HTTP layer.
type WardrobeService interface {
	CreateGarment(ctx context.Context, params service.CreateGarmentParams) (model.Garment, error)
	GetGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.Garment, error)
	ListGarments(ctx context.Context, userID uuid.UUID, filter model.GarmentFilter) ([]model.Garment, error)
	UpdateGarment(ctx context.Context, userID, garmentID uuid.UUID, params service.UpdateGarmentParams) (model.Garment, error)
	UpdateGarmentStatus(ctx context.Context, userID, garmentID uuid.UUID, status model.GarmentStatus) error
	WearGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.GarmentStatus, error)
	DeleteGarment(ctx context.Context, userID, garmentID uuid.UUID) error
	AttachImage(ctx context.Context, userID, garmentID uuid.UUID, upload service.ImageUpload) (model.GarmentImage, error)
	OpenImage(ctx context.Context, userID, imageID uuid.UUID) (model.GarmentImage, io.ReadCloser, error)
	RemoveImage(ctx context.Context, userID, imageID uuid.UUID) error
	CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error)
	CreateOrGetTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error)
	AttachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) (bool, error)
	DetachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) error
	ListTags(ctx context.Context, userID uuid.UUID) ([]model.TagWithCount, error)
	DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error
}

// Garment handles HTTP endpoints for garments and their images.
type Garment struct {
	wardrobe       WardrobeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGarment creates a new Garment handler.
func NewGarment(wardrobe WardrobeService, contextManager model.ContextManager, logger *logger.Logger) *Garment {
	return &Garment{
		wardrobe:       wardrobe,
		contextManager: contextManager,
		logger:         logger,
	}
}

type garmentRequest struct {
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	Material         *string             `json:"material,omitempty"`
	Color            *string             `json:"color,omitempty"`
	Size             *string             `json:"size,omitempty"`
	Brand            *string             `json:"brand,omitempty"`
	PurchaseDate     *time.Time          `json:"purchase_date,omitempty"`
	Cost             *float64            `json:"cost,omitempty"`
	CareInstructions *string             `json:"care_instructions,omitempty"`
	Status           model.GarmentStatus `json:"status,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
}

type imageResponse struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

type tagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type garmentResponse struct {
	ID               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Category         string              `json:"category"`
	Material         *string             `json:"material,omitempty"`
	Color            *string             `json:"color,omitempty"`
	Size             *string             `json:"size,omitempty"`
	Brand            *string             `json:"brand,omitempty"`
	PurchaseDate     *time.Time          `json:"purchase_date,omitempty"`
	Cost             *float64            `json:"cost,omitempty"`
	CareInstructions *string             `json:"care_instructions,omitempty"`
	Status           model.GarmentStatus `json:"status"`
	Notes            *string             `json:"notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	Images           []imageResponse     `json:"images"`
	Tags             []tagResponse       `json:"tags"`
}

func toImageResponse(img model.GarmentImage) imageResponse {
	return imageResponse{
		ID:        img.ID,
		URL:       img.URL,
		FileName:  img.FileName,
		FileSize:  img.FileSize,
		MimeType:  img.MimeType,
		CreatedAt: img.CreatedAt,
	}
}

func toTagResponse(t model.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

func toGarmentResponse(g model.Garment) garmentResponse {
	resp := garmentResponse{
		ID:               g.ID,
		Name:             g.Name,
		Category:         g.Category,
		Material:         g.Material,
		Color:            g.Color,
		Size:             g.Size,
		Brand:            g.Brand,
		PurchaseDate:     g.PurchaseDate,
		Cost:             g.Cost,
		CareInstructions: g.CareInstructions,
		Status:           g.Status,
		Notes:            g.Notes,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
		Images:           []imageResponse{},
		Tags:             []tagResponse{},
	}
	for _, img := range g.Images {
		resp.Images = append(resp.Images, toImageResponse(img))
	}
	for _, t := range g.Tags {
		resp.Tags = append(resp.Tags, toTagResponse(t))
	}
	return resp
}

func (h *Garment) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
	}
	return userID, ok
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a garment.
func (h *Garment) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req garmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}

	garment, err := h.wardrobe.CreateGarment(r.Context(), service.CreateGarmentParams{
		UserID:           userID,
		Name:             req.Name,
		Category:         req.Category,
		Material:         req.Material,
		Color:            req.Color,
		Size:             req.Size,
		Brand:            req.Brand,
		PurchaseDate:     req.PurchaseDate,
		Cost:             req.Cost,
		CareInstructions: req.CareInstructions,
		Status:           req.Status,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGarmentResponse(garment))
}

// List returns the caller's garments, optionally filtered by the status and
// category query parameters.
func (h *Garment) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	filter := model.GarmentFilter{
		Status:   model.GarmentStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
	}

	garments, err := h.wardrobe.ListGarments(r.Context(), userID, filter)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]garmentResponse, 0, len(garments))
	for _, g := range garments {
		resp = append(resp, toGarmentResponse(g))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get returns one garment with its images and tags.
func (h *Garment) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	garment, err := h.wardrobe.GetGarment(r.Context(), userID, garmentID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGarmentResponse(garment))
}

// Update replaces a garment's fields.
func (h *Garment) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	var req garmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}

	garment, err := h.wardrobe.UpdateGarment(r.Context(), userID, garmentID, service.UpdateGarmentParams{
		Name:             req.Name,
		Category:         req.Category,
		Material:         req.Material,
		Color:            req.Color,
		Size:             req.Size,
		Brand:            req.Brand,
		PurchaseDate:     req.PurchaseDate,
		Cost:             req.Cost,
		CareInstructions: req.CareInstructions,
		Status:           req.Status,
		Notes:            req.Notes,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toGarmentResponse(garment))
}

type statusRequest struct {
	Status model.GarmentStatus `json:"status"`
}

type statusResponse struct {
	Status model.GarmentStatus `json:"status"`
}

// UpdateStatus overwrites the garment's laundry status.
func (h *Garment) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.wardrobe.UpdateGarmentStatus(r.Context(), userID, garmentID, req.Status); err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: req.Status})
}

// Wear advances the garment one step along the laundry cycle.
func (h *Garment) Wear(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	status, err := h.wardrobe.WearGarment(r.Context(), userID, garmentID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: status})
}

// Delete removes a garment with its images and tag associations.
func (h *Garment) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	if err := h.wardrobe.DeleteGarment(r.Context(), userID, garmentID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachImage accepts a multipart "file" part and attaches it to the garment.
func (h *Garment) AttachImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	if int64(len(data)) > maxImageSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file exceeds maximum size")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	image, err := h.wardrobe.AttachImage(r.Context(), userID, garmentID, service.ImageUpload{
		FileName: header.Filename,
		MimeType: mimeType,
		Size:     int64(len(data)),
		Data:     data,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toImageResponse(image))
}

// GetImage streams the image bytes.
func (h *Garment) GetImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	imageID, ok := pathID(w, r, "imageID")
	if !ok {
		return
	}

	image, reader, err := h.wardrobe.OpenImage(r.Context(), userID, imageID)
	if err != nil {
		handleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", image.MimeType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("Garment handler: failed to stream image",
			"image_id", imageID,
			"error", err.Error())
	}
}

// RemoveImage deletes the image row and its stored bytes.
func (h *Garment) RemoveImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	imageID, ok := pathID(w, r, "imageID")
	if !ok {
		return
	}

	if err := h.wardrobe.RemoveImage(r.Context(), userID, imageID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
