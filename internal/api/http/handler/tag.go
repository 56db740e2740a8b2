package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
)

// Tag handles HTTP endpoints for tags and garment associations.
type Tag struct {
	wardrobe       WardrobeService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTag creates a new Tag handler.
func NewTag(wardrobe WardrobeService, contextManager model.ContextManager, logger *logger.Logger) *Tag {
	return &Tag{
		wardrobe:       wardrobe,
		contextManager: contextManager,
		logger:         logger,
	}
}

type tagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

type tagWithCountResponse struct {
	tagResponse
	GarmentCount int64 `json:"garment_count"`
}

func (h *Tag) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "not authenticated")
	}
	return userID, ok
}

// Create creates a tag. A duplicate name for the same user gets 409.
func (h *Tag) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req tagRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	tag, err := h.wardrobe.CreateTag(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTagResponse(tag))
}

// List returns the caller's tags with garment counts.
func (h *Tag) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	tags, err := h.wardrobe.ListTags(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	resp := make([]tagWithCountResponse, 0, len(tags))
	for _, t := range tags {
		resp = append(resp, tagWithCountResponse{
			tagResponse:  toTagResponse(t.Tag),
			GarmentCount: t.GarmentCount,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete removes a tag; garments keep existing, only associations go.
func (h *Tag) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	tagID, ok := pathID(w, r, "tagID")
	if !ok {
		return
	}

	if err := h.wardrobe.DeleteTag(r.Context(), userID, tagID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Label resolves the named tag (creating it if needed) and attaches it to
// the garment in one call.
func (h *Tag) Label(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}

	var req tagRequest
	if err := decodeJSON(r, &req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	tag, err := h.wardrobe.CreateOrGetTag(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		handleError(w, err)
		return
	}

	attached, err := h.wardrobe.AttachTag(r.Context(), userID, garmentID, tag.ID)
	if err != nil {
		handleError(w, err)
		return
	}

	status := http.StatusOK
	if attached {
		status = http.StatusCreated
	}
	writeJSON(w, status, toTagResponse(tag))
}

// Attach associates an existing tag with a garment. Re-attaching is a
// no-op answered with 200 instead of 201.
func (h *Tag) Attach(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}
	tagID, ok := pathID(w, r, "tagID")
	if !ok {
		return
	}

	attached, err := h.wardrobe.AttachTag(r.Context(), userID, garmentID, tagID)
	if err != nil {
		handleError(w, err)
		return
	}

	if attached {
		w.WriteHeader(http.StatusCreated)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Detach removes the association. Absent pairs get 204 as well.
func (h *Tag) Detach(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	garmentID, ok := pathID(w, r, "garmentID")
	if !ok {
		return
	}
	tagID, ok := pathID(w, r, "tagID")
	if !ok {
		return
	}

	if err := h.wardrobe.DetachTag(r.Context(), userID, garmentID, tagID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
