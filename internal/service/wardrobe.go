package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/harryneopotter/hanger-on-server/internal/logger"
	"github.com/harryneopotter/hanger-on-server/internal/model"
)

// Wardrobe implements garment, image and tag use cases. Every operation is
// scoped to the calling user: rows owned by someone else surface as
// model.ErrNotFound rather than revealing their existence.
type Wardrobe struct {
	garmentStore model.GarmentStore
	imageStore   model.GarmentImageStore
	tagStore     model.TagStore
	storage      model.Storage
	transactor   model.Transactor
	logger       *logger.Logger

	imageBaseURL string
}

func NewWardrobe(
	garmentStore model.GarmentStore,
	imageStore model.GarmentImageStore,
	tagStore model.TagStore,
	storage model.Storage,
	transactor model.Transactor,
	logger *logger.Logger,
	imageBaseURL string,
) *Wardrobe {
	return &Wardrobe{
		garmentStore: garmentStore,
		imageStore:   imageStore,
		tagStore:     tagStore,
		storage:      storage,
		transactor:   transactor,
		logger:       logger,
		imageBaseURL: imageBaseURL,
	}
}

// ImageUpload describes an image file being attached to a garment.
type ImageUpload struct {
	FileName string
	MimeType string
	Size     int64
	Data     []byte
}

// CreateGarmentParams contains parameters to create a garment.
type CreateGarmentParams struct {
	UserID           uuid.UUID
	Name             string
	Category         string
	Material         *string
	Color            *string
	Size             *string
	Brand            *string
	PurchaseDate     *time.Time
	Cost             *float64
	CareInstructions *string
	Status           model.GarmentStatus
	Notes            *string
	Images           []ImageUpload
}

// CreateGarment creates a garment, optionally with initial images. Blobs are
// uploaded first, then the garment row and all image rows are inserted in
// one transaction; on failure the uploaded blobs are removed again.
func (s *Wardrobe) CreateGarment(ctx context.Context, params CreateGarmentParams) (model.Garment, error) {
	status := params.Status
	if status == "" {
		status = model.StatusClean
	}
	if !status.Valid() {
		return model.Garment{}, fmt.Errorf("%w: invalid status %q", model.ErrInvalidStatus, params.Status)
	}

	now := time.Now()
	garment := model.Garment{
		ID:               uuid.New(),
		Name:             params.Name,
		Category:         params.Category,
		Material:         params.Material,
		Color:            params.Color,
		Size:             params.Size,
		Brand:            params.Brand,
		PurchaseDate:     params.PurchaseDate,
		Cost:             params.Cost,
		CareInstructions: params.CareInstructions,
		Status:           status,
		Notes:            params.Notes,
		UserID:           params.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	images := make([]model.GarmentImage, 0, len(params.Images))
	uploadedKeys := make([]string, 0, len(params.Images))
	for _, upload := range params.Images {
		img := s.newImage(garment.ID, upload)
		if err := s.storage.Upload(ctx, img.ObjectKey, bytes.NewReader(upload.Data), upload.Size, upload.MimeType); err != nil {
			s.cleanupObjects(ctx, uploadedKeys)
			return model.Garment{}, fmt.Errorf("failed to upload image: %w", err)
		}
		uploadedKeys = append(uploadedKeys, img.ObjectKey)
		images = append(images, img)
	}

	var saved model.Garment
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.garmentStore.Create(ctx, garment)
		if err != nil {
			return err
		}
		for _, img := range images {
			created, err := s.imageStore.Create(ctx, img)
			if err != nil {
				return err
			}
			saved.Images = append(saved.Images, created)
		}
		return nil
	})
	if err != nil {
		s.cleanupObjects(ctx, uploadedKeys)
		if errors.Is(err, model.ErrForeignKey) {
			return model.Garment{}, err
		}
		return model.Garment{}, fmt.Errorf("failed to create garment: %w", err)
	}

	s.logger.Info("Wardrobe service: garment created",
		"user_id", params.UserID,
		"garment_id", saved.ID,
		"images", len(saved.Images))

	return saved, nil
}

// GetGarment loads a garment with its images and tags.
func (s *Wardrobe) GetGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.Garment, error) {
	return s.ownedGarment(ctx, userID, garmentID)
}

// ListGarments loads the user's garments with images and tags, optionally
// filtered by status and category.
func (s *Wardrobe) ListGarments(ctx context.Context, userID uuid.UUID, filter model.GarmentFilter) ([]model.Garment, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", model.ErrInvalidStatus, filter.Status)
	}

	garments, err := s.garmentStore.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}

	return garments, nil
}

// UpdateGarmentParams contains the replacement field values for a garment.
// Every field is written, nil pointers clear their columns. The one
// exception is Status: empty keeps the current status, so an update that
// only touches descriptive fields does not reset the laundry state.
type UpdateGarmentParams struct {
	Name             string
	Category         string
	Material         *string
	Color            *string
	Size             *string
	Brand            *string
	PurchaseDate     *time.Time
	Cost             *float64
	CareInstructions *string
	Status           model.GarmentStatus
	Notes            *string
}

func (s *Wardrobe) UpdateGarment(ctx context.Context, userID, garmentID uuid.UUID, params UpdateGarmentParams) (model.Garment, error) {
	if params.Status != "" && !params.Status.Valid() {
		return model.Garment{}, fmt.Errorf("%w: invalid status %q", model.ErrInvalidStatus, params.Status)
	}

	garment, err := s.ownedGarment(ctx, userID, garmentID)
	if err != nil {
		return model.Garment{}, err
	}

	garment.Name = params.Name
	garment.Category = params.Category
	garment.Material = params.Material
	garment.Color = params.Color
	garment.Size = params.Size
	garment.Brand = params.Brand
	garment.PurchaseDate = params.PurchaseDate
	garment.Cost = params.Cost
	garment.CareInstructions = params.CareInstructions
	if params.Status != "" {
		garment.Status = params.Status
	}
	garment.Notes = params.Notes

	saved, err := s.garmentStore.Update(ctx, garment)
	if err != nil {
		return model.Garment{}, fmt.Errorf("failed to update garment: %w", err)
	}
	saved.Images = garment.Images
	saved.Tags = garment.Tags

	return saved, nil
}

// UpdateGarmentStatus overwrites the status unconditionally. Any enum value
// may follow any other; the laundry cycle is WearGarment's concern.
func (s *Wardrobe) UpdateGarmentStatus(ctx context.Context, userID, garmentID uuid.UUID, status model.GarmentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", model.ErrInvalidStatus, status)
	}

	if _, err := s.ownedGarment(ctx, userID, garmentID); err != nil {
		return err
	}

	if err := s.garmentStore.UpdateStatus(ctx, garmentID, status); err != nil {
		return fmt.Errorf("failed to update garment status: %w", err)
	}

	s.logger.Info("Wardrobe service: garment status updated",
		"garment_id", garmentID,
		"status", status)

	return nil
}

// WearGarment advances the garment one step along the laundry cycle and
// returns the new status.
func (s *Wardrobe) WearGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.GarmentStatus, error) {
	garment, err := s.ownedGarment(ctx, userID, garmentID)
	if err != nil {
		return "", err
	}

	next := garment.Status.NextWear()
	if err := s.garmentStore.UpdateStatus(ctx, garmentID, next); err != nil {
		return "", fmt.Errorf("failed to update garment status: %w", err)
	}

	return next, nil
}

// DeleteGarment removes a garment; image and tag rows go through the
// database cascade, image blobs are removed afterwards, best effort.
func (s *Wardrobe) DeleteGarment(ctx context.Context, userID, garmentID uuid.UUID) error {
	garment, err := s.ownedGarment(ctx, userID, garmentID)
	if err != nil {
		return err
	}

	if err := s.garmentStore.Delete(ctx, garmentID); err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}

	for _, img := range garment.Images {
		if img.ObjectKey == "" {
			continue
		}
		if err := s.storage.Delete(ctx, img.ObjectKey); err != nil {
			s.logger.Error("Wardrobe service: failed to delete image object",
				"object_key", img.ObjectKey,
				"error", err.Error())
		}
	}

	s.logger.Info("Wardrobe service: garment deleted",
		"user_id", userID,
		"garment_id", garmentID)

	return nil
}

// AttachImage uploads the image bytes and records the image row.
func (s *Wardrobe) AttachImage(ctx context.Context, userID, garmentID uuid.UUID, upload ImageUpload) (model.GarmentImage, error) {
	if _, err := s.ownedGarment(ctx, userID, garmentID); err != nil {
		return model.GarmentImage{}, err
	}

	img := s.newImage(garmentID, upload)
	if err := s.storage.Upload(ctx, img.ObjectKey, bytes.NewReader(upload.Data), upload.Size, upload.MimeType); err != nil {
		return model.GarmentImage{}, fmt.Errorf("failed to upload image: %w", err)
	}

	saved, err := s.imageStore.Create(ctx, img)
	if err != nil {
		s.cleanupObjects(ctx, []string{img.ObjectKey})
		return model.GarmentImage{}, fmt.Errorf("failed to create garment image: %w", err)
	}

	s.logger.Info("Wardrobe service: image attached",
		"garment_id", garmentID,
		"image_id", saved.ID,
		"file_name", saved.FileName)

	return saved, nil
}

// OpenImage returns the image row and a reader over its bytes.
// The caller closes the reader.
func (s *Wardrobe) OpenImage(ctx context.Context, userID, imageID uuid.UUID) (model.GarmentImage, io.ReadCloser, error) {
	img, err := s.ownedImage(ctx, userID, imageID)
	if err != nil {
		return model.GarmentImage{}, nil, err
	}

	reader, err := s.storage.Download(ctx, img.ObjectKey)
	if err != nil {
		return model.GarmentImage{}, nil, fmt.Errorf("failed to download image: %w", err)
	}

	return img, reader, nil
}

// RemoveImage deletes the image row and its blob.
func (s *Wardrobe) RemoveImage(ctx context.Context, userID, imageID uuid.UUID) error {
	img, err := s.ownedImage(ctx, userID, imageID)
	if err != nil {
		return err
	}

	if err := s.imageStore.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("failed to delete garment image: %w", err)
	}

	if img.ObjectKey != "" {
		if err := s.storage.Delete(ctx, img.ObjectKey); err != nil {
			s.logger.Error("Wardrobe service: failed to delete image object",
				"object_key", img.ObjectKey,
				"error", err.Error())
		}
	}

	return nil
}

// CreateOrGetTag returns the user's tag with the given name, creating it if
// absent. A concurrent create of the same name is resolved by re-reading.
func (s *Wardrobe) CreateOrGetTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error) {
	existing, err := s.tagStore.GetByName(ctx, userID, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Tag{}, fmt.Errorf("failed to get tag by name: %w", err)
	}

	tag := model.Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	saved, err := s.tagStore.Create(ctx, tag)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			// Lost the race, the winner's row is what we wanted anyway.
			return s.tagStore.GetByName(ctx, userID, name)
		}
		if errors.Is(err, model.ErrForeignKey) {
			return model.Tag{}, err
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	s.logger.Info("Wardrobe service: tag created",
		"user_id", userID,
		"tag_id", saved.ID,
		"name", saved.Name)

	return saved, nil
}

// CreateTag creates a tag, failing with model.ErrAlreadyExists when the
// user already has one with that name.
func (s *Wardrobe) CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error) {
	tag := model.Tag{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	saved, err := s.tagStore.Create(ctx, tag)
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) || errors.Is(err, model.ErrForeignKey) {
			return model.Tag{}, err
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	return saved, nil
}

// AttachTag associates a tag with a garment. Attaching an already attached
// tag is a no-op; the return value reports whether a new association was
// made. Both rows must belong to the calling user.
func (s *Wardrobe) AttachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) (bool, error) {
	if _, err := s.ownedGarment(ctx, userID, garmentID); err != nil {
		return false, err
	}
	if _, err := s.ownedTag(ctx, userID, tagID); err != nil {
		return false, err
	}

	attached, err := s.tagStore.Attach(ctx, garmentID, tagID)
	if err != nil {
		return false, fmt.Errorf("failed to attach tag: %w", err)
	}

	return attached, nil
}

// DetachTag removes the association. Detaching an absent pair is a no-op.
func (s *Wardrobe) DetachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) error {
	if _, err := s.ownedGarment(ctx, userID, garmentID); err != nil {
		return err
	}

	if err := s.tagStore.Detach(ctx, garmentID, tagID); err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}

	return nil
}

// ListTags returns the user's tags with garment counts.
func (s *Wardrobe) ListTags(ctx context.Context, userID uuid.UUID) ([]model.TagWithCount, error) {
	tags, err := s.tagStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// DeleteTag removes a tag. Its garment associations go through the database
// cascade, the garments themselves are untouched.
func (s *Wardrobe) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	if _, err := s.ownedTag(ctx, userID, tagID); err != nil {
		return err
	}

	if err := s.tagStore.Delete(ctx, tagID); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}

func (s *Wardrobe) newImage(garmentID uuid.UUID, upload ImageUpload) model.GarmentImage {
	id := uuid.New()
	key := fmt.Sprintf("garments/%s/%s", garmentID, id)
	return model.GarmentImage{
		ID:        id,
		URL:       fmt.Sprintf("%s/%s", s.imageBaseURL, key),
		FileName:  upload.FileName,
		FileSize:  upload.Size,
		MimeType:  upload.MimeType,
		ObjectKey: key,
		GarmentID: garmentID,
		CreatedAt: time.Now(),
	}
}

func (s *Wardrobe) cleanupObjects(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.logger.Error("Wardrobe service: failed to clean up image object",
				"object_key", key,
				"error", err.Error())
		}
	}
}

func (s *Wardrobe) ownedGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.Garment, error) {
	garment, err := s.garmentStore.GetByID(ctx, garmentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Garment{}, model.ErrNotFound
		}
		return model.Garment{}, fmt.Errorf("failed to get garment by id: %w", err)
	}
	if garment.UserID != userID {
		return model.Garment{}, model.ErrNotFound
	}
	return garment, nil
}

func (s *Wardrobe) ownedImage(ctx context.Context, userID, imageID uuid.UUID) (model.GarmentImage, error) {
	img, err := s.imageStore.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.GarmentImage{}, model.ErrNotFound
		}
		return model.GarmentImage{}, fmt.Errorf("failed to get garment image by id: %w", err)
	}
	if _, err := s.ownedGarment(ctx, userID, img.GarmentID); err != nil {
		return model.GarmentImage{}, err
	}
	return img, nil
}

func (s *Wardrobe) ownedTag(ctx context.Context, userID, tagID uuid.UUID) (model.Tag, error) {
	tag, err := s.tagStore.GetByID(ctx, tagID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, fmt.Errorf("failed to get tag by id: %w", err)
	}
	if tag.UserID != userID {
		return model.Tag{}, model.ErrNotFound
	}
	return tag, nil
}
