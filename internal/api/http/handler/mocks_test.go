package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/harryneopotter/hanger-on-server/internal/api/http/appctx"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/service"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) CreateUser(ctx context.Context, params service.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, params service.LoginParams) (model.User, model.Session, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Get(1).(model.Session), args.String(2), args.Error(3)
}

func (m *authServiceMock) Logout(ctx context.Context, userID uuid.UUID, sessionToken string) error {
	args := m.Called(ctx, userID, sessionToken)
	return args.Error(0)
}

func (m *authServiceMock) IssueVerificationToken(ctx context.Context, identifier string) (model.VerificationToken, error) {
	args := m.Called(ctx, identifier)
	return args.Get(0).(model.VerificationToken), args.Error(1)
}

func (m *authServiceMock) ConsumeVerificationToken(ctx context.Context, identifier, token string) error {
	args := m.Called(ctx, identifier, token)
	return args.Error(0)
}

func (m *authServiceMock) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type userReaderMock struct {
	mock.Mock
}

func (m *userReaderMock) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

type wardrobeServiceMock struct {
	mock.Mock
}

func (m *wardrobeServiceMock) CreateGarment(ctx context.Context, params service.CreateGarmentParams) (model.Garment, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Garment), args.Error(1)
}

func (m *wardrobeServiceMock) GetGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.Garment, error) {
	args := m.Called(ctx, userID, garmentID)
	return args.Get(0).(model.Garment), args.Error(1)
}

func (m *wardrobeServiceMock) ListGarments(ctx context.Context, userID uuid.UUID, filter model.GarmentFilter) ([]model.Garment, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Garment), args.Error(1)
}

func (m *wardrobeServiceMock) UpdateGarment(ctx context.Context, userID, garmentID uuid.UUID, params service.UpdateGarmentParams) (model.Garment, error) {
	args := m.Called(ctx, userID, garmentID, params)
	return args.Get(0).(model.Garment), args.Error(1)
}

func (m *wardrobeServiceMock) UpdateGarmentStatus(ctx context.Context, userID, garmentID uuid.UUID, status model.GarmentStatus) error {
	args := m.Called(ctx, userID, garmentID, status)
	return args.Error(0)
}

func (m *wardrobeServiceMock) WearGarment(ctx context.Context, userID, garmentID uuid.UUID) (model.GarmentStatus, error) {
	args := m.Called(ctx, userID, garmentID)
	return args.Get(0).(model.GarmentStatus), args.Error(1)
}

func (m *wardrobeServiceMock) DeleteGarment(ctx context.Context, userID, garmentID uuid.UUID) error {
	args := m.Called(ctx, userID, garmentID)
	return args.Error(0)
}

func (m *wardrobeServiceMock) AttachImage(ctx context.Context, userID, garmentID uuid.UUID, upload service.ImageUpload) (model.GarmentImage, error) {
	args := m.Called(ctx, userID, garmentID, upload)
	return args.Get(0).(model.GarmentImage), args.Error(1)
}

func (m *wardrobeServiceMock) OpenImage(ctx context.Context, userID, imageID uuid.UUID) (model.GarmentImage, io.ReadCloser, error) {
	args := m.Called(ctx, userID, imageID)
	var rc io.ReadCloser
	if args.Get(1) != nil {
		rc = args.Get(1).(io.ReadCloser)
	}
	return args.Get(0).(model.GarmentImage), rc, args.Error(2)
}

func (m *wardrobeServiceMock) RemoveImage(ctx context.Context, userID, imageID uuid.UUID) error {
	args := m.Called(ctx, userID, imageID)
	return args.Error(0)
}

func (m *wardrobeServiceMock) CreateTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error) {
	args := m.Called(ctx, userID, name, color)
	return args.Get(0).(model.Tag), args.Error(1)
}

func (m *wardrobeServiceMock) CreateOrGetTag(ctx context.Context, userID uuid.UUID, name string, color *string) (model.Tag, error) {
	args := m.Called(ctx, userID, name, color)
	return args.Get(0).(model.Tag), args.Error(1)
}

func (m *wardrobeServiceMock) AttachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, garmentID, tagID)
	return args.Bool(0), args.Error(1)
}

func (m *wardrobeServiceMock) DetachTag(ctx context.Context, userID, garmentID, tagID uuid.UUID) error {
	args := m.Called(ctx, userID, garmentID, tagID)
	return args.Error(0)
}

func (m *wardrobeServiceMock) ListTags(ctx context.Context, userID uuid.UUID) ([]model.TagWithCount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TagWithCount), args.Error(1)
}

func (m *wardrobeServiceMock) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	args := m.Called(ctx, userID, tagID)
	return args.Error(0)
}

// authedRequest builds a request carrying userID the way the authentication
// middleware would.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := appctx.NewManager().SetUserIDToContext(req.Context(), userID)
	return req.WithContext(ctx)
}
