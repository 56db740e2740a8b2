package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harryneopotter/hanger-on-server/internal/api/http/appctx"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/service"
	"github.com/harryneopotter/hanger-on-server/internal/testutil"
)

func newGarmentHandler(wardrobe *wardrobeServiceMock) *Garment {
	return NewGarment(wardrobe, appctx.NewManager(), testutil.MakeNoopLogger())
}

// withURLParam injects a chi path parameter the way the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return req
}

func TestGarmentHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		userID := uuid.New()
		wardrobe.On("CreateGarment", mock.Anything, mock.MatchedBy(func(p service.CreateGarmentParams) bool {
			return p.UserID == userID && p.Name == "Blue Denim Jacket" && p.Category == "Outerwear"
		})).Return(model.Garment{ID: uuid.New(), Name: "Blue Denim Jacket", Category: "Outerwear", Status: model.StatusClean, UserID: userID}, nil)

		h := newGarmentHandler(wardrobe)

		body := `{"name":"Blue Denim Jacket","category":"Outerwear"}`
		req := authedRequest(http.MethodPost, "/api/garments", strings.NewReader(body), userID)
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp garmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.StatusClean, resp.Status)
		assert.NotNil(t, resp.Images)
		assert.NotNil(t, resp.Tags)
	})

	t.Run("missing name", func(t *testing.T) {
		h := newGarmentHandler(&wardrobeServiceMock{})

		req := authedRequest(http.MethodPost, "/api/garments", strings.NewReader(`{"category":"Outerwear"}`), uuid.New())
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		wardrobe.On("CreateGarment", mock.Anything, mock.Anything).
			Return(model.Garment{}, model.ErrInvalidStatus)

		h := newGarmentHandler(wardrobe)

		req := authedRequest(http.MethodPost, "/api/garments", strings.NewReader(`{"name":"x","category":"y","status":"SOGGY"}`), uuid.New())
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := newGarmentHandler(&wardrobeServiceMock{})

		req := httptest.NewRequest(http.MethodPost, "/api/garments", strings.NewReader(`{"name":"x","category":"y"}`))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGarmentHandler_List_FilterFromQuery(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	wardrobe.On("ListGarments", mock.Anything, userID, model.GarmentFilter{Status: model.StatusDirty, Category: "Outerwear"}).
		Return([]model.Garment{{ID: uuid.New(), Status: model.StatusDirty, Category: "Outerwear"}}, nil)

	h := newGarmentHandler(wardrobe)

	req := authedRequest(http.MethodGet, "/api/garments?status=DIRTY&category=Outerwear", nil, userID)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []garmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, model.StatusDirty, resp[0].Status)
}

func TestGarmentHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		userID := uuid.New()
		garmentID := uuid.New()
		wardrobe.On("GetGarment", mock.Anything, userID, garmentID).
			Return(model.Garment{ID: garmentID, Name: "x", UserID: userID, Tags: []model.Tag{{ID: uuid.New(), Name: "casual"}}}, nil)

		h := newGarmentHandler(wardrobe)

		req := withURLParam(authedRequest(http.MethodGet, "/api/garments/"+garmentID.String(), nil, userID), "garmentID", garmentID.String())
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp garmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, garmentID, resp.ID)
		require.Len(t, resp.Tags, 1)
	})

	t.Run("not found", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		wardrobe.On("GetGarment", mock.Anything, mock.Anything, mock.Anything).
			Return(model.Garment{}, model.ErrNotFound)

		h := newGarmentHandler(wardrobe)

		id := uuid.New()
		req := withURLParam(authedRequest(http.MethodGet, "/api/garments/"+id.String(), nil, uuid.New()), "garmentID", id.String())
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h := newGarmentHandler(&wardrobeServiceMock{})

		req := withURLParam(authedRequest(http.MethodGet, "/api/garments/zzz", nil, uuid.New()), "garmentID", "zzz")
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGarmentHandler_Update_OmittedStatusNotReset(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	garmentID := uuid.New()
	wardrobe.On("UpdateGarment", mock.Anything, userID, garmentID, mock.MatchedBy(func(p service.UpdateGarmentParams) bool {
		return p.Name == "Denim Jacket" && p.Status == ""
	})).Return(model.Garment{ID: garmentID, Name: "Denim Jacket", Category: "Outerwear", Status: model.StatusDirty, UserID: userID}, nil)

	h := newGarmentHandler(wardrobe)

	body := strings.NewReader(`{"name":"Denim Jacket","category":"Outerwear","notes":"runs small"}`)
	req := withURLParam(authedRequest(http.MethodPut, "/api/garments/"+garmentID.String(), body, userID), "garmentID", garmentID.String())
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp garmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusDirty, resp.Status)
}

func TestGarmentHandler_UpdateStatus(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	garmentID := uuid.New()
	wardrobe.On("UpdateGarmentStatus", mock.Anything, userID, garmentID, model.StatusNeedsWashing).Return(nil)

	h := newGarmentHandler(wardrobe)

	req := withURLParam(authedRequest(http.MethodPatch, "/api/garments/"+garmentID.String()+"/status",
		strings.NewReader(`{"status":"NEEDS_WASHING"}`), userID), "garmentID", garmentID.String())
	rec := httptest.NewRecorder()
	h.UpdateStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusNeedsWashing, resp.Status)
}

func TestGarmentHandler_Wear(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	garmentID := uuid.New()
	wardrobe.On("WearGarment", mock.Anything, userID, garmentID).Return(model.StatusWorn2x, nil)

	h := newGarmentHandler(wardrobe)

	req := withURLParam(authedRequest(http.MethodPost, "/api/garments/"+garmentID.String()+"/wear", nil, userID), "garmentID", garmentID.String())
	rec := httptest.NewRecorder()
	h.Wear(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.StatusWorn2x, resp.Status)
}

func TestGarmentHandler_Delete(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	garmentID := uuid.New()
	wardrobe.On("DeleteGarment", mock.Anything, userID, garmentID).Return(nil)

	h := newGarmentHandler(wardrobe)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/garments/"+garmentID.String(), nil, userID), "garmentID", garmentID.String())
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGarmentHandler_AttachImage(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		userID := uuid.New()
		garmentID := uuid.New()
		imageID := uuid.New()
		wardrobe.On("AttachImage", mock.Anything, userID, garmentID, mock.MatchedBy(func(u service.ImageUpload) bool {
			return u.FileName == "front.jpg" && u.MimeType == "image/jpeg" && u.Size == int64(4)
		})).Return(model.GarmentImage{ID: imageID, FileName: "front.jpg", MimeType: "image/jpeg", FileSize: 4, GarmentID: garmentID}, nil)

		h := newGarmentHandler(wardrobe)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="file"; filename="front.jpg"`},
			"Content-Type":        {"image/jpeg"},
		})
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := withURLParam(authedRequest(http.MethodPost, "/api/garments/"+garmentID.String()+"/images", &buf, userID), "garmentID", garmentID.String())
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.AttachImage(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp imageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, imageID, resp.ID)
	})

	t.Run("oversize rejected untruncated", func(t *testing.T) {
		wardrobe := &wardrobeServiceMock{}
		h := newGarmentHandler(wardrobe)

		garmentID := uuid.New()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part, err := mw.CreatePart(map[string][]string{
			"Content-Disposition": {`form-data; name="file"; filename="huge.jpg"`},
			"Content-Type":        {"image/jpeg"},
		})
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte{0xff}, maxImageSize+1))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := withURLParam(authedRequest(http.MethodPost, "/api/garments/"+garmentID.String()+"/images", &buf, uuid.New()), "garmentID", garmentID.String())
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.AttachImage(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		wardrobe.AssertNotCalled(t, "AttachImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing file part", func(t *testing.T) {
		h := newGarmentHandler(&wardrobeServiceMock{})

		garmentID := uuid.New()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("other", "x"))
		require.NoError(t, mw.Close())

		req := withURLParam(authedRequest(http.MethodPost, "/api/garments/"+garmentID.String()+"/images", &buf, uuid.New()), "garmentID", garmentID.String())
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		h.AttachImage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGarmentHandler_GetImage(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	imageID := uuid.New()
	wardrobe.On("OpenImage", mock.Anything, userID, imageID).
		Return(model.GarmentImage{ID: imageID, MimeType: "image/png"}, io.NopCloser(strings.NewReader("png-bytes")), nil)

	h := newGarmentHandler(wardrobe)

	req := withURLParam(authedRequest(http.MethodGet, "/api/images/"+imageID.String(), nil, userID), "imageID", imageID.String())
	rec := httptest.NewRecorder()
	h.GetImage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestGarmentHandler_RemoveImage(t *testing.T) {
	wardrobe := &wardrobeServiceMock{}
	userID := uuid.New()
	imageID := uuid.New()
	wardrobe.On("RemoveImage", mock.Anything, userID, imageID).Return(nil)

	h := newGarmentHandler(wardrobe)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/images/"+imageID.String(), nil, userID), "imageID", imageID.String())
	rec := httptest.NewRecorder()
	h.RemoveImage(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
