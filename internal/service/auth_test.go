package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harryneopotter/hanger-on-server/internal/mocks"
	"github.com/harryneopotter/hanger-on-server/internal/model"
	"github.com/harryneopotter/hanger-on-server/internal/testutil"
)

func newAuthForTest(
	userStore *mocks.UserStore,
	accountStore *mocks.AccountStore,
	sessionStore *mocks.SessionStore,
	verificationStore *mocks.VerificationTokenStore,
	garmentStore *mocks.GarmentStore,
	storage *mocks.Storage,
	tokMan *mocks.TokenManager,
) *Auth {
	return NewAuth(userStore, accountStore, sessionStore, verificationStore, garmentStore, storage, tokMan, testutil.MakeNoopLogger(), AuthConfig{
		SessionTTL:           time.Hour,
		VerificationTokenTTL: time.Hour,
	})
}

func TestAuth_CreateUser_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "a@b.c" && u.ID != uuid.Nil
	})).Return(func(_ context.Context, u model.User) model.User { return u }, nil)

	a := newAuthForTest(userStore, &mocks.AccountStore{}, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	user, err := a.CreateUser(ctx, CreateUserParams{Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAuth_CreateUser_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrAlreadyExists)

	a := newAuthForTest(userStore, &mocks.AccountStore{}, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	_, err := a.CreateUser(ctx, CreateUserParams{Email: "taken@b.c"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAuth_LinkAccount_DuplicateProvider(t *testing.T) {
	ctx := context.Background()
	accountStore := &mocks.AccountStore{}

	accountStore.On("Create", mock.Anything, mock.Anything).Return(model.Account{}, model.ErrAlreadyExists)

	a := newAuthForTest(&mocks.UserStore{}, accountStore, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	_, err := a.LinkAccount(ctx, LinkAccountParams{UserID: uuid.New(), Provider: "github", ProviderAccountID: "42"})
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAuth_Login_ExistingAccount(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	accountStore := &mocks.AccountStore{}
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()

	accountStore.On("GetByProvider", mock.Anything, "github", "42").
		Return(model.Account{ID: uuid.New(), UserID: userID, Provider: "github", ProviderAccountID: "42"}, nil)
	userStore.On("GetByID", mock.Anything, userID).
		Return(model.User{ID: userID, Email: "a@b.c"}, nil)
	sessionStore.On("Create", mock.Anything, mock.MatchedBy(func(s model.Session) bool {
		return s.UserID == userID && len(s.SessionToken) == 64
	})).Return(func(_ context.Context, s model.Session) model.Session { return s }, nil)
	tokMan.On("GenerateAccessToken", userID, mock.Anything).Return("signed-token", nil)

	a := newAuthForTest(userStore, accountStore, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	user, session, accessToken, err := a.Login(ctx, LoginParams{
		Email:   "a@b.c",
		Account: LinkAccountParams{Provider: "github", ProviderAccountID: "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "signed-token", accessToken)
	userStore.AssertNotCalled(t, "Create")
}

func TestAuth_Login_FirstLoginCreatesUserAndLinks(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	accountStore := &mocks.AccountStore{}
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	accountStore.On("GetByProvider", mock.Anything, "github", "42").
		Return(model.Account{}, model.ErrNotFound)
	userStore.On("GetByEmail", mock.Anything, "new@b.c").
		Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, u model.User) model.User { return u }, nil)
	accountStore.On("Create", mock.Anything, mock.MatchedBy(func(acc model.Account) bool {
		return acc.Provider == "github" && acc.UserID != uuid.Nil
	})).Return(func(_ context.Context, acc model.Account) model.Account { return acc }, nil)
	userStore.On("GetByID", mock.Anything, mock.Anything).
		Return(func(_ context.Context, id uuid.UUID) model.User { return model.User{ID: id, Email: "new@b.c"} }, nil)
	sessionStore.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, s model.Session) model.Session { return s }, nil)
	tokMan.On("GenerateAccessToken", mock.Anything, mock.Anything).Return("signed-token", nil)

	a := newAuthForTest(userStore, accountStore, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	user, _, _, err := a.Login(ctx, LoginParams{
		Email:   "new@b.c",
		Account: LinkAccountParams{Provider: "github", ProviderAccountID: "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, "new@b.c", user.Email)
}

func TestAuth_Login_FirstLoginLosesCreateRace(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	accountStore := &mocks.AccountStore{}
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	winnerID := uuid.New()

	accountStore.On("GetByProvider", mock.Anything, "github", "42").
		Return(model.Account{}, model.ErrNotFound)
	userStore.On("GetByEmail", mock.Anything, "racy@b.c").
		Return(model.User{}, model.ErrNotFound).Once()
	userStore.On("Create", mock.Anything, mock.Anything).
		Return(model.User{}, model.ErrAlreadyExists)
	userStore.On("GetByEmail", mock.Anything, "racy@b.c").
		Return(model.User{ID: winnerID, Email: "racy@b.c"}, nil).Once()
	accountStore.On("Create", mock.Anything, mock.Anything).
		Return(model.Account{}, model.ErrAlreadyExists)
	userStore.On("GetByID", mock.Anything, winnerID).
		Return(model.User{ID: winnerID, Email: "racy@b.c"}, nil)
	sessionStore.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, s model.Session) model.Session { return s }, nil)
	tokMan.On("GenerateAccessToken", winnerID, mock.Anything).Return("signed-token", nil)

	a := newAuthForTest(userStore, accountStore, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	user, _, _, err := a.Login(ctx, LoginParams{
		Email:   "racy@b.c",
		Account: LinkAccountParams{Provider: "github", ProviderAccountID: "42"},
	})
	require.NoError(t, err)
	assert.Equal(t, winnerID, user.ID)
}

func TestAuth_CreateSession_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}

	userStore.On("GetByID", mock.Anything, mock.Anything).Return(model.User{}, model.ErrNotFound)

	a := newAuthForTest(userStore, &mocks.AccountStore{}, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	_, _, err := a.CreateSession(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Authenticate_Success(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	sessionID := uuid.New()

	tokMan.On("ValidateAccessToken", "good").
		Return(model.AccessClaims{UserID: userID, SessionID: sessionID}, nil)
	sessionStore.On("GetByID", mock.Anything, sessionID).
		Return(model.Session{ID: sessionID, UserID: userID, Expires: time.Now().Add(time.Hour)}, nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	claims, err := a.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestAuth_Authenticate_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	sessionID := uuid.New()

	tokMan.On("ValidateAccessToken", "stale").
		Return(model.AccessClaims{UserID: userID, SessionID: sessionID}, nil)
	sessionStore.On("GetByID", mock.Anything, sessionID).
		Return(model.Session{ID: sessionID, UserID: userID, Expires: time.Now().Add(-time.Minute)}, nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	_, err := a.Authenticate(ctx, "stale")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Authenticate_SessionGone(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}
	tokMan := &mocks.TokenManager{}

	tokMan.On("ValidateAccessToken", "orphan").
		Return(model.AccessClaims{UserID: uuid.New(), SessionID: uuid.New()}, nil)
	sessionStore.On("GetByID", mock.Anything, mock.Anything).
		Return(model.Session{}, model.ErrNotFound)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, tokMan)

	_, err := a.Authenticate(ctx, "orphan")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAuth_Logout_AbsentSessionIsNoop(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}

	sessionStore.On("GetByToken", mock.Anything, "gone").Return(model.Session{}, model.ErrNotFound)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	assert.NoError(t, a.Logout(ctx, uuid.New(), "gone"))
	sessionStore.AssertNotCalled(t, "DeleteByToken")
}

func TestAuth_Logout_ForeignSessionIsNoop(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}

	sessionStore.On("GetByToken", mock.Anything, "theirs").
		Return(model.Session{ID: uuid.New(), UserID: uuid.New(), SessionToken: "theirs"}, nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	assert.NoError(t, a.Logout(ctx, uuid.New(), "theirs"))
	sessionStore.AssertNotCalled(t, "DeleteByToken")
}

func TestAuth_Logout_OwnSession(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}

	userID := uuid.New()
	sessionStore.On("GetByToken", mock.Anything, "mine").
		Return(model.Session{ID: uuid.New(), UserID: userID, SessionToken: "mine"}, nil)
	sessionStore.On("DeleteByToken", mock.Anything, "mine").Return(nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	assert.NoError(t, a.Logout(ctx, userID, "mine"))
	sessionStore.AssertCalled(t, "DeleteByToken", mock.Anything, "mine")
}

func TestAuth_SweepSessions(t *testing.T) {
	ctx := context.Background()
	sessionStore := &mocks.SessionStore{}

	sessionStore.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(3), nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, sessionStore, &mocks.VerificationTokenStore{}, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	swept, err := a.SweepSessions(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), swept)
}

func TestAuth_VerificationToken_Roundtrip(t *testing.T) {
	ctx := context.Background()
	verificationStore := &mocks.VerificationTokenStore{}

	verificationStore.On("Create", mock.Anything, mock.MatchedBy(func(tok model.VerificationToken) bool {
		return tok.Identifier == "a@b.c" && len(tok.Token) == 64
	})).Return(func(_ context.Context, tok model.VerificationToken) model.VerificationToken { return tok }, nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, &mocks.SessionStore{}, verificationStore, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	issued, err := a.IssueVerificationToken(ctx, "a@b.c")
	require.NoError(t, err)

	verificationStore.On("Consume", mock.Anything, "a@b.c", issued.Token).
		Return(issued, nil).Once()
	require.NoError(t, a.ConsumeVerificationToken(ctx, "a@b.c", issued.Token))

	// second consumption finds nothing
	verificationStore.On("Consume", mock.Anything, "a@b.c", issued.Token).
		Return(model.VerificationToken{}, model.ErrNotFound).Once()
	assert.ErrorIs(t, a.ConsumeVerificationToken(ctx, "a@b.c", issued.Token), model.ErrNotFound)
}

func TestAuth_ConsumeVerificationToken_Expired(t *testing.T) {
	ctx := context.Background()
	verificationStore := &mocks.VerificationTokenStore{}

	verificationStore.On("Consume", mock.Anything, "a@b.c", "old").
		Return(model.VerificationToken{Identifier: "a@b.c", Token: "old", Expires: time.Now().Add(-time.Minute)}, nil)

	a := newAuthForTest(&mocks.UserStore{}, &mocks.AccountStore{}, &mocks.SessionStore{}, verificationStore, &mocks.GarmentStore{}, &mocks.Storage{}, &mocks.TokenManager{})

	assert.ErrorIs(t, a.ConsumeVerificationToken(ctx, "a@b.c", "old"), model.ErrNotFound)
}

func TestAuth_DeleteUser_CleansUpObjects(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	garmentStore := &mocks.GarmentStore{}
	storage := &mocks.Storage{}

	userID := uuid.New()
	garmentStore.On("ListByUser", mock.Anything, userID, model.GarmentFilter{}).
		Return([]model.Garment{
			{ID: uuid.New(), UserID: userID, Images: []model.GarmentImage{
				{ID: uuid.New(), ObjectKey: "garments/a/1"},
				{ID: uuid.New(), ObjectKey: "garments/a/2"},
			}},
		}, nil)
	userStore.On("Delete", mock.Anything, userID).Return(nil)
	storage.On("Delete", mock.Anything, "garments/a/1").Return(nil)
	storage.On("Delete", mock.Anything, "garments/a/2").Return(nil)

	a := newAuthForTest(userStore, &mocks.AccountStore{}, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, garmentStore, storage, &mocks.TokenManager{})

	require.NoError(t, a.DeleteUser(ctx, userID))
	storage.AssertNumberOfCalls(t, "Delete", 2)
}

func TestAuth_DeleteUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	garmentStore := &mocks.GarmentStore{}

	userID := uuid.New()
	garmentStore.On("ListByUser", mock.Anything, userID, model.GarmentFilter{}).Return([]model.Garment{}, nil)
	userStore.On("Delete", mock.Anything, userID).Return(model.ErrNotFound)

	a := newAuthForTest(userStore, &mocks.AccountStore{}, &mocks.SessionStore{}, &mocks.VerificationTokenStore{}, garmentStore, &mocks.Storage{}, &mocks.TokenManager{})

	assert.ErrorIs(t, a.DeleteUser(ctx, userID), model.ErrNotFound)
}
