package controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Kermitroid/outterspace2/internal/controllers"
	"github.com/Kermitroid/outterspace2/internal/infrastructure/auth"
	"github.com/Kermitroid/outterspace2/internal/models/po"
	"github.com/Kermitroid/outterspace2/internal/models/vo"
	"github.com/Kermitroid/outterspace2/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type videoServiceStub struct {
	listFn func(context.Context, services.VideoFilter) []*vo.Video
	getFn  func(context.Context, uuid.UUID) (*vo.VideoDetail, error)
	addFn  func(context.Context, services.AddVideoInput, uuid.UUID) (*vo.Video, error)
}

func (s *videoServiceStub) ListVideos(ctx context.Context, filter services.VideoFilter) []*vo.Video {
	if s.listFn == nil {
		return nil
	}
	return s.listFn(ctx, filter)
}

func (s *videoServiceStub) GetVideoByID(ctx context.Context, videoID uuid.UUID) (*vo.VideoDetail, error) {
	if s.getFn == nil {
		return nil, services.NotFound("video %s not found", videoID)
	}
	return s.getFn(ctx, videoID)
}

func (s *videoServiceStub) AddVideo(ctx context.Context, input services.AddVideoInput, userID uuid.UUID) (*vo.Video, error) {
	if s.addFn == nil {
		return nil, services.AuthenticationRequired("you must be logged in to add videos")
	}
	return s.addFn(ctx, input, userID)
}

type categoryServiceStub struct {
	categories []vo.Category
}

func (s *categoryServiceStub) ListCategories(context.Context) []vo.Category {
	return append([]vo.Category{vo.AllCategory()}, s.categories...)
}

type historyServiceStub struct {
	recorded []uuid.UUID
	err      error
}

func (s *historyServiceStub) RecordView(_ context.Context, _ uuid.UUID, videoID uuid.UUID) error {
	s.recorded = append(s.recorded, videoID)
	return s.err
}

type commentServiceStub struct {
	addFn     func(context.Context, services.AddCommentInput) (*vo.Comment, error)
	listFn    func(context.Context, uuid.UUID) ([]*vo.Comment, error)
	repliesFn func(context.Context, uuid.UUID) ([]*vo.Comment, error)
}

func (s *commentServiceStub) AddComment(ctx context.Context, input services.AddCommentInput) (*vo.Comment, error) {
	return s.addFn(ctx, input)
}

func (s *commentServiceStub) ListComments(ctx context.Context, videoID uuid.UUID) ([]*vo.Comment, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, videoID)
}

func (s *commentServiceStub) ListReplies(ctx context.Context, parentID uuid.UUID) ([]*vo.Comment, error) {
	if s.repliesFn == nil {
		return nil, nil
	}
	return s.repliesFn(ctx, parentID)
}

type interactionServiceStub struct {
	liked map[uuid.UUID]bool
	saved map[uuid.UUID]bool
	err   error
}

func newInteractionServiceStub() *interactionServiceStub {
	return &interactionServiceStub{liked: map[uuid.UUID]bool{}, saved: map[uuid.UUID]bool{}}
}

func (s *interactionServiceStub) ToggleLike(_ context.Context, _ uuid.UUID, videoID uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.liked[videoID] = !s.liked[videoID]
	return s.liked[videoID], nil
}

func (s *interactionServiceStub) ToggleSave(_ context.Context, _ uuid.UUID, videoID uuid.UUID) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.saved[videoID] = !s.saved[videoID]
	return s.saved[videoID], nil
}

func (s *interactionServiceStub) IsLiked(_ context.Context, _ uuid.UUID, videoID uuid.UUID) bool {
	return s.liked[videoID]
}

func (s *interactionServiceStub) IsSaved(_ context.Context, _ uuid.UUID, videoID uuid.UUID) bool {
	return s.saved[videoID]
}

func (s *interactionServiceStub) InteractionState(ctx context.Context, userID, videoID uuid.UUID) services.InteractionState {
	return services.InteractionState{Liked: s.IsLiked(ctx, userID, videoID), Saved: s.IsSaved(ctx, userID, videoID)}
}

type libraryServiceStub struct {
	videos []*vo.Video
	users  []uuid.UUID
}

func (s *libraryServiceStub) list(userID uuid.UUID) []*vo.Video {
	s.users = append(s.users, userID)
	return s.videos
}

func (s *libraryServiceStub) LikedVideos(_ context.Context, userID uuid.UUID) []*vo.Video {
	return s.list(userID)
}

func (s *libraryServiceStub) SavedVideos(_ context.Context, userID uuid.UUID) []*vo.Video {
	return s.list(userID)
}

func (s *libraryServiceStub) HistoryVideos(_ context.Context, userID uuid.UUID) []*vo.Video {
	return s.list(userID)
}

func (s *libraryServiceStub) UploadedVideos(_ context.Context, userID uuid.UUID) []*vo.Video {
	return s.list(userID)
}

func (s *libraryServiceStub) Library(_ context.Context, userID uuid.UUID) (*services.Library, error) {
	if userID == uuid.Nil {
		return nil, services.AuthenticationRequired("you must be logged in to view your library")
	}
	return &services.Library{Liked: s.list(userID)}, nil
}

type sessionServiceStub struct {
	signInFn  func(context.Context, string, string) (*vo.Session, error)
	refreshFn func(context.Context, string) (*vo.Session, error)
	signedOut []uuid.UUID
}

func (s *sessionServiceStub) SignUp(context.Context, services.SignUpInput) (*vo.Session, error) {
	return nil, services.ValidationError("sign up disabled in stub")
}

func (s *sessionServiceStub) SignIn(ctx context.Context, email, password string) (*vo.Session, error) {
	return s.signInFn(ctx, email, password)
}

func (s *sessionServiceStub) Resume(_ context.Context, identity services.Identity) (*vo.Session, error) {
	if identity.Anonymous() {
		return &vo.Session{}, nil
	}
	return &vo.Session{ID: identity.SessionID, User: &vo.CurrentUser{ID: identity.UserID}}, nil
}

func (s *sessionServiceStub) Refresh(ctx context.Context, refreshToken string) (*vo.Session, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *sessionServiceStub) SignOut(_ context.Context, sessionID uuid.UUID) error {
	s.signedOut = append(s.signedOut, sessionID)
	return nil
}

func (s *sessionServiceStub) UpdateProfile(_ context.Context, identity services.Identity, patch vo.ProfilePatch) (*vo.Session, error) {
	if identity.Anonymous() {
		return nil, services.AuthenticationRequired("you must be logged in to update your profile")
	}
	user := &vo.CurrentUser{ID: identity.UserID}
	return &vo.Session{ID: identity.SessionID, User: user.ApplyPatch(patch, time.Now())}, nil
}

type storageServiceStub struct {
	uploads []services.UploadInput
	bodies  []string
}

func (s *storageServiceStub) Upload(_ context.Context, userID uuid.UUID, input services.UploadInput) (*services.StoredObject, error) {
	if userID == uuid.Nil {
		return nil, services.AuthenticationRequired("you must be logged in to upload files")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	s.uploads = append(s.uploads, input)
	s.bodies = append(s.bodies, string(body))
	path := userID.String() + "/" + input.FileName
	return &services.StoredObject{Bucket: input.Bucket, Path: path, PublicURL: s.PublicURL(input.Bucket, path), Size: int64(len(body))}, nil
}

func (s *storageServiceStub) PublicURL(bucket, objectPath string) string {
	return "http://localhost:8000/storage/v1/object/public/" + bucket + "/" + objectPath
}

// cookieStub 记录 Save/Clear 调用，Load 返回预置令牌。
type cookieStub struct {
	saved   []*oauth2.Token
	cleared int
	stored  *oauth2.Token
}

func (c *cookieStub) Save(_ http.ResponseWriter, _ *http.Request, token *oauth2.Token) error {
	c.saved = append(c.saved, token)
	return nil
}

func (c *cookieStub) Load(*http.Request) *oauth2.Token { return c.stored }

func (c *cookieStub) Clear(http.ResponseWriter, *http.Request) error {
	c.cleared++
	return nil
}

// sessionValidatorStub 将 revoked 中的会话视为已吊销。
type sessionValidatorStub struct {
	revoked map[uuid.UUID]bool
}

func (s *sessionValidatorStub) SessionActive(_ context.Context, _ uuid.UUID, sessionID uuid.UUID) (bool, error) {
	return !s.revoked[sessionID], nil
}

type testStubs struct {
	videos       *videoServiceStub
	categories   *categoryServiceStub
	history      *historyServiceStub
	comments     *commentServiceStub
	interactions *interactionServiceStub
	library      *libraryServiceStub
	sessions     *sessionServiceStub
	storage      *storageServiceStub
	cookies      *cookieStub
	validator    *sessionValidatorStub
}

func newTestStubs() *testStubs {
	return &testStubs{
		videos:       &videoServiceStub{},
		categories:   &categoryServiceStub{},
		history:      &historyServiceStub{},
		comments:     &commentServiceStub{},
		interactions: newInteractionServiceStub(),
		library:      &libraryServiceStub{},
		sessions:     &sessionServiceStub{},
		storage:      &storageServiceStub{},
		cookies:      &cookieStub{},
		validator:    &sessionValidatorStub{revoked: map[uuid.UUID]bool{}},
	}
}

type testAPI struct {
	srv    *khttp.Server
	issuer *auth.Issuer
}

func newTestAPI(t *testing.T, stubs *testStubs) *testAPI {
	t.Helper()
	logger := log.NewStdLogger(io.Discard)
	issuer, err := auth.NewIssuer(auth.Config{
		Secret:     []byte("controller-test-secret-0123456789abcdef"),
		Issuer:     "outterspace-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	})
	require.NoError(t, err)

	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{Default: 2 * time.Second})
	routes := controllers.NewRoutes(
		controllers.NewVideoHandler(stubs.videos, stubs.categories, stubs.history, base, logger),
		controllers.NewCommentHandler(stubs.comments, base),
		controllers.NewInteractionHandler(stubs.interactions, base),
		controllers.NewLibraryHandler(stubs.library, base),
		controllers.NewSessionHandler(stubs.sessions, stubs.cookies, base, logger),
		controllers.NewStorageHandler(stubs.storage, base),
	)
	srv := khttp.NewServer(khttp.Middleware(auth.Server(issuer, nil, stubs.validator, logger)))
	routes.Register(srv)
	return &testAPI{srv: srv, issuer: issuer}
}

func (a *testAPI) token(t *testing.T, userID, sessionID uuid.UUID) string {
	t.Helper()
	token, _, err := a.issuer.IssueAccessToken(userID, sessionID, po.RoleUser, time.Now())
	require.NoError(t, err)
	return token
}

func (a *testAPI) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, controllers.APIPrefix+path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.srv.ServeHTTP(rec, req)
	return rec
}
