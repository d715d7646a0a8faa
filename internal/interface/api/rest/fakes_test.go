package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"servija-api/internal/application/apperr"
	"servija-api/internal/domain/category"
	"servija-api/internal/domain/profile"
	"servija-api/internal/domain/provider"
	"servija-api/internal/domain/request"
	"servija-api/internal/domain/user"
	jwtSvc "servija-api/internal/infrastructure/jwt"
)

var errNotUsed = errors.New("not used")

type FakeAuthService struct {
	RegisterFunc    func(ctx context.Context, in user.Registration) (*user.Session, error)
	LoginFunc       func(ctx context.Context, email, password string) (*user.Session, error)
	CurrentUserFunc func(ctx context.Context, id user.UUID) (*user.User, error)
	UpdateMeFunc    func(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error)
}

func (f *FakeAuthService) Register(ctx context.Context, in user.Registration) (*user.Session, error) {
	if f.RegisterFunc == nil {
		return nil, errNotUsed
	}
	return f.RegisterFunc(ctx, in)
}
func (f *FakeAuthService) Login(ctx context.Context, email, password string) (*user.Session, error) {
	if f.LoginFunc == nil {
		return nil, errNotUsed
	}
	return f.LoginFunc(ctx, email, password)
}
func (f *FakeAuthService) CurrentUser(ctx context.Context, id user.UUID) (*user.User, error) {
	if f.CurrentUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CurrentUserFunc(ctx, id)
}
func (f *FakeAuthService) UpdateMe(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error) {
	if f.UpdateMeFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateMeFunc(ctx, id, patch)
}

type FakeProfileService struct {
	GetProviderProfileFunc func(ctx context.Context, userID user.UUID) (*profile.Profile, error)
	MergeProfileFunc       func(ctx context.Context, userID user.UUID, patch profile.Patch) (*profile.Profile, error)
}

func (f *FakeProfileService) GetProviderProfile(ctx context.Context, userID user.UUID) (*profile.Profile, error) {
	if f.GetProviderProfileFunc == nil {
		return nil, errNotUsed
	}
	return f.GetProviderProfileFunc(ctx, userID)
}
func (f *FakeProfileService) MergeProfile(ctx context.Context, userID user.UUID, patch profile.Patch) (*profile.Profile, error) {
	if f.MergeProfileFunc == nil {
		return nil, errNotUsed
	}
	return f.MergeProfileFunc(ctx, userID, patch)
}

type FakeUserService struct {
	FindUsersFunc       func(ctx context.Context) (user.Users, error)
	AdminUpdateUserFunc func(ctx context.Context, actor *user.User, id user.UUID, patch user.AdminPatch) (*user.User, error)
	DeleteUserFunc      func(ctx context.Context, actor *user.User, id user.UUID) error
}

func (f *FakeUserService) FindUsers(ctx context.Context) (user.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUsersFunc(ctx)
}
func (f *FakeUserService) AdminUpdateUser(ctx context.Context, actor *user.User, id user.UUID, patch user.AdminPatch) (*user.User, error) {
	if f.AdminUpdateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.AdminUpdateUserFunc(ctx, actor, id, patch)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, actor *user.User, id user.UUID) error {
	if f.DeleteUserFunc == nil {
		return errNotUsed
	}
	return f.DeleteUserFunc(ctx, actor, id)
}

type FakeCategoryService struct {
	ResolveNameFunc    func(ctx context.Context, id category.UUID) (string, error)
	FindCategoriesFunc func(ctx context.Context, active *bool) (category.Categories, error)
	CreateCategoryFunc func(ctx context.Context, patch category.Patch) (*category.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id category.UUID, patch category.Patch) (*category.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id category.UUID) error
}

func (f *FakeCategoryService) ResolveName(ctx context.Context, id category.UUID) (string, error) {
	if f.ResolveNameFunc == nil {
		return "", errNotUsed
	}
	return f.ResolveNameFunc(ctx, id)
}
func (f *FakeCategoryService) FindCategories(ctx context.Context, active *bool) (category.Categories, error) {
	if f.FindCategoriesFunc == nil {
		return nil, errNotUsed
	}
	return f.FindCategoriesFunc(ctx, active)
}
func (f *FakeCategoryService) CreateCategory(ctx context.Context, patch category.Patch) (*category.Category, error) {
	if f.CreateCategoryFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateCategoryFunc(ctx, patch)
}
func (f *FakeCategoryService) UpdateCategory(ctx context.Context, id category.UUID, patch category.Patch) (*category.Category, error) {
	if f.UpdateCategoryFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateCategoryFunc(ctx, id, patch)
}
func (f *FakeCategoryService) DeleteCategory(ctx context.Context, id category.UUID) error {
	if f.DeleteCategoryFunc == nil {
		return errNotUsed
	}
	return f.DeleteCategoryFunc(ctx, id)
}

type FakeProviderService struct {
	FindProvidersFunc    func(ctx context.Context, f provider.Filter) (provider.Providers, error)
	FindProviderByIDFunc func(ctx context.Context, id provider.UUID) (*provider.Provider, error)
	ModerateProviderFunc func(ctx context.Context, id provider.UUID, m provider.Moderation) (*provider.Provider, error)
}

func (f *FakeProviderService) FindProviders(ctx context.Context, filter provider.Filter) (provider.Providers, error) {
	if f.FindProvidersFunc == nil {
		return nil, errNotUsed
	}
	return f.FindProvidersFunc(ctx, filter)
}
func (f *FakeProviderService) FindProviderByID(ctx context.Context, id provider.UUID) (*provider.Provider, error) {
	if f.FindProviderByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindProviderByIDFunc(ctx, id)
}
func (f *FakeProviderService) ModerateProvider(ctx context.Context, id provider.UUID, m provider.Moderation) (*provider.Provider, error) {
	if f.ModerateProviderFunc == nil {
		return nil, errNotUsed
	}
	return f.ModerateProviderFunc(ctx, id, m)
}

type FakeRequestService struct {
	FindRequestsFunc    func(ctx context.Context, actor *user.User, f request.Filter) (request.Requests, error)
	FindRequestByIDFunc func(ctx context.Context, actor *user.User, id request.UUID) (*request.Request, error)
	CreateRequestFunc   func(ctx context.Context, actor *user.User, d request.Draft) (*request.Request, error)
	UpdateRequestFunc   func(ctx context.Context, actor *user.User, id request.UUID, patch request.Patch) (*request.Request, error)
}

func (f *FakeRequestService) FindRequests(ctx context.Context, actor *user.User, filter request.Filter) (request.Requests, error) {
	if f.FindRequestsFunc == nil {
		return nil, errNotUsed
	}
	return f.FindRequestsFunc(ctx, actor, filter)
}
func (f *FakeRequestService) FindRequestByID(ctx context.Context, actor *user.User, id request.UUID) (*request.Request, error) {
	if f.FindRequestByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindRequestByIDFunc(ctx, actor, id)
}
func (f *FakeRequestService) CreateRequest(ctx context.Context, actor *user.User, d request.Draft) (*request.Request, error) {
	if f.CreateRequestFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateRequestFunc(ctx, actor, d)
}
func (f *FakeRequestService) UpdateRequest(ctx context.Context, actor *user.User, id request.UUID, patch request.Patch) (*request.Request, error) {
	if f.UpdateRequestFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateRequestFunc(ctx, actor, id, patch)
}

// testEnv wires a router with a real token guard. Accounts known to the
// fake auth service are the ones passed to signIn.
type testEnv struct {
	r     *gin.Engine
	jwt   *jwtSvc.Service
	auth  *FakeAuthService
	guard Guard
	known map[user.UUID]*user.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &testEnv{
		r:     gin.New(),
		jwt:   jwtSvc.New("test-secret", time.Hour),
		known: make(map[user.UUID]*user.User),
	}
	e.auth = &FakeAuthService{
		CurrentUserFunc: func(_ context.Context, id user.UUID) (*user.User, error) {
			if u, ok := e.known[id]; ok {
				return u, nil
			}
			return nil, apperr.Unauthorized("not authenticated")
		},
	}
	e.guard = NewGuard(e.jwt, e.auth, zap.NewNop())
	return e
}

// signIn registers u with the fake auth service and returns its headers.
func (e *testEnv) signIn(t *testing.T, u *user.User) map[string]string {
	t.Helper()
	e.known[u.ID] = u
	tok, err := e.jwt.Issue(u.ID.String(), u.Email, string(u.AccountType), u.Role())
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func noLimit(c *gin.Context) { c.Next() }

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func someClient() *user.User {
	phone := "11999990000"
	return &user.User{
		ID:          uuid.New(),
		Email:       "ana@example.com",
		FullName:    "Ana Souza",
		AccountType: user.AccountClient,
		Active:      true,
		Phone:       &phone,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func someAdmin() *user.User {
	return &user.User{
		ID:          uuid.New(),
		Email:       "root@example.com",
		FullName:    "Root",
		AccountType: user.AccountAdmin,
		Active:      true,
	}
}

func someProvider(owner *user.User) *provider.Provider {
	ownerID := owner.ID
	email := owner.Email
	price := 120.0
	return &provider.Provider{
		ID:             uuid.New(),
		UserID:         &ownerID,
		UserEmail:      &email,
		Name:           owner.FullName,
		Phone:          "11999990000",
		Services:       []provider.Service{{Name: "Pintura", Price: &price}},
		Rating:         provider.DefaultRating,
		ApprovalStatus: provider.StatusPending,
		Active:         true,
	}
}
