package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexglitch/crm/internal/config"
	"github.com/apexglitch/crm/internal/logger"
	"github.com/apexglitch/crm/internal/service"
	"github.com/apexglitch/crm/internal/utils"
	"github.com/apexglitch/crm/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	bootstrapRegisterFn func(ctx context.Context, email, password, secretCode string) (models.User, error)
	registerUserFn      func(ctx context.Context, email, password string) (models.User, error)
	loginFn             func(ctx context.Context, email, password string) (models.User, error)
	createTokenFn       func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
	createAdminFn       func(ctx context.Context, principal models.Principal, email, password, secretCode string) (models.User, error)
	changePasswordFn    func(ctx context.Context, principal models.Principal, currentPassword, newPassword string) error
	changeEmailFn       func(ctx context.Context, principal models.Principal, newEmail string) error
	adminExistsFn       func(ctx context.Context) (bool, error)
}

func (m *mockAuthService) BootstrapRegister(ctx context.Context, email, password, secretCode string) (models.User, error) {
	return m.bootstrapRegisterFn(ctx, email, password, secretCode)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, email, password string) (models.User, error) {
	return m.registerUserFn(ctx, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CreateAdmin(ctx context.Context, principal models.Principal, email, password, secretCode string) (models.User, error) {
	return m.createAdminFn(ctx, principal, email, password, secretCode)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, principal models.Principal, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, principal, currentPassword, newPassword)
}

func (m *mockAuthService) ChangeEmail(ctx context.Context, principal models.Principal, newEmail string) error {
	return m.changeEmailFn(ctx, principal, newEmail)
}

func (m *mockAuthService) AdminExists(ctx context.Context) (bool, error) {
	return m.adminExistsFn(ctx)
}

// mockCustomerService implements service.CustomerService for unit tests.
type mockCustomerService struct {
	createFn func(ctx context.Context, fields models.CustomerFields) (models.Customer, error)
	updateFn func(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error)
	getFn    func(ctx context.Context, id int64) (models.Customer, error)
	listFn   func(ctx context.Context) ([]models.Customer, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockCustomerService) Create(ctx context.Context, fields models.CustomerFields) (models.Customer, error) {
	return m.createFn(ctx, fields)
}

func (m *mockCustomerService) Update(ctx context.Context, id int64, fields models.CustomerFields) (models.Customer, error) {
	return m.updateFn(ctx, id, fields)
}

func (m *mockCustomerService) Get(ctx context.Context, id int64) (models.Customer, error) {
	return m.getFn(ctx, id)
}

func (m *mockCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return m.listFn(ctx)
}

func (m *mockCustomerService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// mockDocumentService implements service.DocumentService for unit tests.
type mockDocumentService struct {
	uploadFn         func(ctx context.Context, upload models.DocumentUpload) (models.Document, error)
	getFn            func(ctx context.Context, id int64) (models.Document, error)
	listByCustomerFn func(ctx context.Context, customerID int64) ([]models.Document, error)
	deleteFn         func(ctx context.Context, id int64) error
	downloadFn       func(ctx context.Context, id int64) (models.Document, io.ReadCloser, error)
}

func (m *mockDocumentService) Upload(ctx context.Context, upload models.DocumentUpload) (models.Document, error) {
	return m.uploadFn(ctx, upload)
}

func (m *mockDocumentService) Get(ctx context.Context, id int64) (models.Document, error) {
	return m.getFn(ctx, id)
}

func (m *mockDocumentService) ListByCustomer(ctx context.Context, customerID int64) ([]models.Document, error) {
	return m.listByCustomerFn(ctx, customerID)
}

func (m *mockDocumentService) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDocumentService) Download(ctx context.Context, id int64) (models.Document, io.ReadCloser, error) {
	return m.downloadFn(ctx, id)
}

// ─────────────────────────────────────────────
// Shared helpers
// ─────────────────────────────────────────────

const testUploadLimit = 10 << 20

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, config.Files{MaxUploadSize: testUploadLimit}, logger.Nop())
}

// injectNopLogger places a nop logger in the request context so that
// handlers invoked directly (without middleware) can log.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// injectPrincipal attaches an authenticated identity to the request context,
// imitating what the auth middleware does.
func injectPrincipal(r *http.Request, p models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, p)
	return r.WithContext(ctx)
}

var testPrincipal = models.Principal{
	UserID: 1,
	Email:  "admin@example.com",
	Role:   models.RoleAdmin,
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := newTestHandler(&service.Services{})

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svcs := &service.Services{}
	h := newTestHandler(svcs)

	assert.Equal(t, svcs, h.services)
}

func TestNewHandler_StoresUploadLimit(t *testing.T) {
	h := newTestHandler(&service.Services{})

	assert.Equal(t, int64(testUploadLimit), h.maxUploadSize)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/"},
	{http.MethodGet, "/admin-exists"},
	{http.MethodGet, "/api/admin-exists"},
	{http.MethodPost, "/api/register"},
	{http.MethodPost, "/api/register-user"},
	{http.MethodPost, "/api/login"},
	// protected routes answer 401 without a token, which still proves
	// the route exists
	{http.MethodPost, "/api/change-password"},
	{http.MethodPost, "/api/change-email"},
	{http.MethodPost, "/api/create-admin"},
	{http.MethodGet, "/api/customers/"},
	{http.MethodPost, "/api/customers/"},
	{http.MethodGet, "/api/customers/1/"},
	{http.MethodPut, "/api/customers/1/"},
	{http.MethodDelete, "/api/customers/1/"},
	{http.MethodGet, "/api/customers/1/documents"},
	{http.MethodPost, "/api/customers/1/documents"},
	{http.MethodGet, "/api/documents/1/"},
	{http.MethodDelete, "/api/documents/1/"},
	{http.MethodGet, "/api/documents/1/download"},
}

func newRoutedHandler() *Handler {
	return newTestHandler(&service.Services{
		AuthService: &mockAuthService{
			adminExistsFn: func(context.Context) (bool, error) { return true, nil },
		},
	})
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newRoutedHandler().Init()

	require.NotNil(t, router)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRoutedHandler().Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed).
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_PropagatesTraceIDFromRequest(t *testing.T) {
	router := newRoutedHandler().Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-abc", rec.Header().Get(traceIDHeader))
}
