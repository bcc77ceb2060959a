package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/youngicthub/CelebBooker/internal/catalog"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/handler/dto"
	hmocks "github.com/youngicthub/CelebBooker/internal/handler/mocks"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

type routerMocks struct {
	catalog *hmocks.MockCatalogSvc
	booking *hmocks.MockBookingSvc
	admin   *hmocks.MockAdminSvc
	auth    *hmocks.MockAuthSvc
}

// asUser injects the authenticated identity the way the auth middleware
// would, so handler tests exercise routes without real tokens.
func asUser(identity domain.Identity) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("identity", identity)
		c.Next()
	}
}

func setupRouter(t *testing.T, identity domain.Identity) (routerMocks, http.Handler) {
	t.Helper()
	m := routerMocks{
		catalog: hmocks.NewMockCatalogSvc(t),
		booking: hmocks.NewMockBookingSvc(t),
		admin:   hmocks.NewMockAdminSvc(t),
		auth:    hmocks.NewMockAuthSvc(t),
	}

	h := NewHandler(m.catalog, m.booking, m.admin, m.auth)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/signin", h.SignIn)
		api.GET("/celebrities", h.ListCelebrities)
		api.GET("/celebrities/:id", h.GetCelebrity)
		api.GET("/celebrities/:id/packages", h.GetPackages)

		authed := api.Group("", asUser(identity))
		{
			authed.POST("/bookings/drafts", h.StartDraft)
			authed.GET("/bookings/drafts/:id", h.GetDraft)
			authed.PUT("/bookings/drafts/:id/event", h.SetEventDetails)
			authed.PUT("/bookings/drafts/:id/contact", h.SetContactInfo)
			authed.PUT("/bookings/drafts/:id/payment", h.SetPayment)
			authed.POST("/bookings/drafts/:id/next", h.NextStep)
			authed.POST("/bookings/drafts/:id/previous", h.PreviousStep)
			authed.POST("/bookings/drafts/:id/submit", h.SubmitDraft)
			authed.GET("/bookings", h.ListMyBookings)
		}

		admin := api.Group("/admin", asUser(identity))
		{
			admin.GET("/bookings", h.ListAllBookings)
			admin.GET("/bookings/stats", h.GetStats)
			admin.POST("/bookings/:id/review", h.ReviewBooking)
			admin.POST("/celebrities", h.CreateCelebrity)
		}
	}

	return m, r
}

func userIdentity() domain.Identity {
	return domain.Identity{UserID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_SignUp_Success(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	user := &domain.User{ID: uuid.New().String(), Email: "alice@example.com", CreatedAt: time.Now()}
	m.auth.EXPECT().SignUp(mock.Anything, "alice@example.com", "secret123").Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", dto.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_SignUp_BadRequest(t *testing.T) {
	_, r := setupRouter(t, userIdentity())

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", ginext.H{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	m.auth.EXPECT().SignUp(mock.Anything, "alice@example.com", "secret123").Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", dto.SignUpRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SignIn_Success(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	identity := domain.Identity{UserID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
	m.auth.EXPECT().SignIn(mock.Anything, "alice@example.com", "secret123").Return("token-123", identity, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signin", dto.SignInRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SignInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_SignIn_WrongPassword(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	m.auth.EXPECT().SignIn(mock.Anything, "alice@example.com", "wrong").Return("", domain.Identity{}, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signin", dto.SignInRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Catalog ---

func TestHandler_ListCelebrities_PassesQuery(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	m.catalog.EXPECT().List(mock.Anything, catalog.Query{Category: "Musicians", SortBy: "rating"}).Return([]*domain.Celebrity{
		{ID: uuid.New().String(), Name: "Sarah Johnson", Category: "Musicians", HourlyRate: 500000},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/celebrities?category=Musicians&sort_by=rating", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CelebrityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sarah Johnson", resp[0].Name)
	assert.Equal(t, int64(500000), resp[0].HourlyRateCents)
}

func TestHandler_GetCelebrity_WithPackages(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	id := uuid.New().String()
	celebrity := &domain.Celebrity{ID: id, Name: "Sarah Johnson", HourlyRate: 500000}
	m.catalog.EXPECT().GetByID(mock.Anything, id).Return(celebrity, nil)
	m.catalog.EXPECT().Packages(mock.Anything, id).Return(pricing.Packages(celebrity), nil)

	w := doJSON(t, r, http.MethodGet, "/api/celebrities/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CelebrityDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sarah Johnson", resp.Celebrity.Name)
	require.Len(t, resp.Packages, 3)
	assert.Equal(t, int64(250000), resp.Packages[0].PriceCents)
	assert.Equal(t, int64(900000), resp.Packages[2].PriceCents)
}

func TestHandler_GetCelebrity_InvalidID(t *testing.T) {
	_, r := setupRouter(t, userIdentity())

	w := doJSON(t, r, http.MethodGet, "/api/celebrities/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCelebrity_NotFound(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	id := uuid.New().String()
	m.catalog.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrCelebrityNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/celebrities/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Booking wizard ---

func testDraft(id string) *wizard.Draft {
	celebrity := &domain.Celebrity{ID: uuid.New().String(), Name: "Sarah Johnson", HourlyRate: 500000}
	pkg, _ := pricing.PackageFor(celebrity, pricing.PackageStandard)
	return wizard.New(id, "u1", celebrity, pkg, "alice@example.com", time.Now().UTC())
}

func TestHandler_StartDraft_Success(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	celebrityID := uuid.New().String()
	draftID := uuid.New().String()
	m.booking.EXPECT().StartDraft(mock.Anything, userIdentity(), celebrityID, pricing.PackageStandard).
		Return(testDraft(draftID), nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/drafts", dto.StartDraftRequest{
		CelebrityID: celebrityID,
		Package:     "standard",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DraftResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Step)
	assert.Equal(t, "event_details", resp.StepName)
	assert.Equal(t, int64(500000), resp.SubtotalCents)
	assert.Equal(t, int64(25000), resp.FeeCents)
	assert.Equal(t, int64(525000), resp.TotalCents)
}

func TestHandler_StartDraft_UnknownPackage(t *testing.T) {
	_, r := setupRouter(t, userIdentity())

	w := doJSON(t, r, http.MethodPost, "/api/bookings/drafts", ginext.H{
		"celebrity_id": uuid.New().String(),
		"package":      "vip",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetEventDetails_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, userIdentity())

	draftID := uuid.New().String()
	w := doJSON(t, r, http.MethodPut, "/api/bookings/drafts/"+draftID+"/event", ginext.H{
		"event_date": "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetEventDetails_ParsesDate(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	draftID := uuid.New().String()
	m.booking.EXPECT().
		SetEventDetails(mock.Anything, userIdentity(), draftID, mock.Anything).
		Run(func(ctx context.Context, identity domain.Identity, id string, e domain.EventDetails) {
			assert.Equal(t, 2031, e.Date.Year())
			assert.Equal(t, "Los Angeles", e.Location)
		}).
		Return(testDraft(draftID), nil)

	w := doJSON(t, r, http.MethodPut, "/api/bookings/drafts/"+draftID+"/event", dto.EventDetailsRequest{
		EventDate:     "2031-06-15",
		EventLocation: "Los Angeles",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_NextStep_Conflict(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	draftID := uuid.New().String()
	m.booking.EXPECT().Next(mock.Anything, userIdentity(), draftID).Return(nil, domain.ErrWizardTransition)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/drafts/"+draftID+"/next", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitDraft_Success(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	draftID := uuid.New().String()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        "u1",
		CelebrityName: "Sarah Johnson",
		PackageName:   "Standard Appearance",
		Amount:        525000,
		PaymentMethod: domain.PaymentBankTransfer,
		Status:        domain.BookingStatusPending,
	}
	m.booking.EXPECT().Submit(mock.Anything, userIdentity(), draftID).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/drafts/"+draftID+"/submit", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(525000), resp.AmountCents)
}

func TestHandler_GetDraft_NotFound(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	draftID := uuid.New().String()
	m.booking.EXPECT().GetDraft(mock.Anything, userIdentity(), draftID).Return(nil, domain.ErrDraftNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/drafts/"+draftID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyBookings(t *testing.T) {
	m, r := setupRouter(t, userIdentity())

	m.booking.EXPECT().ListByUser(mock.Anything, userIdentity()).Return([]*domain.Booking{
		{ID: uuid.New().String(), UserID: "u1", Status: domain.BookingStatusPending},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Admin ---

func TestHandler_ReviewBooking_Success(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	m, r := setupRouter(t, admin)

	id := uuid.New().String()
	reviewed := &domain.Booking{ID: id, Status: domain.BookingStatusApproved}
	m.admin.EXPECT().Review(mock.Anything, id, domain.DecisionApproved, "ok").Return(reviewed, nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/bookings/"+id+"/review", dto.ReviewRequest{
		Decision: "approved",
		Notes:    "ok",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
}

func TestHandler_ReviewBooking_AlreadyReviewed(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	m, r := setupRouter(t, admin)

	id := uuid.New().String()
	m.admin.EXPECT().Review(mock.Anything, id, domain.DecisionRejected, "").Return(nil, domain.ErrBookingReviewed)

	w := doJSON(t, r, http.MethodPost, "/api/admin/bookings/"+id+"/review", dto.ReviewRequest{
		Decision: "rejected",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReviewBooking_InvalidDecision(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	_, r := setupRouter(t, admin)

	w := doJSON(t, r, http.MethodPost, "/api/admin/bookings/"+uuid.New().String()+"/review", ginext.H{
		"decision": "maybe",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	m, r := setupRouter(t, admin)

	m.admin.EXPECT().Stats(mock.Anything).Return(domain.BookingStats{
		Total:    3,
		Pending:  1,
		Approved: 1,
		Revenue:  1500000,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, int64(1500000), resp.RevenueCents)
}

func TestHandler_CreateCelebrity_Success(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	m, r := setupRouter(t, admin)

	created := &domain.Celebrity{
		ID:           uuid.New().String(),
		Name:         "DJ Phoenix",
		Category:     "Musicians",
		HourlyRate:   280000,
		Availability: domain.AvailabilityAvailable,
		Rating:       5.0,
	}
	m.catalog.EXPECT().CreateCelebrity(mock.Anything, mock.Anything).Return(created, nil)

	w := doJSON(t, r, http.MethodPost, "/api/admin/celebrities", dto.CelebrityRequest{
		Name:            "DJ Phoenix",
		Category:        "Musicians",
		Description:     "Touring DJ",
		HourlyRateCents: 280000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateCelebrity_BadRequest(t *testing.T) {
	admin := domain.Identity{UserID: "a1", Email: "admin@example.com", Role: domain.RoleAdmin}
	_, r := setupRouter(t, admin)

	w := doJSON(t, r, http.MethodPost, "/api/admin/celebrities", ginext.H{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
