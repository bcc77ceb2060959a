package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/youngicthub/CelebBooker/internal/catalog"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/handler/dto"
	"github.com/youngicthub/CelebBooker/internal/middleware"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

const dateLayout = "2006-01-02"

type CatalogSvc interface {
	List(ctx context.Context, q catalog.Query) ([]*domain.Celebrity, error)
	GetByID(ctx context.Context, id string) (*domain.Celebrity, error)
	Packages(ctx context.Context, celebrityID string) ([]pricing.Package, error)
	CreateCelebrity(ctx context.Context, input domain.CelebrityInput) (*domain.Celebrity, error)
	UpdateCelebrity(ctx context.Context, id string, input domain.CelebrityInput) (*domain.Celebrity, error)
	DeleteCelebrity(ctx context.Context, id string) error
}

type BookingSvc interface {
	StartDraft(ctx context.Context, identity domain.Identity, celebrityID string, packageID pricing.PackageID) (*wizard.Draft, error)
	GetDraft(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error)
	SetEventDetails(ctx context.Context, identity domain.Identity, draftID string, e domain.EventDetails) (*wizard.Draft, error)
	SetContactInfo(ctx context.Context, identity domain.Identity, draftID string, c domain.ContactInfo) (*wizard.Draft, error)
	SetPayment(ctx context.Context, identity domain.Identity, draftID string, method domain.PaymentMethod, details domain.PaymentDetails) (*wizard.Draft, error)
	Next(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error)
	Previous(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error)
	Submit(ctx context.Context, identity domain.Identity, draftID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error)
}

type AdminSvc interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	Stats(ctx context.Context) (domain.BookingStats, error)
	Review(ctx context.Context, id string, decision domain.ReviewDecision, notes string) (*domain.Booking, error)
}

type AuthSvc interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, domain.Identity, error)
}

type Handler struct {
	catalogService CatalogSvc
	bookingService BookingSvc
	adminService   AdminSvc
	authService    AuthSvc
}

func NewHandler(catalogService CatalogSvc, bookingService BookingSvc, adminService AdminSvc, authService AuthSvc) *Handler {
	return &Handler{
		catalogService: catalogService,
		bookingService: bookingService,
		adminService:   adminService,
		authService:    authService,
	}
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) SignIn(c *ginext.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, identity, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignInResponse{
		Token: token,
		User:  dto.UserResponse{ID: identity.UserID, Email: identity.Email},
		Role:  string(identity.Role),
	})
}

// Catalog

func (h *Handler) ListCelebrities(c *ginext.Context) {
	q := catalog.Query{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		Availability: c.Query("availability"),
		SortBy:       c.Query("sort_by"),
	}

	celebrities, err := h.catalogService.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CelebrityResponse, 0, len(celebrities))
	for _, celebrity := range celebrities {
		resp = append(resp, dto.ToCelebrityResponse(celebrity))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetCelebrity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid celebrity id"})
		return
	}

	celebrity, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	packages, err := h.catalogService.Packages(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	pkgResp := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		pkgResp = append(pkgResp, dto.ToPackageResponse(p))
	}

	c.JSON(http.StatusOK, dto.CelebrityDetailsResponse{
		Celebrity: dto.ToCelebrityResponse(celebrity),
		Packages:  pkgResp,
	})
}

func (h *Handler) GetPackages(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid celebrity id"})
		return
	}

	packages, err := h.catalogService.Packages(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		resp = append(resp, dto.ToPackageResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Booking wizard

func (h *Handler) StartDraft(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return
	}

	var req dto.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.bookingService.StartDraft(c.Request.Context(), identity, req.CelebrityID, pricing.PackageID(req.Package))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDraftResponse(draft))
}

func (h *Handler) GetDraft(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	draft, err := h.bookingService.GetDraft(c.Request.Context(), identity, draftID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) SetEventDetails(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	var req dto.EventDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details := domain.EventDetails{
		Time:            req.EventTime,
		Location:        req.EventLocation,
		Type:            req.EventType,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
	}
	if req.EventDate != "" {
		date, err := time.Parse(dateLayout, req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected 2006-01-02",
			})
			return
		}
		details.Date = date
	}

	draft, err := h.bookingService.SetEventDetails(c.Request.Context(), identity, draftID, details)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) SetContactInfo(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	var req dto.ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.bookingService.SetContactInfo(c.Request.Context(), identity, draftID, domain.ContactInfo{
		Name:  req.ContactName,
		Email: req.ContactEmail,
		Phone: req.ContactPhone,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) SetPayment(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	draft, err := h.bookingService.SetPayment(c.Request.Context(), identity, draftID,
		domain.PaymentMethod(req.Method),
		domain.PaymentDetails{
			BankName:      req.BankName,
			AccountNumber: req.AccountNumber,
			CryptoAddress: req.CryptoAddress,
		},
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) NextStep(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	draft, err := h.bookingService.Next(c.Request.Context(), identity, draftID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) PreviousStep(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	draft, err := h.bookingService.Previous(c.Request.Context(), identity, draftID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

func (h *Handler) SubmitDraft(c *ginext.Context) {
	identity, draftID, ok := h.draftCall(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), identity, draftID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListMyBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Admin

func (h *Handler) ListAllBookings(c *ginext.Context) {
	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetStats(c *ginext.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

func (h *Handler) ReviewBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.adminService.Review(c.Request.Context(), id, domain.ReviewDecision(req.Decision), req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CreateCelebrity(c *ginext.Context) {
	var req dto.CelebrityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	celebrity, err := h.catalogService.CreateCelebrity(c.Request.Context(), celebrityInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCelebrityResponse(celebrity))
}

func (h *Handler) UpdateCelebrity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid celebrity id"})
		return
	}

	var req dto.CelebrityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	celebrity, err := h.catalogService.UpdateCelebrity(c.Request.Context(), id, celebrityInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCelebrityResponse(celebrity))
}

func (h *Handler) DeleteCelebrity(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid celebrity id"})
		return
	}

	if err := h.catalogService.DeleteCelebrity(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func celebrityInput(req dto.CelebrityRequest) domain.CelebrityInput {
	return domain.CelebrityInput{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		HourlyRate:    domain.Money(req.HourlyRateCents),
		Availability:  domain.Availability(req.Availability),
		Rating:        req.Rating,
		TotalBookings: req.TotalBookings,
		Specialties:   req.Specialties,
		SocialMedia:   req.SocialMedia,
	}
}

// draftCall extracts the identity and validated draft id shared by every
// wizard route.
func (h *Handler) draftCall(c *ginext.Context) (domain.Identity, string, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
		return domain.Identity{}, "", false
	}

	draftID := c.Param("id")
	if _, err := uuid.Parse(draftID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid draft id"})
		return domain.Identity{}, "", false
	}

	return identity, draftID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCelebrityNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingReviewed),
		errors.Is(err, domain.ErrWizardTransition),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
