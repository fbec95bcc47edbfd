package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/request"
	"github.com/mealbridge/mealbridge-api/internal/api/handler/v1/response"
	"github.com/mealbridge/mealbridge-api/internal/domain"
	"github.com/mealbridge/mealbridge-api/internal/service"
)

var (
	errWindowInverted   = errors.New("pickupWindowStart must be before pickupWindowEnd")
	errWindowPastExpiry = errors.New("pickupWindowEnd must be on/before expiryAt")
	errExpiryNotFuture  = errors.New("expiryAt must be in the future")
)

type DonationService interface {
	CreateDonation(ctx context.Context, actorEmail string, donation domain.Donation, lotSize int) (domain.Donation, []domain.DonationLot, error)
	ListDonations(ctx context.Context, actorEmail string) ([]domain.Donation, error)
}

type DonationHandler struct {
	svc DonationService

	// now is swappable so tests can pin the expiry check.
	now func() time.Time
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
		now: time.Now,
	}
}

// HandleCreateDonation godoc
// @Summary      Post a surplus-food donation, split into pickup lots
// @Description  Only donors can post. The donation and its lots are created atomically.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateDonationRequest  true  "donation fields"
// @Success      201      {object}  response.CreateDonationResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /donations [post]
// @Security BearerAuth
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if sess.Role != domain.RoleDonor {
		response.RenderErr(ctx, response.ErrForbidden())

		return
	}

	var req request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	start, end, expiry, err := parsePickupWindow(&req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	// Temporal ordering checks; the first failing check wins.
	if !start.Before(end) {
		response.RenderErr(ctx, response.ErrBadRequest(errWindowInverted))

		return
	}
	if end.After(expiry) {
		response.RenderErr(ctx, response.ErrBadRequest(errWindowPastExpiry))

		return
	}
	if !expiry.After(h.now()) {
		response.RenderErr(ctx, response.ErrBadRequest(errExpiryNotFuture))

		return
	}

	lotSize := 0
	if req.LotSize != nil {
		lotSize = *req.LotSize
	}

	donation := domain.Donation{
		FoodType:          req.FoodType,
		ServingsTotal:     req.ServingsTotal,
		DietaryCategory:   req.DietaryCategory,
		PickupWindowStart: start,
		PickupWindowEnd:   end,
		ExpiryAt:          expiry,
		LocationText:      req.LocationText,
		City:              req.City,
		Zone:              req.Zone,
		Status:            domain.DonationStatusPosted,
	}

	created, lots, err := h.svc.CreateDonation(ctx.Request.Context(), sess.Email, donation, lotSize)
	if err != nil {
		h.renderServiceErr(ctx, fmt.Errorf("v1.HandleCreateDonation -> h.svc.CreateDonation -> %w", err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewCreateDonationResponse(created, lots))
}

// HandleListDonations godoc
// @Summary      List donations for the acting user
// @Description  Donors see their own donations, admins see all. Newest first, capped at 30.
// @Tags         donations
// @Produce      json
// @Success      200  {object}  response.ListDonationsResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations [get]
// @Security BearerAuth
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	sess, respErr := sessionFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	if sess.Role != domain.RoleDonor && sess.Role != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrForbidden())

		return
	}

	donations, err := h.svc.ListDonations(ctx.Request.Context(), sess.Email)
	if err != nil {
		h.renderServiceErr(ctx, fmt.Errorf("v1.HandleListDonations -> h.svc.ListDonations -> %w", err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewListDonationsResponse(donations))
}

// renderServiceErr maps service failures to the fixed wire vocabulary. The
// session may claim a role the store no longer agrees with, so the service's
// own verdicts take precedence over anything checked at the boundary.
func (h *DonationHandler) renderServiceErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrUnauthorized())
	case errors.Is(err, service.ErrNotDonor):
		response.RenderErr(ctx, response.ErrForbidden())
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

func parsePickupWindow(req *request.CreateDonationRequest) (start, end, expiry time.Time, err error) {
	if start, err = time.Parse(time.RFC3339, req.PickupWindowStart); err != nil {
		return start, end, expiry, fmt.Errorf("pickupWindowStart: %w", err)
	}
	if end, err = time.Parse(time.RFC3339, req.PickupWindowEnd); err != nil {
		return start, end, expiry, fmt.Errorf("pickupWindowEnd: %w", err)
	}
	if expiry, err = time.Parse(time.RFC3339, req.ExpiryAt); err != nil {
		return start, end, expiry, fmt.Errorf("expiryAt: %w", err)
	}

	return start, end, expiry, nil
}
