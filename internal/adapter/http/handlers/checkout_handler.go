package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "chamba_facil/internal/adapter/http/dto/request"
	response "chamba_facil/internal/adapter/http/dto/response"
	"chamba_facil/internal/usecase"
	"chamba_facil/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles HTTP requests for checkout-preference creation.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreatePreference creates a Mercado Pago checkout preference.
//
// @Summary      Create checkout preference
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePreferenceRequest  false  "plan and optional display name"
// @Success      200      {object}  response.PreferenceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /api/create-preference [post]
func (h *CheckoutHandler) CreatePreference(c *gin.Context) {
	var payload request.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		// An empty body is a valid request for the default plan; only
		// malformed JSON is rejected.
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Solicitud inválida", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	plan := payload.ResolvePlan()
	log.Printf("[checkout][handler] create start plan=%q", plan)

	pref, err := h.usecase.CreatePreference(c.Request.Context(), plan, payload.ResolveName())
	if err != nil {
		// Full detail is already in server logs; the client gets a generic
		// message so provider internals never leak through the response.
		log.Printf("[checkout][handler] create failed plan=%q err=%v", plan, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success plan=%q preference_id=%s", plan, pref.ID)

	c.JSON(http.StatusOK, response.FromCheckoutPreference(pref))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCheckoutNotConfigured), errors.Is(err, usecase.ErrPreferenceCreation):
		return pkg.NewDomainError("PREFERENCE_CREATION_FAILED", "No se pudo crear la preferencia", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "No se pudo crear la preferencia", err, http.StatusInternalServerError)
	}
}
