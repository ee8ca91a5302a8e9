package handlers

import (
	"errors"
	"log"
	"net/http"

	response "chamba_facil/internal/adapter/http/dto/response"
	"chamba_facil/internal/usecase"
	"chamba_facil/pkg"

	"github.com/gin-gonic/gin"
)

// MediaHandler issues Cloudinary upload signatures.

type MediaHandler struct {
	usecase usecase.IMediaUseCase
}

func NewMediaHandler(uc usecase.IMediaUseCase) *MediaHandler {
	return &MediaHandler{usecase: uc}
}

// GetSignature returns a short-lived signed payload for a direct client
// upload. Missing credentials surface as a client error, never a crash.
//
// @Summary      Issue upload signature
// @Tags         media
// @Produce      json
// @Success      200  {object}  response.SignatureResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /api/signature [get]
func (h *MediaHandler) GetSignature(c *gin.Context) {
	sig, err := h.usecase.SignUpload()
	if err != nil {
		log.Printf("[media][handler] signature failed err=%v", err)
		appErr := mapMediaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUploadSignature(sig))
}

func mapMediaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMediaNotConfigured):
		return pkg.NewDomainErrorSimple("MEDIA_NOT_CONFIGURED", "Cloudinary no configurado", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "No se pudo firmar", err, http.StatusInternalServerError)
	}
}
