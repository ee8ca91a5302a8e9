package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chamba_facil/internal/adapter/http/handlers/mocks"
	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMediaHandler_GetSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIMediaUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/api/signature", NewMediaHandler(uc).GetSignature)
		return r
	}

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SignUpload().Return(entities.UploadSignature{}, usecase.ErrMediaNotConfigured)

		req := httptest.NewRequest(http.MethodGet, "/api/signature", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, ok := body["signature"]; ok {
			t.Fatalf("no signature fields expected, got %s", w.Body.String())
		}
		if body["error"] == "" {
			t.Fatalf("expected error message, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMediaUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().SignUpload().Return(entities.UploadSignature{
			Timestamp: 1700000000,
			Signature: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
			APIKey:    "key-1",
			CloudName: "demo",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/signature", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["timestamp"] != float64(1700000000) || body["apiKey"] != "key-1" || body["cloudName"] != "demo" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["signature"] != "da39a3ee5e6b4b0d3255bfef95601890afd80709" {
			t.Fatalf("unexpected signature: %s", w.Body.String())
		}
	})
}
