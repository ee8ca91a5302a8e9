package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chamba_facil/internal/adapter/http/handlers/mocks"
	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCheckoutHandler_CreatePreference(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICheckoutUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/api/create-preference", NewCheckoutHandler(uc).CreatePreference)
		return r
	}

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/api/create-preference", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty body defaults the plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), "", "").
			Return(entities.CheckoutPreference{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/create-preference", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), "basic", "Mi inscripción").
			Return(entities.CheckoutPreference{ID: "pref-1", InitPoint: "https://mp/init", SandboxInitPoint: "https://mp/sandbox"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/create-preference", bytes.NewBufferString(`{"plan":"basic","name":"Mi inscripción"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pref-1" || body["init_point"] != "https://mp/init" || body["sandbox_init_point"] != "https://mp/sandbox" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider failure returns generic 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreatePreference(gomock.Any(), "basic", "").
			Return(entities.CheckoutPreference{}, usecase.ErrPreferenceCreation)

		req := httptest.NewRequest(http.MethodPost, "/api/create-preference", bytes.NewBufferString(`{"plan":"basic"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "No se pudo crear la preferencia") {
			t.Fatalf("expected generic message, got %s", w.Body.String())
		}
		// Internal detail must never reach the response body.
		if strings.Contains(w.Body.String(), usecase.ErrPreferenceCreation.Error()) {
			t.Fatalf("internal error detail leaked: %s", w.Body.String())
		}
	})
}
