package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chamba_facil/internal/adapter/http/handlers/mocks"
	"chamba_facil/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIWebhookUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/webhooks/mercadopago", NewWebhookHandler(uc).HandleNotification)
		return r
	}

	t.Run("body-encoded notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), entities.Notification{Topic: "payment", PaymentID: "123"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("numeric id in body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), entities.Notification{Topic: "payment", PaymentID: "123"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":123}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("query-encoded notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), entities.Notification{Topic: "payment", PaymentID: "123"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago?topic=payment&id=123", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("body wins over query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), entities.Notification{Topic: "payment", PaymentID: "123"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago?topic=merchant_order&id=999", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("empty notification still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), entities.Notification{}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString("not json at all"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal failure still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(errors.New("provider down"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/mercadopago", bytes.NewBufferString(`{"type":"payment","data":{"id":"123"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// Non-200 would trigger the provider's redelivery storm.
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 despite internal failure, got %d", w.Code)
		}
	})
}
