package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.StorefrontAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	return NewClientWithHTTP(server.URL+"/", server.Client(), logger)
}

func TestClient_ListShops(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/getAllShops", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"Cafe","description":"Coffee","image_url":"http://img/1","contact_number":"123"}]`))
	})

	shops, err := api.ListShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, entity.ID("1"), shops[0].ID)
	assert.Equal(t, "Cafe", shops[0].Name)
	assert.Equal(t, "123", shops[0].ContactNumber)
}

func TestClient_ListMenuItems(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shop/7/getAllMenuItems", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"items":[{"id":3,"name":"Tea","price":"2.50"},{"id":4,"name":"Cake","price":4}]}`))
	})

	items, err := api.ListMenuItems(context.Background(), "7")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, decimal.RequireFromString("2.5").Equal(items[0].Price))
	assert.True(t, decimal.NewFromInt(4).Equal(items[1].Price))
}

func TestClient_BearerAndQuery(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/listUserOrders", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("id"))
		assert.Equal(t, "Bearer a.b.c", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"orders":[{"order_id":10,"shop_id":7,"status":"preparing","total_price":12.5,"created_at":"2024-05-01T10:00:00Z"}]}`))
	})

	orders, err := api.ListUserOrders(context.Background(), "a.b.c", "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.ID("10"), orders[0].OrderID)
	assert.Equal(t, entity.OrderPreparing, orders[0].Status)
}

func TestClient_UploadImage(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/imageupload", r.URL.Path)
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "proof.png", header.Filename)
		assert.Equal(t, "png-bytes", string(content))
		_, _ = w.Write([]byte(`{"data":{"url":"https://cdn/proof.png"}}`))
	})

	url, err := api.UploadImage(context.Background(), "proof.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/proof.png", url)
}

func TestClient_UploadImage_PlainStringData(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":"https://cdn/a.png"}`))
	})

	url, err := api.UploadImage(context.Background(), "a.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/a.png", url)
}

func TestClient_UpdatePaymentStatus(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/updatePaymentStatus/p9", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"paymentId": "p9", "status": "verified"}, body)
		w.WriteHeader(http.StatusOK)
	})

	err := api.UpdatePaymentStatus(context.Background(), "tok", "p9", entity.PaymentVerified)
	require.NoError(t, err)
}

func TestClient_GetPaymentID(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/getPaymentId/10", r.URL.Path)
		_, _ = w.Write([]byte(`{"paymentInfo":{"payment_id":55}}`))
	})

	paymentID, err := api.GetPaymentID(context.Background(), "tok", "10")
	require.NoError(t, err)
	assert.Equal(t, entity.ID("55"), paymentID)
}

func TestClient_VerifyPaymentAndCreateOrder(t *testing.T) {
	api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req entity.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, entity.ID("s1"), req.ShopID)
		assert.Equal(t, "https://cdn/p.png", req.PaymentProofURL)
		_, _ = w.Write([]byte(`{"order_id":77}`))
	})

	order, err := api.VerifyPaymentAndCreateOrder(context.Background(), "tok", &entity.CheckoutRequest{
		ShopID:          "s1",
		TotalPrice:      decimal.NewFromInt(200),
		PaymentProofURL: "https://cdn/p.png",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("77"), order.OrderID)
	assert.Equal(t, entity.OrderPreparing, order.Status)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: domainerrors.ErrUnauthenticated},
		{name: "forbidden", status: http.StatusForbidden, want: domainerrors.ErrUnauthenticated},
		{name: "not found", status: http.StatusNotFound, want: domainerrors.ErrNotFound},
		{name: "bad request", status: http.StatusBadRequest, want: domainerrors.ErrValidationFailed},
		{name: "server error", status: http.StatusBadGateway, want: domainerrors.ErrNetworkFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			})

			_, err := api.GetProfile(context.Background(), "tok")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := NewClientWithHTTP(server.URL, http.DefaultClient, logger)

	_, err := api.ListShops(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
}
