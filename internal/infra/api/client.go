// Package api is the REST client of the storefront backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBody = 4 << 10

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates the StorefrontAPI client from the api config section
func NewClient(cfg *config.Config, logger *slog.Logger) (service.StorefrontAPI, error) {
	if cfg.API == nil || cfg.API.BaseURL == "" {
		return nil, errors.New("api.baseUrl is required")
	}

	return NewClientWithHTTP(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, logger), nil
}

// NewClientWithHTTP creates a client on top of an existing http.Client
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) service.StorefrontAPI {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListShops calls GET /api/getAllShops
func (c *client) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	var shops []*entity.Shop
	if err := c.do(ctx, http.MethodGet, "/api/getAllShops", "", nil, &shops); err != nil {
		return nil, err
	}

	return shops, nil
}

// ListMenuItems calls GET /api/shop/{id}/getAllMenuItems
func (c *client) ListMenuItems(ctx context.Context, shopID entity.ID) ([]*entity.MenuItem, error) {
	var body struct {
		Success bool               `json:"success"`
		Items   []*entity.MenuItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/shop/"+pathID(shopID)+"/getAllMenuItems", "", nil, &body); err != nil {
		return nil, err
	}

	return body.Items, nil
}

// ListOwnerShops calls GET /api/ownerShops
func (c *client) ListOwnerShops(ctx context.Context, token string) ([]*entity.Shop, error) {
	var body struct {
		Shops []*entity.Shop `json:"shops"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/ownerShops", token, nil, &body); err != nil {
		return nil, err
	}

	return body.Shops, nil
}

// AddMenuItem calls POST /api/shop/{id}/addMenuItem
func (c *client) AddMenuItem(ctx context.Context, token string, shopID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error) {
	var body menuItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/shop/"+pathID(shopID)+"/addMenuItem", token, input, &body); err != nil {
		return nil, err
	}

	return body.item(shopID, input), nil
}

// UpdateMenuItem calls PUT /api/shop/{id}/updateMenuItem/{itemId}
func (c *client) UpdateMenuItem(ctx context.Context, token string, shopID, itemID entity.ID, input *entity.MenuItemInput) (*entity.MenuItem, error) {
	var body menuItemResponse
	path := "/api/shop/" + pathID(shopID) + "/updateMenuItem/" + pathID(itemID)
	if err := c.do(ctx, http.MethodPut, path, token, input, &body); err != nil {
		return nil, err
	}

	item := body.item(shopID, input)
	if item.ID.IsZero() {
		item.ID = itemID
	}

	return item, nil
}

// GetProfile calls GET /api/profile
func (c *client) GetProfile(ctx context.Context, token string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", token, nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UploadImage calls POST /api/imageupload with the multipart field "image"
func (c *client) UploadImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.WithStack(err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", errors.Wrap(err, "failed to buffer image")
	}
	if err := writer.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/imageupload", "", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.send(req, &body); err != nil {
		return "", err
	}

	return uploadedURL(body.Data)
}

// VerifyPaymentAndCreateOrder calls POST /api/verifyPaymentAndCreateOrder
func (c *client) VerifyPaymentAndCreateOrder(ctx context.Context, token string, checkout *entity.CheckoutRequest) (*entity.Order, error) {
	var body struct {
		Order   *entity.Order `json:"order"`
		OrderID entity.ID     `json:"order_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/verifyPaymentAndCreateOrder", token, checkout, &body); err != nil {
		return nil, err
	}

	if body.Order != nil {
		return body.Order, nil
	}

	return &entity.Order{
		OrderID:    body.OrderID,
		UserID:     checkout.UserID,
		ShopID:     checkout.ShopID,
		Status:     entity.OrderPreparing,
		TotalPrice: checkout.TotalPrice,
	}, nil
}

// ListUserOrders calls GET /api/listUserOrders?id={userID}
func (c *client) ListUserOrders(ctx context.Context, token string, userID entity.ID) ([]*entity.Order, error) {
	var body ordersResponse
	path := "/api/listUserOrders?" + url.Values{"id": {userID.String()}}.Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &body); err != nil {
		return nil, err
	}

	return body.Orders, nil
}

// ListShopOrders calls GET /api/listShopOrders
func (c *client) ListShopOrders(ctx context.Context, token string) ([]*entity.Order, error) {
	var body ordersResponse
	if err := c.do(ctx, http.MethodGet, "/api/listShopOrders", token, nil, &body); err != nil {
		return nil, err
	}

	return body.Orders, nil
}

// GetOrderDetails calls GET /api/orderDetails/{orderId}
func (c *client) GetOrderDetails(ctx context.Context, token string, orderID entity.ID) ([]*entity.OrderItem, error) {
	var body struct {
		Items []*entity.OrderItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/orderDetails/"+pathID(orderID), token, nil, &body); err != nil {
		return nil, err
	}

	return body.Items, nil
}

// UpdateOrderStatus calls PUT /api/updateOrderStatus/{orderId}
func (c *client) UpdateOrderStatus(ctx context.Context, token string, orderID entity.ID, status entity.OrderStatus) error {
	payload := map[string]string{"status": string(status)}

	return c.do(ctx, http.MethodPut, "/api/updateOrderStatus/"+pathID(orderID), token, payload, nil)
}

// GetPaymentID calls GET /api/getPaymentId/{orderId}
func (c *client) GetPaymentID(ctx context.Context, token string, orderID entity.ID) (entity.ID, error) {
	var body struct {
		PaymentInfo struct {
			PaymentID entity.ID `json:"payment_id"`
		} `json:"paymentInfo"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/getPaymentId/"+pathID(orderID), token, nil, &body); err != nil {
		return "", err
	}
	if body.PaymentInfo.PaymentID.IsZero() {
		return "", domainerrors.ErrNotFound.WithDetails("order has no payment record")
	}

	return body.PaymentInfo.PaymentID, nil
}

// UpdatePaymentStatus calls PUT /api/updatePaymentStatus/{paymentId}
func (c *client) UpdatePaymentStatus(ctx context.Context, token string, paymentID entity.ID, status entity.PaymentStatus) error {
	payload := map[string]string{
		"paymentId": paymentID.String(),
		"status":    string(status),
	}

	return c.do(ctx, http.MethodPut, "/api/updatePaymentStatus/"+pathID(paymentID), token, payload, nil)
}

type ordersResponse struct {
	Orders []*entity.Order `json:"orders"`
}

type menuItemResponse struct {
	Item *entity.MenuItem `json:"item"`
	ID   entity.ID        `json:"id"`
}

func (r menuItemResponse) item(shopID entity.ID, input *entity.MenuItemInput) *entity.MenuItem {
	if r.Item != nil {
		return r.Item
	}

	return &entity.MenuItem{
		ID:          r.ID,
		ShopID:      shopID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}
}

func (c *client) do(ctx context.Context, method, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.WithStack(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

func (c *client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("[API] Request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Any("error", err),
		)

		return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("[API] Backend returned non-success status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)

		return statusError(resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return domainerrors.ErrNetworkFailure.WithDetails("malformed response body: " + err.Error())
	}

	return nil
}

func statusError(status int, detail string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domainerrors.ErrUnauthenticated.WithDetails(detail)
	case status == http.StatusNotFound:
		return domainerrors.ErrNotFound.WithDetails(detail)
	case status >= http.StatusInternalServerError:
		return domainerrors.ErrNetworkFailure.WithDetails(detail)
	default:
		return domainerrors.ErrValidationFailed.WithDetails(detail)
	}
}

// uploadedURL reads data as either a URL string or an object with a url field.
func uploadedURL(data json.RawMessage) (string, error) {
	var direct string
	if err := json.Unmarshal(data, &direct); err == nil && direct != "" {
		return direct, nil
	}

	var wrapped struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.URL != "" {
		return wrapped.URL, nil
	}

	return "", domainerrors.ErrNetworkFailure.WithDetails("upload response has no url")
}

func pathID(id entity.ID) string {
	return url.PathEscape(id.String())
}
