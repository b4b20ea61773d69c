package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/lifecycle"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "marketplace"

	maxResponseBytes = 1 << 20
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Actions - доступные пользователю переходы из текущего статуса.
type Actions struct {
	Status string
	Role   entities.ActorRole
	Next   []string
}

// Gateway - REST клиент сервиса заказов. Все запросы идут с access токеном сессии;
// на 401 сессия обновляется ровно один раз и запрос повторяется. Повторы с backoff только для чтения.
type Gateway struct {
	baseURL string
	client  httpDoer
	session *Session
	retrier retrier

	refreshMu sync.Mutex
}

func New(baseURL string, client httpDoer, session *Session) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		session: session,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Session() *Session {
	return g.session
}

func (g *Gateway) CreateOrder(ctx context.Context, create entities.OrderCreate) (*entities.Order, error) {
	request := dto.OrderCreateRequest{
		SellerID:        create.SellerID,
		ProductID:       create.ProductID,
		Quantity:        create.Quantity,
		Price:           create.Price,
		Currency:        create.Currency,
		DeliveryAddress: create.DeliveryAddress,
		Notes:           create.Notes,
	}

	var resp dto.Order
	err := g.call(ctx, http.MethodPost, "CreateOrder", "/orders", request, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToOrder(&resp), nil
}

func (g *Gateway) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	var resp dto.Order
	err := g.call(ctx, http.MethodGet, "GetOrder", "/orders/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToOrder(&resp), nil
}

func (g *Gateway) OrderActions(ctx context.Context, id string) (*Actions, error) {
	var resp dto.ActionsResponse
	err := g.call(ctx, http.MethodGet, "OrderActions", "/orders/"+url.PathEscape(id)+"/actions", nil, &resp)
	if err != nil {
		return nil, err
	}
	return toActions(resp), nil
}

func (g *Gateway) TransitionOrder(
	ctx context.Context,
	id string,
	status entities.OrderStatusType,
	trackingNumber *string,
) (*entities.Order, error) {
	request := dto.OrderStatusRequest{
		Status:         status.String(),
		TrackingNumber: trackingNumber,
	}

	var resp dto.Order
	err := g.call(ctx, http.MethodPatch, "TransitionOrder", "/orders/"+url.PathEscape(id)+"/status", request, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToOrder(&resp), nil
}

func (g *Gateway) CancelOrder(ctx context.Context, id string) (*entities.Order, error) {
	var resp dto.Order
	err := g.call(ctx, http.MethodPost, "CancelOrder", "/orders/"+url.PathEscape(id)+"/cancel", nil, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToOrder(&resp), nil
}

func (g *Gateway) CreateCustomOrder(ctx context.Context, create entities.CustomOrderCreate) (*entities.CustomOrder, error) {
	request := dto.CustomOrderCreateRequest{
		SellerID:         create.SellerID,
		Title:            create.Title,
		Description:      create.Description,
		Photos:           create.Photos,
		MaxPrice:         create.MaxPrice,
		Currency:         create.Currency,
		DeliveryDeadline: create.DeliveryDeadline,
		IsASAP:           create.IsASAP,
	}

	var resp dto.CustomOrder
	err := g.call(ctx, http.MethodPost, "CreateCustomOrder", "/custom-orders", request, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomOrder(&resp), nil
}

// GetCustomOrder возвращает запрос и статус для отображения (EXPIRED вычисляется сервером).
func (g *Gateway) GetCustomOrder(ctx context.Context, id string) (*entities.CustomOrder, entities.CustomOrderStatusType, error) {
	var resp dto.CustomOrder
	err := g.call(ctx, http.MethodGet, "GetCustomOrder", "/custom-orders/"+url.PathEscape(id), nil, &resp)
	if err != nil {
		return nil, "", err
	}
	return dto.ToCustomOrder(&resp), entities.CustomOrderStatusType(resp.ViewStatus), nil
}

func (g *Gateway) CustomOrderActions(ctx context.Context, id string) (*Actions, error) {
	var resp dto.ActionsResponse
	err := g.call(ctx, http.MethodGet, "CustomOrderActions", "/custom-orders/"+url.PathEscape(id)+"/actions", nil, &resp)
	if err != nil {
		return nil, err
	}
	return toActions(resp), nil
}

func (g *Gateway) TransitionCustomOrder(
	ctx context.Context,
	id string,
	status entities.CustomOrderStatusType,
	payload lifecycle.Payload,
) (*entities.CustomOrder, error) {
	request := dto.CustomOrderStatusRequest{
		Status:          status.String(),
		Message:         payload.Message,
		FinalPrice:      payload.FinalPrice,
		DeliveryAddress: payload.DeliveryAddress,
		Notes:           payload.Notes,
	}

	var resp dto.CustomOrder
	path := "/custom-orders/" + url.PathEscape(id) + "/status"
	err := g.call(ctx, http.MethodPatch, "TransitionCustomOrder", path, request, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToCustomOrder(&resp), nil
}

func (g *Gateway) CreateReview(ctx context.Context, create entities.ReviewCreate) (*entities.Review, error) {
	request := dto.ReviewCreateRequest{
		OrderID:             create.OrderID,
		RevieweeID:          create.RevieweeID,
		OverallRating:       create.OverallRating,
		CommunicationRating: create.CommunicationRating,
		TimelinessRating:    create.TimelinessRating,
		Comment:             create.Comment,
	}

	var resp dto.Review
	err := g.call(ctx, http.MethodPost, "CreateReview", "/reviews", request, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToReview(&resp), nil
}

func (g *Gateway) Notifications(ctx context.Context, limit int) ([]entities.Notification, error) {
	path := "/notifications"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var resp dto.NotificationList
	err := g.call(ctx, http.MethodGet, "Notifications", path, nil, &resp)
	if err != nil {
		return nil, err
	}
	return dto.ToNotifications(&resp), nil
}

func (g *Gateway) call(ctx context.Context, method, name, path string, in, out any) error {
	var attempt uint64
	start := time.Now()

	operation := func(ctx context.Context) error {
		attempt++
		return g.authorized(ctx, method, path, in, out)
	}

	var err error
	if method == http.MethodGet {
		err = g.retrier.ExecuteWithContext(ctx, operation)
	} else {
		// Переходы не повторяются автоматически: решение о повторе принимает пользователь.
		err = operation(ctx)
	}

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, name, status).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, name, status).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway marketplace, %s: %w", name, err)
	}
	return nil
}

func (g *Gateway) authorized(ctx context.Context, method, path string, in, out any) error {
	accessToken, ok := g.session.accessToken()
	if !ok {
		return ErrUnauthenticated
	}

	status, body, err := g.send(ctx, method, path, in, accessToken)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		err = g.refresh(ctx, accessToken)
		if err != nil {
			return err
		}

		accessToken, ok = g.session.accessToken()
		if !ok {
			return ErrUnauthenticated
		}

		status, body, err = g.send(ctx, method, path, in, accessToken)
		if err != nil {
			return err
		}
		if status == http.StatusUnauthorized {
			g.session.Clear()
			return ErrUnauthenticated
		}
	}

	return decode(status, body, out)
}

// refresh обменивает refresh токен на новую пару. Если пока ждали мьютекс сессию уже обновил
// параллельный запрос, повторный обмен не нужен: refresh токен одноразовый.
func (g *Gateway) refresh(ctx context.Context, rejectedAccess string) error {
	g.refreshMu.Lock()
	defer g.refreshMu.Unlock()

	current, ok := g.session.accessToken()
	if ok && current != rejectedAccess {
		return nil
	}

	refreshToken, ok := g.session.refreshToken()
	if !ok {
		g.session.Clear()
		GatewaySessionRefreshTotal.WithLabelValues(serviceName, "no_token").Inc()
		return ErrUnauthenticated
	}

	status, body, err := g.send(ctx, http.MethodPost, "/auth/refresh", dto.RefreshRequest{RefreshToken: refreshToken}, "")
	if err != nil {
		GatewaySessionRefreshTotal.WithLabelValues(serviceName, "error").Inc()
		return fmt.Errorf("refresh session: %w", err)
	}
	if status == http.StatusUnauthorized {
		g.session.Clear()
		GatewaySessionRefreshTotal.WithLabelValues(serviceName, "rejected").Inc()
		return ErrUnauthenticated
	}

	var pair dto.TokenPair
	err = decode(status, body, &pair)
	if err != nil {
		GatewaySessionRefreshTotal.WithLabelValues(serviceName, "error").Inc()
		return fmt.Errorf("refresh session: %w", err)
	}

	g.session.Set(*dto.ToTokenPair(&pair))
	GatewaySessionRefreshTotal.WithLabelValues(serviceName, "ok").Inc()
	return nil
}

func (g *Gateway) send(ctx context.Context, method, path string, in any, accessToken string) (int, []byte, error) {
	var body io.Reader = http.NoBody
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

func decode(status int, body []byte, out any) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	rejected := &RejectedError{Status: status}
	var apiErr dto.Error
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		rejected.Code = apiErr.Code
		rejected.Message = apiErr.Message
	} else {
		rejected.Message = strings.TrimSpace(string(body))
	}

	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		return &retryableStatusError{status: status, err: rejected}
	}
	return rejected
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *retryableStatusError
	if errors.As(err, &statusErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	if errors.Is(err, ErrUnauthenticated) {
		return strconv.Itoa(http.StatusUnauthorized)
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return strconv.Itoa(rejected.Status)
	}
	return "NETWORK"
}

func toActions(resp dto.ActionsResponse) *Actions {
	return &Actions{
		Status: resp.Status,
		Role:   entities.ActorRole(resp.Role),
		Next:   resp.Actions,
	}
}
