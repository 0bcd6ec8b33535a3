package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coachwise/CW-RescheduleService/internal/domain"
	"github.com/coachwise/CW-RescheduleService/pkg/metrics"
)

// Client клиент для работы с booking-сервисом
// Транспорт: REST/JSON поверх HTTPS с bearer-токеном сервиса
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics
}

// NewClient создает новый экземпляр клиента booking-сервиса
func NewClient(baseURL, token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SetMetrics подключает сбор метрик запросов к booking-сервису
func (c *Client) SetMetrics(m *metrics.Metrics) {
	c.metrics = m
}

// GetBooking получает бронирование вместе с леджером запросов на перенос
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	path := fmt.Sprintf("/internal/bookings/%d", bookingID)

	var model BookingModel
	if err := c.do(ctx, "get_booking", http.MethodGet, path, nil, "", &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// CheckRescheduleEligibility проверяет право на перенос бронирования.
// Отрицательный ответ с кодом причины - ожидаемый исход, не ошибка
func (c *Client) CheckRescheduleEligibility(ctx context.Context, bookingID int64) (*domain.EligibilityResult, error) {
	path := fmt.Sprintf("/internal/bookings/%d/reschedule-eligibility", bookingID)

	var model EligibilityModel
	if err := c.do(ctx, "check_eligibility", http.MethodGet, path, nil, "", &model); err != nil {
		return nil, err
	}
	return &domain.EligibilityResult{
		CanReschedule: model.CanReschedule,
		ReasonCode:    model.ReasonCode,
	}, nil
}

// GetCoachAvailability получает availability-окна коуча для подбора слотов переноса
func (c *Client) GetCoachAvailability(ctx context.Context, req AvailabilityRequest) ([]domain.Slot, error) {
	query := url.Values{}
	query.Set("bookingId", strconv.FormatInt(req.BookingID, 10))
	query.Set("start", req.Start.Format(time.RFC3339))
	query.Set("end", req.End.Format(time.RFC3339))
	query.Set("month", strconv.Itoa(req.Month))
	query.Set("year", strconv.Itoa(req.Year))
	path := fmt.Sprintf("/internal/coaches/%d/reschedule-availability?%s", req.CoachID, query.Encode())

	var models []SlotModel
	if err := c.do(ctx, "get_availability", http.MethodGet, path, nil, "", &models); err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, len(models))
	for i, m := range models {
		slots[i] = m.ToDomain()
	}
	return slots, nil
}

// RequestRescheduleByClient отправляет первичное предложение переноса от клиента
func (c *Client) RequestRescheduleByClient(ctx context.Context, bookingID int64, req ClientRescheduleRequest, idempotencyKey string) (*domain.RescheduleRequest, error) {
	path := fmt.Sprintf("/internal/bookings/%d/reschedule-requests/client", bookingID)

	var model RescheduleRequestModel
	if err := c.do(ctx, "request_reschedule_client", http.MethodPost, path, req, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ProposeRescheduleByCoach отправляет первичное предложение переноса от коуча
func (c *Client) ProposeRescheduleByCoach(ctx context.Context, bookingID int64, req CoachRescheduleProposal, idempotencyKey string) (*domain.RescheduleRequest, error) {
	path := fmt.Sprintf("/internal/bookings/%d/reschedule-requests/coach", bookingID)

	var model RescheduleRequestModel
	if err := c.do(ctx, "propose_reschedule_coach", http.MethodPost, path, req, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// RespondToRescheduleRequestByCoach отправляет ответ коуча на предложение клиента
func (c *Client) RespondToRescheduleRequestByCoach(ctx context.Context, bookingID int64, req CoachRescheduleResponse, idempotencyKey string) (*domain.Booking, error) {
	path := fmt.Sprintf("/internal/bookings/%d/reschedule-requests/%d/response/coach", bookingID, req.RequestID)

	var model BookingModel
	if err := c.do(ctx, "respond_reschedule_coach", http.MethodPost, path, req, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// RespondToRescheduleRequestByClient отправляет ответ клиента на предложение коуча
func (c *Client) RespondToRescheduleRequestByClient(ctx context.Context, bookingID int64, req ClientRescheduleResponse, idempotencyKey string) (*domain.Booking, error) {
	path := fmt.Sprintf("/internal/bookings/%d/reschedule-requests/%d/response/client", bookingID, req.RequestID)

	var model BookingModel
	if err := c.do(ctx, "respond_reschedule_client", http.MethodPost, path, req, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// AcceptBooking подтверждает запрошенное бронирование от имени коуча
func (c *Client) AcceptBooking(ctx context.Context, bookingID int64, idempotencyKey string) (*domain.Booking, error) {
	path := fmt.Sprintf("/internal/bookings/%d/accept", bookingID)

	var model BookingModel
	if err := c.do(ctx, "accept_booking", http.MethodPost, path, nil, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeclineBooking отклоняет запрошенное бронирование от имени коуча
func (c *Client) DeclineBooking(ctx context.Context, bookingID int64, reason string, idempotencyKey string) (*domain.Booking, error) {
	path := fmt.Sprintf("/internal/bookings/%d/decline", bookingID)

	var model BookingModel
	if err := c.do(ctx, "decline_booking", http.MethodPost, path, DeclineBookingRequest{Reason: reason}, idempotencyKey, &model); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListNotifications получает уведомления пользователя
func (c *Client) ListNotifications(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	path := fmt.Sprintf("/internal/users/%d/notifications", userID)

	var models []NotificationModel
	if err := c.do(ctx, "list_notifications", http.MethodGet, path, nil, "", &models); err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, len(models))
	for i := range models {
		notifications[i] = models[i].ToDomain()
	}
	return notifications, nil
}

// do выполняет HTTP-запрос и декодирует ответ в dst
// Маппинг статус-кодов на sentinel-ошибки единый для всех операций
func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, idempotencyKey string, dst interface{}) error {
	start := time.Now()
	err := c.send(ctx, method, path, body, idempotencyKey, dst)
	if c.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.metrics.UpstreamRequestsTotal.WithLabelValues(op, outcome).Inc()
		c.metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
	return err
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, idempotencyKey string, dst interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if idempotencyKey != "" {
		// Ключ идемпотентности генерируется заново на каждую отправку действия,
		// защита от дублей при двойном сабмите
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusForbidden:
		return ErrAccessDenied
	case resp.StatusCode == http.StatusNotFound:
		return ErrBookingNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrRequestSuperseded
	case resp.StatusCode >= 500:
		responseBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrServiceUnavailable, resp.StatusCode, string(responseBody))
	default:
		responseBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(responseBody))
	}

	if dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
