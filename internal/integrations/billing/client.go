package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с BillingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента BillingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSubscription получает подписку пользователя.
// Возвращает ErrSubscriptionNotFound, если подписки нет — вызывающая
// сторона в этом случае применяет лимиты тарифа starter.
func (c *Client) GetSubscription(ctx context.Context, userID int64) (*Subscription, error) {
	url := fmt.Sprintf("%s/internal/users/%d/subscription", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrSubscriptionNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var sub Subscription
	if err := json.NewDecoder(resp.Body).Decode(&sub); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &sub, nil
}

// GetSubscriptionWithGracefulDegradation получает подписку пользователя с graceful degradation.
// Отсутствие подписки — штатная бизнес-ситуация, пробрасывается как ErrSubscriptionNotFound.
// При недоступности BillingService возвращается ErrServiceDegraded: вызывающая сторона
// применяет лимиты тарифа starter вместо отказа в обслуживании.
func (c *Client) GetSubscriptionWithGracefulDegradation(ctx context.Context, userID int64) (*Subscription, error) {
	sub, err := c.GetSubscription(ctx, userID)
	if err != nil {
		if err == ErrSubscriptionNotFound {
			c.log.Info("No subscription found for user_id=%d", userID)
			return nil, err
		}

		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("BillingService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched subscription for user_id=%d, plan=%s, status=%s", userID, sub.PlanType, sub.Status)
	return sub, nil
}
