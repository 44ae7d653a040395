package billing

import "errors"

var (
	// ErrSubscriptionNotFound возвращается, когда у пользователя нет подписки
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("billing client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("billing client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что BillingService недоступен и следует применить лимиты тарифа starter.
	ErrServiceDegraded = errors.New("billing unavailable: graceful degradation applied")
)
