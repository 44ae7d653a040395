package shopservice

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("shop not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shopservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("shopservice client: invalid response")
)
