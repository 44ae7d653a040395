package get_available_slots

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("get_available_slots: shop not found")

	// ErrInvalidServiceSelection возвращается, когда выбранные услуги
	// неизвестны или неактивны в каталоге барбершопа
	ErrInvalidServiceSelection = errors.New("get_available_slots: invalid service selection")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
