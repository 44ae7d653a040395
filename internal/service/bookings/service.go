package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BB-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BB-BookingService/internal/infra/storage/booking"
	shopClient "github.com/m04kA/BB-BookingService/internal/integrations/shopservice"
	"github.com/m04kA/BB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	shopClient  ShopServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	shopClient ShopServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		shopClient:  shopClient,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он владелец барбершопа
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу; без фильтра отменённые записи скрываются
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetShopBookings получает бронирования барбершопа с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей
// Доступно только владельцу барбершопа
//
// Примеры использования:
// - Все активные бронирования: GetShopBookings(ctx, &GetShopBookingsRequest{ShopID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetShopBookings(ctx context.Context, req *models.GetShopBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetShopBookings: fetching bookings for shop=%d, user=%d", req.ShopID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа владельца
	if err := s.checkOwnerAccess(ctx, req.ShopID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetShopBookings: invalid filter for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByShopWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetShopBookings: repository error for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: GetShopBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetShopBookings: successfully fetched %d bookings for shop=%d", len(bookings), req.ShopID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отменить может клиент своё бронирование или владелец барбершопа
// Отмена - мягкое удаление: запись получает статус cancelled и остаётся в истории
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	// Отменить можно только pending или confirmed бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status=%s cannot be cancelled", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancel", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только владельцу барбершопа
// Допустимые переходы: pending -> confirmed, pending -> completed, confirmed -> completed
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d", bookingID, req.Status, req.UserID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return ErrInvalidStatus
	}

	// Отмена идёт отдельной операцией со своими правилами
	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation of booking id=%d must go through Cancel", bookingID)
		return ErrInvalidTransition
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Статусами управляет владелец барбершопа
	if err := s.checkOwnerAccess(ctx, booking.ShopID, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d", booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Rate выставляет оценку завершённому бронированию
// Оценить может только клиент своё бронирование; повторная оценка перезаписывает прежнюю
func (s *Service) Rate(ctx context.Context, bookingID int64, req *models.RateBookingRequest) error {
	s.logger.Info("Rate: rating booking id=%d with %d by user=%d", bookingID, req.Rating, req.UserID)

	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		s.logger.Warn("Rate: rating %d out of range for booking id=%d", req.Rating, bookingID)
		return ErrInvalidRating
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Rate: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Rate: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Rate - repository error: %v", ErrInternal, err)
	}

	// Оценку ставит только клиент, создавший бронирование
	if booking.CustomerID != req.UserID {
		s.logger.Warn("Rate: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeRated() {
		s.logger.Warn("Rate: booking id=%d in status=%s cannot be rated", bookingID, booking.Status)
		return ErrCannotRate
	}

	if err := s.bookingRepo.UpdateRating(ctx, bookingID, req.Rating); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Rate: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Rate: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Rate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Rate: successfully rated booking id=%d with %d", bookingID, req.Rating)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он владелец барбершопа
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.CustomerID == userID {
		return nil
	}

	// Проверяем, является ли пользователь владельцем барбершопа
	if err := s.checkOwnerAccess(ctx, booking.ShopID, userID); err != nil {
		// Ошибка уже залогирована в checkOwnerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOwnerAccess проверяет, что пользователь является владельцем барбершопа
func (s *Service) checkOwnerAccess(ctx context.Context, shopID int64, userID int64) error {
	// Получаем барбершоп через ShopService
	shop, err := s.shopClient.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			s.logger.Warn("checkOwnerAccess: shop id=%d not found", shopID)
			return ErrShopNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get shop id=%d: %v", shopID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get shop: %v", ErrInternal, err)
	}

	if shop.OwnerUserID != userID {
		s.logger.Warn("checkOwnerAccess: user=%d is not the owner of shop=%d", userID, shopID)
		return ErrAccessDenied
	}

	s.logger.Info("checkOwnerAccess: user=%d is owner of shop=%d", userID, shopID)
	return nil
}
