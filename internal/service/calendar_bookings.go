package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/gorm"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/calendar"
	"github.com/appomat/core/internal/model"
)

// optionalWindow переводит необязательные границы окна в указатели.
func optionalWindow(from, to *timestamppb.Timestamp) (*time.Time, *time.Time) {
	var f, t *time.Time
	if from != nil {
		v := from.AsTime()
		f = &v
	}
	if to != nil {
		v := to.AsTime()
		t = &v
	}
	return f, t
}

// CheckAvailability — необязательная фронтовая проверка перед CreateBooking.
// Ответ может устареть к моменту бронирования, окончательное решение всегда
// за транзакцией CreateBooking.
func (s *CalendarService) CheckAvailability(ctx context.Context, req *calendarpb.CheckAvailabilityRequest) (*calendarpb.CheckAvailabilityResponse, error) {
	slotID, err := parseUUID("slot_id", req.GetSlotId())
	if err != nil {
		return nil, err
	}

	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &calendarpb.CheckAvailabilityResponse{Available: false, Reason: "slot not found"}, nil
		}
		return nil, status.Errorf(codes.Internal, "load slot: %v", err)
	}

	if slot.Status != model.TimeSlotStatusPlanned {
		return &calendarpb.CheckAvailabilityResponse{Available: false, Reason: "slot is not free"}, nil
	}
	if !slot.StartsAt.After(time.Now().UTC()) {
		return &calendarpb.CheckAvailabilityResponse{Available: false, Reason: "slot is in the past"}, nil
	}

	// Пересечение с другими активными бронированиями клиента по времени.
	if raw := req.GetClientId(); raw != "" {
		clientID, err := parseUUID("client_id", raw)
		if err != nil {
			return nil, err
		}
		var conflicts int64
		err = s.db.WithContext(ctx).
			Model(&model.Booking{}).
			Joins("JOIN time_slots ON time_slots.id = bookings.slot_id").
			Where("bookings.client_id = ? AND bookings.status <> ?", clientID, model.BookingStatusCancelled).
			Where("time_slots.starts_at < ? AND time_slots.ends_at > ?", slot.EndsAt, slot.StartsAt).
			Count(&conflicts).Error
		if err != nil {
			return nil, status.Errorf(codes.Internal, "conflict check: %v", err)
		}
		if conflicts > 0 {
			return &calendarpb.CheckAvailabilityResponse{Available: false, Reason: "client has conflicting booking"}, nil
		}
	}

	return &calendarpb.CheckAvailabilityResponse{Available: true}, nil
}

// CreateBooking атомарно занимает свободный слот: захват строки слота,
// проверка статуса, перевод в booked и вставка бронирования в статусе
// pending в одной транзакции. Гонка двух клиентов разрешается либо
// блокировкой строки, либо частичным уникальным индексом бронирований.
func (s *CalendarService) CreateBooking(ctx context.Context, req *calendarpb.CreateBookingRequest) (*calendarpb.CreateBookingResponse, error) {
	clientID, err := parseUUID("client_id", req.GetClientId())
	if err != nil {
		return nil, err
	}
	slotID, err := parseUUID("slot_id", req.GetSlotId())
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.TimeSlot
		if err := lockForUpdate(tx).First(&slot, "id = ?", slotID).Error; err != nil {
			return notFoundOr(err, "slot not found")
		}

		if slot.Status == model.TimeSlotStatusBooked {
			return status.Error(codes.AlreadyExists, "slot is already booked")
		}
		if slot.Status != model.TimeSlotStatusPlanned {
			return status.Error(codes.FailedPrecondition, "slot is not free")
		}
		if !slot.StartsAt.After(time.Now().UTC()) {
			return status.Error(codes.FailedPrecondition, "slot is in the past")
		}

		// Снимок имён для стабильного отображения бронирования.
		var provider model.Provider
		if err := tx.First(&provider, "id = ?", slot.ProviderID).Error; err != nil {
			return notFoundOr(err, "provider not found")
		}
		serviceName := ""
		if slot.ServiceID != nil {
			var svc model.Service
			if err := tx.First(&svc, "id = ?", *slot.ServiceID).Error; err != nil {
				return notFoundOr(err, "service not found")
			}
			serviceName = svc.Name
		}

		// Guarded update: строка меняется, только если слот всё ещё свободен.
		res := tx.Model(&model.TimeSlot{}).
			Where("id = ? AND status = ?", slot.ID, model.TimeSlotStatusPlanned).
			Update("status", model.TimeSlotStatusBooked)
		if res.Error != nil {
			return status.Errorf(codes.Internal, "book slot: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			return status.Error(codes.AlreadyExists, "slot is already booked")
		}

		booking = model.Booking{
			ClientID:     clientID,
			SlotID:       slot.ID,
			ProviderID:   slot.ProviderID,
			ServiceID:    slot.ServiceID,
			ProviderName: provider.DisplayName,
			ServiceName:  serviceName,
			Status:       model.BookingStatusPending,
			Comment:      req.GetComment(),
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return status.Error(codes.AlreadyExists, "slot is already booked")
			}
			return status.Errorf(codes.Internal, "create booking: %v", err)
		}

		booking.Slot = &slot
		return writeEvent(tx, model.EventTypeBookingCreated, &booking.ID, &slot.ID, &slot.ProviderID, "")
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("slot_id", slotID.String()),
		zap.String("client_id", clientID.String()))

	return &calendarpb.CreateBookingResponse{Booking: bookingToPB(&booking)}, nil
}

// ConfirmBooking переводит pending в confirmed. Подтверждение уже
// подтверждённого бронирования идемпотентно.
func (s *CalendarService) ConfirmBooking(ctx context.Context, req *calendarpb.ConfirmBookingRequest) (*calendarpb.ConfirmBookingResponse, error) {
	bookingID, err := parseUUID("booking_id", req.GetBookingId())
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Slot").First(&booking, "id = ?", bookingID).Error; err != nil {
			return notFoundOr(err, "booking not found")
		}

		switch booking.Status {
		case model.BookingStatusConfirmed:
			return nil
		case model.BookingStatusCancelled:
			return status.Error(codes.FailedPrecondition, "booking is cancelled")
		}

		res := tx.Model(&model.Booking{}).
			Where("id = ? AND status = ?", bookingID, model.BookingStatusPending).
			Update("status", model.BookingStatusConfirmed)
		if res.Error != nil {
			return status.Errorf(codes.Internal, "confirm booking: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			return status.Error(codes.FailedPrecondition, "booking is not pending")
		}
		booking.Status = model.BookingStatusConfirmed

		return writeEvent(tx, model.EventTypeBookingConfirmed, &booking.ID, &booking.SlotID, &booking.ProviderID, "")
	})
	if err != nil {
		return nil, err
	}

	return &calendarpb.ConfirmBookingResponse{Booking: bookingToPB(&booking)}, nil
}

// CancelBooking отменяет бронирование и освобождает слот: статус слота
// возвращается в planned, только если он был booked. Повторная отмена
// идемпотентна.
func (s *CalendarService) CancelBooking(ctx context.Context, req *calendarpb.CancelBookingRequest) (*calendarpb.CancelBookingResponse, error) {
	bookingID, err := parseUUID("booking_id", req.GetBookingId())
	if err != nil {
		return nil, err
	}

	var booking model.Booking
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("Slot").First(&booking, "id = ?", bookingID).Error; err != nil {
			return notFoundOr(err, "booking not found")
		}

		if booking.Status == model.BookingStatusCancelled {
			return nil
		}

		now := time.Now().UTC()
		res := tx.Model(&model.Booking{}).
			Where("id = ? AND status <> ?", bookingID, model.BookingStatusCancelled).
			Updates(map[string]any{
				"status":       model.BookingStatusCancelled,
				"cancelled_at": now,
			})
		if res.Error != nil {
			return status.Errorf(codes.Internal, "cancel booking: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}
		booking.Status = model.BookingStatusCancelled
		booking.CancelledAt = &now

		// Слот освобождается только из booked: отменённый слот остаётся
		// отменённым.
		res = tx.Model(&model.TimeSlot{}).
			Where("id = ? AND status = ?", booking.SlotID, model.TimeSlotStatusBooked).
			Update("status", model.TimeSlotStatusPlanned)
		if res.Error != nil {
			return status.Errorf(codes.Internal, "free slot: %v", res.Error)
		}
		if booking.Slot != nil && res.RowsAffected > 0 {
			booking.Slot.Status = model.TimeSlotStatusPlanned
		}

		return writeEvent(tx, model.EventTypeBookingCancelled, &booking.ID, &booking.SlotID, &booking.ProviderID, req.GetReason())
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("reason", req.GetReason()))

	return &calendarpb.CancelBookingResponse{Booking: bookingToPB(&booking)}, nil
}

func (s *CalendarService) GetBooking(ctx context.Context, req *calendarpb.GetBookingRequest) (*calendarpb.GetBookingResponse, error) {
	bookingID, err := parseUUID("booking_id", req.GetBookingId())
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, notFoundOr(err, "booking not found")
	}
	return &calendarpb.GetBookingResponse{Booking: bookingToPB(booking)}, nil
}

func (s *CalendarService) ListBookings(ctx context.Context, req *calendarpb.ListBookingsRequest) (*calendarpb.ListBookingsResponse, error) {
	clientID, err := parseUUID("client_id", req.GetClientId())
	if err != nil {
		return nil, err
	}
	statuses, err := bookingStatusesFromPB(req.GetStatuses())
	if err != nil {
		return nil, err
	}
	from, to := optionalWindow(req.GetFrom(), req.GetTo())
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	bookings, total, err := s.bookings.ListByClient(ctx, clientID, from, to, statuses, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list bookings: %v", err)
	}
	return &calendarpb.ListBookingsResponse{
		Bookings:   bookingsToPB(bookings),
		TotalCount: int32(total),
	}, nil
}

func (s *CalendarService) ListProviderBookings(ctx context.Context, req *calendarpb.ListProviderBookingsRequest) (*calendarpb.ListProviderBookingsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	statuses, err := bookingStatusesFromPB(req.GetStatuses())
	if err != nil {
		return nil, err
	}
	from, to := optionalWindow(req.GetFrom(), req.GetTo())
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	bookings, total, err := s.bookings.ListByProvider(ctx, providerID, from, to, statuses, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list provider bookings: %v", err)
	}
	return &calendarpb.ListProviderBookingsResponse{
		Bookings:   bookingsToPB(bookings),
		TotalCount: int32(total),
	}, nil
}

func bookingsToPB(bookings []model.Booking) []*commonpb.Booking {
	out := make([]*commonpb.Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookingToPB(&bookings[i]))
	}
	return out
}
