package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
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

func (s *CalendarService) CreateSlot(ctx context.Context, req *calendarpb.CreateSlotRequest) (*calendarpb.CreateSlotResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	serviceID, err := parseOptionalUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}
	start, end, err := rangeFromPB(req.GetRange())
	if err != nil {
		return nil, err
	}
	if !start.After(time.Now().UTC()) {
		return nil, status.Error(codes.InvalidArgument, "range: start must be in the future")
	}

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		return nil, notFoundOr(err, "provider not found")
	}
	if serviceID != nil {
		if _, err := s.services.GetByID(ctx, *serviceID); err != nil {
			return nil, notFoundOr(err, "service not found")
		}
	}

	if s.cfg.RejectOverlappingSlots {
		overlap, err := s.slots.HasOverlapping(ctx, providerID, start, end, nil)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "overlap check: %v", err)
		}
		if overlap {
			return nil, status.Error(codes.FailedPrecondition, "slot overlaps an existing slot")
		}
	}

	slot := model.TimeSlot{
		ProviderID: providerID,
		ServiceID:  serviceID,
		StartsAt:   start.UTC(),
		EndsAt:     end.UTC(),
		Status:     model.TimeSlotStatusPlanned,
	}
	if err := s.slots.Create(ctx, &slot); err != nil {
		// Частичный уникальный индекс по (provider_id, starts_at).
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, status.Error(codes.AlreadyExists, "slot with this start already exists")
		}
		return nil, status.Errorf(codes.Internal, "create slot: %v", err)
	}

	s.log.Info("slot created",
		zap.String("slot_id", slot.ID.String()),
		zap.String("provider_id", providerID.String()),
		zap.Time("starts_at", slot.StartsAt))

	return &calendarpb.CreateSlotResponse{Slot: slotToPB(&slot)}, nil
}

func (s *CalendarService) UpdateSlot(ctx context.Context, req *calendarpb.UpdateSlotRequest) (*calendarpb.UpdateSlotResponse, error) {
	slotID, err := parseUUID("slot_id", req.GetSlotId())
	if err != nil {
		return nil, err
	}

	var updated model.TimeSlot
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.TimeSlot
		if err := lockForUpdate(tx).First(&slot, "id = ?", slotID).Error; err != nil {
			return notFoundOr(err, "slot not found")
		}
		if slot.Status == model.TimeSlotStatusCancelled {
			return status.Error(codes.FailedPrecondition, "slot is cancelled")
		}

		// У слота с активным бронированием время и услугу не трогаем.
		if slot.Status == model.TimeSlotStatusBooked {
			if req.GetRange() != nil || req.GetServiceId() != "" {
				return status.Error(codes.FailedPrecondition, "slot has an active booking")
			}
		}

		if req.GetRange() != nil {
			start, end, err := rangeFromPB(req.GetRange())
			if err != nil {
				return err
			}
			slot.StartsAt = start.UTC()
			slot.EndsAt = end.UTC()
		}
		if raw := req.GetServiceId(); raw != "" {
			sid, err := parseUUID("service_id", raw)
			if err != nil {
				return err
			}
			if err := tx.First(&model.Service{}, "id = ?", sid).Error; err != nil {
				return notFoundOr(err, "service not found")
			}
			slot.ServiceID = &sid
		}

		// Статус через UpdateSlot меняется только на CANCELLED; занятие
		// слота идёт исключительно транзакцией бронирования.
		switch req.GetStatus() {
		case commonpb.SlotStatus_SLOT_STATUS_UNSPECIFIED:
		case commonpb.SlotStatus_SLOT_STATUS_CANCELLED:
			// Как и в DeleteSlot: слот с активным бронированием не
			// отменяется, сначала отменяется бронирование.
			var active int64
			err := tx.Model(&model.Booking{}).
				Where("slot_id = ? AND status <> ?", slotID, model.BookingStatusCancelled).
				Count(&active).Error
			if err != nil {
				return status.Errorf(codes.Internal, "booking check: %v", err)
			}
			if active > 0 {
				return status.Error(codes.FailedPrecondition, "slot has an active booking")
			}
			slot.Status = model.TimeSlotStatusCancelled
		case commonpb.SlotStatus_SLOT_STATUS_FREE:
			if slot.Status != model.TimeSlotStatusPlanned {
				return status.Error(codes.FailedPrecondition, "slot cannot be made free directly")
			}
		default:
			return status.Error(codes.InvalidArgument, "status: only CANCELLED can be set explicitly")
		}

		if err := tx.Save(&slot).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return status.Error(codes.AlreadyExists, "slot with this start already exists")
			}
			return status.Errorf(codes.Internal, "update slot: %v", err)
		}
		updated = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &calendarpb.UpdateSlotResponse{Slot: slotToPB(&updated)}, nil
}

// DeleteSlot переводит слот в терминальный статус cancelled. Слот с активным
// бронированием удалить нельзя, сначала отменяется бронирование.
func (s *CalendarService) DeleteSlot(ctx context.Context, req *calendarpb.DeleteSlotRequest) (*calendarpb.DeleteSlotResponse, error) {
	slotID, err := parseUUID("slot_id", req.GetSlotId())
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot model.TimeSlot
		if err := lockForUpdate(tx).First(&slot, "id = ?", slotID).Error; err != nil {
			return notFoundOr(err, "slot not found")
		}
		if slot.Status == model.TimeSlotStatusCancelled {
			// Идемпотентно.
			return nil
		}

		var active int64
		err := tx.Model(&model.Booking{}).
			Where("slot_id = ? AND status <> ?", slotID, model.BookingStatusCancelled).
			Count(&active).Error
		if err != nil {
			return status.Errorf(codes.Internal, "booking check: %v", err)
		}
		if active > 0 {
			return status.Error(codes.FailedPrecondition, "slot has an active booking")
		}

		res := tx.Model(&model.TimeSlot{}).
			Where("id = ? AND status <> ?", slotID, model.TimeSlotStatusCancelled).
			Update("status", model.TimeSlotStatusCancelled)
		if res.Error != nil {
			return status.Errorf(codes.Internal, "delete slot: %v", res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &calendarpb.DeleteSlotResponse{}, nil
}

// Выдача свободных слотов не заглядывает в прошлое: нижняя граница окна
// поднимается до текущего момента, даже если клиент прислал более раннюю.
func clampWindowStart(from time.Time) time.Time {
	if now := time.Now().UTC(); from.Before(now) {
		return now
	}
	return from
}

// FindFreeSlots — лёгкая выборка свободных слотов без пагинации, с
// ограничением количества. Всегда читает актуальное состояние БД.
func (s *CalendarService) FindFreeSlots(ctx context.Context, req *calendarpb.FindFreeSlotsRequest) (*calendarpb.FindFreeSlotsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	serviceID, err := parseOptionalUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}
	from, to, err := windowFromPB(req.GetStart(), req.GetEnd())
	if err != nil {
		return nil, err
	}

	from = clampWindowStart(from)

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultPageSize
	}

	slots, _, err := s.slots.ListFreeSlots(ctx, providerID, serviceID, from, to, limit, 0)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "find free slots: %v", err)
	}

	out := make([]*commonpb.Slot, 0, len(slots))
	for i := range slots {
		out = append(out, slotToPB(&slots[i]))
	}
	return &calendarpb.FindFreeSlotsResponse{Slots: out}, nil
}

func (s *CalendarService) ListFreeSlots(ctx context.Context, req *calendarpb.ListFreeSlotsRequest) (*calendarpb.ListFreeSlotsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	serviceID, err := parseOptionalUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}
	from, to, err := windowFromPB(req.GetStart(), req.GetEnd())
	if err != nil {
		return nil, err
	}
	from = clampWindowStart(from)
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	slots, total, err := s.slots.ListFreeSlots(ctx, providerID, serviceID, from, to, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list free slots: %v", err)
	}

	out := make([]*commonpb.Slot, 0, len(slots))
	for i := range slots {
		out = append(out, slotToPB(&slots[i]))
	}
	return &calendarpb.ListFreeSlotsResponse{Slots: out, TotalCount: int32(total)}, nil
}

func (s *CalendarService) ListProviderSlots(ctx context.Context, req *calendarpb.ListProviderSlotsRequest) (*calendarpb.ListProviderSlotsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	from, to, err := windowFromPB(req.GetFrom(), req.GetTo())
	if err != nil {
		return nil, err
	}
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	items, total, err := s.slots.ListByProviderRange(ctx, providerID, from, to, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list provider slots: %v", err)
	}

	out := make([]*calendarpb.SlotWithBooking, 0, len(items))
	for i := range items {
		item := &calendarpb.SlotWithBooking{Slot: slotToPB(&items[i].Slot)}
		if req.GetIncludeBookings() && items[i].Booking != nil {
			b := items[i].Booking
			b.Slot = &items[i].Slot
			item.Booking = bookingToPB(b)
		}
		out = append(out, item)
	}
	return &calendarpb.ListProviderSlotsResponse{Slots: out, TotalCount: int32(total)}, nil
}

// CreateWeekSlots разворачивает недельный шаблон в слоты. Операция
// best-effort: конфликтные моменты попадают в failures, остальные слоты
// создаются. Каждый слот в своей транзакции, чтобы один дубль не откатывал
// всю пачку.
func (s *CalendarService) CreateWeekSlots(ctx context.Context, req *calendarpb.CreateWeekSlotsRequest) (*calendarpb.CreateWeekSlotsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	serviceID, err := parseOptionalUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}
	if req.GetDateFrom() == nil || req.GetDateTo() == nil {
		return nil, status.Error(codes.InvalidArgument, "date_from and date_to are required")
	}
	if req.GetDurationMin() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "duration_min must be positive")
	}

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		return nil, notFoundOr(err, "provider not found")
	}
	if serviceID != nil {
		if _, err := s.services.GetByID(ctx, *serviceID); err != nil {
			return nil, notFoundOr(err, "service not found")
		}
	}

	weekdays := make([]int, 0, len(req.GetWeekdays()))
	for _, d := range req.GetWeekdays() {
		weekdays = append(weekdays, int(d))
	}

	tpl := calendar.WeekTemplate{
		Weekdays:    weekdays,
		Times:       req.GetTimes(),
		DateFrom:    req.GetDateFrom().AsTime(),
		DateTo:      req.GetDateTo().AsTime(),
		Duration:    time.Duration(req.GetDurationMin()) * time.Minute,
		TZOffsetMin: int(req.GetTzOffsetMin()),
	}
	ranges, err := calendar.ExpandWeekTemplate(tpl)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "week template: %v", err)
	}

	created, failures := s.createSlotBatch(ctx, providerID, serviceID, nil, ranges)

	s.log.Info("week slots created",
		zap.String("provider_id", providerID.String()),
		zap.Int("created", len(created)),
		zap.Int("failed", len(failures)))

	return &calendarpb.CreateWeekSlotsResponse{Slots: created, Failures: failures}, nil
}

// createSlotBatch создаёт слоты по интервалам, собирая конфликты в failures.
func (s *CalendarService) createSlotBatch(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID, scheduleID *uuid.UUID,
	ranges []calendar.TimeRange,
) ([]*commonpb.Slot, []*calendarpb.SlotFailure) {
	created := make([]*commonpb.Slot, 0, len(ranges))
	var failures []*calendarpb.SlotFailure

	for _, r := range ranges {
		if s.cfg.RejectOverlappingSlots {
			overlap, err := s.slots.HasOverlapping(ctx, providerID, r.Start, r.End, nil)
			if err != nil {
				failures = append(failures, slotFailure(r.Start, err.Error()))
				continue
			}
			if overlap {
				failures = append(failures, slotFailure(r.Start, "overlaps an existing slot"))
				continue
			}
		}

		slot := model.TimeSlot{
			ProviderID: providerID,
			ServiceID:  serviceID,
			ScheduleID: scheduleID,
			StartsAt:   r.Start.UTC(),
			EndsAt:     r.End.UTC(),
			Status:     model.TimeSlotStatusPlanned,
		}
		if err := s.slots.Create(ctx, &slot); err != nil {
			reason := fmt.Sprintf("create: %v", err)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				reason = "slot with this start already exists"
			}
			failures = append(failures, slotFailure(r.Start, reason))
			continue
		}
		created = append(created, slotToPB(&slot))
	}
	return created, failures
}

func slotFailure(startsAt time.Time, reason string) *calendarpb.SlotFailure {
	return &calendarpb.SlotFailure{
		StartsAt: timestamppb.New(startsAt),
		Reason:   reason,
	}
}

// BulkCancelProviderSlots отменяет все неотменённые слоты провайдера в окне
// одной транзакцией вместе с их активными бронированиями. Ответ перечисляет
// задетые бронирования, уведомления — забота вызывающей стороны.
func (s *CalendarService) BulkCancelProviderSlots(ctx context.Context, req *calendarpb.BulkCancelProviderSlotsRequest) (*calendarpb.BulkCancelProviderSlotsResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	from, to, err := windowFromPB(req.GetStart(), req.GetEnd())
	if err != nil {
		return nil, err
	}

	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		return nil, notFoundOr(err, "provider not found")
	}

	var (
		cancelledSlots int64
		affected       []*calendarpb.AffectedBooking
	)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slots []model.TimeSlot
		err := lockForUpdate(tx).
			Where("provider_id = ?", providerID).
			Where("starts_at >= ? AND starts_at < ?", from, to).
			Where("status <> ?", model.TimeSlotStatusCancelled).
			Find(&slots).Error
		if err != nil {
			return status.Errorf(codes.Internal, "load slots: %v", err)
		}
		if len(slots) == 0 {
			return nil
		}

		slotIDs := make([]uuid.UUID, 0, len(slots))
		slotByID := make(map[uuid.UUID]*model.TimeSlot, len(slots))
		for i := range slots {
			slotIDs = append(slotIDs, slots[i].ID)
			slotByID[slots[i].ID] = &slots[i]
		}

		var bookings []model.Booking
		err = tx.Where("slot_id IN ? AND status <> ?", slotIDs, model.BookingStatusCancelled).
			Find(&bookings).Error
		if err != nil {
			return status.Errorf(codes.Internal, "load bookings: %v", err)
		}

		now := time.Now().UTC()
		for i := range bookings {
			b := &bookings[i]
			res := tx.Model(&model.Booking{}).
				Where("id = ? AND status <> ?", b.ID, model.BookingStatusCancelled).
				Updates(map[string]any{
					"status":       model.BookingStatusCancelled,
					"cancelled_at": now,
				})
			if res.Error != nil {
				return status.Errorf(codes.Internal, "cancel booking: %v", res.Error)
			}
			if err := writeEvent(tx, model.EventTypeBookingCancelled, &b.ID, &b.SlotID, &providerID, req.GetReason()); err != nil {
				return status.Errorf(codes.Internal, "%v", err)
			}

			slot := slotByID[b.SlotID]
			affected = append(affected, &calendarpb.AffectedBooking{
				BookingId:  b.ID.String(),
				SlotId:     b.SlotID.String(),
				ClientId:   b.ClientID.String(),
				ProviderId: providerID.String(),
				ServiceId:  optionalUUIDString(b.ServiceID),
				StartsAt:   timestamppb.New(slot.StartsAt),
				EndsAt:     timestamppb.New(slot.EndsAt),
			})
		}

		res := tx.Model(&model.TimeSlot{}).
			Where("id IN ?", slotIDs).
			Update("status", model.TimeSlotStatusCancelled)
		if res.Error != nil {
			return status.Errorf(codes.Internal, "cancel slots: %v", res.Error)
		}
		cancelledSlots = res.RowsAffected

		return writeEvent(tx, model.EventTypeSlotsBulkCancelled, nil, nil, &providerID,
			fmt.Sprintf("cancelled %d slots, %d bookings: %s", cancelledSlots, len(affected), req.GetReason()))
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("provider slots bulk cancelled",
		zap.String("provider_id", providerID.String()),
		zap.Int64("slots", cancelledSlots),
		zap.Int("bookings", len(affected)))

	return &calendarpb.BulkCancelProviderSlotsResponse{
		CancelledSlots:    int32(cancelledSlots),
		CancelledBookings: int32(len(affected)),
		AffectedBookings:  affected,
	}, nil
}

func windowFromPB(start, end *timestamppb.Timestamp) (time.Time, time.Time, error) {
	if start == nil || end == nil {
		return time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "start and end are required")
	}
	from := start.AsTime()
	to := end.AsTime()
	if !to.After(from) {
		return time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "end must be after start")
	}
	return from, to, nil
}

func optionalUUIDString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
