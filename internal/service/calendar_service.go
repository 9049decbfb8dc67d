package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/config"
	"github.com/appomat/core/internal/model"
	"github.com/appomat/core/internal/repository"
)

const defaultPageSize = 20

// CalendarService реализует gRPC-интерфейс календарного ядра.
//
// Репозитории служат путям чтения; мутации с инвариантами (бронирование,
// отмена, массовые операции) идут напрямую через db в одной транзакции,
// чтобы блокировки и констрейнты работали в одном снапшоте.
type CalendarService struct {
	calendarpb.UnimplementedCalendarServiceServer

	db  *gorm.DB
	log *zap.Logger
	cfg *config.Config

	slots     repository.SlotRepository
	bookings  repository.BookingRepository
	services  repository.ServiceRepository
	providers repository.ProviderRepository
	schedules repository.ScheduleRepository
}

func NewCalendarService(
	db *gorm.DB,
	log *zap.Logger,
	cfg *config.Config,
	slots repository.SlotRepository,
	bookings repository.BookingRepository,
	services repository.ServiceRepository,
	providers repository.ProviderRepository,
	schedules repository.ScheduleRepository,
) *CalendarService {
	return &CalendarService{
		db:        db,
		log:       log,
		cfg:       cfg,
		slots:     slots,
		bookings:  bookings,
		services:  services,
		providers: providers,
		schedules: schedules,
	}
}

// lockForUpdate навешивает SELECT ... FOR UPDATE только на Postgres.
// В SQLite (тесты) конструкция не поддерживается, там записи сериализует
// единственный писатель.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s: invalid uuid %q", field, raw)
	}
	return id, nil
}

func parseOptionalUUID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseUUID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// notFoundOr переводит gorm.ErrRecordNotFound в NotFound с сообщением msg,
// остальные ошибки — в Internal.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return status.Error(codes.NotFound, msg)
	}
	return status.Errorf(codes.Internal, "%s: %v", msg, err)
}

func rangeFromPB(r *commonpb.TimeRange) (start, end time.Time, err error) {
	if r == nil || r.GetStart() == nil || r.GetEnd() == nil {
		return time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "range: start and end are required")
	}
	start = r.GetStart().AsTime()
	end = r.GetEnd().AsTime()
	if !end.After(start) {
		return time.Time{}, time.Time{}, status.Error(codes.InvalidArgument, "range: end must be after start")
	}
	return start, end, nil
}

func slotStatusToPB(s model.TimeSlotStatus) commonpb.SlotStatus {
	switch s {
	case model.TimeSlotStatusPlanned:
		return commonpb.SlotStatus_SLOT_STATUS_FREE
	case model.TimeSlotStatusBooked:
		return commonpb.SlotStatus_SLOT_STATUS_BOOKED
	case model.TimeSlotStatusCancelled:
		return commonpb.SlotStatus_SLOT_STATUS_CANCELLED
	default:
		return commonpb.SlotStatus_SLOT_STATUS_UNSPECIFIED
	}
}

func bookingStatusToPB(s model.BookingStatus) commonpb.BookingStatus {
	switch s {
	case model.BookingStatusPending:
		return commonpb.BookingStatus_BOOKING_STATUS_PENDING
	case model.BookingStatusConfirmed:
		return commonpb.BookingStatus_BOOKING_STATUS_CONFIRMED
	case model.BookingStatusCancelled:
		return commonpb.BookingStatus_BOOKING_STATUS_CANCELLED
	default:
		return commonpb.BookingStatus_BOOKING_STATUS_UNSPECIFIED
	}
}

func bookingStatusesFromPB(in []commonpb.BookingStatus) ([]model.BookingStatus, error) {
	out := make([]model.BookingStatus, 0, len(in))
	for _, s := range in {
		switch s {
		case commonpb.BookingStatus_BOOKING_STATUS_PENDING:
			out = append(out, model.BookingStatusPending)
		case commonpb.BookingStatus_BOOKING_STATUS_CONFIRMED:
			out = append(out, model.BookingStatusConfirmed)
		case commonpb.BookingStatus_BOOKING_STATUS_CANCELLED:
			out = append(out, model.BookingStatusCancelled)
		default:
			return nil, status.Errorf(codes.InvalidArgument, "status filter: unknown status %v", s)
		}
	}
	return out, nil
}

func slotToPB(s *model.TimeSlot) *commonpb.Slot {
	out := &commonpb.Slot{
		Id:         s.ID.String(),
		ProviderId: s.ProviderID.String(),
		StartsAt:   timestamppb.New(s.StartsAt),
		EndsAt:     timestamppb.New(s.EndsAt),
		Status:     slotStatusToPB(s.Status),
	}
	if s.ServiceID != nil {
		out.ServiceId = s.ServiceID.String()
	}
	return out
}

func bookingToPB(b *model.Booking) *commonpb.Booking {
	out := &commonpb.Booking{
		Id:           b.ID.String(),
		ClientId:     b.ClientID.String(),
		SlotId:       b.SlotID.String(),
		ProviderId:   b.ProviderID.String(),
		ProviderName: b.ProviderName,
		ServiceName:  b.ServiceName,
		Status:       bookingStatusToPB(b.Status),
		CreatedAt:    timestamppb.New(b.CreatedAt),
		Comment:      b.Comment,
	}
	if b.ServiceID != nil {
		out.ServiceId = b.ServiceID.String()
	}
	if b.CancelledAt != nil {
		out.CancelledAt = timestamppb.New(*b.CancelledAt)
	}
	if b.Slot != nil {
		out.StartsAt = timestamppb.New(b.Slot.StartsAt)
		out.EndsAt = timestamppb.New(b.Slot.EndsAt)
	}
	return out
}

func serviceToPB(s *model.Service) *commonpb.Service {
	out := &commonpb.Service{
		Id:          s.ID.String(),
		Name:        s.Name,
		Description: s.Description,
		IsActive:    s.IsActive,
	}
	if s.DefaultDurationMin != nil {
		out.DefaultDurationMin = int32(*s.DefaultDurationMin)
	}
	return out
}

func providerToPB(p *model.Provider) *commonpb.Provider {
	return &commonpb.Provider{
		Id:          p.ID.String(),
		DisplayName: p.DisplayName,
		Description: p.Description,
	}
}

// writeEvent добавляет строку аудита в рамках переданной транзакции.
func writeEvent(tx *gorm.DB, eventType model.EventType, bookingID, slotID, providerID *uuid.UUID, details string) error {
	ev := model.Event{
		EventType:  eventType,
		BookingID:  bookingID,
		SlotID:     slotID,
		ProviderID: providerID,
		Details:    details,
	}
	if err := tx.Create(&ev).Error; err != nil {
		return fmt.Errorf("write event %s: %w", eventType, err)
	}
	return nil
}
