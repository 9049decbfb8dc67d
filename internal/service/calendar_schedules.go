package service

import (
	"context"
	"encoding/json"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/calendar"
	"github.com/appomat/core/internal/model"
)

// scheduleRuleDTO — формат правила повторения в JSONB-колонке schedules.rules.
type scheduleRuleDTO struct {
	Frequency   string      `json:"frequency"` // daily | weekly
	Interval    int         `json:"interval"`
	Weekdays    []int       `json:"weekdays,omitempty"` // 1-7, Пн-Вс
	StartsAt    time.Time   `json:"starts_at"`
	DurationMin int         `json:"duration_min"`
	Until       *time.Time  `json:"until,omitempty"`
	Count       *int        `json:"count,omitempty"`
	Exceptions  []time.Time `json:"exceptions,omitempty"`
}

const (
	freqDaily  = "daily"
	freqWeekly = "weekly"
)

func ruleDTOFromPB(rule *commonpb.ScheduleRule) (*scheduleRuleDTO, error) {
	if rule == nil {
		return nil, status.Error(codes.InvalidArgument, "schedule rule is required")
	}
	if rule.GetStartsAt() == nil {
		return nil, status.Error(codes.InvalidArgument, "rule.starts_at is required")
	}
	if rule.GetDurationMin() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "rule.duration_min must be positive")
	}

	dto := &scheduleRuleDTO{
		Interval:    int(rule.GetInterval()),
		StartsAt:    rule.GetStartsAt().AsTime(),
		DurationMin: int(rule.GetDurationMin()),
	}
	if dto.Interval <= 0 {
		dto.Interval = 1
	}

	switch rule.GetFrequency() {
	case commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_DAILY:
		dto.Frequency = freqDaily
	case commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY:
		dto.Frequency = freqWeekly
	default:
		return nil, status.Error(codes.InvalidArgument, "rule.frequency must be daily or weekly")
	}

	for _, d := range rule.GetWeekdays() {
		if d < 1 || d > 7 {
			return nil, status.Errorf(codes.InvalidArgument, "rule.weekdays: %d out of range 1-7", d)
		}
		dto.Weekdays = append(dto.Weekdays, int(d))
	}

	if rule.GetUntil() != nil {
		until := rule.GetUntil().AsTime()
		dto.Until = &until
	}
	if rule.GetCount() > 0 {
		c := int(rule.GetCount())
		dto.Count = &c
	}
	for _, ex := range rule.GetExceptions() {
		dto.Exceptions = append(dto.Exceptions, ex.AsTime())
	}
	return dto, nil
}

func (dto *scheduleRuleDTO) toPB() *commonpb.ScheduleRule {
	out := &commonpb.ScheduleRule{
		Interval:    int32(dto.Interval),
		StartsAt:    timestamppb.New(dto.StartsAt),
		DurationMin: int32(dto.DurationMin),
	}
	if dto.Frequency == freqWeekly {
		out.Frequency = commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY
	} else {
		out.Frequency = commonpb.RecurrenceFrequency_RECURRENCE_FREQUENCY_DAILY
	}
	for _, d := range dto.Weekdays {
		out.Weekdays = append(out.Weekdays, int32(d))
	}
	if dto.Until != nil {
		out.Until = timestamppb.New(*dto.Until)
	}
	if dto.Count != nil {
		out.Count = int32(*dto.Count)
	}
	for _, ex := range dto.Exceptions {
		out.Exceptions = append(out.Exceptions, timestamppb.New(ex))
	}
	return out
}

// toRecurringRule переводит DTO в правило календарного пакета.
// Дни недели 1-7 (Пн-Вс) отображаются на time.Weekday, где воскресенье — 0.
func (dto *scheduleRuleDTO) toRecurringRule(loc *time.Location) calendar.RecurringRule {
	rule := calendar.RecurringRule{
		Interval:  dto.Interval,
		StartTime: dto.StartsAt.In(loc),
		Duration:  time.Duration(dto.DurationMin) * time.Minute,
		Until:     dto.Until,
		Count:     dto.Count,
	}
	if dto.Frequency == freqWeekly {
		rule.Freq = calendar.FreqWeekly
	} else {
		rule.Freq = calendar.FreqDaily
	}
	for _, d := range dto.Weekdays {
		wd := time.Weekday(d % 7)
		rule.Weekdays = append(rule.Weekdays, wd)
	}
	if len(dto.Exceptions) > 0 {
		rule.Exceptions = make(map[time.Time]struct{}, len(dto.Exceptions))
		for _, ex := range dto.Exceptions {
			local := ex.In(loc)
			key := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
			rule.Exceptions[key] = struct{}{}
		}
	}
	return rule
}

func decodeScheduleRule(schedule *model.Schedule) (*scheduleRuleDTO, error) {
	var dto scheduleRuleDTO
	if err := json.Unmarshal(schedule.Rules, &dto); err != nil {
		return nil, status.Errorf(codes.Internal, "decode schedule rule: %v", err)
	}
	return &dto, nil
}

func scheduleToPB(schedule *model.Schedule, dto *scheduleRuleDTO) *commonpb.ProviderSchedule {
	out := &commonpb.ProviderSchedule{
		Id:         schedule.ID.String(),
		ProviderId: schedule.ProviderID.String(),
		TimeZone:   schedule.TimeZone,
		Rule:       dto.toPB(),
	}
	if schedule.ServiceID != nil {
		out.ServiceId = schedule.ServiceID.String()
	}
	if schedule.StartDate != nil {
		out.StartDate = timestamppb.New(time.Time(*schedule.StartDate))
	}
	if schedule.EndDate != nil {
		out.EndDate = timestamppb.New(time.Time(*schedule.EndDate))
	}
	return out
}

func (s *CalendarService) CreateProviderSchedule(ctx context.Context, req *calendarpb.CreateProviderScheduleRequest) (*calendarpb.CreateProviderScheduleResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}
	if _, err := s.providers.GetByID(ctx, providerID); err != nil {
		return nil, notFoundOr(err, "provider not found")
	}

	spec := req.GetSchedule()
	if spec == nil {
		return nil, status.Error(codes.InvalidArgument, "schedule is required")
	}

	dto, err := ruleDTOFromPB(spec.GetRule())
	if err != nil {
		return nil, err
	}

	tz := spec.GetTimeZone()
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "time_zone: %v", err)
	}

	serviceID, err := parseOptionalUUID("service_id", spec.GetServiceId())
	if err != nil {
		return nil, err
	}
	if serviceID != nil {
		if _, err := s.services.GetByID(ctx, *serviceID); err != nil {
			return nil, notFoundOr(err, "service not found")
		}
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode schedule rule: %v", err)
	}

	schedule := model.Schedule{
		ProviderID: providerID,
		ServiceID:  serviceID,
		TimeZone:   tz,
		Rules:      datatypes.JSON(raw),
	}
	if spec.GetStartDate() != nil {
		d := datatypes.Date(spec.GetStartDate().AsTime())
		schedule.StartDate = &d
	}
	if spec.GetEndDate() != nil {
		d := datatypes.Date(spec.GetEndDate().AsTime())
		schedule.EndDate = &d
	}

	if err := s.schedules.Create(ctx, &schedule); err != nil {
		return nil, status.Errorf(codes.Internal, "create schedule: %v", err)
	}

	return &calendarpb.CreateProviderScheduleResponse{Schedule: scheduleToPB(&schedule, dto)}, nil
}

// UpdateProviderSchedule полностью заменяет правило, пояс и границы действия
// шаблона. Владелец шаблона не меняется. Уже материализованные слоты не
// пересоздаются, новое правило видно со следующей материализации.
func (s *CalendarService) UpdateProviderSchedule(ctx context.Context, req *calendarpb.UpdateProviderScheduleRequest) (*calendarpb.UpdateProviderScheduleResponse, error) {
	scheduleID, err := parseUUID("schedule_id", req.GetScheduleId())
	if err != nil {
		return nil, err
	}
	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, notFoundOr(err, "schedule not found")
	}

	spec := req.GetSchedule()
	if spec == nil {
		return nil, status.Error(codes.InvalidArgument, "schedule is required")
	}
	if spec.GetProviderId() != "" && spec.GetProviderId() != schedule.ProviderID.String() {
		return nil, status.Error(codes.PermissionDenied, "schedule owner cannot be changed")
	}

	dto, err := ruleDTOFromPB(spec.GetRule())
	if err != nil {
		return nil, err
	}

	tz := spec.GetTimeZone()
	if tz == "" {
		tz = "UTC"
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "time_zone: %v", err)
	}

	serviceID, err := parseOptionalUUID("service_id", spec.GetServiceId())
	if err != nil {
		return nil, err
	}
	if serviceID != nil {
		if _, err := s.services.GetByID(ctx, *serviceID); err != nil {
			return nil, notFoundOr(err, "service not found")
		}
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode schedule rule: %v", err)
	}

	schedule.ServiceID = serviceID
	schedule.TimeZone = tz
	schedule.Rules = datatypes.JSON(raw)
	schedule.StartDate = nil
	schedule.EndDate = nil
	if spec.GetStartDate() != nil {
		d := datatypes.Date(spec.GetStartDate().AsTime())
		schedule.StartDate = &d
	}
	if spec.GetEndDate() != nil {
		d := datatypes.Date(spec.GetEndDate().AsTime())
		schedule.EndDate = &d
	}

	if err := s.schedules.Update(ctx, schedule); err != nil {
		return nil, status.Errorf(codes.Internal, "update schedule: %v", err)
	}
	return &calendarpb.UpdateProviderScheduleResponse{Schedule: scheduleToPB(schedule, dto)}, nil
}

func (s *CalendarService) ListProviderSchedules(ctx context.Context, req *calendarpb.ListProviderSchedulesRequest) (*calendarpb.ListProviderSchedulesResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}

	schedules, _, err := s.schedules.ListByProvider(ctx, providerID, 0, 0)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list schedules: %v", err)
	}

	out := make([]*commonpb.ProviderSchedule, 0, len(schedules))
	for i := range schedules {
		dto, err := decodeScheduleRule(&schedules[i])
		if err != nil {
			return nil, err
		}
		out = append(out, scheduleToPB(&schedules[i], dto))
	}
	return &calendarpb.ListProviderSchedulesResponse{Schedules: out}, nil
}

// DeleteProviderSchedule удаляет шаблон. Материализованные из него слоты и
// их бронирования остаются, ссылка на шаблон у них обнуляется.
func (s *CalendarService) DeleteProviderSchedule(ctx context.Context, req *calendarpb.DeleteProviderScheduleRequest) (*calendarpb.DeleteProviderScheduleResponse, error) {
	scheduleID, err := parseUUID("schedule_id", req.GetScheduleId())
	if err != nil {
		return nil, err
	}

	if _, err := s.schedules.GetByID(ctx, scheduleID); err != nil {
		return nil, notFoundOr(err, "schedule not found")
	}
	if err := s.schedules.Delete(ctx, scheduleID); err != nil {
		return nil, status.Errorf(codes.Internal, "delete schedule: %v", err)
	}
	return &calendarpb.DeleteProviderScheduleResponse{}, nil
}

// ExpandSchedule — чистое развёртывание правила в интервалы внутри окна,
// без записи в БД. Используется для предпросмотра перед материализацией.
func (s *CalendarService) ExpandSchedule(ctx context.Context, req *calendarpb.ExpandScheduleRequest) (*calendarpb.ExpandScheduleResponse, error) {
	ranges, _, err := s.expandScheduleWindow(ctx, req.GetScheduleId(), req.GetWindowStart(), req.GetWindowEnd())
	if err != nil {
		return nil, err
	}

	out := make([]*commonpb.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, &commonpb.TimeRange{
			Start: timestamppb.New(r.Start),
			End:   timestamppb.New(r.End),
		})
	}
	return &calendarpb.ExpandScheduleResponse{Intervals: out}, nil
}

// MaterializeSchedule разворачивает шаблон в реальные слоты внутри окна.
// Повторная материализация того же окна идемпотентна: дубли по
// (provider_id, starts_at) упираются в уникальный индекс и попадают в
// failures, не мешая остальным.
func (s *CalendarService) MaterializeSchedule(ctx context.Context, req *calendarpb.MaterializeScheduleRequest) (*calendarpb.MaterializeScheduleResponse, error) {
	ranges, schedule, err := s.expandScheduleWindow(ctx, req.GetScheduleId(), req.GetWindowStart(), req.GetWindowEnd())
	if err != nil {
		return nil, err
	}

	created, failures := s.createSlotBatch(ctx, schedule.ProviderID, schedule.ServiceID, &schedule.ID, ranges)
	return &calendarpb.MaterializeScheduleResponse{Slots: created, Failures: failures}, nil
}

func (s *CalendarService) expandScheduleWindow(
	ctx context.Context,
	rawScheduleID string,
	windowStart, windowEnd *timestamppb.Timestamp,
) ([]calendar.TimeRange, *model.Schedule, error) {
	scheduleID, err := parseUUID("schedule_id", rawScheduleID)
	if err != nil {
		return nil, nil, err
	}
	from, to, err := windowFromPB(windowStart, windowEnd)
	if err != nil {
		return nil, nil, err
	}

	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, nil, notFoundOr(err, "schedule not found")
	}

	dto, err := decodeScheduleRule(schedule)
	if err != nil {
		return nil, nil, err
	}

	loc, err := time.LoadLocation(schedule.TimeZone)
	if err != nil {
		return nil, nil, status.Errorf(codes.Internal, "schedule time_zone: %v", err)
	}

	// Окно сужается границами действия шаблона; end_date включительно.
	if schedule.StartDate != nil {
		bound := dayStartIn(time.Time(*schedule.StartDate), loc)
		if bound.After(from) {
			from = bound
		}
	}
	if schedule.EndDate != nil {
		bound := dayStartIn(time.Time(*schedule.EndDate), loc).AddDate(0, 0, 1)
		if bound.Before(to) {
			to = bound
		}
	}
	if !to.After(from) {
		return []calendar.TimeRange{}, schedule, nil
	}

	window := calendar.TimeRange{Start: from, End: to}
	ranges, err := calendar.ExpandRecurringRule(dto.toRecurringRule(loc), window)
	if err != nil {
		return nil, nil, status.Errorf(codes.InvalidArgument, "expand schedule: %v", err)
	}
	return ranges, schedule, nil
}

func dayStartIn(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
