// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: common/v1/common.proto

package commonpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SlotStatus int32

const (
	SlotStatus_SLOT_STATUS_UNSPECIFIED SlotStatus = 0
	SlotStatus_SLOT_STATUS_FREE        SlotStatus = 1
	SlotStatus_SLOT_STATUS_BOOKED      SlotStatus = 2
	SlotStatus_SLOT_STATUS_CANCELLED   SlotStatus = 3
)

// Enum value maps for SlotStatus.
var (
	SlotStatus_name = map[int32]string{
		0: "SLOT_STATUS_UNSPECIFIED",
		1: "SLOT_STATUS_FREE",
		2: "SLOT_STATUS_BOOKED",
		3: "SLOT_STATUS_CANCELLED",
	}
	SlotStatus_value = map[string]int32{
		"SLOT_STATUS_UNSPECIFIED": 0,
		"SLOT_STATUS_FREE":        1,
		"SLOT_STATUS_BOOKED":      2,
		"SLOT_STATUS_CANCELLED":   3,
	}
)

func (x SlotStatus) Enum() *SlotStatus {
	p := new(SlotStatus)
	*p = x
	return p
}

func (x SlotStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (SlotStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_common_v1_common_proto_enumTypes[0].Descriptor()
}

func (SlotStatus) Type() protoreflect.EnumType {
	return &file_common_v1_common_proto_enumTypes[0]
}

func (x SlotStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use SlotStatus.Descriptor instead.
func (SlotStatus) EnumDescriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{0}
}

type BookingStatus int32

const (
	BookingStatus_BOOKING_STATUS_UNSPECIFIED BookingStatus = 0
	BookingStatus_BOOKING_STATUS_PENDING     BookingStatus = 1
	BookingStatus_BOOKING_STATUS_CONFIRMED   BookingStatus = 2
	BookingStatus_BOOKING_STATUS_CANCELLED   BookingStatus = 3
)

// Enum value maps for BookingStatus.
var (
	BookingStatus_name = map[int32]string{
		0: "BOOKING_STATUS_UNSPECIFIED",
		1: "BOOKING_STATUS_PENDING",
		2: "BOOKING_STATUS_CONFIRMED",
		3: "BOOKING_STATUS_CANCELLED",
	}
	BookingStatus_value = map[string]int32{
		"BOOKING_STATUS_UNSPECIFIED": 0,
		"BOOKING_STATUS_PENDING":     1,
		"BOOKING_STATUS_CONFIRMED":   2,
		"BOOKING_STATUS_CANCELLED":   3,
	}
)

func (x BookingStatus) Enum() *BookingStatus {
	p := new(BookingStatus)
	*p = x
	return p
}

func (x BookingStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (BookingStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_common_v1_common_proto_enumTypes[1].Descriptor()
}

func (BookingStatus) Type() protoreflect.EnumType {
	return &file_common_v1_common_proto_enumTypes[1]
}

func (x BookingStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use BookingStatus.Descriptor instead.
func (BookingStatus) EnumDescriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{1}
}

type RecurrenceFrequency int32

const (
	RecurrenceFrequency_RECURRENCE_FREQUENCY_UNSPECIFIED RecurrenceFrequency = 0
	RecurrenceFrequency_RECURRENCE_FREQUENCY_DAILY       RecurrenceFrequency = 1
	RecurrenceFrequency_RECURRENCE_FREQUENCY_WEEKLY      RecurrenceFrequency = 2
)

// Enum value maps for RecurrenceFrequency.
var (
	RecurrenceFrequency_name = map[int32]string{
		0: "RECURRENCE_FREQUENCY_UNSPECIFIED",
		1: "RECURRENCE_FREQUENCY_DAILY",
		2: "RECURRENCE_FREQUENCY_WEEKLY",
	}
	RecurrenceFrequency_value = map[string]int32{
		"RECURRENCE_FREQUENCY_UNSPECIFIED": 0,
		"RECURRENCE_FREQUENCY_DAILY":       1,
		"RECURRENCE_FREQUENCY_WEEKLY":      2,
	}
)

func (x RecurrenceFrequency) Enum() *RecurrenceFrequency {
	p := new(RecurrenceFrequency)
	*p = x
	return p
}

func (x RecurrenceFrequency) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RecurrenceFrequency) Descriptor() protoreflect.EnumDescriptor {
	return file_common_v1_common_proto_enumTypes[2].Descriptor()
}

func (RecurrenceFrequency) Type() protoreflect.EnumType {
	return &file_common_v1_common_proto_enumTypes[2]
}

func (x RecurrenceFrequency) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RecurrenceFrequency.Descriptor instead.
func (RecurrenceFrequency) EnumDescriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{2}
}

// Полуоткрытый интервал [start, end).
type TimeRange struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=end,proto3" json:"end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimeRange) Reset() {
	*x = TimeRange{}
	mi := &file_common_v1_common_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimeRange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimeRange) ProtoMessage() {}

func (x *TimeRange) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimeRange.ProtoReflect.Descriptor instead.
func (*TimeRange) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{0}
}

func (x *TimeRange) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *TimeRange) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

type Service struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name               string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description        string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	DefaultDurationMin int32                  `protobuf:"varint,4,opt,name=default_duration_min,json=defaultDurationMin,proto3" json:"default_duration_min,omitempty"`
	IsActive           bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Service) Reset() {
	*x = Service{}
	mi := &file_common_v1_common_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Service) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Service) ProtoMessage() {}

func (x *Service) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Service.ProtoReflect.Descriptor instead.
func (*Service) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{1}
}

func (x *Service) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Service) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Service) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Service) GetDefaultDurationMin() int32 {
	if x != nil {
		return x.DefaultDurationMin
	}
	return 0
}

func (x *Service) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type Provider struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Provider) Reset() {
	*x = Provider{}
	mi := &file_common_v1_common_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Provider) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Provider) ProtoMessage() {}

func (x *Provider) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Provider.ProtoReflect.Descriptor instead.
func (*Provider) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{2}
}

func (x *Provider) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Provider) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Provider) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Slot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProviderId    string                 `protobuf:"bytes,2,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,3,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	StartsAt      *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	EndsAt        *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=ends_at,json=endsAt,proto3" json:"ends_at,omitempty"`
	Status        SlotStatus             `protobuf:"varint,6,opt,name=status,proto3,enum=common.v1.SlotStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Slot) Reset() {
	*x = Slot{}
	mi := &file_common_v1_common_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Slot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Slot) ProtoMessage() {}

func (x *Slot) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Slot.ProtoReflect.Descriptor instead.
func (*Slot) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{3}
}

func (x *Slot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Slot) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *Slot) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *Slot) GetStartsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartsAt
	}
	return nil
}

func (x *Slot) GetEndsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndsAt
	}
	return nil
}

func (x *Slot) GetStatus() SlotStatus {
	if x != nil {
		return x.Status
	}
	return SlotStatus_SLOT_STATUS_UNSPECIFIED
}

type Booking struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ClientId   string                 `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	SlotId     string                 `protobuf:"bytes,3,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	ProviderId string                 `protobuf:"bytes,4,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	// Снимок имён на момент создания бронирования: отображение не меняется
	// при последующих правках каталога.
	ProviderName  string                 `protobuf:"bytes,5,opt,name=provider_name,json=providerName,proto3" json:"provider_name,omitempty"`
	ServiceId     string                 `protobuf:"bytes,6,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	ServiceName   string                 `protobuf:"bytes,7,opt,name=service_name,json=serviceName,proto3" json:"service_name,omitempty"`
	Status        BookingStatus          `protobuf:"varint,8,opt,name=status,proto3,enum=common.v1.BookingStatus" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	CancelledAt   *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=cancelled_at,json=cancelledAt,proto3" json:"cancelled_at,omitempty"`
	Comment       string                 `protobuf:"bytes,11,opt,name=comment,proto3" json:"comment,omitempty"`
	StartsAt      *timestamppb.Timestamp `protobuf:"bytes,12,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	EndsAt        *timestamppb.Timestamp `protobuf:"bytes,13,opt,name=ends_at,json=endsAt,proto3" json:"ends_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Booking) Reset() {
	*x = Booking{}
	mi := &file_common_v1_common_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Booking) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Booking) ProtoMessage() {}

func (x *Booking) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Booking.ProtoReflect.Descriptor instead.
func (*Booking) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{4}
}

func (x *Booking) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Booking) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *Booking) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

func (x *Booking) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *Booking) GetProviderName() string {
	if x != nil {
		return x.ProviderName
	}
	return ""
}

func (x *Booking) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *Booking) GetServiceName() string {
	if x != nil {
		return x.ServiceName
	}
	return ""
}

func (x *Booking) GetStatus() BookingStatus {
	if x != nil {
		return x.Status
	}
	return BookingStatus_BOOKING_STATUS_UNSPECIFIED
}

func (x *Booking) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Booking) GetCancelledAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CancelledAt
	}
	return nil
}

func (x *Booking) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *Booking) GetStartsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartsAt
	}
	return nil
}

func (x *Booking) GetEndsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndsAt
	}
	return nil
}

type ScheduleRule struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Frequency RecurrenceFrequency    `protobuf:"varint,1,opt,name=frequency,proto3,enum=common.v1.RecurrenceFrequency" json:"frequency,omitempty"`
	Interval  int32                  `protobuf:"varint,2,opt,name=interval,proto3" json:"interval,omitempty"`
	// 1-7 (Пн-Вс), как в ISO-8601.
	Weekdays      []int32                  `protobuf:"varint,3,rep,packed,name=weekdays,proto3" json:"weekdays,omitempty"`
	StartsAt      *timestamppb.Timestamp   `protobuf:"bytes,4,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	DurationMin   int32                    `protobuf:"varint,5,opt,name=duration_min,json=durationMin,proto3" json:"duration_min,omitempty"`
	Until         *timestamppb.Timestamp   `protobuf:"bytes,6,opt,name=until,proto3" json:"until,omitempty"`
	Count         int32                    `protobuf:"varint,7,opt,name=count,proto3" json:"count,omitempty"`
	Exceptions    []*timestamppb.Timestamp `protobuf:"bytes,8,rep,name=exceptions,proto3" json:"exceptions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleRule) Reset() {
	*x = ScheduleRule{}
	mi := &file_common_v1_common_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleRule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleRule) ProtoMessage() {}

func (x *ScheduleRule) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleRule.ProtoReflect.Descriptor instead.
func (*ScheduleRule) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{5}
}

func (x *ScheduleRule) GetFrequency() RecurrenceFrequency {
	if x != nil {
		return x.Frequency
	}
	return RecurrenceFrequency_RECURRENCE_FREQUENCY_UNSPECIFIED
}

func (x *ScheduleRule) GetInterval() int32 {
	if x != nil {
		return x.Interval
	}
	return 0
}

func (x *ScheduleRule) GetWeekdays() []int32 {
	if x != nil {
		return x.Weekdays
	}
	return nil
}

func (x *ScheduleRule) GetStartsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartsAt
	}
	return nil
}

func (x *ScheduleRule) GetDurationMin() int32 {
	if x != nil {
		return x.DurationMin
	}
	return 0
}

func (x *ScheduleRule) GetUntil() *timestamppb.Timestamp {
	if x != nil {
		return x.Until
	}
	return nil
}

func (x *ScheduleRule) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *ScheduleRule) GetExceptions() []*timestamppb.Timestamp {
	if x != nil {
		return x.Exceptions
	}
	return nil
}

type ProviderSchedule struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProviderId string                 `protobuf:"bytes,2,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	TimeZone   string                 `protobuf:"bytes,3,opt,name=time_zone,json=timeZone,proto3" json:"time_zone,omitempty"`
	StartDate  *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate    *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Rule       *ScheduleRule          `protobuf:"bytes,6,opt,name=rule,proto3" json:"rule,omitempty"`
	// Услуга, проставляемая материализованным слотам. Пусто — слоты без услуги.
	ServiceId     string `protobuf:"bytes,7,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProviderSchedule) Reset() {
	*x = ProviderSchedule{}
	mi := &file_common_v1_common_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProviderSchedule) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProviderSchedule) ProtoMessage() {}

func (x *ProviderSchedule) ProtoReflect() protoreflect.Message {
	mi := &file_common_v1_common_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProviderSchedule.ProtoReflect.Descriptor instead.
func (*ProviderSchedule) Descriptor() ([]byte, []int) {
	return file_common_v1_common_proto_rawDescGZIP(), []int{6}
}

func (x *ProviderSchedule) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProviderSchedule) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *ProviderSchedule) GetTimeZone() string {
	if x != nil {
		return x.TimeZone
	}
	return ""
}

func (x *ProviderSchedule) GetStartDate() *timestamppb.Timestamp {
	if x != nil {
		return x.StartDate
	}
	return nil
}

func (x *ProviderSchedule) GetEndDate() *timestamppb.Timestamp {
	if x != nil {
		return x.EndDate
	}
	return nil
}

func (x *ProviderSchedule) GetRule() *ScheduleRule {
	if x != nil {
		return x.Rule
	}
	return nil
}

func (x *ProviderSchedule) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

var File_common_v1_common_proto protoreflect.FileDescriptor

const file_common_v1_common_proto_rawDesc = "" +
	"\n" +
	"\x16common/v1/common.proto\x12\tcommon.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"k\n" +
	"\tTimeRange\x120\n" +
	"\x05start\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\"\x9e\x01\n" +
	"\aService\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x120\n" +
	"\x14default_duration_min\x18\x04 \x01(\x05R\x12defaultDurationMin\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\"_\n" +
	"\bProvider\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"\xf3\x01\n" +
	"\x04Slot\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vprovider_id\x18\x02 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x03 \x01(\tR\tserviceId\x127\n" +
	"\tstarts_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\bstartsAt\x123\n" +
	"\aends_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x06endsAt\x12-\n" +
	"\x06status\x18\x06 \x01(\x0e2\x15.common.v1.SlotStatusR\x06status\"\x8b\x04\n" +
	"\aBooking\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tclient_id\x18\x02 \x01(\tR\bclientId\x12\x17\n" +
	"\aslot_id\x18\x03 \x01(\tR\x06slotId\x12\x1f\n" +
	"\vprovider_id\x18\x04 \x01(\tR\n" +
	"providerId\x12#\n" +
	"\rprovider_name\x18\x05 \x01(\tR\fproviderName\x12\x1d\n" +
	"\n" +
	"service_id\x18\x06 \x01(\tR\tserviceId\x12!\n" +
	"\fservice_name\x18\a \x01(\tR\vserviceName\x120\n" +
	"\x06status\x18\b \x01(\x0e2\x18.common.v1.BookingStatusR\x06status\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x12=\n" +
	"\fcancelled_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\vcancelledAt\x12\x18\n" +
	"\acomment\x18\v \x01(\tR\acomment\x127\n" +
	"\tstarts_at\x18\f \x01(\v2\x1a.google.protobuf.TimestampR\bstartsAt\x123\n" +
	"\aends_at\x18\r \x01(\v2\x1a.google.protobuf.TimestampR\x06endsAt\"\xe4\x02\n" +
	"\fScheduleRule\x12<\n" +
	"\tfrequency\x18\x01 \x01(\x0e2\x1e.common.v1.RecurrenceFrequencyR\tfrequency\x12\x1a\n" +
	"\binterval\x18\x02 \x01(\x05R\binterval\x12\x1a\n" +
	"\bweekdays\x18\x03 \x03(\x05R\bweekdays\x127\n" +
	"\tstarts_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\bstartsAt\x12!\n" +
	"\fduration_min\x18\x05 \x01(\x05R\vdurationMin\x120\n" +
	"\x05until\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x05until\x12\x14\n" +
	"\x05count\x18\a \x01(\x05R\x05count\x12:\n" +
	"\n" +
	"exceptions\x18\b \x03(\v2\x1a.google.protobuf.TimestampR\n" +
	"exceptions\"\x9e\x02\n" +
	"\x10ProviderSchedule\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vprovider_id\x18\x02 \x01(\tR\n" +
	"providerId\x12\x1b\n" +
	"\ttime_zone\x18\x03 \x01(\tR\btimeZone\x129\n" +
	"\n" +
	"start_date\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tstartDate\x125\n" +
	"\bend_date\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\aendDate\x12+\n" +
	"\x04rule\x18\x06 \x01(\v2\x17.common.v1.ScheduleRuleR\x04rule\x12\x1d\n" +
	"\n" +
	"service_id\x18\a \x01(\tR\tserviceId*r\n" +
	"\n" +
	"SlotStatus\x12\x1b\n" +
	"\x17SLOT_STATUS_UNSPECIFIED\x10\x00\x12\x14\n" +
	"\x10SLOT_STATUS_FREE\x10\x01\x12\x16\n" +
	"\x12SLOT_STATUS_BOOKED\x10\x02\x12\x19\n" +
	"\x15SLOT_STATUS_CANCELLED\x10\x03*\x87\x01\n" +
	"\rBookingStatus\x12\x1e\n" +
	"\x1aBOOKING_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16BOOKING_STATUS_PENDING\x10\x01\x12\x1c\n" +
	"\x18BOOKING_STATUS_CONFIRMED\x10\x02\x12\x1c\n" +
	"\x18BOOKING_STATUS_CANCELLED\x10\x03*|\n" +
	"\x13RecurrenceFrequency\x12$\n" +
	" RECURRENCE_FREQUENCY_UNSPECIFIED\x10\x00\x12\x1e\n" +
	"\x1aRECURRENCE_FREQUENCY_DAILY\x10\x01\x12\x1f\n" +
	"\x1bRECURRENCE_FREQUENCY_WEEKLY\x10\x02B9Z7github.com/appomat/core/internal/api/common/v1;commonpbb\x06proto3"

var (
	file_common_v1_common_proto_rawDescOnce sync.Once
	file_common_v1_common_proto_rawDescData []byte
)

func file_common_v1_common_proto_rawDescGZIP() []byte {
	file_common_v1_common_proto_rawDescOnce.Do(func() {
		file_common_v1_common_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_common_v1_common_proto_rawDesc), len(file_common_v1_common_proto_rawDesc)))
	})
	return file_common_v1_common_proto_rawDescData
}

var file_common_v1_common_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_common_v1_common_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_common_v1_common_proto_goTypes = []any{
	(SlotStatus)(0),               // 0: common.v1.SlotStatus
	(BookingStatus)(0),            // 1: common.v1.BookingStatus
	(RecurrenceFrequency)(0),      // 2: common.v1.RecurrenceFrequency
	(*TimeRange)(nil),             // 3: common.v1.TimeRange
	(*Service)(nil),               // 4: common.v1.Service
	(*Provider)(nil),              // 5: common.v1.Provider
	(*Slot)(nil),                  // 6: common.v1.Slot
	(*Booking)(nil),               // 7: common.v1.Booking
	(*ScheduleRule)(nil),          // 8: common.v1.ScheduleRule
	(*ProviderSchedule)(nil),      // 9: common.v1.ProviderSchedule
	(*timestamppb.Timestamp)(nil), // 10: google.protobuf.Timestamp
}
var file_common_v1_common_proto_depIdxs = []int32{
	10, // 0: common.v1.TimeRange.start:type_name -> google.protobuf.Timestamp
	10, // 1: common.v1.TimeRange.end:type_name -> google.protobuf.Timestamp
	10, // 2: common.v1.Slot.starts_at:type_name -> google.protobuf.Timestamp
	10, // 3: common.v1.Slot.ends_at:type_name -> google.protobuf.Timestamp
	0,  // 4: common.v1.Slot.status:type_name -> common.v1.SlotStatus
	1,  // 5: common.v1.Booking.status:type_name -> common.v1.BookingStatus
	10, // 6: common.v1.Booking.created_at:type_name -> google.protobuf.Timestamp
	10, // 7: common.v1.Booking.cancelled_at:type_name -> google.protobuf.Timestamp
	10, // 8: common.v1.Booking.starts_at:type_name -> google.protobuf.Timestamp
	10, // 9: common.v1.Booking.ends_at:type_name -> google.protobuf.Timestamp
	2,  // 10: common.v1.ScheduleRule.frequency:type_name -> common.v1.RecurrenceFrequency
	10, // 11: common.v1.ScheduleRule.starts_at:type_name -> google.protobuf.Timestamp
	10, // 12: common.v1.ScheduleRule.until:type_name -> google.protobuf.Timestamp
	10, // 13: common.v1.ScheduleRule.exceptions:type_name -> google.protobuf.Timestamp
	10, // 14: common.v1.ProviderSchedule.start_date:type_name -> google.protobuf.Timestamp
	10, // 15: common.v1.ProviderSchedule.end_date:type_name -> google.protobuf.Timestamp
	8,  // 16: common.v1.ProviderSchedule.rule:type_name -> common.v1.ScheduleRule
	17, // [17:17] is the sub-list for method output_type
	17, // [17:17] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_common_v1_common_proto_init() }
func file_common_v1_common_proto_init() {
	if File_common_v1_common_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_common_v1_common_proto_rawDesc), len(file_common_v1_common_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_common_v1_common_proto_goTypes,
		DependencyIndexes: file_common_v1_common_proto_depIdxs,
		EnumInfos:         file_common_v1_common_proto_enumTypes,
		MessageInfos:      file_common_v1_common_proto_msgTypes,
	}.Build()
	File_common_v1_common_proto = out.File
	file_common_v1_common_proto_goTypes = nil
	file_common_v1_common_proto_depIdxs = nil
}
