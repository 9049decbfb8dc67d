// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: calendar/v1/calendar.proto

package calendarpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	CalendarService_ListServices_FullMethodName            = "/calendar.v1.CalendarService/ListServices"
	CalendarService_CreateService_FullMethodName           = "/calendar.v1.CalendarService/CreateService"
	CalendarService_UpdateService_FullMethodName           = "/calendar.v1.CalendarService/UpdateService"
	CalendarService_ListProviders_FullMethodName           = "/calendar.v1.CalendarService/ListProviders"
	CalendarService_ListProviderServices_FullMethodName    = "/calendar.v1.CalendarService/ListProviderServices"
	CalendarService_SetProviderServices_FullMethodName     = "/calendar.v1.CalendarService/SetProviderServices"
	CalendarService_UpdateProviderProfile_FullMethodName   = "/calendar.v1.CalendarService/UpdateProviderProfile"
	CalendarService_CreateSlot_FullMethodName              = "/calendar.v1.CalendarService/CreateSlot"
	CalendarService_UpdateSlot_FullMethodName              = "/calendar.v1.CalendarService/UpdateSlot"
	CalendarService_DeleteSlot_FullMethodName              = "/calendar.v1.CalendarService/DeleteSlot"
	CalendarService_FindFreeSlots_FullMethodName           = "/calendar.v1.CalendarService/FindFreeSlots"
	CalendarService_ListFreeSlots_FullMethodName           = "/calendar.v1.CalendarService/ListFreeSlots"
	CalendarService_ListProviderSlots_FullMethodName       = "/calendar.v1.CalendarService/ListProviderSlots"
	CalendarService_CreateWeekSlots_FullMethodName         = "/calendar.v1.CalendarService/CreateWeekSlots"
	CalendarService_BulkCancelProviderSlots_FullMethodName = "/calendar.v1.CalendarService/BulkCancelProviderSlots"
	CalendarService_CheckAvailability_FullMethodName       = "/calendar.v1.CalendarService/CheckAvailability"
	CalendarService_CreateBooking_FullMethodName           = "/calendar.v1.CalendarService/CreateBooking"
	CalendarService_ConfirmBooking_FullMethodName          = "/calendar.v1.CalendarService/ConfirmBooking"
	CalendarService_CancelBooking_FullMethodName           = "/calendar.v1.CalendarService/CancelBooking"
	CalendarService_GetBooking_FullMethodName              = "/calendar.v1.CalendarService/GetBooking"
	CalendarService_ListBookings_FullMethodName            = "/calendar.v1.CalendarService/ListBookings"
	CalendarService_ListProviderBookings_FullMethodName    = "/calendar.v1.CalendarService/ListProviderBookings"
	CalendarService_CreateProviderSchedule_FullMethodName  = "/calendar.v1.CalendarService/CreateProviderSchedule"
	CalendarService_UpdateProviderSchedule_FullMethodName  = "/calendar.v1.CalendarService/UpdateProviderSchedule"
	CalendarService_ListProviderSchedules_FullMethodName   = "/calendar.v1.CalendarService/ListProviderSchedules"
	CalendarService_DeleteProviderSchedule_FullMethodName  = "/calendar.v1.CalendarService/DeleteProviderSchedule"
	CalendarService_ExpandSchedule_FullMethodName          = "/calendar.v1.CalendarService/ExpandSchedule"
	CalendarService_MaterializeSchedule_FullMethodName     = "/calendar.v1.CalendarService/MaterializeSchedule"
)

// CalendarServiceClient is the client API for CalendarService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CalendarService — ядро бронирования: каталог услуг, слоты провайдеров,
// бронирования и расписания. Потребляется внешними клиентами по gRPC;
// ничего не знает о Telegram и прочих каналах доставки.
type CalendarServiceClient interface {
	// Каталог.
	ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error)
	CreateService(ctx context.Context, in *CreateServiceRequest, opts ...grpc.CallOption) (*CreateServiceResponse, error)
	UpdateService(ctx context.Context, in *UpdateServiceRequest, opts ...grpc.CallOption) (*UpdateServiceResponse, error)
	ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error)
	ListProviderServices(ctx context.Context, in *ListProviderServicesRequest, opts ...grpc.CallOption) (*ListProviderServicesResponse, error)
	SetProviderServices(ctx context.Context, in *SetProviderServicesRequest, opts ...grpc.CallOption) (*SetProviderServicesResponse, error)
	UpdateProviderProfile(ctx context.Context, in *UpdateProviderProfileRequest, opts ...grpc.CallOption) (*UpdateProviderProfileResponse, error)
	// Слоты.
	CreateSlot(ctx context.Context, in *CreateSlotRequest, opts ...grpc.CallOption) (*CreateSlotResponse, error)
	UpdateSlot(ctx context.Context, in *UpdateSlotRequest, opts ...grpc.CallOption) (*UpdateSlotResponse, error)
	DeleteSlot(ctx context.Context, in *DeleteSlotRequest, opts ...grpc.CallOption) (*DeleteSlotResponse, error)
	FindFreeSlots(ctx context.Context, in *FindFreeSlotsRequest, opts ...grpc.CallOption) (*FindFreeSlotsResponse, error)
	ListFreeSlots(ctx context.Context, in *ListFreeSlotsRequest, opts ...grpc.CallOption) (*ListFreeSlotsResponse, error)
	ListProviderSlots(ctx context.Context, in *ListProviderSlotsRequest, opts ...grpc.CallOption) (*ListProviderSlotsResponse, error)
	CreateWeekSlots(ctx context.Context, in *CreateWeekSlotsRequest, opts ...grpc.CallOption) (*CreateWeekSlotsResponse, error)
	BulkCancelProviderSlots(ctx context.Context, in *BulkCancelProviderSlotsRequest, opts ...grpc.CallOption) (*BulkCancelProviderSlotsResponse, error)
	// Бронирования.
	CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*CheckAvailabilityResponse, error)
	CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*CreateBookingResponse, error)
	ConfirmBooking(ctx context.Context, in *ConfirmBookingRequest, opts ...grpc.CallOption) (*ConfirmBookingResponse, error)
	CancelBooking(ctx context.Context, in *CancelBookingRequest, opts ...grpc.CallOption) (*CancelBookingResponse, error)
	GetBooking(ctx context.Context, in *GetBookingRequest, opts ...grpc.CallOption) (*GetBookingResponse, error)
	ListBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error)
	ListProviderBookings(ctx context.Context, in *ListProviderBookingsRequest, opts ...grpc.CallOption) (*ListProviderBookingsResponse, error)
	// Расписания (шаблоны повторяющихся слотов).
	CreateProviderSchedule(ctx context.Context, in *CreateProviderScheduleRequest, opts ...grpc.CallOption) (*CreateProviderScheduleResponse, error)
	UpdateProviderSchedule(ctx context.Context, in *UpdateProviderScheduleRequest, opts ...grpc.CallOption) (*UpdateProviderScheduleResponse, error)
	ListProviderSchedules(ctx context.Context, in *ListProviderSchedulesRequest, opts ...grpc.CallOption) (*ListProviderSchedulesResponse, error)
	DeleteProviderSchedule(ctx context.Context, in *DeleteProviderScheduleRequest, opts ...grpc.CallOption) (*DeleteProviderScheduleResponse, error)
	ExpandSchedule(ctx context.Context, in *ExpandScheduleRequest, opts ...grpc.CallOption) (*ExpandScheduleResponse, error)
	MaterializeSchedule(ctx context.Context, in *MaterializeScheduleRequest, opts ...grpc.CallOption) (*MaterializeScheduleResponse, error)
}

type calendarServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCalendarServiceClient(cc grpc.ClientConnInterface) CalendarServiceClient {
	return &calendarServiceClient{cc}
}

func (c *calendarServiceClient) ListServices(ctx context.Context, in *ListServicesRequest, opts ...grpc.CallOption) (*ListServicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListServicesResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListServices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CreateService(ctx context.Context, in *CreateServiceRequest, opts ...grpc.CallOption) (*CreateServiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateServiceResponse)
	err := c.cc.Invoke(ctx, CalendarService_CreateService_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) UpdateService(ctx context.Context, in *UpdateServiceRequest, opts ...grpc.CallOption) (*UpdateServiceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateServiceResponse)
	err := c.cc.Invoke(ctx, CalendarService_UpdateService_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProvidersResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListProviders_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListProviderServices(ctx context.Context, in *ListProviderServicesRequest, opts ...grpc.CallOption) (*ListProviderServicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProviderServicesResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListProviderServices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) SetProviderServices(ctx context.Context, in *SetProviderServicesRequest, opts ...grpc.CallOption) (*SetProviderServicesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetProviderServicesResponse)
	err := c.cc.Invoke(ctx, CalendarService_SetProviderServices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) UpdateProviderProfile(ctx context.Context, in *UpdateProviderProfileRequest, opts ...grpc.CallOption) (*UpdateProviderProfileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateProviderProfileResponse)
	err := c.cc.Invoke(ctx, CalendarService_UpdateProviderProfile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CreateSlot(ctx context.Context, in *CreateSlotRequest, opts ...grpc.CallOption) (*CreateSlotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSlotResponse)
	err := c.cc.Invoke(ctx, CalendarService_CreateSlot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) UpdateSlot(ctx context.Context, in *UpdateSlotRequest, opts ...grpc.CallOption) (*UpdateSlotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateSlotResponse)
	err := c.cc.Invoke(ctx, CalendarService_UpdateSlot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) DeleteSlot(ctx context.Context, in *DeleteSlotRequest, opts ...grpc.CallOption) (*DeleteSlotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteSlotResponse)
	err := c.cc.Invoke(ctx, CalendarService_DeleteSlot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) FindFreeSlots(ctx context.Context, in *FindFreeSlotsRequest, opts ...grpc.CallOption) (*FindFreeSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FindFreeSlotsResponse)
	err := c.cc.Invoke(ctx, CalendarService_FindFreeSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListFreeSlots(ctx context.Context, in *ListFreeSlotsRequest, opts ...grpc.CallOption) (*ListFreeSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFreeSlotsResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListFreeSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListProviderSlots(ctx context.Context, in *ListProviderSlotsRequest, opts ...grpc.CallOption) (*ListProviderSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProviderSlotsResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListProviderSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CreateWeekSlots(ctx context.Context, in *CreateWeekSlotsRequest, opts ...grpc.CallOption) (*CreateWeekSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateWeekSlotsResponse)
	err := c.cc.Invoke(ctx, CalendarService_CreateWeekSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) BulkCancelProviderSlots(ctx context.Context, in *BulkCancelProviderSlotsRequest, opts ...grpc.CallOption) (*BulkCancelProviderSlotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkCancelProviderSlotsResponse)
	err := c.cc.Invoke(ctx, CalendarService_BulkCancelProviderSlots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CheckAvailability(ctx context.Context, in *CheckAvailabilityRequest, opts ...grpc.CallOption) (*CheckAvailabilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckAvailabilityResponse)
	err := c.cc.Invoke(ctx, CalendarService_CheckAvailability_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CreateBooking(ctx context.Context, in *CreateBookingRequest, opts ...grpc.CallOption) (*CreateBookingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateBookingResponse)
	err := c.cc.Invoke(ctx, CalendarService_CreateBooking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ConfirmBooking(ctx context.Context, in *ConfirmBookingRequest, opts ...grpc.CallOption) (*ConfirmBookingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmBookingResponse)
	err := c.cc.Invoke(ctx, CalendarService_ConfirmBooking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CancelBooking(ctx context.Context, in *CancelBookingRequest, opts ...grpc.CallOption) (*CancelBookingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelBookingResponse)
	err := c.cc.Invoke(ctx, CalendarService_CancelBooking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) GetBooking(ctx context.Context, in *GetBookingRequest, opts ...grpc.CallOption) (*GetBookingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBookingResponse)
	err := c.cc.Invoke(ctx, CalendarService_GetBooking_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListBookings(ctx context.Context, in *ListBookingsRequest, opts ...grpc.CallOption) (*ListBookingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListBookingsResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListBookings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListProviderBookings(ctx context.Context, in *ListProviderBookingsRequest, opts ...grpc.CallOption) (*ListProviderBookingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProviderBookingsResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListProviderBookings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) CreateProviderSchedule(ctx context.Context, in *CreateProviderScheduleRequest, opts ...grpc.CallOption) (*CreateProviderScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateProviderScheduleResponse)
	err := c.cc.Invoke(ctx, CalendarService_CreateProviderSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) UpdateProviderSchedule(ctx context.Context, in *UpdateProviderScheduleRequest, opts ...grpc.CallOption) (*UpdateProviderScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateProviderScheduleResponse)
	err := c.cc.Invoke(ctx, CalendarService_UpdateProviderSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ListProviderSchedules(ctx context.Context, in *ListProviderSchedulesRequest, opts ...grpc.CallOption) (*ListProviderSchedulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListProviderSchedulesResponse)
	err := c.cc.Invoke(ctx, CalendarService_ListProviderSchedules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) DeleteProviderSchedule(ctx context.Context, in *DeleteProviderScheduleRequest, opts ...grpc.CallOption) (*DeleteProviderScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteProviderScheduleResponse)
	err := c.cc.Invoke(ctx, CalendarService_DeleteProviderSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) ExpandSchedule(ctx context.Context, in *ExpandScheduleRequest, opts ...grpc.CallOption) (*ExpandScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExpandScheduleResponse)
	err := c.cc.Invoke(ctx, CalendarService_ExpandSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *calendarServiceClient) MaterializeSchedule(ctx context.Context, in *MaterializeScheduleRequest, opts ...grpc.CallOption) (*MaterializeScheduleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MaterializeScheduleResponse)
	err := c.cc.Invoke(ctx, CalendarService_MaterializeSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CalendarServiceServer is the server API for CalendarService service.
// All implementations must embed UnimplementedCalendarServiceServer
// for forward compatibility.
//
// CalendarService — ядро бронирования: каталог услуг, слоты провайдеров,
// бронирования и расписания. Потребляется внешними клиентами по gRPC;
// ничего не знает о Telegram и прочих каналах доставки.
type CalendarServiceServer interface {
	// Каталог.
	ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error)
	CreateService(context.Context, *CreateServiceRequest) (*CreateServiceResponse, error)
	UpdateService(context.Context, *UpdateServiceRequest) (*UpdateServiceResponse, error)
	ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error)
	ListProviderServices(context.Context, *ListProviderServicesRequest) (*ListProviderServicesResponse, error)
	SetProviderServices(context.Context, *SetProviderServicesRequest) (*SetProviderServicesResponse, error)
	UpdateProviderProfile(context.Context, *UpdateProviderProfileRequest) (*UpdateProviderProfileResponse, error)
	// Слоты.
	CreateSlot(context.Context, *CreateSlotRequest) (*CreateSlotResponse, error)
	UpdateSlot(context.Context, *UpdateSlotRequest) (*UpdateSlotResponse, error)
	DeleteSlot(context.Context, *DeleteSlotRequest) (*DeleteSlotResponse, error)
	FindFreeSlots(context.Context, *FindFreeSlotsRequest) (*FindFreeSlotsResponse, error)
	ListFreeSlots(context.Context, *ListFreeSlotsRequest) (*ListFreeSlotsResponse, error)
	ListProviderSlots(context.Context, *ListProviderSlotsRequest) (*ListProviderSlotsResponse, error)
	CreateWeekSlots(context.Context, *CreateWeekSlotsRequest) (*CreateWeekSlotsResponse, error)
	BulkCancelProviderSlots(context.Context, *BulkCancelProviderSlotsRequest) (*BulkCancelProviderSlotsResponse, error)
	// Бронирования.
	CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error)
	CreateBooking(context.Context, *CreateBookingRequest) (*CreateBookingResponse, error)
	ConfirmBooking(context.Context, *ConfirmBookingRequest) (*ConfirmBookingResponse, error)
	CancelBooking(context.Context, *CancelBookingRequest) (*CancelBookingResponse, error)
	GetBooking(context.Context, *GetBookingRequest) (*GetBookingResponse, error)
	ListBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error)
	ListProviderBookings(context.Context, *ListProviderBookingsRequest) (*ListProviderBookingsResponse, error)
	// Расписания (шаблоны повторяющихся слотов).
	CreateProviderSchedule(context.Context, *CreateProviderScheduleRequest) (*CreateProviderScheduleResponse, error)
	UpdateProviderSchedule(context.Context, *UpdateProviderScheduleRequest) (*UpdateProviderScheduleResponse, error)
	ListProviderSchedules(context.Context, *ListProviderSchedulesRequest) (*ListProviderSchedulesResponse, error)
	DeleteProviderSchedule(context.Context, *DeleteProviderScheduleRequest) (*DeleteProviderScheduleResponse, error)
	ExpandSchedule(context.Context, *ExpandScheduleRequest) (*ExpandScheduleResponse, error)
	MaterializeSchedule(context.Context, *MaterializeScheduleRequest) (*MaterializeScheduleResponse, error)
	mustEmbedUnimplementedCalendarServiceServer()
}

// UnimplementedCalendarServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCalendarServiceServer struct{}

func (UnimplementedCalendarServiceServer) ListServices(context.Context, *ListServicesRequest) (*ListServicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListServices not implemented")
}
func (UnimplementedCalendarServiceServer) CreateService(context.Context, *CreateServiceRequest) (*CreateServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateService not implemented")
}
func (UnimplementedCalendarServiceServer) UpdateService(context.Context, *UpdateServiceRequest) (*UpdateServiceResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateService not implemented")
}
func (UnimplementedCalendarServiceServer) ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviders not implemented")
}
func (UnimplementedCalendarServiceServer) ListProviderServices(context.Context, *ListProviderServicesRequest) (*ListProviderServicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviderServices not implemented")
}
func (UnimplementedCalendarServiceServer) SetProviderServices(context.Context, *SetProviderServicesRequest) (*SetProviderServicesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetProviderServices not implemented")
}
func (UnimplementedCalendarServiceServer) UpdateProviderProfile(context.Context, *UpdateProviderProfileRequest) (*UpdateProviderProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProviderProfile not implemented")
}
func (UnimplementedCalendarServiceServer) CreateSlot(context.Context, *CreateSlotRequest) (*CreateSlotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSlot not implemented")
}
func (UnimplementedCalendarServiceServer) UpdateSlot(context.Context, *UpdateSlotRequest) (*UpdateSlotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateSlot not implemented")
}
func (UnimplementedCalendarServiceServer) DeleteSlot(context.Context, *DeleteSlotRequest) (*DeleteSlotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSlot not implemented")
}
func (UnimplementedCalendarServiceServer) FindFreeSlots(context.Context, *FindFreeSlotsRequest) (*FindFreeSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FindFreeSlots not implemented")
}
func (UnimplementedCalendarServiceServer) ListFreeSlots(context.Context, *ListFreeSlotsRequest) (*ListFreeSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFreeSlots not implemented")
}
func (UnimplementedCalendarServiceServer) ListProviderSlots(context.Context, *ListProviderSlotsRequest) (*ListProviderSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviderSlots not implemented")
}
func (UnimplementedCalendarServiceServer) CreateWeekSlots(context.Context, *CreateWeekSlotsRequest) (*CreateWeekSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateWeekSlots not implemented")
}
func (UnimplementedCalendarServiceServer) BulkCancelProviderSlots(context.Context, *BulkCancelProviderSlotsRequest) (*BulkCancelProviderSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BulkCancelProviderSlots not implemented")
}
func (UnimplementedCalendarServiceServer) CheckAvailability(context.Context, *CheckAvailabilityRequest) (*CheckAvailabilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAvailability not implemented")
}
func (UnimplementedCalendarServiceServer) CreateBooking(context.Context, *CreateBookingRequest) (*CreateBookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBooking not implemented")
}
func (UnimplementedCalendarServiceServer) ConfirmBooking(context.Context, *ConfirmBookingRequest) (*ConfirmBookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ConfirmBooking not implemented")
}
func (UnimplementedCalendarServiceServer) CancelBooking(context.Context, *CancelBookingRequest) (*CancelBookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelBooking not implemented")
}
func (UnimplementedCalendarServiceServer) GetBooking(context.Context, *GetBookingRequest) (*GetBookingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBooking not implemented")
}
func (UnimplementedCalendarServiceServer) ListBookings(context.Context, *ListBookingsRequest) (*ListBookingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBookings not implemented")
}
func (UnimplementedCalendarServiceServer) ListProviderBookings(context.Context, *ListProviderBookingsRequest) (*ListProviderBookingsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviderBookings not implemented")
}
func (UnimplementedCalendarServiceServer) CreateProviderSchedule(context.Context, *CreateProviderScheduleRequest) (*CreateProviderScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProviderSchedule not implemented")
}
func (UnimplementedCalendarServiceServer) UpdateProviderSchedule(context.Context, *UpdateProviderScheduleRequest) (*UpdateProviderScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProviderSchedule not implemented")
}
func (UnimplementedCalendarServiceServer) ListProviderSchedules(context.Context, *ListProviderSchedulesRequest) (*ListProviderSchedulesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviderSchedules not implemented")
}
func (UnimplementedCalendarServiceServer) DeleteProviderSchedule(context.Context, *DeleteProviderScheduleRequest) (*DeleteProviderScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProviderSchedule not implemented")
}
func (UnimplementedCalendarServiceServer) ExpandSchedule(context.Context, *ExpandScheduleRequest) (*ExpandScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExpandSchedule not implemented")
}
func (UnimplementedCalendarServiceServer) MaterializeSchedule(context.Context, *MaterializeScheduleRequest) (*MaterializeScheduleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MaterializeSchedule not implemented")
}
func (UnimplementedCalendarServiceServer) mustEmbedUnimplementedCalendarServiceServer() {}
func (UnimplementedCalendarServiceServer) testEmbeddedByValue()                         {}

// UnsafeCalendarServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CalendarServiceServer will
// result in compilation errors.
type UnsafeCalendarServiceServer interface {
	mustEmbedUnimplementedCalendarServiceServer()
}

func RegisterCalendarServiceServer(s grpc.ServiceRegistrar, srv CalendarServiceServer) {
	// If the following call panics, it indicates UnimplementedCalendarServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CalendarService_ServiceDesc, srv)
}

func _CalendarService_ListServices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListServicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListServices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListServices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListServices(ctx, req.(*ListServicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CreateService_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateServiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CreateService(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CreateService_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CreateService(ctx, req.(*CreateServiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_UpdateService_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateServiceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).UpdateService(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_UpdateService_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).UpdateService(ctx, req.(*UpdateServiceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListProviders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProvidersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListProviders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListProviders_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListProviders(ctx, req.(*ListProvidersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListProviderServices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProviderServicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListProviderServices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListProviderServices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListProviderServices(ctx, req.(*ListProviderServicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_SetProviderServices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetProviderServicesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).SetProviderServices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_SetProviderServices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).SetProviderServices(ctx, req.(*SetProviderServicesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_UpdateProviderProfile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProviderProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).UpdateProviderProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_UpdateProviderProfile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).UpdateProviderProfile(ctx, req.(*UpdateProviderProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CreateSlot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CreateSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CreateSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CreateSlot(ctx, req.(*CreateSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_UpdateSlot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).UpdateSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_UpdateSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).UpdateSlot(ctx, req.(*UpdateSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_DeleteSlot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteSlotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).DeleteSlot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_DeleteSlot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).DeleteSlot(ctx, req.(*DeleteSlotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_FindFreeSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindFreeSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).FindFreeSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_FindFreeSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).FindFreeSlots(ctx, req.(*FindFreeSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListFreeSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFreeSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListFreeSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListFreeSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListFreeSlots(ctx, req.(*ListFreeSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListProviderSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProviderSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListProviderSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListProviderSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListProviderSlots(ctx, req.(*ListProviderSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CreateWeekSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateWeekSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CreateWeekSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CreateWeekSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CreateWeekSlots(ctx, req.(*CreateWeekSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_BulkCancelProviderSlots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkCancelProviderSlotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).BulkCancelProviderSlots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_BulkCancelProviderSlots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).BulkCancelProviderSlots(ctx, req.(*BulkCancelProviderSlotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CheckAvailability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckAvailabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CheckAvailability(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CheckAvailability_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CheckAvailability(ctx, req.(*CheckAvailabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CreateBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CreateBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CreateBooking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CreateBooking(ctx, req.(*CreateBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ConfirmBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ConfirmBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ConfirmBooking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ConfirmBooking(ctx, req.(*ConfirmBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CancelBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CancelBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CancelBooking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CancelBooking(ctx, req.(*CancelBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_GetBooking_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBookingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).GetBooking(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_GetBooking_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).GetBooking(ctx, req.(*GetBookingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListBookings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListBookingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListBookings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListBookings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListBookings(ctx, req.(*ListBookingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListProviderBookings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProviderBookingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListProviderBookings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListProviderBookings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListProviderBookings(ctx, req.(*ListProviderBookingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_CreateProviderSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateProviderScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).CreateProviderSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_CreateProviderSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).CreateProviderSchedule(ctx, req.(*CreateProviderScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_UpdateProviderSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateProviderScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).UpdateProviderSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_UpdateProviderSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).UpdateProviderSchedule(ctx, req.(*UpdateProviderScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ListProviderSchedules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProviderSchedulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ListProviderSchedules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ListProviderSchedules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ListProviderSchedules(ctx, req.(*ListProviderSchedulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_DeleteProviderSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteProviderScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).DeleteProviderSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_DeleteProviderSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).DeleteProviderSchedule(ctx, req.(*DeleteProviderScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_ExpandSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExpandScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).ExpandSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_ExpandSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).ExpandSchedule(ctx, req.(*ExpandScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CalendarService_MaterializeSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MaterializeScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalendarServiceServer).MaterializeSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CalendarService_MaterializeSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalendarServiceServer).MaterializeSchedule(ctx, req.(*MaterializeScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CalendarService_ServiceDesc is the grpc.ServiceDesc for CalendarService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CalendarService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "calendar.v1.CalendarService",
	HandlerType: (*CalendarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListServices",
			Handler:    _CalendarService_ListServices_Handler,
		},
		{
			MethodName: "CreateService",
			Handler:    _CalendarService_CreateService_Handler,
		},
		{
			MethodName: "UpdateService",
			Handler:    _CalendarService_UpdateService_Handler,
		},
		{
			MethodName: "ListProviders",
			Handler:    _CalendarService_ListProviders_Handler,
		},
		{
			MethodName: "ListProviderServices",
			Handler:    _CalendarService_ListProviderServices_Handler,
		},
		{
			MethodName: "SetProviderServices",
			Handler:    _CalendarService_SetProviderServices_Handler,
		},
		{
			MethodName: "UpdateProviderProfile",
			Handler:    _CalendarService_UpdateProviderProfile_Handler,
		},
		{
			MethodName: "CreateSlot",
			Handler:    _CalendarService_CreateSlot_Handler,
		},
		{
			MethodName: "UpdateSlot",
			Handler:    _CalendarService_UpdateSlot_Handler,
		},
		{
			MethodName: "DeleteSlot",
			Handler:    _CalendarService_DeleteSlot_Handler,
		},
		{
			MethodName: "FindFreeSlots",
			Handler:    _CalendarService_FindFreeSlots_Handler,
		},
		{
			MethodName: "ListFreeSlots",
			Handler:    _CalendarService_ListFreeSlots_Handler,
		},
		{
			MethodName: "ListProviderSlots",
			Handler:    _CalendarService_ListProviderSlots_Handler,
		},
		{
			MethodName: "CreateWeekSlots",
			Handler:    _CalendarService_CreateWeekSlots_Handler,
		},
		{
			MethodName: "BulkCancelProviderSlots",
			Handler:    _CalendarService_BulkCancelProviderSlots_Handler,
		},
		{
			MethodName: "CheckAvailability",
			Handler:    _CalendarService_CheckAvailability_Handler,
		},
		{
			MethodName: "CreateBooking",
			Handler:    _CalendarService_CreateBooking_Handler,
		},
		{
			MethodName: "ConfirmBooking",
			Handler:    _CalendarService_ConfirmBooking_Handler,
		},
		{
			MethodName: "CancelBooking",
			Handler:    _CalendarService_CancelBooking_Handler,
		},
		{
			MethodName: "GetBooking",
			Handler:    _CalendarService_GetBooking_Handler,
		},
		{
			MethodName: "ListBookings",
			Handler:    _CalendarService_ListBookings_Handler,
		},
		{
			MethodName: "ListProviderBookings",
			Handler:    _CalendarService_ListProviderBookings_Handler,
		},
		{
			MethodName: "CreateProviderSchedule",
			Handler:    _CalendarService_CreateProviderSchedule_Handler,
		},
		{
			MethodName: "UpdateProviderSchedule",
			Handler:    _CalendarService_UpdateProviderSchedule_Handler,
		},
		{
			MethodName: "ListProviderSchedules",
			Handler:    _CalendarService_ListProviderSchedules_Handler,
		},
		{
			MethodName: "DeleteProviderSchedule",
			Handler:    _CalendarService_DeleteProviderSchedule_Handler,
		},
		{
			MethodName: "ExpandSchedule",
			Handler:    _CalendarService_ExpandSchedule_Handler,
		},
		{
			MethodName: "MaterializeSchedule",
			Handler:    _CalendarService_MaterializeSchedule_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "calendar/v1/calendar.proto",
}
