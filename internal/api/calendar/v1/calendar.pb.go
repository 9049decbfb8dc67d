// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: calendar/v1/calendar.proto

package calendarpb

import (
	v1 "github.com/appomat/core/internal/api/common/v1"
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

type ListServicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OnlyActive    bool                   `protobuf:"varint,1,opt,name=only_active,json=onlyActive,proto3" json:"only_active,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListServicesRequest) Reset() {
	*x = ListServicesRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListServicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListServicesRequest) ProtoMessage() {}

func (x *ListServicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListServicesRequest.ProtoReflect.Descriptor instead.
func (*ListServicesRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{0}
}

func (x *ListServicesRequest) GetOnlyActive() bool {
	if x != nil {
		return x.OnlyActive
	}
	return false
}

func (x *ListServicesRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListServicesRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListServicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Services      []*v1.Service          `protobuf:"bytes,1,rep,name=services,proto3" json:"services,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListServicesResponse) Reset() {
	*x = ListServicesResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListServicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListServicesResponse) ProtoMessage() {}

func (x *ListServicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListServicesResponse.ProtoReflect.Descriptor instead.
func (*ListServicesResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{1}
}

func (x *ListServicesResponse) GetServices() []*v1.Service {
	if x != nil {
		return x.Services
	}
	return nil
}

func (x *ListServicesResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type CreateServiceRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Name               string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description        string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	DefaultDurationMin int32                  `protobuf:"varint,3,opt,name=default_duration_min,json=defaultDurationMin,proto3" json:"default_duration_min,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateServiceRequest) Reset() {
	*x = CreateServiceRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateServiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateServiceRequest) ProtoMessage() {}

func (x *CreateServiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateServiceRequest.ProtoReflect.Descriptor instead.
func (*CreateServiceRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{2}
}

func (x *CreateServiceRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateServiceRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateServiceRequest) GetDefaultDurationMin() int32 {
	if x != nil {
		return x.DefaultDurationMin
	}
	return 0
}

type CreateServiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Service       *v1.Service            `protobuf:"bytes,1,opt,name=service,proto3" json:"service,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateServiceResponse) Reset() {
	*x = CreateServiceResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateServiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateServiceResponse) ProtoMessage() {}

func (x *CreateServiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateServiceResponse.ProtoReflect.Descriptor instead.
func (*CreateServiceResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{3}
}

func (x *CreateServiceResponse) GetService() *v1.Service {
	if x != nil {
		return x.Service
	}
	return nil
}

type UpdateServiceRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ServiceId   string                 `protobuf:"bytes,1,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Name        string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	// Не заданное поле оставляет текущее значение, правка имени или
	// описания не трогает активность услуги.
	IsActive      *bool `protobuf:"varint,4,opt,name=is_active,json=isActive,proto3,oneof" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateServiceRequest) Reset() {
	*x = UpdateServiceRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateServiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateServiceRequest) ProtoMessage() {}

func (x *UpdateServiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateServiceRequest.ProtoReflect.Descriptor instead.
func (*UpdateServiceRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateServiceRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *UpdateServiceRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateServiceRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UpdateServiceRequest) GetIsActive() bool {
	if x != nil && x.IsActive != nil {
		return *x.IsActive
	}
	return false
}

type UpdateServiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Service       *v1.Service            `protobuf:"bytes,1,opt,name=service,proto3" json:"service,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateServiceResponse) Reset() {
	*x = UpdateServiceResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateServiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateServiceResponse) ProtoMessage() {}

func (x *UpdateServiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateServiceResponse.ProtoReflect.Descriptor instead.
func (*UpdateServiceResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{5}
}

func (x *UpdateServiceResponse) GetService() *v1.Service {
	if x != nil {
		return x.Service
	}
	return nil
}

type ListProvidersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Пусто — все провайдеры; иначе только предлагающие услугу.
	ServiceId     string `protobuf:"bytes,1,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Page          int32  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvidersRequest) Reset() {
	*x = ListProvidersRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvidersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvidersRequest) ProtoMessage() {}

func (x *ListProvidersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvidersRequest.ProtoReflect.Descriptor instead.
func (*ListProvidersRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{6}
}

func (x *ListProvidersRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *ListProvidersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListProvidersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListProvidersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Providers     []*v1.Provider         `protobuf:"bytes,1,rep,name=providers,proto3" json:"providers,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProvidersResponse) Reset() {
	*x = ListProvidersResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProvidersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProvidersResponse) ProtoMessage() {}

func (x *ListProvidersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProvidersResponse.ProtoReflect.Descriptor instead.
func (*ListProvidersResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{7}
}

func (x *ListProvidersResponse) GetProviders() []*v1.Provider {
	if x != nil {
		return x.Providers
	}
	return nil
}

func (x *ListProvidersResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type ListProviderServicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderServicesRequest) Reset() {
	*x = ListProviderServicesRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderServicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderServicesRequest) ProtoMessage() {}

func (x *ListProviderServicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderServicesRequest.ProtoReflect.Descriptor instead.
func (*ListProviderServicesRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{8}
}

func (x *ListProviderServicesRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

type ListProviderServicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provider      *v1.Provider           `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	Services      []*v1.Service          `protobuf:"bytes,2,rep,name=services,proto3" json:"services,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderServicesResponse) Reset() {
	*x = ListProviderServicesResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderServicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderServicesResponse) ProtoMessage() {}

func (x *ListProviderServicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderServicesResponse.ProtoReflect.Descriptor instead.
func (*ListProviderServicesResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{9}
}

func (x *ListProviderServicesResponse) GetProvider() *v1.Provider {
	if x != nil {
		return x.Provider
	}
	return nil
}

func (x *ListProviderServicesResponse) GetServices() []*v1.Service {
	if x != nil {
		return x.Services
	}
	return nil
}

type SetProviderServicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceIds    []string               `protobuf:"bytes,2,rep,name=service_ids,json=serviceIds,proto3" json:"service_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProviderServicesRequest) Reset() {
	*x = SetProviderServicesRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProviderServicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProviderServicesRequest) ProtoMessage() {}

func (x *SetProviderServicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProviderServicesRequest.ProtoReflect.Descriptor instead.
func (*SetProviderServicesRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{10}
}

func (x *SetProviderServicesRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *SetProviderServicesRequest) GetServiceIds() []string {
	if x != nil {
		return x.ServiceIds
	}
	return nil
}

type SetProviderServicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provider      *v1.Provider           `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	Services      []*v1.Service          `protobuf:"bytes,2,rep,name=services,proto3" json:"services,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProviderServicesResponse) Reset() {
	*x = SetProviderServicesResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProviderServicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProviderServicesResponse) ProtoMessage() {}

func (x *SetProviderServicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProviderServicesResponse.ProtoReflect.Descriptor instead.
func (*SetProviderServicesResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{11}
}

func (x *SetProviderServicesResponse) GetProvider() *v1.Provider {
	if x != nil {
		return x.Provider
	}
	return nil
}

func (x *SetProviderServicesResponse) GetServices() []*v1.Service {
	if x != nil {
		return x.Services
	}
	return nil
}

type UpdateProviderProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	DisplayName   string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProviderProfileRequest) Reset() {
	*x = UpdateProviderProfileRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProviderProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProviderProfileRequest) ProtoMessage() {}

func (x *UpdateProviderProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProviderProfileRequest.ProtoReflect.Descriptor instead.
func (*UpdateProviderProfileRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateProviderProfileRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *UpdateProviderProfileRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *UpdateProviderProfileRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type UpdateProviderProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provider      *v1.Provider           `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProviderProfileResponse) Reset() {
	*x = UpdateProviderProfileResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProviderProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProviderProfileResponse) ProtoMessage() {}

func (x *UpdateProviderProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProviderProfileResponse.ProtoReflect.Descriptor instead.
func (*UpdateProviderProfileResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateProviderProfileResponse) GetProvider() *v1.Provider {
	if x != nil {
		return x.Provider
	}
	return nil
}

type CreateSlotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Range         *v1.TimeRange          `protobuf:"bytes,3,opt,name=range,proto3" json:"range,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSlotRequest) Reset() {
	*x = CreateSlotRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSlotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSlotRequest) ProtoMessage() {}

func (x *CreateSlotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSlotRequest.ProtoReflect.Descriptor instead.
func (*CreateSlotRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{14}
}

func (x *CreateSlotRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *CreateSlotRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *CreateSlotRequest) GetRange() *v1.TimeRange {
	if x != nil {
		return x.Range
	}
	return nil
}

type CreateSlotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slot          *v1.Slot               `protobuf:"bytes,1,opt,name=slot,proto3" json:"slot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSlotResponse) Reset() {
	*x = CreateSlotResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSlotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSlotResponse) ProtoMessage() {}

func (x *CreateSlotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSlotResponse.ProtoReflect.Descriptor instead.
func (*CreateSlotResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{15}
}

func (x *CreateSlotResponse) GetSlot() *v1.Slot {
	if x != nil {
		return x.Slot
	}
	return nil
}

type UpdateSlotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SlotId        string                 `protobuf:"bytes,1,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Range         *v1.TimeRange          `protobuf:"bytes,3,opt,name=range,proto3" json:"range,omitempty"`
	Status        v1.SlotStatus          `protobuf:"varint,4,opt,name=status,proto3,enum=common.v1.SlotStatus" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSlotRequest) Reset() {
	*x = UpdateSlotRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSlotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSlotRequest) ProtoMessage() {}

func (x *UpdateSlotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSlotRequest.ProtoReflect.Descriptor instead.
func (*UpdateSlotRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{16}
}

func (x *UpdateSlotRequest) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

func (x *UpdateSlotRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *UpdateSlotRequest) GetRange() *v1.TimeRange {
	if x != nil {
		return x.Range
	}
	return nil
}

func (x *UpdateSlotRequest) GetStatus() v1.SlotStatus {
	if x != nil {
		return x.Status
	}
	return v1.SlotStatus(0)
}

type UpdateSlotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slot          *v1.Slot               `protobuf:"bytes,1,opt,name=slot,proto3" json:"slot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateSlotResponse) Reset() {
	*x = UpdateSlotResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateSlotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateSlotResponse) ProtoMessage() {}

func (x *UpdateSlotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateSlotResponse.ProtoReflect.Descriptor instead.
func (*UpdateSlotResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateSlotResponse) GetSlot() *v1.Slot {
	if x != nil {
		return x.Slot
	}
	return nil
}

type DeleteSlotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SlotId        string                 `protobuf:"bytes,1,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSlotRequest) Reset() {
	*x = DeleteSlotRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSlotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSlotRequest) ProtoMessage() {}

func (x *DeleteSlotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSlotRequest.ProtoReflect.Descriptor instead.
func (*DeleteSlotRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteSlotRequest) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

type DeleteSlotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteSlotResponse) Reset() {
	*x = DeleteSlotResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteSlotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteSlotResponse) ProtoMessage() {}

func (x *DeleteSlotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteSlotResponse.ProtoReflect.Descriptor instead.
func (*DeleteSlotResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{19}
}

type FindFreeSlotsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=end,proto3" json:"end,omitempty"`
	Limit         int32                  `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindFreeSlotsRequest) Reset() {
	*x = FindFreeSlotsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindFreeSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindFreeSlotsRequest) ProtoMessage() {}

func (x *FindFreeSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindFreeSlotsRequest.ProtoReflect.Descriptor instead.
func (*FindFreeSlotsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{20}
}

func (x *FindFreeSlotsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *FindFreeSlotsRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *FindFreeSlotsRequest) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *FindFreeSlotsRequest) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

func (x *FindFreeSlotsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type FindFreeSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slots         []*v1.Slot             `protobuf:"bytes,1,rep,name=slots,proto3" json:"slots,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FindFreeSlotsResponse) Reset() {
	*x = FindFreeSlotsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FindFreeSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindFreeSlotsResponse) ProtoMessage() {}

func (x *FindFreeSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindFreeSlotsResponse.ProtoReflect.Descriptor instead.
func (*FindFreeSlotsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{21}
}

func (x *FindFreeSlotsResponse) GetSlots() []*v1.Slot {
	if x != nil {
		return x.Slots
	}
	return nil
}

type ListFreeSlotsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=end,proto3" json:"end,omitempty"`
	Page          int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFreeSlotsRequest) Reset() {
	*x = ListFreeSlotsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFreeSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFreeSlotsRequest) ProtoMessage() {}

func (x *ListFreeSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFreeSlotsRequest.ProtoReflect.Descriptor instead.
func (*ListFreeSlotsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{22}
}

func (x *ListFreeSlotsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *ListFreeSlotsRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *ListFreeSlotsRequest) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *ListFreeSlotsRequest) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

func (x *ListFreeSlotsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListFreeSlotsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListFreeSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slots         []*v1.Slot             `protobuf:"bytes,1,rep,name=slots,proto3" json:"slots,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFreeSlotsResponse) Reset() {
	*x = ListFreeSlotsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFreeSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFreeSlotsResponse) ProtoMessage() {}

func (x *ListFreeSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFreeSlotsResponse.ProtoReflect.Descriptor instead.
func (*ListFreeSlotsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{23}
}

func (x *ListFreeSlotsResponse) GetSlots() []*v1.Slot {
	if x != nil {
		return x.Slots
	}
	return nil
}

func (x *ListFreeSlotsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type ListProviderSlotsRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ProviderId      string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	From            *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To              *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	IncludeBookings bool                   `protobuf:"varint,4,opt,name=include_bookings,json=includeBookings,proto3" json:"include_bookings,omitempty"`
	Page            int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	PageSize        int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ListProviderSlotsRequest) Reset() {
	*x = ListProviderSlotsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderSlotsRequest) ProtoMessage() {}

func (x *ListProviderSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderSlotsRequest.ProtoReflect.Descriptor instead.
func (*ListProviderSlotsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{24}
}

func (x *ListProviderSlotsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *ListProviderSlotsRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListProviderSlotsRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

func (x *ListProviderSlotsRequest) GetIncludeBookings() bool {
	if x != nil {
		return x.IncludeBookings
	}
	return false
}

func (x *ListProviderSlotsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListProviderSlotsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type SlotWithBooking struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Slot  *v1.Slot               `protobuf:"bytes,1,opt,name=slot,proto3" json:"slot,omitempty"`
	// Активное бронирование слота, если есть. Заполняется тем же запросом,
	// что и сам слот, поэтому не бывает рассогласованным со статусом.
	Booking       *v1.Booking `protobuf:"bytes,2,opt,name=booking,proto3" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SlotWithBooking) Reset() {
	*x = SlotWithBooking{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SlotWithBooking) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SlotWithBooking) ProtoMessage() {}

func (x *SlotWithBooking) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SlotWithBooking.ProtoReflect.Descriptor instead.
func (*SlotWithBooking) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{25}
}

func (x *SlotWithBooking) GetSlot() *v1.Slot {
	if x != nil {
		return x.Slot
	}
	return nil
}

func (x *SlotWithBooking) GetBooking() *v1.Booking {
	if x != nil {
		return x.Booking
	}
	return nil
}

type ListProviderSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slots         []*SlotWithBooking     `protobuf:"bytes,1,rep,name=slots,proto3" json:"slots,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderSlotsResponse) Reset() {
	*x = ListProviderSlotsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderSlotsResponse) ProtoMessage() {}

func (x *ListProviderSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderSlotsResponse.ProtoReflect.Descriptor instead.
func (*ListProviderSlotsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{26}
}

func (x *ListProviderSlotsResponse) GetSlots() []*SlotWithBooking {
	if x != nil {
		return x.Slots
	}
	return nil
}

func (x *ListProviderSlotsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type CreateWeekSlotsRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	ProviderId string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId  string                 `protobuf:"bytes,2,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	// 0-6, где 0 — понедельник.
	Weekdays []int32 `protobuf:"varint,3,rep,packed,name=weekdays,proto3" json:"weekdays,omitempty"`
	// Времена начала в локальном поясе, формат "HH:MM".
	Times    []string               `protobuf:"bytes,4,rep,name=times,proto3" json:"times,omitempty"`
	DateFrom *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=date_from,json=dateFrom,proto3" json:"date_from,omitempty"`
	// Исключающая граница.
	DateTo        *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=date_to,json=dateTo,proto3" json:"date_to,omitempty"`
	DurationMin   int32                  `protobuf:"varint,7,opt,name=duration_min,json=durationMin,proto3" json:"duration_min,omitempty"`
	TzOffsetMin   int32                  `protobuf:"varint,8,opt,name=tz_offset_min,json=tzOffsetMin,proto3" json:"tz_offset_min,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWeekSlotsRequest) Reset() {
	*x = CreateWeekSlotsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWeekSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWeekSlotsRequest) ProtoMessage() {}

func (x *CreateWeekSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWeekSlotsRequest.ProtoReflect.Descriptor instead.
func (*CreateWeekSlotsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{27}
}

func (x *CreateWeekSlotsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *CreateWeekSlotsRequest) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *CreateWeekSlotsRequest) GetWeekdays() []int32 {
	if x != nil {
		return x.Weekdays
	}
	return nil
}

func (x *CreateWeekSlotsRequest) GetTimes() []string {
	if x != nil {
		return x.Times
	}
	return nil
}

func (x *CreateWeekSlotsRequest) GetDateFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.DateFrom
	}
	return nil
}

func (x *CreateWeekSlotsRequest) GetDateTo() *timestamppb.Timestamp {
	if x != nil {
		return x.DateTo
	}
	return nil
}

func (x *CreateWeekSlotsRequest) GetDurationMin() int32 {
	if x != nil {
		return x.DurationMin
	}
	return 0
}

func (x *CreateWeekSlotsRequest) GetTzOffsetMin() int32 {
	if x != nil {
		return x.TzOffsetMin
	}
	return 0
}

type SlotFailure struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StartsAt      *timestamppb.Timestamp `protobuf:"bytes,1,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SlotFailure) Reset() {
	*x = SlotFailure{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SlotFailure) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SlotFailure) ProtoMessage() {}

func (x *SlotFailure) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SlotFailure.ProtoReflect.Descriptor instead.
func (*SlotFailure) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{28}
}

func (x *SlotFailure) GetStartsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartsAt
	}
	return nil
}

func (x *SlotFailure) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CreateWeekSlotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slots         []*v1.Slot             `protobuf:"bytes,1,rep,name=slots,proto3" json:"slots,omitempty"`
	Failures      []*SlotFailure         `protobuf:"bytes,2,rep,name=failures,proto3" json:"failures,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWeekSlotsResponse) Reset() {
	*x = CreateWeekSlotsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWeekSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWeekSlotsResponse) ProtoMessage() {}

func (x *CreateWeekSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWeekSlotsResponse.ProtoReflect.Descriptor instead.
func (*CreateWeekSlotsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{29}
}

func (x *CreateWeekSlotsResponse) GetSlots() []*v1.Slot {
	if x != nil {
		return x.Slots
	}
	return nil
}

func (x *CreateWeekSlotsResponse) GetFailures() []*SlotFailure {
	if x != nil {
		return x.Failures
	}
	return nil
}

type BulkCancelProviderSlotsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	Start         *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=start,proto3" json:"start,omitempty"`
	End           *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=end,proto3" json:"end,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkCancelProviderSlotsRequest) Reset() {
	*x = BulkCancelProviderSlotsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkCancelProviderSlotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkCancelProviderSlotsRequest) ProtoMessage() {}

func (x *BulkCancelProviderSlotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkCancelProviderSlotsRequest.ProtoReflect.Descriptor instead.
func (*BulkCancelProviderSlotsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{30}
}

func (x *BulkCancelProviderSlotsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *BulkCancelProviderSlotsRequest) GetStart() *timestamppb.Timestamp {
	if x != nil {
		return x.Start
	}
	return nil
}

func (x *BulkCancelProviderSlotsRequest) GetEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.End
	}
	return nil
}

func (x *BulkCancelProviderSlotsRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type AffectedBooking struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookingId     string                 `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	SlotId        string                 `protobuf:"bytes,2,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	ClientId      string                 `protobuf:"bytes,3,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	ProviderId    string                 `protobuf:"bytes,4,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	ServiceId     string                 `protobuf:"bytes,5,opt,name=service_id,json=serviceId,proto3" json:"service_id,omitempty"`
	StartsAt      *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=starts_at,json=startsAt,proto3" json:"starts_at,omitempty"`
	EndsAt        *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=ends_at,json=endsAt,proto3" json:"ends_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AffectedBooking) Reset() {
	*x = AffectedBooking{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AffectedBooking) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AffectedBooking) ProtoMessage() {}

func (x *AffectedBooking) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AffectedBooking.ProtoReflect.Descriptor instead.
func (*AffectedBooking) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{31}
}

func (x *AffectedBooking) GetBookingId() string {
	if x != nil {
		return x.BookingId
	}
	return ""
}

func (x *AffectedBooking) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

func (x *AffectedBooking) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *AffectedBooking) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *AffectedBooking) GetServiceId() string {
	if x != nil {
		return x.ServiceId
	}
	return ""
}

func (x *AffectedBooking) GetStartsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartsAt
	}
	return nil
}

func (x *AffectedBooking) GetEndsAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndsAt
	}
	return nil
}

type BulkCancelProviderSlotsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	CancelledSlots    int32                  `protobuf:"varint,1,opt,name=cancelled_slots,json=cancelledSlots,proto3" json:"cancelled_slots,omitempty"`
	CancelledBookings int32                  `protobuf:"varint,2,opt,name=cancelled_bookings,json=cancelledBookings,proto3" json:"cancelled_bookings,omitempty"`
	AffectedBookings  []*AffectedBooking     `protobuf:"bytes,3,rep,name=affected_bookings,json=affectedBookings,proto3" json:"affected_bookings,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *BulkCancelProviderSlotsResponse) Reset() {
	*x = BulkCancelProviderSlotsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkCancelProviderSlotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkCancelProviderSlotsResponse) ProtoMessage() {}

func (x *BulkCancelProviderSlotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkCancelProviderSlotsResponse.ProtoReflect.Descriptor instead.
func (*BulkCancelProviderSlotsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{32}
}

func (x *BulkCancelProviderSlotsResponse) GetCancelledSlots() int32 {
	if x != nil {
		return x.CancelledSlots
	}
	return 0
}

func (x *BulkCancelProviderSlotsResponse) GetCancelledBookings() int32 {
	if x != nil {
		return x.CancelledBookings
	}
	return 0
}

func (x *BulkCancelProviderSlotsResponse) GetAffectedBookings() []*AffectedBooking {
	if x != nil {
		return x.AffectedBookings
	}
	return nil
}

type CheckAvailabilityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	SlotId        string                 `protobuf:"bytes,2,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckAvailabilityRequest) Reset() {
	*x = CheckAvailabilityRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAvailabilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAvailabilityRequest) ProtoMessage() {}

func (x *CheckAvailabilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAvailabilityRequest.ProtoReflect.Descriptor instead.
func (*CheckAvailabilityRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{33}
}

func (x *CheckAvailabilityRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *CheckAvailabilityRequest) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

type CheckAvailabilityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Available     bool                   `protobuf:"varint,1,opt,name=available,proto3" json:"available,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckAvailabilityResponse) Reset() {
	*x = CheckAvailabilityResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckAvailabilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckAvailabilityResponse) ProtoMessage() {}

func (x *CheckAvailabilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckAvailabilityResponse.ProtoReflect.Descriptor instead.
func (*CheckAvailabilityResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{34}
}

func (x *CheckAvailabilityResponse) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

func (x *CheckAvailabilityResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CreateBookingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	SlotId        string                 `protobuf:"bytes,2,opt,name=slot_id,json=slotId,proto3" json:"slot_id,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBookingRequest) Reset() {
	*x = CreateBookingRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBookingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBookingRequest) ProtoMessage() {}

func (x *CreateBookingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBookingRequest.ProtoReflect.Descriptor instead.
func (*CreateBookingRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{35}
}

func (x *CreateBookingRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *CreateBookingRequest) GetSlotId() string {
	if x != nil {
		return x.SlotId
	}
	return ""
}

func (x *CreateBookingRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type CreateBookingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Booking       *v1.Booking            `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateBookingResponse) Reset() {
	*x = CreateBookingResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateBookingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateBookingResponse) ProtoMessage() {}

func (x *CreateBookingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateBookingResponse.ProtoReflect.Descriptor instead.
func (*CreateBookingResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{36}
}

func (x *CreateBookingResponse) GetBooking() *v1.Booking {
	if x != nil {
		return x.Booking
	}
	return nil
}

type ConfirmBookingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookingId     string                 `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBookingRequest) Reset() {
	*x = ConfirmBookingRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBookingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBookingRequest) ProtoMessage() {}

func (x *ConfirmBookingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBookingRequest.ProtoReflect.Descriptor instead.
func (*ConfirmBookingRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{37}
}

func (x *ConfirmBookingRequest) GetBookingId() string {
	if x != nil {
		return x.BookingId
	}
	return ""
}

type ConfirmBookingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Booking       *v1.Booking            `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmBookingResponse) Reset() {
	*x = ConfirmBookingResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmBookingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmBookingResponse) ProtoMessage() {}

func (x *ConfirmBookingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmBookingResponse.ProtoReflect.Descriptor instead.
func (*ConfirmBookingResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{38}
}

func (x *ConfirmBookingResponse) GetBooking() *v1.Booking {
	if x != nil {
		return x.Booking
	}
	return nil
}

type CancelBookingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookingId     string                 `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBookingRequest) Reset() {
	*x = CancelBookingRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBookingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBookingRequest) ProtoMessage() {}

func (x *CancelBookingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBookingRequest.ProtoReflect.Descriptor instead.
func (*CancelBookingRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{39}
}

func (x *CancelBookingRequest) GetBookingId() string {
	if x != nil {
		return x.BookingId
	}
	return ""
}

func (x *CancelBookingRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CancelBookingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Booking       *v1.Booking            `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBookingResponse) Reset() {
	*x = CancelBookingResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBookingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBookingResponse) ProtoMessage() {}

func (x *CancelBookingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBookingResponse.ProtoReflect.Descriptor instead.
func (*CancelBookingResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{40}
}

func (x *CancelBookingResponse) GetBooking() *v1.Booking {
	if x != nil {
		return x.Booking
	}
	return nil
}

type GetBookingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BookingId     string                 `protobuf:"bytes,1,opt,name=booking_id,json=bookingId,proto3" json:"booking_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBookingRequest) Reset() {
	*x = GetBookingRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBookingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBookingRequest) ProtoMessage() {}

func (x *GetBookingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBookingRequest.ProtoReflect.Descriptor instead.
func (*GetBookingRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{41}
}

func (x *GetBookingRequest) GetBookingId() string {
	if x != nil {
		return x.BookingId
	}
	return ""
}

type GetBookingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Booking       *v1.Booking            `protobuf:"bytes,1,opt,name=booking,proto3" json:"booking,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBookingResponse) Reset() {
	*x = GetBookingResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBookingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBookingResponse) ProtoMessage() {}

func (x *GetBookingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBookingResponse.ProtoReflect.Descriptor instead.
func (*GetBookingResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{42}
}

func (x *GetBookingResponse) GetBooking() *v1.Booking {
	if x != nil {
		return x.Booking
	}
	return nil
}

type ListBookingsRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	ClientId string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	// Окно фильтрует по началу слота, не по времени создания записи.
	From          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Statuses      []v1.BookingStatus     `protobuf:"varint,4,rep,packed,name=statuses,proto3,enum=common.v1.BookingStatus" json:"statuses,omitempty"`
	Page          int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBookingsRequest) Reset() {
	*x = ListBookingsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBookingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBookingsRequest) ProtoMessage() {}

func (x *ListBookingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBookingsRequest.ProtoReflect.Descriptor instead.
func (*ListBookingsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{43}
}

func (x *ListBookingsRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ListBookingsRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListBookingsRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

func (x *ListBookingsRequest) GetStatuses() []v1.BookingStatus {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ListBookingsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListBookingsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListBookingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bookings      []*v1.Booking          `protobuf:"bytes,1,rep,name=bookings,proto3" json:"bookings,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListBookingsResponse) Reset() {
	*x = ListBookingsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListBookingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListBookingsResponse) ProtoMessage() {}

func (x *ListBookingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListBookingsResponse.ProtoReflect.Descriptor instead.
func (*ListBookingsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{44}
}

func (x *ListBookingsResponse) GetBookings() []*v1.Booking {
	if x != nil {
		return x.Bookings
	}
	return nil
}

func (x *ListBookingsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type ListProviderBookingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=to,proto3" json:"to,omitempty"`
	Statuses      []v1.BookingStatus     `protobuf:"varint,4,rep,packed,name=statuses,proto3,enum=common.v1.BookingStatus" json:"statuses,omitempty"`
	Page          int32                  `protobuf:"varint,5,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,6,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderBookingsRequest) Reset() {
	*x = ListProviderBookingsRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderBookingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderBookingsRequest) ProtoMessage() {}

func (x *ListProviderBookingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderBookingsRequest.ProtoReflect.Descriptor instead.
func (*ListProviderBookingsRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{45}
}

func (x *ListProviderBookingsRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *ListProviderBookingsRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *ListProviderBookingsRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

func (x *ListProviderBookingsRequest) GetStatuses() []v1.BookingStatus {
	if x != nil {
		return x.Statuses
	}
	return nil
}

func (x *ListProviderBookingsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListProviderBookingsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListProviderBookingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bookings      []*v1.Booking          `protobuf:"bytes,1,rep,name=bookings,proto3" json:"bookings,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderBookingsResponse) Reset() {
	*x = ListProviderBookingsResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderBookingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderBookingsResponse) ProtoMessage() {}

func (x *ListProviderBookingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderBookingsResponse.ProtoReflect.Descriptor instead.
func (*ListProviderBookingsResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{46}
}

func (x *ListProviderBookingsResponse) GetBookings() []*v1.Booking {
	if x != nil {
		return x.Bookings
	}
	return nil
}

func (x *ListProviderBookingsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

type CreateProviderScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	Schedule      *v1.ProviderSchedule   `protobuf:"bytes,2,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProviderScheduleRequest) Reset() {
	*x = CreateProviderScheduleRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProviderScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProviderScheduleRequest) ProtoMessage() {}

func (x *CreateProviderScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProviderScheduleRequest.ProtoReflect.Descriptor instead.
func (*CreateProviderScheduleRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{47}
}

func (x *CreateProviderScheduleRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

func (x *CreateProviderScheduleRequest) GetSchedule() *v1.ProviderSchedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type CreateProviderScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedule      *v1.ProviderSchedule   `protobuf:"bytes,1,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProviderScheduleResponse) Reset() {
	*x = CreateProviderScheduleResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProviderScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProviderScheduleResponse) ProtoMessage() {}

func (x *CreateProviderScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProviderScheduleResponse.ProtoReflect.Descriptor instead.
func (*CreateProviderScheduleResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{48}
}

func (x *CreateProviderScheduleResponse) GetSchedule() *v1.ProviderSchedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type UpdateProviderScheduleRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	// Полная замена правила, пояса и границ действия. Владелец шаблона
	// не меняется. Уже материализованные слоты не пересоздаются.
	Schedule      *v1.ProviderSchedule `protobuf:"bytes,2,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProviderScheduleRequest) Reset() {
	*x = UpdateProviderScheduleRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProviderScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProviderScheduleRequest) ProtoMessage() {}

func (x *UpdateProviderScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProviderScheduleRequest.ProtoReflect.Descriptor instead.
func (*UpdateProviderScheduleRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{49}
}

func (x *UpdateProviderScheduleRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *UpdateProviderScheduleRequest) GetSchedule() *v1.ProviderSchedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type UpdateProviderScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedule      *v1.ProviderSchedule   `protobuf:"bytes,1,opt,name=schedule,proto3" json:"schedule,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateProviderScheduleResponse) Reset() {
	*x = UpdateProviderScheduleResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateProviderScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateProviderScheduleResponse) ProtoMessage() {}

func (x *UpdateProviderScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateProviderScheduleResponse.ProtoReflect.Descriptor instead.
func (*UpdateProviderScheduleResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{50}
}

func (x *UpdateProviderScheduleResponse) GetSchedule() *v1.ProviderSchedule {
	if x != nil {
		return x.Schedule
	}
	return nil
}

type ListProviderSchedulesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProviderId    string                 `protobuf:"bytes,1,opt,name=provider_id,json=providerId,proto3" json:"provider_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderSchedulesRequest) Reset() {
	*x = ListProviderSchedulesRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderSchedulesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderSchedulesRequest) ProtoMessage() {}

func (x *ListProviderSchedulesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderSchedulesRequest.ProtoReflect.Descriptor instead.
func (*ListProviderSchedulesRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{51}
}

func (x *ListProviderSchedulesRequest) GetProviderId() string {
	if x != nil {
		return x.ProviderId
	}
	return ""
}

type ListProviderSchedulesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schedules     []*v1.ProviderSchedule `protobuf:"bytes,1,rep,name=schedules,proto3" json:"schedules,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProviderSchedulesResponse) Reset() {
	*x = ListProviderSchedulesResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProviderSchedulesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProviderSchedulesResponse) ProtoMessage() {}

func (x *ListProviderSchedulesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProviderSchedulesResponse.ProtoReflect.Descriptor instead.
func (*ListProviderSchedulesResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{52}
}

func (x *ListProviderSchedulesResponse) GetSchedules() []*v1.ProviderSchedule {
	if x != nil {
		return x.Schedules
	}
	return nil
}

type DeleteProviderScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProviderScheduleRequest) Reset() {
	*x = DeleteProviderScheduleRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProviderScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProviderScheduleRequest) ProtoMessage() {}

func (x *DeleteProviderScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProviderScheduleRequest.ProtoReflect.Descriptor instead.
func (*DeleteProviderScheduleRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{53}
}

func (x *DeleteProviderScheduleRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

type DeleteProviderScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteProviderScheduleResponse) Reset() {
	*x = DeleteProviderScheduleResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteProviderScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteProviderScheduleResponse) ProtoMessage() {}

func (x *DeleteProviderScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteProviderScheduleResponse.ProtoReflect.Descriptor instead.
func (*DeleteProviderScheduleResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{54}
}

type ExpandScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	WindowStart   *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=window_start,json=windowStart,proto3" json:"window_start,omitempty"`
	WindowEnd     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=window_end,json=windowEnd,proto3" json:"window_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpandScheduleRequest) Reset() {
	*x = ExpandScheduleRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[55]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpandScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpandScheduleRequest) ProtoMessage() {}

func (x *ExpandScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[55]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpandScheduleRequest.ProtoReflect.Descriptor instead.
func (*ExpandScheduleRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{55}
}

func (x *ExpandScheduleRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *ExpandScheduleRequest) GetWindowStart() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowStart
	}
	return nil
}

func (x *ExpandScheduleRequest) GetWindowEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowEnd
	}
	return nil
}

type ExpandScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intervals     []*v1.TimeRange        `protobuf:"bytes,1,rep,name=intervals,proto3" json:"intervals,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExpandScheduleResponse) Reset() {
	*x = ExpandScheduleResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[56]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExpandScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExpandScheduleResponse) ProtoMessage() {}

func (x *ExpandScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[56]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExpandScheduleResponse.ProtoReflect.Descriptor instead.
func (*ExpandScheduleResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{56}
}

func (x *ExpandScheduleResponse) GetIntervals() []*v1.TimeRange {
	if x != nil {
		return x.Intervals
	}
	return nil
}

type MaterializeScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	WindowStart   *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=window_start,json=windowStart,proto3" json:"window_start,omitempty"`
	WindowEnd     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=window_end,json=windowEnd,proto3" json:"window_end,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaterializeScheduleRequest) Reset() {
	*x = MaterializeScheduleRequest{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[57]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaterializeScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaterializeScheduleRequest) ProtoMessage() {}

func (x *MaterializeScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[57]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaterializeScheduleRequest.ProtoReflect.Descriptor instead.
func (*MaterializeScheduleRequest) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{57}
}

func (x *MaterializeScheduleRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

func (x *MaterializeScheduleRequest) GetWindowStart() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowStart
	}
	return nil
}

func (x *MaterializeScheduleRequest) GetWindowEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.WindowEnd
	}
	return nil
}

type MaterializeScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Slots         []*v1.Slot             `protobuf:"bytes,1,rep,name=slots,proto3" json:"slots,omitempty"`
	Failures      []*SlotFailure         `protobuf:"bytes,2,rep,name=failures,proto3" json:"failures,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MaterializeScheduleResponse) Reset() {
	*x = MaterializeScheduleResponse{}
	mi := &file_calendar_v1_calendar_proto_msgTypes[58]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MaterializeScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MaterializeScheduleResponse) ProtoMessage() {}

func (x *MaterializeScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_calendar_v1_calendar_proto_msgTypes[58]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MaterializeScheduleResponse.ProtoReflect.Descriptor instead.
func (*MaterializeScheduleResponse) Descriptor() ([]byte, []int) {
	return file_calendar_v1_calendar_proto_rawDescGZIP(), []int{58}
}

func (x *MaterializeScheduleResponse) GetSlots() []*v1.Slot {
	if x != nil {
		return x.Slots
	}
	return nil
}

func (x *MaterializeScheduleResponse) GetFailures() []*SlotFailure {
	if x != nil {
		return x.Failures
	}
	return nil
}

var File_calendar_v1_calendar_proto protoreflect.FileDescriptor

const file_calendar_v1_calendar_proto_rawDesc = "" +
	"\n" +
	"\x1acalendar/v1/calendar.proto\x12\vcalendar.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x16common/v1/common.proto\"g\n" +
	"\x13ListServicesRequest\x12\x1f\n" +
	"\vonly_active\x18\x01 \x01(\bR\n" +
	"onlyActive\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"g\n" +
	"\x14ListServicesResponse\x12.\n" +
	"\bservices\x18\x01 \x03(\v2\x12.common.v1.ServiceR\bservices\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"~\n" +
	"\x14CreateServiceRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x120\n" +
	"\x14default_duration_min\x18\x03 \x01(\x05R\x12defaultDurationMin\"E\n" +
	"\x15CreateServiceResponse\x12,\n" +
	"\aservice\x18\x01 \x01(\v2\x12.common.v1.ServiceR\aservice\"\x9b\x01\n" +
	"\x14UpdateServiceRequest\x12\x1d\n" +
	"\n" +
	"service_id\x18\x01 \x01(\tR\tserviceId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12 \n" +
	"\tis_active\x18\x04 \x01(\bH\x00R\bisActive\x88\x01\x01B\f\n" +
	"\n" +
	"_is_active\"E\n" +
	"\x15UpdateServiceResponse\x12,\n" +
	"\aservice\x18\x01 \x01(\v2\x12.common.v1.ServiceR\aservice\"f\n" +
	"\x14ListProvidersRequest\x12\x1d\n" +
	"\n" +
	"service_id\x18\x01 \x01(\tR\tserviceId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"k\n" +
	"\x15ListProvidersResponse\x121\n" +
	"\tproviders\x18\x01 \x03(\v2\x13.common.v1.ProviderR\tproviders\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\">\n" +
	"\x1bListProviderServicesRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\"\x7f\n" +
	"\x1cListProviderServicesResponse\x12/\n" +
	"\bprovider\x18\x01 \x01(\v2\x13.common.v1.ProviderR\bprovider\x12.\n" +
	"\bservices\x18\x02 \x03(\v2\x12.common.v1.ServiceR\bservices\"^\n" +
	"\x1aSetProviderServicesRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x1f\n" +
	"\vservice_ids\x18\x02 \x03(\tR\n" +
	"serviceIds\"~\n" +
	"\x1bSetProviderServicesResponse\x12/\n" +
	"\bprovider\x18\x01 \x01(\v2\x13.common.v1.ProviderR\bprovider\x12.\n" +
	"\bservices\x18\x02 \x03(\v2\x12.common.v1.ServiceR\bservices\"\x84\x01\n" +
	"\x1cUpdateProviderProfileRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"P\n" +
	"\x1dUpdateProviderProfileResponse\x12/\n" +
	"\bprovider\x18\x01 \x01(\v2\x13.common.v1.ProviderR\bprovider\"\x7f\n" +
	"\x11CreateSlotRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x12*\n" +
	"\x05range\x18\x03 \x01(\v2\x14.common.v1.TimeRangeR\x05range\"9\n" +
	"\x12CreateSlotResponse\x12#\n" +
	"\x04slot\x18\x01 \x01(\v2\x0f.common.v1.SlotR\x04slot\"\xa6\x01\n" +
	"\x11UpdateSlotRequest\x12\x17\n" +
	"\aslot_id\x18\x01 \x01(\tR\x06slotId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x12*\n" +
	"\x05range\x18\x03 \x01(\v2\x14.common.v1.TimeRangeR\x05range\x12-\n" +
	"\x06status\x18\x04 \x01(\x0e2\x15.common.v1.SlotStatusR\x06status\"9\n" +
	"\x12UpdateSlotResponse\x12#\n" +
	"\x04slot\x18\x01 \x01(\v2\x0f.common.v1.SlotR\x04slot\",\n" +
	"\x11DeleteSlotRequest\x12\x17\n" +
	"\aslot_id\x18\x01 \x01(\tR\x06slotId\"\x14\n" +
	"\x12DeleteSlotResponse\"\xcc\x01\n" +
	"\x14FindFreeSlotsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x120\n" +
	"\x05start\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\">\n" +
	"\x15FindFreeSlotsResponse\x12%\n" +
	"\x05slots\x18\x01 \x03(\v2\x0f.common.v1.SlotR\x05slots\"\xe7\x01\n" +
	"\x14ListFreeSlotsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x120\n" +
	"\x05start\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"_\n" +
	"\x15ListFreeSlotsResponse\x12%\n" +
	"\x05slots\x18\x01 \x03(\v2\x0f.common.v1.SlotR\x05slots\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\xf3\x01\n" +
	"\x18ListProviderSlotsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12.\n" +
	"\x04from\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\x12)\n" +
	"\x10include_bookings\x18\x04 \x01(\bR\x0fincludeBookings\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"d\n" +
	"\x0fSlotWithBooking\x12#\n" +
	"\x04slot\x18\x01 \x01(\v2\x0f.common.v1.SlotR\x04slot\x12,\n" +
	"\abooking\x18\x02 \x01(\v2\x12.common.v1.BookingR\abooking\"p\n" +
	"\x19ListProviderSlotsResponse\x122\n" +
	"\x05slots\x18\x01 \x03(\v2\x1c.calendar.v1.SlotWithBookingR\x05slots\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\xbf\x02\n" +
	"\x16CreateWeekSlotsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x02 \x01(\tR\tserviceId\x12\x1a\n" +
	"\bweekdays\x18\x03 \x03(\x05R\bweekdays\x12\x14\n" +
	"\x05times\x18\x04 \x03(\tR\x05times\x127\n" +
	"\tdate_from\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\bdateFrom\x123\n" +
	"\adate_to\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x06dateTo\x12!\n" +
	"\fduration_min\x18\a \x01(\x05R\vdurationMin\x12\"\n" +
	"\rtz_offset_min\x18\b \x01(\x05R\vtzOffsetMin\"^\n" +
	"\vSlotFailure\x127\n" +
	"\tstarts_at\x18\x01 \x01(\v2\x1a.google.protobuf.TimestampR\bstartsAt\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"v\n" +
	"\x17CreateWeekSlotsResponse\x12%\n" +
	"\x05slots\x18\x01 \x03(\v2\x0f.common.v1.SlotR\x05slots\x124\n" +
	"\bfailures\x18\x02 \x03(\v2\x18.calendar.v1.SlotFailureR\bfailures\"\xb9\x01\n" +
	"\x1eBulkCancelProviderSlotsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x120\n" +
	"\x05start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x05start\x12,\n" +
	"\x03end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x03end\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"\x94\x02\n" +
	"\x0fAffectedBooking\x12\x1d\n" +
	"\n" +
	"booking_id\x18\x01 \x01(\tR\tbookingId\x12\x17\n" +
	"\aslot_id\x18\x02 \x01(\tR\x06slotId\x12\x1b\n" +
	"\tclient_id\x18\x03 \x01(\tR\bclientId\x12\x1f\n" +
	"\vprovider_id\x18\x04 \x01(\tR\n" +
	"providerId\x12\x1d\n" +
	"\n" +
	"service_id\x18\x05 \x01(\tR\tserviceId\x127\n" +
	"\tstarts_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\bstartsAt\x123\n" +
	"\aends_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\x06endsAt\"\xc4\x01\n" +
	"\x1fBulkCancelProviderSlotsResponse\x12'\n" +
	"\x0fcancelled_slots\x18\x01 \x01(\x05R\x0ecancelledSlots\x12-\n" +
	"\x12cancelled_bookings\x18\x02 \x01(\x05R\x11cancelledBookings\x12I\n" +
	"\x11affected_bookings\x18\x03 \x03(\v2\x1c.calendar.v1.AffectedBookingR\x10affectedBookings\"P\n" +
	"\x18CheckAvailabilityRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x17\n" +
	"\aslot_id\x18\x02 \x01(\tR\x06slotId\"Q\n" +
	"\x19CheckAvailabilityResponse\x12\x1c\n" +
	"\tavailable\x18\x01 \x01(\bR\tavailable\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"f\n" +
	"\x14CreateBookingRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x17\n" +
	"\aslot_id\x18\x02 \x01(\tR\x06slotId\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\"E\n" +
	"\x15CreateBookingResponse\x12,\n" +
	"\abooking\x18\x01 \x01(\v2\x12.common.v1.BookingR\abooking\"6\n" +
	"\x15ConfirmBookingRequest\x12\x1d\n" +
	"\n" +
	"booking_id\x18\x01 \x01(\tR\tbookingId\"F\n" +
	"\x16ConfirmBookingResponse\x12,\n" +
	"\abooking\x18\x01 \x01(\v2\x12.common.v1.BookingR\abooking\"M\n" +
	"\x14CancelBookingRequest\x12\x1d\n" +
	"\n" +
	"booking_id\x18\x01 \x01(\tR\tbookingId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"E\n" +
	"\x15CancelBookingResponse\x12,\n" +
	"\abooking\x18\x01 \x01(\v2\x12.common.v1.BookingR\abooking\"2\n" +
	"\x11GetBookingRequest\x12\x1d\n" +
	"\n" +
	"booking_id\x18\x01 \x01(\tR\tbookingId\"B\n" +
	"\x12GetBookingResponse\x12,\n" +
	"\abooking\x18\x01 \x01(\v2\x12.common.v1.BookingR\abooking\"\xf5\x01\n" +
	"\x13ListBookingsRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12.\n" +
	"\x04from\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\x124\n" +
	"\bstatuses\x18\x04 \x03(\x0e2\x18.common.v1.BookingStatusR\bstatuses\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"g\n" +
	"\x14ListBookingsResponse\x12.\n" +
	"\bbookings\x18\x01 \x03(\v2\x12.common.v1.BookingR\bbookings\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"\x81\x02\n" +
	"\x1bListProviderBookingsRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x12.\n" +
	"\x04from\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\x124\n" +
	"\bstatuses\x18\x04 \x03(\x0e2\x18.common.v1.BookingStatusR\bstatuses\x12\x12\n" +
	"\x04page\x18\x05 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x06 \x01(\x05R\bpageSize\"o\n" +
	"\x1cListProviderBookingsResponse\x12.\n" +
	"\bbookings\x18\x01 \x03(\v2\x12.common.v1.BookingR\bbookings\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\"y\n" +
	"\x1dCreateProviderScheduleRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\x127\n" +
	"\bschedule\x18\x02 \x01(\v2\x1b.common.v1.ProviderScheduleR\bschedule\"Y\n" +
	"\x1eCreateProviderScheduleResponse\x127\n" +
	"\bschedule\x18\x01 \x01(\v2\x1b.common.v1.ProviderScheduleR\bschedule\"y\n" +
	"\x1dUpdateProviderScheduleRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\x127\n" +
	"\bschedule\x18\x02 \x01(\v2\x1b.common.v1.ProviderScheduleR\bschedule\"Y\n" +
	"\x1eUpdateProviderScheduleResponse\x127\n" +
	"\bschedule\x18\x01 \x01(\v2\x1b.common.v1.ProviderScheduleR\bschedule\"?\n" +
	"\x1cListProviderSchedulesRequest\x12\x1f\n" +
	"\vprovider_id\x18\x01 \x01(\tR\n" +
	"providerId\"Z\n" +
	"\x1dListProviderSchedulesResponse\x129\n" +
	"\tschedules\x18\x01 \x03(\v2\x1b.common.v1.ProviderScheduleR\tschedules\"@\n" +
	"\x1dDeleteProviderScheduleRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\" \n" +
	"\x1eDeleteProviderScheduleResponse\"\xb2\x01\n" +
	"\x15ExpandScheduleRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\x12=\n" +
	"\fwindow_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\vwindowStart\x129\n" +
	"\n" +
	"window_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\twindowEnd\"L\n" +
	"\x16ExpandScheduleResponse\x122\n" +
	"\tintervals\x18\x01 \x03(\v2\x14.common.v1.TimeRangeR\tintervals\"\xb7\x01\n" +
	"\x1aMaterializeScheduleRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\x12=\n" +
	"\fwindow_start\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\vwindowStart\x129\n" +
	"\n" +
	"window_end\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\twindowEnd\"z\n" +
	"\x1bMaterializeScheduleResponse\x12%\n" +
	"\x05slots\x18\x01 \x03(\v2\x0f.common.v1.SlotR\x05slots\x124\n" +
	"\bfailures\x18\x02 \x03(\v2\x18.calendar.v1.SlotFailureR\bfailures2\x98\x15\n" +
	"\x0fCalendarService\x12S\n" +
	"\fListServices\x12 .calendar.v1.ListServicesRequest\x1a!.calendar.v1.ListServicesResponse\x12V\n" +
	"\rCreateService\x12!.calendar.v1.CreateServiceRequest\x1a\".calendar.v1.CreateServiceResponse\x12V\n" +
	"\rUpdateService\x12!.calendar.v1.UpdateServiceRequest\x1a\".calendar.v1.UpdateServiceResponse\x12V\n" +
	"\rListProviders\x12!.calendar.v1.ListProvidersRequest\x1a\".calendar.v1.ListProvidersResponse\x12k\n" +
	"\x14ListProviderServices\x12(.calendar.v1.ListProviderServicesRequest\x1a).calendar.v1.ListProviderServicesResponse\x12h\n" +
	"\x13SetProviderServices\x12'.calendar.v1.SetProviderServicesRequest\x1a(.calendar.v1.SetProviderServicesResponse\x12n\n" +
	"\x15UpdateProviderProfile\x12).calendar.v1.UpdateProviderProfileRequest\x1a*.calendar.v1.UpdateProviderProfileResponse\x12M\n" +
	"\n" +
	"CreateSlot\x12\x1e.calendar.v1.CreateSlotRequest\x1a\x1f.calendar.v1.CreateSlotResponse\x12M\n" +
	"\n" +
	"UpdateSlot\x12\x1e.calendar.v1.UpdateSlotRequest\x1a\x1f.calendar.v1.UpdateSlotResponse\x12M\n" +
	"\n" +
	"DeleteSlot\x12\x1e.calendar.v1.DeleteSlotRequest\x1a\x1f.calendar.v1.DeleteSlotResponse\x12V\n" +
	"\rFindFreeSlots\x12!.calendar.v1.FindFreeSlotsRequest\x1a\".calendar.v1.FindFreeSlotsResponse\x12V\n" +
	"\rListFreeSlots\x12!.calendar.v1.ListFreeSlotsRequest\x1a\".calendar.v1.ListFreeSlotsResponse\x12b\n" +
	"\x11ListProviderSlots\x12%.calendar.v1.ListProviderSlotsRequest\x1a&.calendar.v1.ListProviderSlotsResponse\x12\\\n" +
	"\x0fCreateWeekSlots\x12#.calendar.v1.CreateWeekSlotsRequest\x1a$.calendar.v1.CreateWeekSlotsResponse\x12t\n" +
	"\x17BulkCancelProviderSlots\x12+.calendar.v1.BulkCancelProviderSlotsRequest\x1a,.calendar.v1.BulkCancelProviderSlotsResponse\x12b\n" +
	"\x11CheckAvailability\x12%.calendar.v1.CheckAvailabilityRequest\x1a&.calendar.v1.CheckAvailabilityResponse\x12V\n" +
	"\rCreateBooking\x12!.calendar.v1.CreateBookingRequest\x1a\".calendar.v1.CreateBookingResponse\x12Y\n" +
	"\x0eConfirmBooking\x12\".calendar.v1.ConfirmBookingRequest\x1a#.calendar.v1.ConfirmBookingResponse\x12V\n" +
	"\rCancelBooking\x12!.calendar.v1.CancelBookingRequest\x1a\".calendar.v1.CancelBookingResponse\x12M\n" +
	"\n" +
	"GetBooking\x12\x1e.calendar.v1.GetBookingRequest\x1a\x1f.calendar.v1.GetBookingResponse\x12S\n" +
	"\fListBookings\x12 .calendar.v1.ListBookingsRequest\x1a!.calendar.v1.ListBookingsResponse\x12k\n" +
	"\x14ListProviderBookings\x12(.calendar.v1.ListProviderBookingsRequest\x1a).calendar.v1.ListProviderBookingsResponse\x12q\n" +
	"\x16CreateProviderSchedule\x12*.calendar.v1.CreateProviderScheduleRequest\x1a+.calendar.v1.CreateProviderScheduleResponse\x12q\n" +
	"\x16UpdateProviderSchedule\x12*.calendar.v1.UpdateProviderScheduleRequest\x1a+.calendar.v1.UpdateProviderScheduleResponse\x12n\n" +
	"\x15ListProviderSchedules\x12).calendar.v1.ListProviderSchedulesRequest\x1a*.calendar.v1.ListProviderSchedulesResponse\x12q\n" +
	"\x16DeleteProviderSchedule\x12*.calendar.v1.DeleteProviderScheduleRequest\x1a+.calendar.v1.DeleteProviderScheduleResponse\x12Y\n" +
	"\x0eExpandSchedule\x12\".calendar.v1.ExpandScheduleRequest\x1a#.calendar.v1.ExpandScheduleResponse\x12h\n" +
	"\x13MaterializeSchedule\x12'.calendar.v1.MaterializeScheduleRequest\x1a(.calendar.v1.MaterializeScheduleResponseB=Z;github.com/appomat/core/internal/api/calendar/v1;calendarpbb\x06proto3"

var (
	file_calendar_v1_calendar_proto_rawDescOnce sync.Once
	file_calendar_v1_calendar_proto_rawDescData []byte
)

func file_calendar_v1_calendar_proto_rawDescGZIP() []byte {
	file_calendar_v1_calendar_proto_rawDescOnce.Do(func() {
		file_calendar_v1_calendar_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_calendar_v1_calendar_proto_rawDesc), len(file_calendar_v1_calendar_proto_rawDesc)))
	})
	return file_calendar_v1_calendar_proto_rawDescData
}

var file_calendar_v1_calendar_proto_msgTypes = make([]protoimpl.MessageInfo, 59)
var file_calendar_v1_calendar_proto_goTypes = []any{
	(*ListServicesRequest)(nil),             // 0: calendar.v1.ListServicesRequest
	(*ListServicesResponse)(nil),            // 1: calendar.v1.ListServicesResponse
	(*CreateServiceRequest)(nil),            // 2: calendar.v1.CreateServiceRequest
	(*CreateServiceResponse)(nil),           // 3: calendar.v1.CreateServiceResponse
	(*UpdateServiceRequest)(nil),            // 4: calendar.v1.UpdateServiceRequest
	(*UpdateServiceResponse)(nil),           // 5: calendar.v1.UpdateServiceResponse
	(*ListProvidersRequest)(nil),            // 6: calendar.v1.ListProvidersRequest
	(*ListProvidersResponse)(nil),           // 7: calendar.v1.ListProvidersResponse
	(*ListProviderServicesRequest)(nil),     // 8: calendar.v1.ListProviderServicesRequest
	(*ListProviderServicesResponse)(nil),    // 9: calendar.v1.ListProviderServicesResponse
	(*SetProviderServicesRequest)(nil),      // 10: calendar.v1.SetProviderServicesRequest
	(*SetProviderServicesResponse)(nil),     // 11: calendar.v1.SetProviderServicesResponse
	(*UpdateProviderProfileRequest)(nil),    // 12: calendar.v1.UpdateProviderProfileRequest
	(*UpdateProviderProfileResponse)(nil),   // 13: calendar.v1.UpdateProviderProfileResponse
	(*CreateSlotRequest)(nil),               // 14: calendar.v1.CreateSlotRequest
	(*CreateSlotResponse)(nil),              // 15: calendar.v1.CreateSlotResponse
	(*UpdateSlotRequest)(nil),               // 16: calendar.v1.UpdateSlotRequest
	(*UpdateSlotResponse)(nil),              // 17: calendar.v1.UpdateSlotResponse
	(*DeleteSlotRequest)(nil),               // 18: calendar.v1.DeleteSlotRequest
	(*DeleteSlotResponse)(nil),              // 19: calendar.v1.DeleteSlotResponse
	(*FindFreeSlotsRequest)(nil),            // 20: calendar.v1.FindFreeSlotsRequest
	(*FindFreeSlotsResponse)(nil),           // 21: calendar.v1.FindFreeSlotsResponse
	(*ListFreeSlotsRequest)(nil),            // 22: calendar.v1.ListFreeSlotsRequest
	(*ListFreeSlotsResponse)(nil),           // 23: calendar.v1.ListFreeSlotsResponse
	(*ListProviderSlotsRequest)(nil),        // 24: calendar.v1.ListProviderSlotsRequest
	(*SlotWithBooking)(nil),                 // 25: calendar.v1.SlotWithBooking
	(*ListProviderSlotsResponse)(nil),       // 26: calendar.v1.ListProviderSlotsResponse
	(*CreateWeekSlotsRequest)(nil),          // 27: calendar.v1.CreateWeekSlotsRequest
	(*SlotFailure)(nil),                     // 28: calendar.v1.SlotFailure
	(*CreateWeekSlotsResponse)(nil),         // 29: calendar.v1.CreateWeekSlotsResponse
	(*BulkCancelProviderSlotsRequest)(nil),  // 30: calendar.v1.BulkCancelProviderSlotsRequest
	(*AffectedBooking)(nil),                 // 31: calendar.v1.AffectedBooking
	(*BulkCancelProviderSlotsResponse)(nil), // 32: calendar.v1.BulkCancelProviderSlotsResponse
	(*CheckAvailabilityRequest)(nil),        // 33: calendar.v1.CheckAvailabilityRequest
	(*CheckAvailabilityResponse)(nil),       // 34: calendar.v1.CheckAvailabilityResponse
	(*CreateBookingRequest)(nil),            // 35: calendar.v1.CreateBookingRequest
	(*CreateBookingResponse)(nil),           // 36: calendar.v1.CreateBookingResponse
	(*ConfirmBookingRequest)(nil),           // 37: calendar.v1.ConfirmBookingRequest
	(*ConfirmBookingResponse)(nil),          // 38: calendar.v1.ConfirmBookingResponse
	(*CancelBookingRequest)(nil),            // 39: calendar.v1.CancelBookingRequest
	(*CancelBookingResponse)(nil),           // 40: calendar.v1.CancelBookingResponse
	(*GetBookingRequest)(nil),               // 41: calendar.v1.GetBookingRequest
	(*GetBookingResponse)(nil),              // 42: calendar.v1.GetBookingResponse
	(*ListBookingsRequest)(nil),             // 43: calendar.v1.ListBookingsRequest
	(*ListBookingsResponse)(nil),            // 44: calendar.v1.ListBookingsResponse
	(*ListProviderBookingsRequest)(nil),     // 45: calendar.v1.ListProviderBookingsRequest
	(*ListProviderBookingsResponse)(nil),    // 46: calendar.v1.ListProviderBookingsResponse
	(*CreateProviderScheduleRequest)(nil),   // 47: calendar.v1.CreateProviderScheduleRequest
	(*CreateProviderScheduleResponse)(nil),  // 48: calendar.v1.CreateProviderScheduleResponse
	(*UpdateProviderScheduleRequest)(nil),   // 49: calendar.v1.UpdateProviderScheduleRequest
	(*UpdateProviderScheduleResponse)(nil),  // 50: calendar.v1.UpdateProviderScheduleResponse
	(*ListProviderSchedulesRequest)(nil),    // 51: calendar.v1.ListProviderSchedulesRequest
	(*ListProviderSchedulesResponse)(nil),   // 52: calendar.v1.ListProviderSchedulesResponse
	(*DeleteProviderScheduleRequest)(nil),   // 53: calendar.v1.DeleteProviderScheduleRequest
	(*DeleteProviderScheduleResponse)(nil),  // 54: calendar.v1.DeleteProviderScheduleResponse
	(*ExpandScheduleRequest)(nil),           // 55: calendar.v1.ExpandScheduleRequest
	(*ExpandScheduleResponse)(nil),          // 56: calendar.v1.ExpandScheduleResponse
	(*MaterializeScheduleRequest)(nil),      // 57: calendar.v1.MaterializeScheduleRequest
	(*MaterializeScheduleResponse)(nil),     // 58: calendar.v1.MaterializeScheduleResponse
	(*v1.Service)(nil),                      // 59: common.v1.Service
	(*v1.Provider)(nil),                     // 60: common.v1.Provider
	(*v1.TimeRange)(nil),                    // 61: common.v1.TimeRange
	(*v1.Slot)(nil),                         // 62: common.v1.Slot
	(v1.SlotStatus)(0),                      // 63: common.v1.SlotStatus
	(*timestamppb.Timestamp)(nil),           // 64: google.protobuf.Timestamp
	(*v1.Booking)(nil),                      // 65: common.v1.Booking
	(v1.BookingStatus)(0),                   // 66: common.v1.BookingStatus
	(*v1.ProviderSchedule)(nil),             // 67: common.v1.ProviderSchedule
}
var file_calendar_v1_calendar_proto_depIdxs = []int32{
	59, // 0: calendar.v1.ListServicesResponse.services:type_name -> common.v1.Service
	59, // 1: calendar.v1.CreateServiceResponse.service:type_name -> common.v1.Service
	59, // 2: calendar.v1.UpdateServiceResponse.service:type_name -> common.v1.Service
	60, // 3: calendar.v1.ListProvidersResponse.providers:type_name -> common.v1.Provider
	60, // 4: calendar.v1.ListProviderServicesResponse.provider:type_name -> common.v1.Provider
	59, // 5: calendar.v1.ListProviderServicesResponse.services:type_name -> common.v1.Service
	60, // 6: calendar.v1.SetProviderServicesResponse.provider:type_name -> common.v1.Provider
	59, // 7: calendar.v1.SetProviderServicesResponse.services:type_name -> common.v1.Service
	60, // 8: calendar.v1.UpdateProviderProfileResponse.provider:type_name -> common.v1.Provider
	61, // 9: calendar.v1.CreateSlotRequest.range:type_name -> common.v1.TimeRange
	62, // 10: calendar.v1.CreateSlotResponse.slot:type_name -> common.v1.Slot
	61, // 11: calendar.v1.UpdateSlotRequest.range:type_name -> common.v1.TimeRange
	63, // 12: calendar.v1.UpdateSlotRequest.status:type_name -> common.v1.SlotStatus
	62, // 13: calendar.v1.UpdateSlotResponse.slot:type_name -> common.v1.Slot
	64, // 14: calendar.v1.FindFreeSlotsRequest.start:type_name -> google.protobuf.Timestamp
	64, // 15: calendar.v1.FindFreeSlotsRequest.end:type_name -> google.protobuf.Timestamp
	62, // 16: calendar.v1.FindFreeSlotsResponse.slots:type_name -> common.v1.Slot
	64, // 17: calendar.v1.ListFreeSlotsRequest.start:type_name -> google.protobuf.Timestamp
	64, // 18: calendar.v1.ListFreeSlotsRequest.end:type_name -> google.protobuf.Timestamp
	62, // 19: calendar.v1.ListFreeSlotsResponse.slots:type_name -> common.v1.Slot
	64, // 20: calendar.v1.ListProviderSlotsRequest.from:type_name -> google.protobuf.Timestamp
	64, // 21: calendar.v1.ListProviderSlotsRequest.to:type_name -> google.protobuf.Timestamp
	62, // 22: calendar.v1.SlotWithBooking.slot:type_name -> common.v1.Slot
	65, // 23: calendar.v1.SlotWithBooking.booking:type_name -> common.v1.Booking
	25, // 24: calendar.v1.ListProviderSlotsResponse.slots:type_name -> calendar.v1.SlotWithBooking
	64, // 25: calendar.v1.CreateWeekSlotsRequest.date_from:type_name -> google.protobuf.Timestamp
	64, // 26: calendar.v1.CreateWeekSlotsRequest.date_to:type_name -> google.protobuf.Timestamp
	64, // 27: calendar.v1.SlotFailure.starts_at:type_name -> google.protobuf.Timestamp
	62, // 28: calendar.v1.CreateWeekSlotsResponse.slots:type_name -> common.v1.Slot
	28, // 29: calendar.v1.CreateWeekSlotsResponse.failures:type_name -> calendar.v1.SlotFailure
	64, // 30: calendar.v1.BulkCancelProviderSlotsRequest.start:type_name -> google.protobuf.Timestamp
	64, // 31: calendar.v1.BulkCancelProviderSlotsRequest.end:type_name -> google.protobuf.Timestamp
	64, // 32: calendar.v1.AffectedBooking.starts_at:type_name -> google.protobuf.Timestamp
	64, // 33: calendar.v1.AffectedBooking.ends_at:type_name -> google.protobuf.Timestamp
	31, // 34: calendar.v1.BulkCancelProviderSlotsResponse.affected_bookings:type_name -> calendar.v1.AffectedBooking
	65, // 35: calendar.v1.CreateBookingResponse.booking:type_name -> common.v1.Booking
	65, // 36: calendar.v1.ConfirmBookingResponse.booking:type_name -> common.v1.Booking
	65, // 37: calendar.v1.CancelBookingResponse.booking:type_name -> common.v1.Booking
	65, // 38: calendar.v1.GetBookingResponse.booking:type_name -> common.v1.Booking
	64, // 39: calendar.v1.ListBookingsRequest.from:type_name -> google.protobuf.Timestamp
	64, // 40: calendar.v1.ListBookingsRequest.to:type_name -> google.protobuf.Timestamp
	66, // 41: calendar.v1.ListBookingsRequest.statuses:type_name -> common.v1.BookingStatus
	65, // 42: calendar.v1.ListBookingsResponse.bookings:type_name -> common.v1.Booking
	64, // 43: calendar.v1.ListProviderBookingsRequest.from:type_name -> google.protobuf.Timestamp
	64, // 44: calendar.v1.ListProviderBookingsRequest.to:type_name -> google.protobuf.Timestamp
	66, // 45: calendar.v1.ListProviderBookingsRequest.statuses:type_name -> common.v1.BookingStatus
	65, // 46: calendar.v1.ListProviderBookingsResponse.bookings:type_name -> common.v1.Booking
	67, // 47: calendar.v1.CreateProviderScheduleRequest.schedule:type_name -> common.v1.ProviderSchedule
	67, // 48: calendar.v1.CreateProviderScheduleResponse.schedule:type_name -> common.v1.ProviderSchedule
	67, // 49: calendar.v1.UpdateProviderScheduleRequest.schedule:type_name -> common.v1.ProviderSchedule
	67, // 50: calendar.v1.UpdateProviderScheduleResponse.schedule:type_name -> common.v1.ProviderSchedule
	67, // 51: calendar.v1.ListProviderSchedulesResponse.schedules:type_name -> common.v1.ProviderSchedule
	64, // 52: calendar.v1.ExpandScheduleRequest.window_start:type_name -> google.protobuf.Timestamp
	64, // 53: calendar.v1.ExpandScheduleRequest.window_end:type_name -> google.protobuf.Timestamp
	61, // 54: calendar.v1.ExpandScheduleResponse.intervals:type_name -> common.v1.TimeRange
	64, // 55: calendar.v1.MaterializeScheduleRequest.window_start:type_name -> google.protobuf.Timestamp
	64, // 56: calendar.v1.MaterializeScheduleRequest.window_end:type_name -> google.protobuf.Timestamp
	62, // 57: calendar.v1.MaterializeScheduleResponse.slots:type_name -> common.v1.Slot
	28, // 58: calendar.v1.MaterializeScheduleResponse.failures:type_name -> calendar.v1.SlotFailure
	0,  // 59: calendar.v1.CalendarService.ListServices:input_type -> calendar.v1.ListServicesRequest
	2,  // 60: calendar.v1.CalendarService.CreateService:input_type -> calendar.v1.CreateServiceRequest
	4,  // 61: calendar.v1.CalendarService.UpdateService:input_type -> calendar.v1.UpdateServiceRequest
	6,  // 62: calendar.v1.CalendarService.ListProviders:input_type -> calendar.v1.ListProvidersRequest
	8,  // 63: calendar.v1.CalendarService.ListProviderServices:input_type -> calendar.v1.ListProviderServicesRequest
	10, // 64: calendar.v1.CalendarService.SetProviderServices:input_type -> calendar.v1.SetProviderServicesRequest
	12, // 65: calendar.v1.CalendarService.UpdateProviderProfile:input_type -> calendar.v1.UpdateProviderProfileRequest
	14, // 66: calendar.v1.CalendarService.CreateSlot:input_type -> calendar.v1.CreateSlotRequest
	16, // 67: calendar.v1.CalendarService.UpdateSlot:input_type -> calendar.v1.UpdateSlotRequest
	18, // 68: calendar.v1.CalendarService.DeleteSlot:input_type -> calendar.v1.DeleteSlotRequest
	20, // 69: calendar.v1.CalendarService.FindFreeSlots:input_type -> calendar.v1.FindFreeSlotsRequest
	22, // 70: calendar.v1.CalendarService.ListFreeSlots:input_type -> calendar.v1.ListFreeSlotsRequest
	24, // 71: calendar.v1.CalendarService.ListProviderSlots:input_type -> calendar.v1.ListProviderSlotsRequest
	27, // 72: calendar.v1.CalendarService.CreateWeekSlots:input_type -> calendar.v1.CreateWeekSlotsRequest
	30, // 73: calendar.v1.CalendarService.BulkCancelProviderSlots:input_type -> calendar.v1.BulkCancelProviderSlotsRequest
	33, // 74: calendar.v1.CalendarService.CheckAvailability:input_type -> calendar.v1.CheckAvailabilityRequest
	35, // 75: calendar.v1.CalendarService.CreateBooking:input_type -> calendar.v1.CreateBookingRequest
	37, // 76: calendar.v1.CalendarService.ConfirmBooking:input_type -> calendar.v1.ConfirmBookingRequest
	39, // 77: calendar.v1.CalendarService.CancelBooking:input_type -> calendar.v1.CancelBookingRequest
	41, // 78: calendar.v1.CalendarService.GetBooking:input_type -> calendar.v1.GetBookingRequest
	43, // 79: calendar.v1.CalendarService.ListBookings:input_type -> calendar.v1.ListBookingsRequest
	45, // 80: calendar.v1.CalendarService.ListProviderBookings:input_type -> calendar.v1.ListProviderBookingsRequest
	47, // 81: calendar.v1.CalendarService.CreateProviderSchedule:input_type -> calendar.v1.CreateProviderScheduleRequest
	49, // 82: calendar.v1.CalendarService.UpdateProviderSchedule:input_type -> calendar.v1.UpdateProviderScheduleRequest
	51, // 83: calendar.v1.CalendarService.ListProviderSchedules:input_type -> calendar.v1.ListProviderSchedulesRequest
	53, // 84: calendar.v1.CalendarService.DeleteProviderSchedule:input_type -> calendar.v1.DeleteProviderScheduleRequest
	55, // 85: calendar.v1.CalendarService.ExpandSchedule:input_type -> calendar.v1.ExpandScheduleRequest
	57, // 86: calendar.v1.CalendarService.MaterializeSchedule:input_type -> calendar.v1.MaterializeScheduleRequest
	1,  // 87: calendar.v1.CalendarService.ListServices:output_type -> calendar.v1.ListServicesResponse
	3,  // 88: calendar.v1.CalendarService.CreateService:output_type -> calendar.v1.CreateServiceResponse
	5,  // 89: calendar.v1.CalendarService.UpdateService:output_type -> calendar.v1.UpdateServiceResponse
	7,  // 90: calendar.v1.CalendarService.ListProviders:output_type -> calendar.v1.ListProvidersResponse
	9,  // 91: calendar.v1.CalendarService.ListProviderServices:output_type -> calendar.v1.ListProviderServicesResponse
	11, // 92: calendar.v1.CalendarService.SetProviderServices:output_type -> calendar.v1.SetProviderServicesResponse
	13, // 93: calendar.v1.CalendarService.UpdateProviderProfile:output_type -> calendar.v1.UpdateProviderProfileResponse
	15, // 94: calendar.v1.CalendarService.CreateSlot:output_type -> calendar.v1.CreateSlotResponse
	17, // 95: calendar.v1.CalendarService.UpdateSlot:output_type -> calendar.v1.UpdateSlotResponse
	19, // 96: calendar.v1.CalendarService.DeleteSlot:output_type -> calendar.v1.DeleteSlotResponse
	21, // 97: calendar.v1.CalendarService.FindFreeSlots:output_type -> calendar.v1.FindFreeSlotsResponse
	23, // 98: calendar.v1.CalendarService.ListFreeSlots:output_type -> calendar.v1.ListFreeSlotsResponse
	26, // 99: calendar.v1.CalendarService.ListProviderSlots:output_type -> calendar.v1.ListProviderSlotsResponse
	29, // 100: calendar.v1.CalendarService.CreateWeekSlots:output_type -> calendar.v1.CreateWeekSlotsResponse
	32, // 101: calendar.v1.CalendarService.BulkCancelProviderSlots:output_type -> calendar.v1.BulkCancelProviderSlotsResponse
	34, // 102: calendar.v1.CalendarService.CheckAvailability:output_type -> calendar.v1.CheckAvailabilityResponse
	36, // 103: calendar.v1.CalendarService.CreateBooking:output_type -> calendar.v1.CreateBookingResponse
	38, // 104: calendar.v1.CalendarService.ConfirmBooking:output_type -> calendar.v1.ConfirmBookingResponse
	40, // 105: calendar.v1.CalendarService.CancelBooking:output_type -> calendar.v1.CancelBookingResponse
	42, // 106: calendar.v1.CalendarService.GetBooking:output_type -> calendar.v1.GetBookingResponse
	44, // 107: calendar.v1.CalendarService.ListBookings:output_type -> calendar.v1.ListBookingsResponse
	46, // 108: calendar.v1.CalendarService.ListProviderBookings:output_type -> calendar.v1.ListProviderBookingsResponse
	48, // 109: calendar.v1.CalendarService.CreateProviderSchedule:output_type -> calendar.v1.CreateProviderScheduleResponse
	50, // 110: calendar.v1.CalendarService.UpdateProviderSchedule:output_type -> calendar.v1.UpdateProviderScheduleResponse
	52, // 111: calendar.v1.CalendarService.ListProviderSchedules:output_type -> calendar.v1.ListProviderSchedulesResponse
	54, // 112: calendar.v1.CalendarService.DeleteProviderSchedule:output_type -> calendar.v1.DeleteProviderScheduleResponse
	56, // 113: calendar.v1.CalendarService.ExpandSchedule:output_type -> calendar.v1.ExpandScheduleResponse
	58, // 114: calendar.v1.CalendarService.MaterializeSchedule:output_type -> calendar.v1.MaterializeScheduleResponse
	87, // [87:115] is the sub-list for method output_type
	59, // [59:87] is the sub-list for method input_type
	59, // [59:59] is the sub-list for extension type_name
	59, // [59:59] is the sub-list for extension extendee
	0,  // [0:59] is the sub-list for field type_name
}

func init() { file_calendar_v1_calendar_proto_init() }
func file_calendar_v1_calendar_proto_init() {
	if File_calendar_v1_calendar_proto != nil {
		return
	}
	file_calendar_v1_calendar_proto_msgTypes[4].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_calendar_v1_calendar_proto_rawDesc), len(file_calendar_v1_calendar_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   59,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_calendar_v1_calendar_proto_goTypes,
		DependencyIndexes: file_calendar_v1_calendar_proto_depIdxs,
		MessageInfos:      file_calendar_v1_calendar_proto_msgTypes,
	}.Build()
	File_calendar_v1_calendar_proto = out.File
	file_calendar_v1_calendar_proto_goTypes = nil
	file_calendar_v1_calendar_proto_depIdxs = nil
}
