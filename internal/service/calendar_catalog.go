package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	commonpb "github.com/appomat/core/internal/api/common/v1"
	"github.com/appomat/core/internal/calendar"
	"github.com/appomat/core/internal/model"
)

func (s *CalendarService) ListServices(ctx context.Context, req *calendarpb.ListServicesRequest) (*calendarpb.ListServicesResponse, error) {
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	services, total, err := s.services.List(ctx, req.GetOnlyActive(), limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list services: %v", err)
	}

	out := make([]*commonpb.Service, 0, len(services))
	for i := range services {
		out = append(out, serviceToPB(&services[i]))
	}
	return &calendarpb.ListServicesResponse{Services: out, TotalCount: int32(total)}, nil
}

func (s *CalendarService) CreateService(ctx context.Context, req *calendarpb.CreateServiceRequest) (*calendarpb.CreateServiceResponse, error) {
	if req.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if req.GetDefaultDurationMin() < 0 {
		return nil, status.Error(codes.InvalidArgument, "default_duration_min must not be negative")
	}

	svc := model.Service{
		Name:        req.GetName(),
		Description: req.GetDescription(),
		IsActive:    true,
	}
	if d := req.GetDefaultDurationMin(); d > 0 {
		dur := int64(d)
		svc.DefaultDurationMin = &dur
	}

	if err := s.services.Create(ctx, &svc); err != nil {
		return nil, status.Errorf(codes.Internal, "create service: %v", err)
	}

	s.log.Info("service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("name", svc.Name))
	return &calendarpb.CreateServiceResponse{Service: serviceToPB(&svc)}, nil
}

func (s *CalendarService) UpdateService(ctx context.Context, req *calendarpb.UpdateServiceRequest) (*calendarpb.UpdateServiceResponse, error) {
	id, err := parseUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "service not found")
	}

	if req.GetName() != "" {
		svc.Name = req.GetName()
	}
	if req.GetDescription() != "" {
		svc.Description = req.GetDescription()
	}
	if req.IsActive != nil {
		svc.IsActive = req.GetIsActive()
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, status.Errorf(codes.Internal, "update service: %v", err)
	}
	return &calendarpb.UpdateServiceResponse{Service: serviceToPB(svc)}, nil
}

func (s *CalendarService) ListProviders(ctx context.Context, req *calendarpb.ListProvidersRequest) (*calendarpb.ListProvidersResponse, error) {
	serviceID, err := parseOptionalUUID("service_id", req.GetServiceId())
	if err != nil {
		return nil, err
	}
	limit, offset := calendar.LimitOffset(req.GetPage(), req.GetPageSize(), defaultPageSize)

	providers, total, err := s.providers.List(ctx, serviceID, limit, offset)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list providers: %v", err)
	}

	out := make([]*commonpb.Provider, 0, len(providers))
	for i := range providers {
		out = append(out, providerToPB(&providers[i]))
	}
	return &calendarpb.ListProvidersResponse{Providers: out, TotalCount: int32(total)}, nil
}

func (s *CalendarService) ListProviderServices(ctx context.Context, req *calendarpb.ListProviderServicesRequest) (*calendarpb.ListProviderServicesResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}

	provider, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, notFoundOr(err, "provider not found")
	}

	services, err := s.providers.ListServices(ctx, providerID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list provider services: %v", err)
	}

	out := make([]*commonpb.Service, 0, len(services))
	for i := range services {
		out = append(out, serviceToPB(&services[i]))
	}
	return &calendarpb.ListProviderServicesResponse{
		Provider: providerToPB(provider),
		Services: out,
	}, nil
}

// SetProviderServices полностью заменяет набор услуг провайдера. Слоты с
// услугами, выпавшими из набора, не трогаются: они становятся осиротевшими
// и сами выпадают из выдачи свободных.
func (s *CalendarService) SetProviderServices(ctx context.Context, req *calendarpb.SetProviderServicesRequest) (*calendarpb.SetProviderServicesResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}

	provider, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, notFoundOr(err, "provider not found")
	}

	ids := make([]uuid.UUID, 0, len(req.GetServiceIds()))
	for _, raw := range req.GetServiceIds() {
		id, err := parseUUID("service_ids", raw)
		if err != nil {
			return nil, err
		}
		if _, err := s.services.GetByID(ctx, id); err != nil {
			return nil, notFoundOr(err, "service "+raw+" not found")
		}
		ids = append(ids, id)
	}

	if err := s.providers.ReplaceServices(ctx, providerID, ids); err != nil {
		return nil, status.Errorf(codes.Internal, "set provider services: %v", err)
	}

	services, err := s.providers.ListServices(ctx, providerID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list provider services: %v", err)
	}

	out := make([]*commonpb.Service, 0, len(services))
	for i := range services {
		out = append(out, serviceToPB(&services[i]))
	}

	s.log.Info("provider services replaced",
		zap.String("provider_id", providerID.String()),
		zap.Int("services", len(out)))

	return &calendarpb.SetProviderServicesResponse{
		Provider: providerToPB(provider),
		Services: out,
	}, nil
}

func (s *CalendarService) UpdateProviderProfile(ctx context.Context, req *calendarpb.UpdateProviderProfileRequest) (*calendarpb.UpdateProviderProfileResponse, error) {
	providerID, err := parseUUID("provider_id", req.GetProviderId())
	if err != nil {
		return nil, err
	}

	provider, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, notFoundOr(err, "provider not found")
	}

	if req.GetDisplayName() != "" {
		provider.DisplayName = req.GetDisplayName()
	}
	if req.GetDescription() != "" {
		provider.Description = req.GetDescription()
	}

	if err := s.providers.Update(ctx, provider); err != nil {
		return nil, status.Errorf(codes.Internal, "update provider: %v", err)
	}
	return &calendarpb.UpdateProviderProfileResponse{Provider: providerToPB(provider)}, nil
}
