package service

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
)

func TestCreateService_AndListOnlyActive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, &calendarpb.CreateServiceRequest{
		Name:               "Massage",
		Description:        "60 min",
		DefaultDurationMin: 60,
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if !created.GetService().GetIsActive() {
		t.Fatalf("new service must be active")
	}
	if created.GetService().GetDefaultDurationMin() != 60 {
		t.Fatalf("duration = %d, want 60", created.GetService().GetDefaultDurationMin())
	}

	// Деактивация скрывает из каталога активных, но услуга остаётся.
	if _, err := svc.UpdateService(ctx, &calendarpb.UpdateServiceRequest{
		ServiceId: created.GetService().GetId(),
		IsActive:  proto.Bool(false),
	}); err != nil {
		t.Fatalf("UpdateService: %v", err)
	}

	active, err := svc.ListServices(ctx, &calendarpb.ListServicesRequest{OnlyActive: true})
	if err != nil {
		t.Fatalf("ListServices active: %v", err)
	}
	if active.GetTotalCount() != 0 {
		t.Fatalf("active total = %d, want 0", active.GetTotalCount())
	}

	all, err := svc.ListServices(ctx, &calendarpb.ListServicesRequest{})
	if err != nil {
		t.Fatalf("ListServices all: %v", err)
	}
	if all.GetTotalCount() != 1 {
		t.Fatalf("all total = %d, want 1", all.GetTotalCount())
	}
}

// Правка имени без поля is_active не деактивирует услугу.
func TestUpdateService_NameOnlyKeepsActive(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	created, err := svc.CreateService(ctx, &calendarpb.CreateServiceRequest{Name: "Massage"})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	updated, err := svc.UpdateService(ctx, &calendarpb.UpdateServiceRequest{
		ServiceId: created.GetService().GetId(),
		Name:      "Massage 60",
	})
	if err != nil {
		t.Fatalf("UpdateService: %v", err)
	}
	if updated.GetService().GetName() != "Massage 60" {
		t.Fatalf("name = %q", updated.GetService().GetName())
	}
	if !updated.GetService().GetIsActive() {
		t.Fatalf("name-only edit deactivated the service")
	}
}

func TestCreateService_EmptyName(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.CreateService(context.Background(), &calendarpb.CreateServiceRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestSetProviderServices_ReplacesSet(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	providerID := seedProvider(t, db, "Anna")
	first := seedService(t, db, "First")
	second := seedService(t, db, "Second")
	linkProviderService(t, db, providerID, first)

	resp, err := svc.SetProviderServices(ctx, &calendarpb.SetProviderServicesRequest{
		ProviderId: providerID.String(),
		ServiceIds: []string{second.String()},
	})
	if err != nil {
		t.Fatalf("SetProviderServices: %v", err)
	}
	if len(resp.GetServices()) != 1 {
		t.Fatalf("services = %d, want 1", len(resp.GetServices()))
	}
	if resp.GetServices()[0].GetId() != second.String() {
		t.Fatalf("service = %s, want %s", resp.GetServices()[0].GetId(), second.String())
	}

	listed, err := svc.ListProviderServices(ctx, &calendarpb.ListProviderServicesRequest{
		ProviderId: providerID.String(),
	})
	if err != nil {
		t.Fatalf("ListProviderServices: %v", err)
	}
	if len(listed.GetServices()) != 1 || listed.GetServices()[0].GetId() != second.String() {
		t.Fatalf("listed set mismatch: %+v", listed.GetServices())
	}
}

func TestSetProviderServices_UnknownServiceRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	providerID := seedProvider(t, db, "Anna")

	_, err := svc.SetProviderServices(context.Background(), &calendarpb.SetProviderServicesRequest{
		ProviderId: providerID.String(),
		ServiceIds: []string{"11111111-2222-3333-4444-555555555555"},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("code = %v, want NotFound", status.Code(err))
	}
}

func TestListProviders_FilterByService(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	anna := seedProvider(t, db, "Anna")
	boris := seedProvider(t, db, "Boris")
	massage := seedService(t, db, "Massage")
	linkProviderService(t, db, anna, massage)

	all, err := svc.ListProviders(ctx, &calendarpb.ListProvidersRequest{})
	if err != nil {
		t.Fatalf("ListProviders: %v", err)
	}
	if all.GetTotalCount() != 2 {
		t.Fatalf("all total = %d, want 2", all.GetTotalCount())
	}

	filtered, err := svc.ListProviders(ctx, &calendarpb.ListProvidersRequest{
		ServiceId: massage.String(),
	})
	if err != nil {
		t.Fatalf("ListProviders filtered: %v", err)
	}
	if filtered.GetTotalCount() != 1 {
		t.Fatalf("filtered total = %d, want 1", filtered.GetTotalCount())
	}
	if filtered.GetProviders()[0].GetId() != anna.String() {
		t.Fatalf("filtered provider = %s, want %s", filtered.GetProviders()[0].GetId(), anna.String())
	}
	_ = boris
}

func TestUpdateProviderProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newTestService(t, db)

	providerID := seedProvider(t, db, "Anna")

	resp, err := svc.UpdateProviderProfile(context.Background(), &calendarpb.UpdateProviderProfileRequest{
		ProviderId:  providerID.String(),
		DisplayName: "Anna K.",
		Description: "cosmetology",
	})
	if err != nil {
		t.Fatalf("UpdateProviderProfile: %v", err)
	}
	if resp.GetProvider().GetDisplayName() != "Anna K." {
		t.Fatalf("display_name = %q", resp.GetProvider().GetDisplayName())
	}
	if resp.GetProvider().GetDescription() != "cosmetology" {
		t.Fatalf("description = %q", resp.GetProvider().GetDescription())
	}
}
