package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	calendarpb "github.com/appomat/core/internal/api/calendar/v1"
	"github.com/appomat/core/internal/config"
	"github.com/appomat/core/internal/db"
	"github.com/appomat/core/internal/logger"
	"github.com/appomat/core/internal/model"
	"github.com/appomat/core/internal/repository"
	"github.com/appomat/core/internal/server"
	"github.com/appomat/core/internal/service"
	"github.com/appomat/core/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gormDB, err := db.NewGormDB(&cfg.DB)
	if err != nil {
		zlog.Fatal("db connect", zap.Error(err))
	}
	if err := model.AutoMigrate(gormDB); err != nil {
		zlog.Fatal("db migrate", zap.Error(err))
	}

	slotRepo := repository.NewGormSlotRepository(gormDB)
	bookingRepo := repository.NewGormBookingRepository(gormDB)
	serviceRepo := repository.NewGormServiceRepository(gormDB)
	providerRepo := repository.NewGormProviderRepository(gormDB)
	scheduleRepo := repository.NewGormScheduleRepository(gormDB)

	calendarSvc := service.NewCalendarService(
		gormDB, zlog, cfg,
		slotRepo, bookingRepo, serviceRepo, providerRepo, scheduleRepo,
	)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryLogging(zlog)),
	)
	calendarpb.RegisterCalendarServiceServer(grpcServer, calendarSvc)
	reflection.Register(grpcServer)

	janitor := worker.NewJanitor(gormDB, zlog, cfg.PendingBookingTTL)
	if cfg.JanitorSchedule != "" {
		if err := janitor.Start(cfg.JanitorSchedule); err != nil {
			zlog.Fatal("janitor start", zap.Error(err))
		}
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		zlog.Fatal("listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	go func() {
		zlog.Info("grpc server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("grpc serve", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	janitor.Stop()

	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(cfg.ShutdownTimeout):
		grpcServer.Stop()
	}
	zlog.Info("stopped")
}
