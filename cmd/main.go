package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Rodolf-GitHub/jatishop-back/internal/config"
	"github.com/Rodolf-GitHub/jatishop-back/internal/controllers"
	"github.com/Rodolf-GitHub/jatishop-back/internal/repositories"
	"github.com/Rodolf-GitHub/jatishop-back/internal/routes"
	"github.com/Rodolf-GitHub/jatishop-back/internal/scheduler"
	"github.com/Rodolf-GitHub/jatishop-back/internal/services"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/database"
	"github.com/Rodolf-GitHub/jatishop-back/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Logging)

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	negocioRepo := repositories.NewNegocioRepository(db.DB)
	licenciaRepo := repositories.NewLicenciaRepository(db.DB)
	pedidoRepo := repositories.NewPedidoRepository(db.DB)
	productoRepo := repositories.NewProductoRepository(db.DB)
	billeteraRepo := repositories.NewBilleteraRepository(db.DB)

	referidoService := services.NewReferidoService(db.DB, billeteraRepo, cfg.Referidos.Comision)
	licenciaService := services.NewLicenciaService(db.DB, licenciaRepo, negocioRepo, referidoService, cfg.Licencias.DiasIniciales)
	negocioService := services.NewNegocioService(negocioRepo, licenciaService)
	pedidoService := services.NewPedidoService(db.DB, pedidoRepo)
	productoService := services.NewProductoService(productoRepo)

	pedidoController := controllers.NewPedidoController(pedidoService, negocioService)
	pedidoAdminController := controllers.NewPedidoAdminController(pedidoService, negocioService)
	productoController := controllers.NewProductoController(productoService, negocioService)
	negocioController := controllers.NewNegocioController(negocioService)
	billeteraController := controllers.NewBilleteraController(referidoService)
	licenciaController := controllers.NewLicenciaController(licenciaService, negocioService)

	sweeper := scheduler.NewSweeper(licenciaService, cfg.Licencias.SweepInterval, cfg.Licencias.SweepAlIniciar)
	if err := sweeper.Start(); err != nil {
		logrus.Fatalf("Failed to start license sweeper: %v", err)
	}
	defer sweeper.Stop()

	router := routes.SetupRouter(cfg, pedidoController, pedidoAdminController, productoController,
		negocioController, billeteraController, licenciaController)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting jatishop-back server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
}
