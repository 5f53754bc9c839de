package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-backend/config"
	"restaurant-backend/controllers"
	"restaurant-backend/identity"
	"restaurant-backend/routes"
	"restaurant-backend/services"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}
	secret := []byte(cfg.JWTSecret)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	log.Println("database connection established, migrations applied")

	// Services
	provider := identity.NewService(db)
	menuService := services.NewMenuService(db)
	tableService := services.NewTableService(db)
	orderService := services.NewOrderService(db)
	settingsService := services.NewSettingsService(db)
	billingService := services.NewBillingService(db, settingsService)
	expenseService := services.NewExpenseService(db)
	reportService := services.NewReportService(db)
	reservationService := services.NewReservationService(db)
	hotelService := services.NewHotelService(db)
	provisioningService := services.NewProvisioningService(db, provider)

	// Controllers
	ctrl := routes.Controllers{
		Auth:         controllers.NewAuthController(db, provider, secret, time.Duration(cfg.TokenTTLMinutes)*time.Minute),
		Register:     controllers.NewRegisterController(provisioningService),
		Menu:         controllers.NewMenuController(menuService),
		Tables:       controllers.NewTableController(tableService),
		Orders:       controllers.NewOrderController(orderService),
		Billing:      controllers.NewBillingController(billingService),
		Expenses:     controllers.NewExpenseController(expenseService),
		Settings:     controllers.NewSettingsController(settingsService),
		Reports:      controllers.NewReportController(reportService),
		Reservations: controllers.NewReservationController(reservationService),
		Superadmin:   controllers.NewSuperadminController(hotelService),
	}

	router := routes.SetupRouter(db, secret, ctrl)

	addr := ":" + cfg.ServerPort
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped")
}
