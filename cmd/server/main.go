// @title Personal Security Dashboard API
// @version 1.0
// @description JSON mirrors of the dashboard lookups: name search via Google Custom Search and breach check via Have I Been Pwned.

// @license.name Personal Use Only

// @BasePath /api

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"securitydashboard/internal/config"
	"securitydashboard/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Personal Security Dashboard...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger := server.NewLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(logger)

	srv := server.NewServerWithConfig(cfg, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Дашборд: http://localhost:%s", cfg.Port)
	log.Printf("✓ Swagger: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: %v", err)
		}
		return
	case <-sigChan:
	}

	log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")

	// SHUTDOWN_TIMEOUT=0 ждет завершения активных запросов без ограничения
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if cfg.ShutdownTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("✗ Ошибка при остановке сервера: %v", err)
		return
	}
	log.Println("✓ Сервер успешно остановлен")
}
