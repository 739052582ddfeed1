// @title Agro Dashboard API
// @version 1.0
// @description API дашборда клиента агробизнеса: история покупок, коммерческие метрики, кривая ABC и рекомендации по правилам ассоциации.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:9999
// @BasePath /api
// @schemes http https

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agrodashboard/internal/container"
	"agrodashboard/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Agro Dashboard Server...")

	cfg, err := server.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.InitLogger(cfg.LogLevel)

	c, err := container.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Ошибка создания контейнера: %v", err)
	}
	if err := c.Initialize(); err != nil {
		log.Fatalf("Ошибка инициализации контейнера: %v", err)
	}

	// Предзагрузка таблиц; при ошибке сервер стартует, /api/health вернет unavailable
	warmupCtx, warmupCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	start := time.Now()
	if err := c.Warmup(warmupCtx); err != nil {
		server.LogWarn(warmupCtx, "Tables warmup failed", "error", err)
	} else {
		server.LogDuration(warmupCtx, "tables_warmup", time.Since(start), "source", cfg.TableSource)
	}
	warmupCancel()

	srv, err := server.NewServer(cfg, c)
	if err != nil {
		log.Fatalf("Ошибка создания сервера: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	server.LogInfo(ctx, "Server started", "port", cfg.Port, "table_source", cfg.TableSource)

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Сервер запущен на порту %s", cfg.Port)
	log.Printf("✓ Источник таблиц: %s", cfg.TableSource)
	log.Printf("✓ Swagger: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: %v", err)
		}
	case <-ctx.Done():
		log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		server.LogError(shutdownCtx, err, "Graceful shutdown failed")
		os.Exit(1)
	}
	log.Println("✓ Сервер успешно остановлен")
}
