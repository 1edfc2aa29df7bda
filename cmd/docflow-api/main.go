package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shaiso/Docflow/internal/api"
	"github.com/shaiso/Docflow/internal/executor"
	"github.com/shaiso/Docflow/internal/mq"
	"github.com/shaiso/Docflow/internal/repo"
	"github.com/shaiso/Docflow/internal/services"
	"github.com/shaiso/Docflow/internal/telemetry"
)

var (
	startTime = time.Now()
	reqTotal  = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docflow_api_http_requests_total",
		Help: "Total HTTP requests handled by docflow_api",
	})
)

// filesDir возвращает корень каталога документов.
func filesDir() string {
	if v := os.Getenv("DOCFLOW_FILES_DIR"); v != "" {
		return v
	}
	return "./files"
}

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting docflow-api")

	// Подключаемся к базе данных
	pool, err := repo.NewPool(context.Background())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	graphRepo := repo.NewGraphRepo(pool)

	// Брокер событий опционален: без него runs выполняются,
	// но события не публикуются
	var publisher *mq.Publisher
	conn, err := mq.NewConnection(mq.DefaultURL(), logger)
	if err != nil {
		logger.Warn("broker unavailable, run events disabled", "error", err)
	} else {
		defer conn.Close()
		if err := mq.SetupTopology(context.Background(), conn); err != nil {
			logger.Error("failed to setup topology", "error", err)
			os.Exit(1)
		}
		publisher = mq.NewPublisher(conn, logger)
		logger.Info("connected to broker")
	}

	// Сервисы для executor'ов
	files := services.NewLocalFiles(filesDir())
	prompts := services.NewHTTPPromptService(services.DefaultPromptURL())
	registry := executor.NewRegistry(files, prompts)

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		GraphRepo: graphRepo,
		Registry:  registry,
		Publisher: publisher,
		Logger:    logger,
	})

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		reqTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	addr := ":8080"
	if v := os.Getenv("API_PORT"); v != "" {
		addr = ":" + v
	}

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
