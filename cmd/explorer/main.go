package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enterl2_explorer/internal/app/service"
	"enterl2_explorer/internal/client"
	"enterl2_explorer/internal/infrastructure/configloader"
	"enterl2_explorer/internal/infrastructure/httpclient"
	"enterl2_explorer/internal/infrastructure/metrics"
	rpcclient "enterl2_explorer/internal/infrastructure/network/client"
	"enterl2_explorer/internal/infrastructure/restapi"
	"enterl2_explorer/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type options struct {
	ConfigPath string `long:"config" env:"CONFIG_PATH" description:"path to the YAML config" default:"config/config.yml"`
	APIURL     string `long:"api-url" env:"EXPLORER_API_URL" description:"explorer REST API base URL, overrides upstream.apiURL"`
	NodeRPCURL string `long:"rpc-url" env:"EXPLORER_NODE_RPC_URL" description:"L2 node JSON-RPC URL, overrides upstream.nodeRPCURL"`
	Port       string `long:"port" env:"EXPLORER_PORT" description:"HTTP listen port, overrides server.port"`
	LogLevel   string `long:"log-level" env:"EXPLORER_LOG_LEVEL" description:"debug, info, warn or error"`
}

func main() {
	var opts options
	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	// Загрузка конфигурации, флаги и переменные окружения имеют приоритет
	cfg, err := configloader.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load config %s: %v\n", opts.ConfigPath, err)
		os.Exit(1)
	}
	opts.apply(cfg)

	zapLogger, err := logger.NewZap(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()
	logger.InitFromZap(zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zapLogger); err != nil {
		zapLogger.Fatal("Explorer stopped with error", zap.Error(err))
	}
	logger.Info("Explorer остановлен.")
}

func (o options) apply(cfg *configloader.Config) {
	if o.APIURL != "" {
		cfg.Upstream.APIURL = o.APIURL
	}
	if o.NodeRPCURL != "" {
		cfg.Upstream.NodeRPCURL = o.NodeRPCURL
	}
	if o.Port != "" {
		cfg.Server.Port = o.Port
	}
	if o.LogLevel != "" {
		cfg.Logging.Level = o.LogLevel
	}
}

func run(ctx context.Context, cfg *configloader.Config, zapLogger *zap.Logger) error {
	rest := httpclient.NewRESTTransport(cfg.Upstream.APIURL, zapLogger, metrics.NewTransport("rest"))

	rpcTransport, err := rpcclient.DialRPCTransport(ctx, cfg.Upstream.NodeRPCURL, nil, zapLogger, metrics.NewTransport("rpc"))
	if err != nil {
		return fmt.Errorf("init node rpc transport: %w", err)
	}
	defer rpcTransport.Close()

	explorerClient := client.NewExplorerClient(rest, rpcTransport, zapLogger)
	explorerService := service.NewExplorerService(explorerClient, logger.NewComponentAdapter(nil, "ExplorerService"), cfg)
	handler := restapi.NewExplorerHandler(explorerService, cfg, logger.NewComponentAdapter(nil, "ExplorerHandler"))

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := restapi.SetupRouter(handler, cfg, zapLogger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP сервер запускается", "addr", srv.Addr, "api", cfg.Upstream.APIURL, "rpc", cfg.Upstream.NodeRPCURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Получен сигнал завершения. Завершение работы HTTP сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("HTTP сервер успешно остановлен.")
	return nil
}
