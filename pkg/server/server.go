// Package server wires configuration, tool selection, and the MCP
// transport into a runnable process.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"gcoremcp/internal/audit"
	"gcoremcp/internal/catalog"
	"gcoremcp/internal/config"
	"gcoremcp/internal/gcore"
	"gcoremcp/internal/logging"
	gmcp "gcoremcp/internal/mcp"
	"gcoremcp/internal/redact"
	"gcoremcp/internal/selection"
)

type Options struct {
	ConfigPath         string
	APIKey             string
	APIURL             string
	Tools              string
	Transport          string
	Port               int
	ReadOnly           bool
	DisableDestructive bool
	LogLevel           string
	Version            string
	Stderr             io.Writer
	// SDKTransport overrides the MCP transport when set. Tests run against
	// an in-memory connection through this.
	SDKTransport sdkmcp.Transport
}

func Run(ctx context.Context, opts Options) error {
	errOut := opts.Stderr
	if errOut == nil {
		errOut = os.Stderr
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		if env := os.Getenv("GCORE_CONFIG"); env != "" {
			configPath = env
		}
	}
	overrides := config.Overrides{}
	if opts.APIKey != "" {
		overrides.APIKey = &opts.APIKey
	}
	if opts.APIURL != "" {
		overrides.APIURL = &opts.APIURL
	}
	if opts.Tools != "" {
		overrides.Tools = &opts.Tools
	}
	if opts.Transport != "" {
		overrides.Transport = &opts.Transport
	}
	if opts.Port != 0 {
		overrides.Port = &opts.Port
	}
	if opts.ReadOnly {
		overrides.ReadOnly = &opts.ReadOnly
	}
	if opts.DisableDestructive {
		overrides.DisableDestructive = &opts.DisableDestructive
	}
	if opts.LogLevel != "" {
		overrides.LogLevel = &opts.LogLevel
	}

	cfg, err := config.Load(configPath, "", overrides)
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	transport, known := config.CanonicalTransport(cfg.Transport)
	if !known {
		logger.Warn("unknown transport, falling back to stdio", zap.String("transport", cfg.Transport))
	}

	toolCtx, reg, err := buildRuntime(cfg, transport, logger, errOut)
	if err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "gcore-mcp", Version: opts.Version}, nil)
	toolNames, err := gmcp.RegisterSDKTools(server, reg, toolCtx)
	if err != nil {
		return fmt.Errorf("tool registration failed: %w", err)
	}
	logger.Info("tools registered",
		zap.Int("count", len(toolNames)),
		zap.String("transport", transport))

	reloadCh := make(chan os.Signal, 1)
	notifyReload(reloadCh)
	go func() {
		for range reloadCh {
			cfg, err := config.Load(configPath, "", overrides)
			if err != nil {
				logger.Error("config reload failed", zap.Error(err))
				continue
			}
			newCtx, newReg, err := buildRuntime(cfg, transport, logger, errOut)
			if err != nil {
				logger.Error("reload init failed", zap.Error(err))
				continue
			}
			toolCtx.Client.FlushCache()
			if len(toolNames) > 0 {
				server.RemoveTools(toolNames...)
			}
			toolCtx = newCtx
			toolNames, err = gmcp.RegisterSDKTools(server, newReg, newCtx)
			if err != nil {
				logger.Error("tool registration failed", zap.Error(err))
				continue
			}
			logger.Info("tools reloaded", zap.Int("count", len(toolNames)))
		}
	}()

	if opts.SDKTransport != nil {
		if err := server.Run(ctx, opts.SDKTransport); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
	if transport == config.TransportHTTP {
		return runHTTP(ctx, server, cfg.Port, logger)
	}
	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, server *sdkmcp.Server, port int, logger *zap.Logger) error {
	handler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return server
	}, nil)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()
	logger.Info("listening", zap.Int("port", port))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func buildRuntime(cfg config.Config, transport string, logger *zap.Logger, errOut io.Writer) (gmcp.ToolContext, *gmcp.ToolRegistry, error) {
	if cfg.APIKey == "" {
		logger.Warn("no API key configured, upstream calls will be rejected")
	}
	client := gcore.NewClient(gcore.Options{
		BaseURL:     cfg.APIURL,
		APIKey:      cfg.APIKey,
		ProjectID:   cfg.ProjectID,
		RegionID:    cfg.RegionID,
		Timeout:     time.Duration(cfg.Timeouts.MaxSeconds) * time.Second,
		ResponseTTL: time.Duration(cfg.Cache.ResponseTTLSeconds) * time.Second,
	})

	mode := selection.ModeLocal
	if transport == config.TransportHTTP {
		mode = selection.ModeNetworked
	}
	cat := catalog.Default()
	result := selection.Resolve(cfg.Tools, mode, cat.Names(), selection.DefaultRegistry())
	for _, diag := range result.Diagnostics {
		logger.Warn(diag.Message,
			zap.String("code", diag.Code),
			zap.String("token", diag.Token))
	}

	reg := gmcp.NewRegistry(&cfg)
	skipped := gmcp.BindTools(result.Tools, cat, reg, logger)
	if len(skipped) > 0 {
		logger.Warn("some selected tools were not bound", zap.Strings("tools", skipped))
	}
	for _, tool := range reg.List() {
		logger.Debug("tool exposed", zap.String("name", tool.Name), zap.String("description", tool.Description))
	}

	toolCtx := gmcp.ToolContext{
		Config:   &cfg,
		Client:   client,
		Redactor: redact.New(),
		Audit:    audit.NewLogger(errOut),
		Logger:   logger,
	}
	return toolCtx, reg, nil
}
