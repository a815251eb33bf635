package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	sdkjsonrpc "github.com/modelcontextprotocol/go-sdk/jsonrpc"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"gcoremcp/internal/config"

	_ "gcoremcp/toolsets"
)

func TestBuildRuntimeDefaultSelection(t *testing.T) {
	cfg := config.DefaultConfig()
	toolCtx, reg, err := buildRuntime(cfg, config.TransportStdio, zap.NewNop(), io.Discard)
	if err != nil {
		t.Fatalf("buildRuntime failed: %v", err)
	}
	if toolCtx.Client == nil {
		t.Fatalf("expected client")
	}
	names := reg.Names()
	if len(names) == 0 {
		t.Fatalf("expected default management tools registered")
	}
	for _, name := range names {
		if strings.HasPrefix(name, "cloud_insts_") {
			t.Fatalf("stdio defaults should not include instance tools: %v", names)
		}
	}
}

func TestBuildRuntimeNetworkedDefaultsIncludeInstances(t *testing.T) {
	cfg := config.DefaultConfig()
	_, reg, err := buildRuntime(cfg, config.TransportHTTP, zap.NewNop(), io.Discard)
	if err != nil {
		t.Fatalf("buildRuntime failed: %v", err)
	}
	found := false
	for _, name := range reg.Names() {
		if name == "cloud_insts_new" {
			found = true
		}
	}
	if !found {
		t.Fatalf("networked defaults should include instance tools: %v", reg.Names())
	}
}

func TestBuildRuntimeExplicitTools(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools = "cloud.volumes.list"
	_, reg, err := buildRuntime(cfg, config.TransportStdio, zap.NewNop(), io.Discard)
	if err != nil {
		t.Fatalf("buildRuntime failed: %v", err)
	}
	names := reg.Names()
	if len(names) != 1 || names[0] != "cloud_vols_ls" {
		t.Fatalf("unexpected tools: %v", names)
	}
}

func TestBuildRuntimeReadOnlyFilters(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Tools = "cloud.instances.*"
	cfg.ReadOnly = true
	_, reg, err := buildRuntime(cfg, config.TransportStdio, zap.NewNop(), io.Discard)
	if err != nil {
		t.Fatalf("buildRuntime failed: %v", err)
	}
	for _, name := range reg.Names() {
		if strings.HasSuffix(name, "_del") || strings.HasSuffix(name, "_new") {
			t.Fatalf("read-only registry contains write tool %q", name)
		}
	}
}

func TestBuildRuntimeLogsExposedTools(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := config.DefaultConfig()
	cfg.Tools = "cloud.volumes.list"
	_, reg, err := buildRuntime(cfg, config.TransportStdio, zap.New(core), io.Discard)
	if err != nil {
		t.Fatalf("buildRuntime failed: %v", err)
	}
	exposed := logs.FilterMessage("tool exposed").All()
	if len(exposed) != len(reg.List()) {
		t.Fatalf("expected one log entry per exposed tool, got %d for %d tools", len(exposed), len(reg.List()))
	}
	if got := exposed[0].ContextMap()["name"]; got != "cloud_vols_ls" {
		t.Fatalf("unexpected exposed tool: %v", got)
	}
}

func TestRunWithInMemoryTransport(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`tools = "management"`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	start := time.Now()
	err := Run(ctx, Options{
		ConfigPath:   configPath,
		Version:      "test",
		Stderr:       io.Discard,
		SDKTransport: fakeTransport{},
	})
	if time.Since(start) > time.Second {
		t.Fatalf("run took too long")
	}
	_ = err
}

func TestRunConfigLoadError(t *testing.T) {
	t.Setenv("GCORE_CONFIG", "")
	err := Run(context.Background(), Options{
		ConfigPath:   filepath.Join(t.TempDir(), "missing.toml"),
		Version:      "test",
		Stderr:       io.Discard,
		SDKTransport: fakeTransport{},
	})
	if err == nil {
		t.Fatalf("expected error for config load failure")
	}
}

func TestRunUsesEnvConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(`tools = "management"`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GCORE_CONFIG", configPath)

	err := Run(context.Background(), Options{
		ConfigPath:   "",
		Version:      "test",
		Stderr:       io.Discard,
		SDKTransport: fakeTransport{},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunTransportError(t *testing.T) {
	err := Run(context.Background(), Options{
		Version:      "test",
		Stderr:       io.Discard,
		SDKTransport: errorTransport{},
	})
	if err == nil {
		t.Fatalf("expected server error")
	}
}

func TestRunOverridesApplied(t *testing.T) {
	err := Run(context.Background(), Options{
		Tools:              "cloud.projects.list",
		ReadOnly:           true,
		DisableDestructive: true,
		LogLevel:           "debug",
		Version:            "test",
		Stderr:             nil,
		SDKTransport:       fakeTransport{},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunReloadSignal(t *testing.T) {
	done := make(chan struct{})
	runErr := make(chan error, 1)
	go func() {
		runErr <- Run(context.Background(), Options{
			Tools:        "management",
			Version:      "test",
			Stderr:       io.Discard,
			SDKTransport: blockingTransport{done: done},
		})
	}()
	time.Sleep(50 * time.Millisecond)
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGHUP)
	close(done)
	if err := <-runErr; err != nil {
		t.Fatalf("run: %v", err)
	}
}

type fakeTransport struct{}

func (fakeTransport) Connect(context.Context) (sdkmcp.Connection, error) {
	return &fakeConn{}, nil
}

type fakeConn struct{}

func (c *fakeConn) Read(context.Context) (sdkjsonrpc.Message, error) {
	return nil, io.EOF
}

func (c *fakeConn) Write(context.Context, sdkjsonrpc.Message) error {
	return nil
}

func (c *fakeConn) Close() error {
	return nil
}

func (c *fakeConn) SessionID() string {
	return "test"
}

type errorTransport struct{}

func (errorTransport) Connect(context.Context) (sdkmcp.Connection, error) {
	return nil, fmt.Errorf("connect error")
}

type blockingTransport struct {
	done chan struct{}
}

func (t blockingTransport) Connect(context.Context) (sdkmcp.Connection, error) {
	return &blockingConn{done: t.done}, nil
}

type blockingConn struct {
	done chan struct{}
}

func (c *blockingConn) Read(context.Context) (sdkjsonrpc.Message, error) {
	<-c.done
	return nil, io.EOF
}

func (c *blockingConn) Write(context.Context, sdkjsonrpc.Message) error {
	return nil
}

func (c *blockingConn) Close() error {
	return nil
}

func (c *blockingConn) SessionID() string {
	return "blocking"
}
