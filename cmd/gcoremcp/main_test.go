package main

import (
	"context"
	"fmt"
	"os"
	"testing"

	"gcoremcp/pkg/server"
)

func TestMainSuccessFlags(t *testing.T) {
	origRun := runServer
	origExit := exit
	origArgs := os.Args
	origStderr := os.Stderr
	t.Cleanup(func() {
		runServer = origRun
		exit = origExit
		os.Args = origArgs
		os.Stderr = origStderr
	})

	var got server.Options
	runServer = func(ctx context.Context, opts server.Options) error {
		got = opts
		return nil
	}
	exit = func(code int) {
		t.Fatalf("unexpected exit %d", code)
	}
	tmp, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatalf("temp stderr: %v", err)
	}
	os.Stderr = tmp
	os.Args = []string{
		"gcoremcp",
		"--config", "/tmp/config",
		"--api-key", "key",
		"--api-url", "https://api.example.com",
		"--tools", "management,cloud.volumes.*",
		"--transport", "http",
		"--port", "9000",
		"--read-only",
		"--disable-destructive",
		"--log-level", "debug",
	}

	main()

	if got.ConfigPath != "/tmp/config" || got.APIKey != "key" || got.APIURL != "https://api.example.com" {
		t.Fatalf("unexpected options: %#v", got)
	}
	if got.Tools != "management,cloud.volumes.*" || got.Transport != "http" || got.Port != 9000 {
		t.Fatalf("unexpected options: %#v", got)
	}
	if !got.ReadOnly || !got.DisableDestructive || got.LogLevel != "debug" {
		t.Fatalf("unexpected options: %#v", got)
	}
}

func TestMainUnsetFlagsLeaveZeroValues(t *testing.T) {
	origRun := runServer
	origArgs := os.Args
	t.Cleanup(func() {
		runServer = origRun
		os.Args = origArgs
	})

	var got server.Options
	runServer = func(ctx context.Context, opts server.Options) error {
		got = opts
		return nil
	}
	os.Args = []string{"gcoremcp"}

	main()

	if got.Tools != "" || got.Transport != "" || got.Port != 0 || got.ReadOnly {
		t.Fatalf("expected zero values for unset flags: %#v", got)
	}
	if got.Version != version {
		t.Fatalf("expected version propagated: %#v", got)
	}
}

func TestMainErrorExit(t *testing.T) {
	origRun := runServer
	origExit := exit
	origArgs := os.Args
	origStderr := os.Stderr
	t.Cleanup(func() {
		runServer = origRun
		exit = origExit
		os.Args = origArgs
		os.Stderr = origStderr
	})

	runServer = func(ctx context.Context, opts server.Options) error {
		return fmt.Errorf("boom")
	}
	exitCode := 0
	exit = func(code int) {
		exitCode = code
	}
	tmp, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatalf("temp stderr: %v", err)
	}
	os.Stderr = tmp
	os.Args = []string{"gcoremcp"}

	main()

	if exitCode != 1 {
		t.Fatalf("expected exit code 1, got %d", exitCode)
	}
}
