package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gcoremcp/pkg/server"

	_ "gcoremcp/toolsets"
)

const version = "0.1.0"

var runServer = server.Run
var exit = os.Exit

func main() {
	ctx := context.Background()

	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := flags.String("config", "", "config file path")
	apiKey := flags.String("api-key", "", "Gcore API key")
	apiURL := flags.String("api-url", "", "Gcore API base URL")
	tools := flags.String("tools", "", "comma-separated toolsets and patterns to expose")
	transport := flags.String("transport", "", "transport: stdio or streamable-http")
	port := flags.Int("port", 0, "HTTP port for the streamable-http transport")
	readOnly := flags.Bool("read-only", false, "expose read-only tools only")
	disableDestructive := flags.Bool("disable-destructive", false, "disable destructive operations")
	logLevel := flags.String("log-level", "", "log level")

	_ = flags.Parse(os.Args[1:])

	options := server.Options{
		ConfigPath: *configPath,
		Version:    version,
		Stderr:     os.Stderr,
	}
	set := map[string]bool{}
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["api-key"] {
		options.APIKey = *apiKey
	}
	if set["api-url"] {
		options.APIURL = *apiURL
	}
	if set["tools"] {
		options.Tools = *tools
	}
	if set["transport"] {
		options.Transport = *transport
	}
	if set["port"] {
		options.Port = *port
	}
	if set["read-only"] {
		options.ReadOnly = *readOnly
	}
	if set["disable-destructive"] {
		options.DisableDestructive = *disableDestructive
	}
	if set["log-level"] {
		options.LogLevel = *logLevel
	}

	if err := runServer(ctx, options); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		exit(1)
	}
}
