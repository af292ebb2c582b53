package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/config"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/logging"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/otel"
	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := os.Getenv("XOSC_EDITOR_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	if err := config.Load(configDir); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logsDir := config.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}
	logFile, err := os.OpenFile(filepath.Join(logsDir, "xosc_editor.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	manager := logging.NewManager()
	manager.Setup(logFile, config.GetString("logLevel"))
	logger := manager.Logger()

	otelCfg, err := config.Otel()
	if err != nil {
		return fmt.Errorf("failed to read otel config: %w", err)
	}
	var metricsFile *os.File
	if otelCfg.Enabled {
		metricsFile, err = os.OpenFile(filepath.Join(logsDir, "xosc_editor_metrics.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open metrics file: %w", err)
		}
		defer metricsFile.Close()
	}
	provider, err := otel.New(otel.Config{
		Enabled:       otelCfg.Enabled,
		ServiceName:   otelCfg.ServiceName,
		MetricsWriter: metricsFile,
	})
	if err != nil {
		return fmt.Errorf("failed to set up metrics: %w", err)
	}
	defer provider.Shutdown(context.Background())

	storageCfg, err := config.Storage()
	if err != nil {
		return fmt.Errorf("failed to read storage config: %w", err)
	}
	backend, err := store.NewBackend(storageCfg)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", storageCfg.Type, err)
	}
	defer backend.Close()
	logger.Info("Storage ready", "type", storageCfg.Type)

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "export":
		return runExport(logger, backend, args[1:])
	case "import":
		return runImport(logger, backend, args[1:])
	case "demo":
		return runDemo(logger, backend, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Println("usage: xosc-editor <command>")
	fmt.Println()
	fmt.Println("commands:")
	fmt.Println("  export [path]     encode the stored scenario to an .xosc file")
	fmt.Println("  import <file>     decode an .xosc file into the stored scenario")
	fmt.Println("  demo [x,y[,z]]    replace the stored scenario with a sample one")
}
