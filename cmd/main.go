package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Mobo140/platform_common/pkg/closer"
	"github.com/Mobo140/platform_common/pkg/logger"
	"github.com/Mobo140/platform_common/pkg/tracing"
	"github.com/Mobo140/vupp-cli/cmd/root"
	"github.com/Mobo140/vupp-cli/internal/app"
	"github.com/Mobo140/vupp-cli/internal/clients"
	authClient "github.com/Mobo140/vupp-cli/internal/clients/auth"
	chatClient "github.com/Mobo140/vupp-cli/internal/clients/chat"
	encryptClient "github.com/Mobo140/vupp-cli/internal/clients/encrypt"
	"github.com/Mobo140/vupp-cli/internal/clients/rest"
	"github.com/Mobo140/vupp-cli/internal/config"
	"github.com/Mobo140/vupp-cli/internal/config/env"
	authService "github.com/Mobo140/vupp-cli/internal/service/auth"
	"github.com/Mobo140/vupp-cli/internal/session"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logsMaxSize     = 10
	logsMaxBackups  = 3
	logsMaxAge      = 7
	vuppServiceName = "vupp-cli"
)

func main() {
	root.Execute(NewApp)
}

// NewApp loads config, sets up logging and tracing and wires every client.
func NewApp(ctx context.Context, opts root.Options) (*app.App, error) {
	err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = initLogger(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	initTracer()

	chatCfg, err := env.NewChatConfig()
	if err != nil {
		return nil, err
	}

	encryption, err := initEncryptionClient(chatCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init encryption client: %w", err)
	}

	apiCfg, err := env.NewAPIClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load api config: %w", err)
	}
	api := rest.NewClient(httpURL(apiCfg.Address()), chatCfg.HTTPTimeout())

	store := session.NewStore(afero.NewOsFs(), chatCfg.SessionFile())
	auth := authService.NewService(encryption, authClient.NewAuthClient(api), store)

	return app.New(
		store,
		auth,
		chatClient.NewChatClient(api),
		app.Settings{
			PollInterval:          chatCfg.PollInterval(),
			ViewportHeight:        chatCfg.ViewportHeight(),
			ScrollThreshold:       chatCfg.ScrollThreshold(),
			RegisterRedirectDelay: chatCfg.RegisterRedirectDelay(),
		},
		os.Stdin,
		os.Stdout,
	), nil
}

func initLogger(_ context.Context, opts root.Options) error {
	level, err := getAtomicLevel(opts.LogLevel)
	if err != nil {
		return err
	}

	logger.Init(getCore(level, opts.Debug))
	closer.Add(func() error {
		_ = logger.Logger().Sync()
		return nil
	})

	return nil
}

// getCore always logs to a rotated JSON file. The console core is opt-in because
// the chat screen owns the terminal.
func getCore(level zap.AtomicLevel, console bool) zapcore.Core {
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    logsMaxSize, // megabytes
		MaxBackups: logsMaxBackups,
		MaxAge:     logsMaxAge, // days
	})

	productionCfg := zap.NewProductionEncoderConfig()
	productionCfg.TimeKey = "timestamp"
	productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(productionCfg), file, level)
	if !console {
		return fileCore
	}

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(developmentCfg), zapcore.AddSync(os.Stderr), level),
		fileCore,
	)
}

func getAtomicLevel(logLevel string) (zap.AtomicLevel, error) {
	var level zapcore.Level
	if err := level.Set(logLevel); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("failed to set log level: %w", err)
	}

	return zap.NewAtomicLevelAt(level), nil
}

// initTracer starts the jaeger tracer when JAEGER_HOST/PORT are set and keeps
// the no-op global tracer otherwise.
func initTracer() {
	cfg, err := env.NewJaegerConfig()
	if err != nil {
		if !errors.Is(err, env.ErrJaegerNotConfigured) {
			logger.Error("failed to load jaeger config", zap.Error(err))
		}

		return
	}

	tracing.Init(logger.Logger(), vuppServiceName, cfg.Address())
}

func initEncryptionClient(chatCfg config.ChatConfig) (clients.EncryptionServiceClient, error) {
	cfg, err := env.NewEncryptionClientConfig()
	if err != nil {
		return nil, err
	}

	return encryptClient.NewEncryptionClient(rest.NewClient(httpURL(cfg.Address()), chatCfg.HTTPTimeout())), nil
}

func httpURL(address string) string {
	return "http://" + address
}
