package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-resource-client/internal/adapter"
	"github.com/MKhiriev/go-resource-client/internal/app"
	"github.com/MKhiriev/go-resource-client/internal/config"
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/service"
	"github.com/MKhiriev/go-resource-client/internal/utils"
	"github.com/MKhiriev/go-resource-client/models"
)

const appRole = "resource-client"

type App struct {
	buildInfo models.AppBuildInfo

	stdout io.Writer
	stderr io.Writer

	flags globalFlags

	// set up by the root command before any subcommand runs
	client   adapter.ResourceClient
	services *service.ClientServices
	logger   *logger.Logger
}

type globalFlags struct {
	baseURL    string
	timeout    time.Duration
	configPath string
	logLevel   string
}

// NewApp creates the command line application. stdout receives payloads,
// stderr receives logs and error reports.
func NewApp(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *App {
	// feed requests log from several goroutines at once
	return &App{
		buildInfo: buildInfo,
		stdout:    stdout,
		stderr:    zerolog.SyncWriter(stderr),
	}
}

// Run executes the command named by args. A failed command is reported on
// stderr together with its failure kind, and its error is returned.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.reportError(err)
	}
	return err
}

// setup builds the configuration, logger and services for one invocation and
// tags its context with a fresh trace id.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig(&config.StructuredConfig{
		Adapter: config.Adapter{
			BaseURL:        a.flags.baseURL,
			RequestTimeout: a.flags.timeout,
		},
		Log:          config.Log{Level: a.flags.logLevel},
		JSONFilePath: a.flags.configPath,
	})
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	a.logger, err = logger.New(appRole, a.stderr).WithLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	a.client, err = adapter.NewHTTPResourceClient(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("error creating resource client: %w", err)
	}
	a.services = service.NewClientServices(a.client, a.logger)

	traceID := utils.NewTraceID()
	cmd.SetContext(utils.WithTraceID(a.logger.WithContext(cmd.Context()), traceID))
	a.logger.Debug().Str("trace_id", traceID).Str("base_url", cfg.Adapter.BaseURL).Msg("client is ready")

	return nil
}

// reportError prints the failure kind and a human-readable description of err.
func (a *App) reportError(err error) {
	kind := adapter.KindOf(err)

	var msg string
	switch {
	case kind == adapter.KindRemoteResponse:
		msg = app.MsgRemoteResponse
	case kind == adapter.KindNoResponse:
		msg = app.MsgNoResponse
	case kind == adapter.KindRequestConstruction:
		msg = app.MsgRequestConstruction
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, errInvalidID), errors.Is(err, errNoPostDataGiven):
		msg = app.MsgInvalidDataProvided
	default:
		msg = app.MsgUnexpectedError
	}

	_, _ = fmt.Fprintf(a.stderr, "Error [%s]: %s: %v\n", kind, msg, err)
}

// printJSON writes v to stdout as indented JSON.
func (a *App) printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	out = append(out, '\n')

	_, err = a.stdout.Write(out)
	return err
}
