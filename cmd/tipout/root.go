package main

import (
	"context"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/tipout/internal/config"
	"github.com/mmynk/tipout/internal/service"
	"github.com/mmynk/tipout/pkg/logging"
)

// tipoutAPI is satisfied by both the in-process service and the remote
// client, so every subcommand runs the same way against either.
type tipoutAPI interface {
	Calculate(context.Context, *connect.Request[service.CalculateRequest]) (*connect.Response[service.CalculateResponse], error)
	ParseRoster(context.Context, *connect.Request[service.ParseRosterRequest]) (*connect.Response[service.ParseRosterResponse], error)
	HouseRules(context.Context, *connect.Request[service.HouseRulesRequest]) (*connect.Response[service.HouseRulesResponse], error)
}

type rootOptions struct {
	configPath string
	logLevel   string
	serverURL  string
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tipout",
		Short: "Split a shift's pooled tips across floor and bar staff",
		Long: `tipout divides the night's non-cash tips between servers, bussers,
expo, the barback and the bartenders using the house rates.

Calculations run locally unless --server points at a tipout server.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(opts.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $TIPOUT_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.serverURL, "server", "", "tipout server URL, e.g. http://localhost:8080")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout when using --server")

	cmd.AddCommand(newCalcCmd(opts))
	cmd.AddCommand(newRosterCmd(opts))
	cmd.AddCommand(newRulesCmd(opts))
	return cmd
}

// api returns the remote client when a server is set, otherwise an
// in-process service built from the loaded config.
func (o *rootOptions) api() (tipoutAPI, error) {
	if o.serverURL != "" {
		return service.NewTipoutServiceClient(&http.Client{Timeout: o.timeout}, o.serverURL), nil
	}

	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	return service.NewTipoutService(cfg.AllocationDefaults(), nil), nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}
