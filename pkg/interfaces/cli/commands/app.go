package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/vsinha/airinv/pkg/application/services/availability"
	"github.com/vsinha/airinv/pkg/infrastructure/config"
	"github.com/vsinha/airinv/pkg/infrastructure/logging"
	"github.com/vsinha/airinv/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

// NewApp builds the airinv command line application. Results go to out,
// logs to stderr.
func NewApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "airinv",
		Usage:     "Seat availability engine over a sample airline inventory",
		Writer:    out,
		ErrWriter: os.Stderr,

		// segment keys contain commas
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"AIRINV_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logging.FormatText,
				Usage:   "Log format (text, json)",
				EnvVars: []string{"AIRINV_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   output.FormatText,
				Usage:   "Output format (text, json)",
			},
			&cli.Float64Flag{
				Name:    "default-bid-price",
				Value:   config.DefaultBidPrice,
				Usage:   "Bid price of every seat of the default bid-price vectors",
				EnvVars: []string{config.EnvDefaultBidPrice},
			},
			&cli.Float64Flag{
				Name:    "yield-coefficient",
				Value:   config.DefaultYieldCoefficient,
				Usage:   "Weight of the total yield in the IBP admission test",
				EnvVars: []string{config.EnvYieldCoefficient},
			},
			&cli.StringFlag{
				Name:    "total-yield-policy",
				Value:   config.DefaultTotalYieldPolicy,
				Usage:   "Total yield of multi-segment fare options (fare, segment-yields)",
				EnvVars: []string{config.EnvTotalYieldPolicy},
			},
			&cli.StringFlag{
				Name:    "default-airline",
				Value:   config.DefaultAirlineCode,
				Usage:   "Airline code of the snapshot events",
				EnvVars: []string{config.EnvDefaultAirline},
			},
		},

		Commands: []*cli.Command{
			availCommand(),
			sellCommand(),
			initBPVCommand(),
			eventsCommand(),
		},
	}
}

// engine is what every command works on: the sample inventories, linked
// and initialized with the default bid-price vectors
type engine struct {
	repo    *memory.InventoryRepository
	manager *availability.Manager
	config  config.Engine
	logger  *slog.Logger
	format  string
}

func newEngine(c *cli.Context) (*engine, error) {
	format := c.String("format")
	if err := output.ValidateFormat(format); err != nil {
		return nil, err
	}

	logger, err := logging.New(c.String("log-level"), c.String("log-format"), os.Stderr)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	cfg.DefaultBidPrice = decimal.NewFromFloat(c.Float64("default-bid-price"))
	cfg.YieldCoefficient = decimal.NewFromFloat(c.Float64("yield-coefficient"))
	cfg.TotalYield = c.String("total-yield-policy")
	cfg.DefaultAirlineCode = c.String("default-airline")

	repo, err := sample.BuildRepository()
	if err != nil {
		return nil, err
	}

	manager, err := availability.NewManager(repo, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := manager.CreateDirectAccesses(); err != nil {
		return nil, fmt.Errorf("failed to link sample routing: %w", err)
	}
	if err := manager.SetDefaultBidPriceVectors(); err != nil {
		return nil, err
	}

	return &engine{
		repo:    repo,
		manager: manager,
		config:  cfg,
		logger:  logger,
		format:  format,
	}, nil
}
