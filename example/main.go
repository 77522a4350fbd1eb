package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vsinha/airinv/pkg/application/services/availability"
	"github.com/vsinha/airinv/pkg/application/services/distribution"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/config"
	"github.com/vsinha/airinv/pkg/infrastructure/logging"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
)

func main() {
	ctx := context.Background()

	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		fmt.Printf("❌ Invalid configuration: %v\n", err)
		return
	}

	logger, err := logging.New("info", logging.FormatText, os.Stderr)
	if err != nil {
		fmt.Printf("❌ Logger setup failed: %v\n", err)
		return
	}

	// Sample inventories: BA9 LHR-BKK-SYD and the BA1084/AF084 codeshare
	repo, err := sample.BuildRepository()
	if err != nil {
		fmt.Printf("❌ Sample inventory failed: %v\n", err)
		return
	}

	manager, err := availability.NewManager(repo, cfg, logger)
	if err != nil {
		fmt.Printf("❌ Engine setup failed: %v\n", err)
		return
	}
	if err := manager.CreateDirectAccesses(); err != nil {
		fmt.Printf("❌ Routing failed: %v\n", err)
		return
	}
	if err := manager.SetDefaultBidPriceVectors(); err != nil {
		fmt.Printf("❌ Bid-price initialization failed: %v\n", err)
		return
	}

	service := distribution.NewService(manager, logger)

	fmt.Printf("✈️  Default bid price: %s, yield coefficient: %s\n\n",
		cfg.DefaultBidPrice, cfg.YieldCoefficient)

	for _, technique := range []entities.PartnershipTechnique{
		entities.TechniqueNone,
		entities.TechniqueRAEDA,
		entities.TechniqueIBPYPU,
		entities.TechniqueIBPYP,
	} {
		solutions, err := sample.BuildTravelSolutions()
		if err != nil {
			fmt.Printf("❌ Travel solutions failed: %v\n", err)
			return
		}

		if err := service.CalculateAvailabilities(ctx, solutions, technique, 0); err != nil {
			fmt.Printf("❌ %s availability failed: %v\n", technique, err)
			return
		}

		fmt.Printf("📊 %s\n", technique)
		for _, ts := range solutions {
			fmt.Printf("  %s\n", ts.DescribeSegmentPath())
			for _, fo := range ts.FareOptions {
				fmt.Printf("    %s\n", fo.Describe())
			}
		}
		fmt.Println()
	}

	// Book two seats on the connection in M, then cancel them
	solutions, err := sample.BuildTravelSolutions()
	if err != nil {
		fmt.Printf("❌ Travel solutions failed: %v\n", err)
		return
	}
	connection := solutions[1]
	if err := connection.ChooseFareOption(2); err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}

	booking, err := service.Sell(ctx, connection, 2)
	if err != nil {
		fmt.Printf("❌ Sale failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Booking %s on %s\n", booking.ID, connection.DescribeSegmentPath())

	cancellation, err := booking.Cancellation()
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return
	}
	if err := service.PlayCancellation(ctx, cancellation); err != nil {
		fmt.Printf("❌ Cancellation failed: %v\n", err)
		return
	}
	fmt.Printf("↩️  Cancelled %s\n", cancellation.Describe())
}
