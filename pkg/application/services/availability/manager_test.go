package availability

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsinha/airinv/pkg/domain/entities"
	domainerrors "github.com/vsinha/airinv/pkg/domain/errors"
	"github.com/vsinha/airinv/pkg/infrastructure/config"
	"github.com/vsinha/airinv/pkg/infrastructure/logging"
	"github.com/vsinha/airinv/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
)

func newSampleManager(t *testing.T) *Manager {
	t.Helper()
	repo, err := sample.BuildRepository()
	require.NoError(t, err)

	manager, err := NewManager(repo, config.Default(), logging.Discard())
	require.NoError(t, err)
	require.NoError(t, manager.CreateDirectAccesses())
	require.NoError(t, manager.SetDefaultBidPriceVectors())
	return manager
}

func sampleSolutions(t *testing.T) (direct, connection, codeshare *entities.TravelSolution) {
	t.Helper()
	solutions, err := sample.BuildTravelSolutions()
	require.NoError(t, err)
	return solutions[0], solutions[1], solutions[2]
}

func availabilities(ts *entities.TravelSolution) []entities.Availability {
	result := make([]entities.Availability, len(ts.FareOptions))
	for i, fo := range ts.FareOptions {
		result[i] = fo.Availability
	}
	return result
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(nil, config.Default(), nil)
	assert.Error(t, err)

	cfg := config.Default()
	cfg.TotalYield = "prorated"
	_, err = NewManager(memory.NewInventoryRepository(), cfg, nil)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.YieldCoefficient = decimal.Zero
	_, err = NewManager(memory.NewInventoryRepository(), cfg, nil)
	assert.Error(t, err)
}

func TestCalculateAvailability(t *testing.T) {
	tests := []struct {
		name       string
		technique  entities.PartnershipTechnique
		direct     []entities.Availability
		connection []entities.Availability
		codeshare  []entities.Availability
	}{
		{
			name:       "AU reads class availabilities",
			technique:  entities.TechniqueNone,
			direct:     []entities.Availability{4, 10, 6, 3},
			connection: []entities.Availability{6, 12, 8, 5},
			codeshare:  []entities.Availability{10, 6},
		},
		{
			name:       "RAE opens every seat whose segment yields clear the bid price",
			technique:  entities.TechniqueRAEDA,
			direct:     []entities.Availability{12, 30, 30, 30},
			connection: []entities.Availability{12, 30, 30, 0},
			codeshare:  []entities.Availability{20, 20},
		},
		{
			name:       "IBP closes the connection fare below the total bid price",
			technique:  entities.TechniqueIBPYPU,
			direct:     []entities.Availability{12, 30, 30, 30},
			connection: []entities.Availability{12, 30, 30, 0},
			codeshare:  []entities.Availability{20, 20},
		},
		{
			name:       "protective IBP with flat vectors matches IBP",
			technique:  entities.TechniqueIBPYP,
			direct:     []entities.Availability{12, 30, 30, 30},
			connection: []entities.Availability{12, 30, 30, 0},
			codeshare:  []entities.Availability{20, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := newSampleManager(t)
			direct, connection, codeshare := sampleSolutions(t)

			require.NoError(t, manager.CalculateAvailability(direct, tt.technique))
			require.NoError(t, manager.CalculateAvailability(connection, tt.technique))
			require.NoError(t, manager.CalculateAvailability(codeshare, tt.technique))

			assert.Equal(t, tt.direct, availabilities(direct))
			assert.Equal(t, tt.connection, availabilities(connection))
			assert.Equal(t, tt.codeshare, availabilities(codeshare))
		})
	}
}

func TestCalculateAvailability_Recalculation(t *testing.T) {
	manager := newSampleManager(t)
	direct, _, _ := sampleSolutions(t)

	require.NoError(t, manager.CalculateAvailability(direct, entities.TechniqueNone))
	require.NoError(t, manager.CalculateAvailability(direct, entities.TechniqueRAEYP))
	assert.Len(t, direct.ClassYieldMapHolder, 1)
	assert.Empty(t, direct.ClassAvailabilityMapHolder)
}

func TestCalculateAvailability_Errors(t *testing.T) {
	manager := newSampleManager(t)

	unknownAirline, err := entities.NewTravelSolution(
		[]string{"ZZ;1,2011-06-10;LHR,BKK"},
		[]entities.FareOption{{ClassPath: []string{"Y"}}})
	require.NoError(t, err)
	err = manager.CalculateAvailability(unknownAirline, entities.TechniqueNone)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeInventoryNotFound))

	direct, _, _ := sampleSolutions(t)
	err = manager.CalculateAvailability(direct, entities.PartnershipTechnique(99))
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeUnknownTechnique))

	badClass, err := entities.NewTravelSolution(
		[]string{sample.BA9LHRSYD},
		[]entities.FareOption{{ClassPath: []string{"Z"}}})
	require.NoError(t, err)
	err = manager.CalculateAvailability(badClass, entities.TechniqueIBPDA)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeClassNotFound))
}

func TestCalculateAvailability_SoldOutLegClosesConnection(t *testing.T) {
	manager := newSampleManager(t)

	inv, err := manager.repo.GetInventory("BA")
	require.NoError(t, err)
	bkkEconomy, ok := inv.FlightDates[0].Legs[1].Cabin("Y")
	require.True(t, ok)
	bkkEconomy.EmptyBidPriceVector()

	_, connection, _ := sampleSolutions(t)
	require.NoError(t, manager.CalculateAvailability(connection, entities.TechniqueRMC))
	assert.Equal(t, []entities.Availability{12, 0, 0, 0}, availabilities(connection))
}

func TestResetFlightDateBidPrices(t *testing.T) {
	manager := newSampleManager(t)

	inv, err := manager.repo.GetInventory("BA")
	require.NoError(t, err)
	business, ok := inv.FlightDates[0].Legs[1].Cabin("J")
	require.True(t, ok)
	business.EmptyBidPriceVector()

	require.NoError(t, manager.ResetFlightDateBidPrices("BA", "9,2011-06-10"))
	assert.Len(t, business.BidPriceVector, sample.BA9BusinessCapacity)

	err = manager.ResetFlightDateBidPrices("BA", "9,2011-06-11")
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeFlightDateNotFound))

	assert.Error(t, manager.ResetFlightDateBidPrices("ZZ", "9,2011-06-10"))
}

func TestSellAndCancel(t *testing.T) {
	manager := newSampleManager(t)

	assert.True(t, manager.Sell(sample.BA9LHRBKK, "Y", 3))
	assert.False(t, manager.Sell(sample.BA9LHRBKK, "Z", 1))
	assert.False(t, manager.Sell("ZZ;1,2011-06-10;LHR,BKK", "Y", 1))
	assert.False(t, manager.Sell("garbage", "Y", 1))

	_, connection, _ := sampleSolutions(t)
	require.NoError(t, manager.CalculateAvailability(connection, entities.TechniqueNone))
	assert.Equal(t, entities.Availability(9), connection.FareOptions[1].Availability)

	assert.False(t, manager.Cancel(sample.BA9LHRBKK, "Y", 4))
	assert.True(t, manager.Cancel(sample.BA9LHRBKK, "Y", 3))

	require.NoError(t, manager.CalculateAvailability(connection, entities.TechniqueNone))
	assert.Equal(t, entities.Availability(12), connection.FareOptions[1].Availability)
}

func TestSell_BeyondClassAvailability(t *testing.T) {
	manager := newSampleManager(t)

	assert.False(t, manager.Sell(sample.BA9LHRBKK, "Q", 9))

	ts, err := entities.NewTravelSolution(
		[]string{sample.BA9LHRBKK},
		[]entities.FareOption{{ClassPath: []string{"Q"}}})
	require.NoError(t, err)
	require.NoError(t, manager.CalculateAvailability(ts, entities.TechniqueNone))
	assert.Equal(t, entities.Availability(5), ts.FareOptions[0].Availability)

	assert.True(t, manager.Sell(sample.BA9LHRBKK, "Q", 5))
	require.NoError(t, manager.CalculateAvailability(ts, entities.TechniqueNone))
	assert.Equal(t, entities.Availability(0), ts.FareOptions[0].Availability)
}
