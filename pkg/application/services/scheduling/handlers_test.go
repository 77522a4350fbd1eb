package scheduling

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsinha/airinv/pkg/application/services/availability"
	"github.com/vsinha/airinv/pkg/domain/entities"
	"github.com/vsinha/airinv/pkg/infrastructure/config"
	"github.com/vsinha/airinv/pkg/infrastructure/events"
	"github.com/vsinha/airinv/pkg/infrastructure/logging"
	"github.com/vsinha/airinv/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
)

func sampleEngine(t *testing.T) (*memory.InventoryRepository, *availability.Manager) {
	t.Helper()
	repo, err := sample.BuildRepository()
	require.NoError(t, err)

	manager, err := availability.NewManager(repo, config.Default(), logging.Discard())
	require.NoError(t, err)
	require.NoError(t, manager.CreateDirectAccesses())
	require.NoError(t, manager.SetDefaultBidPriceVectors())
	return repo, manager
}

func TestRMHandler_ResetsFlightDateBidPrices(t *testing.T) {
	repo, manager := sampleEngine(t)

	ba, err := repo.GetInventory("BA")
	require.NoError(t, err)
	economy, ok := ba.FlightDates[0].Legs[0].Cabin("Y")
	require.True(t, ok)
	economy.BidPriceVector = entities.NewBidPriceVector(10, 20)

	at := time.Date(2011, 4, 8, 0, 0, 10, 0, time.UTC)
	queue := events.NewQueue()
	_, err = queue.AddEvent(events.NewEvent(events.RMEventType, "BA", events.OptimisationNotification{
		Airline: "BA", FlightDateKey: "9,2011-06-10", DCP: 63, Time: at,
	}, at))
	require.NoError(t, err)
	queue.Subscribe([]string{events.RMEventType}, NewRMHandler(manager, logging.Discard()))

	dispatched, err := queue.Dispatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)
	assert.Equal(t, 1, queue.Status(events.RMEventType).Processed)

	require.Len(t, economy.BidPriceVector, sample.BA9EconomyCapacity)
	assert.True(t, decimal.NewFromInt(400).Equal(economy.CurrentBidPrice))
}

func TestRMHandler_UnknownFlightDate(t *testing.T) {
	_, manager := sampleEngine(t)
	handler := NewRMHandler(manager, logging.Discard())

	at := time.Date(2011, 4, 8, 0, 0, 10, 0, time.UTC)
	err := handler.Handle(events.NewEvent(events.RMEventType, "BA", events.OptimisationNotification{
		Airline: "BA", FlightDateKey: "9,2011-06-11", DCP: 63, Time: at,
	}, at))
	assert.Error(t, err)

	err = handler.Handle(events.NewEvent(events.RMEventType, "BA", "not a notification", at))
	assert.Error(t, err)
	assert.False(t, handler.CanHandle(events.SnapshotEventType))
}

func TestSnapshotHandler_LogsLegCabins(t *testing.T) {
	repo, _ := sampleEngine(t)

	var buf bytes.Buffer
	logger, err := logging.New("info", logging.FormatJSON, &buf)
	require.NoError(t, err)

	queue := events.NewQueue()
	_, err = InitSnapshotEvents(queue, config.DefaultAirlineCode,
		time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	queue.Subscribe([]string{events.SnapshotEventType}, NewSnapshotHandler(repo, logger))

	dispatched, err := queue.Dispatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, dispatched)

	logged := buf.String()
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte(`"msg":"leg cabin snapshot"`)),
		"four BA cabins, the AF image cabin and the AF cabin")
	assert.Contains(t, logged, `"leg_cabin":"LHR;Y"`)
	assert.Contains(t, logged, `"bid_price":"400"`)
}
