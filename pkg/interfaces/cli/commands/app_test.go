package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vsinha/airinv/pkg/infrastructure/sample"
	"github.com/vsinha/airinv/pkg/interfaces/cli/output"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := NewApp(&buf)
	err := app.Run(append([]string{"airinv", "--log-level", "error"}, args...))
	return buf.String(), err
}

func TestAvail_SampleSolutions(t *testing.T) {
	out, err := run(t, "--format", "json", "avail", "--technique", "IBP_YP")
	require.NoError(t, err)

	var results []output.TravelSolutionResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "IBP_YP", results[1].Technique)
	assert.Equal(t, int64(0), results[1].FareOptions[3].Availability, "Q-Q at 650 is below two 400 bid prices")
}

func TestAvail_FlagSolution(t *testing.T) {
	out, err := run(t, "--format", "json", "--default-bid-price", "1000",
		"avail", "--technique", "RAE_DA",
		"--segment", sample.BA9LHRBKK, "--segment", sample.BA9BKKSYD,
		"--fare-option", "J-J@4500", "--fare-option", "Y-Y@1700")
	require.NoError(t, err)

	var results []output.TravelSolutionResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, int64(12), results[0].FareOptions[0].Availability)
	assert.Equal(t, int64(0), results[0].FareOptions[1].Availability)
}

func TestAvail_Errors(t *testing.T) {
	_, err := run(t, "avail", "--technique", "FOO")
	assert.Error(t, err)

	_, err = run(t, "avail", "--fare-option", "Y@100")
	assert.Error(t, err)

	_, err = run(t, "--format", "xml", "avail")
	assert.Error(t, err)

	_, err = run(t, "--total-yield-policy", "prorated", "avail")
	assert.Error(t, err)
}

func TestTechniqueChoices(t *testing.T) {
	assert.Equal(t, "NONE, RAE_DA, RAE_YP, IBP_DA, IBP_YP, IBP_YP_U, RMC, A_RMC", techniqueChoices())
}

func TestSell(t *testing.T) {
	out, err := run(t, "sell", "--segment", sample.BA9LHRSYD, "--fare-option", "M@950", "--party-size", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Booking")
	assert.Contains(t, out, "M")

	_, err = run(t, "sell", "--segment", sample.BA9LHRSYD, "--fare-option", "Z@950")
	assert.Error(t, err)
}

func TestInitBPV(t *testing.T) {
	out, err := run(t, "--format", "json", "--default-bid-price", "250", "init-bpv")
	require.NoError(t, err)

	var cabins []output.LegCabinResult
	require.NoError(t, json.Unmarshal([]byte(out), &cabins))
	require.Len(t, cabins, 6, "four BA cabins, the AF image cabin and the AF cabin")
	for _, cabin := range cabins {
		assert.Equal(t, int(cabin.Capacity), cabin.BidPrices)
		assert.Equal(t, "250", cabin.CurrentBidPrice)
	}
}

func TestEvents(t *testing.T) {
	out, err := run(t, "events", "--start", "2011-01-01", "--end", "2011-01-20")
	require.NoError(t, err)
	assert.Contains(t, out, "snapshot   planned: 19")
	assert.Contains(t, out, "84,2011-03-20 DCP 63")

	assert.Contains(t, out, "snapshot   planned: 19, processed: 0")

	out, err = run(t, "events", "--start", "2011-01-01", "--end", "2011-01-20", "--dispatch")
	require.NoError(t, err)
	assert.Contains(t, out, "snapshot   planned: 19, processed: 19")
	assert.Contains(t, out, "rm         planned: 2, processed: 2")
	assert.Contains(t, out, "1084,2011-03-20 DCP 63")

	_, err = run(t, "events", "--start", "yesterday")
	assert.Error(t, err)
}

func TestParseFareOption(t *testing.T) {
	fo, err := ParseFareOption("YQ-M@1234.5")
	require.NoError(t, err)
	assert.Equal(t, []string{"YQ", "M"}, fo.ClassPath)
	assert.Equal(t, "1234.5", fo.Fare.String())

	for _, raw := range []string{"Y", "Y@cheap", "Y@-1", "Y--M@10"} {
		_, err := ParseFareOption(raw)
		assert.Error(t, err, raw)
	}
}
