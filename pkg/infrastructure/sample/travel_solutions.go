package sample

import (
	"github.com/shopspring/decimal"
	"github.com/vsinha/airinv/pkg/domain/entities"
)

// BuildTravelSolutions returns travel solutions over the sample inventory:
// the direct BA9 LHR-SYD, the connecting BA9 LHR-BKK + BKK-SYD, and the
// codeshare BA1084 CDG-SFO.
func BuildTravelSolutions() ([]*entities.TravelSolution, error) {
	direct, err := entities.NewTravelSolution(
		[]string{BA9LHRSYD},
		[]entities.FareOption{
			fareOption(3800, "J"),
			fareOption(1500, "Y"),
			fareOption(950, "M"),
			fareOption(550, "Q"),
		})
	if err != nil {
		return nil, err
	}

	connection, err := entities.NewTravelSolution(
		[]string{BA9LHRBKK, BA9BKKSYD},
		[]entities.FareOption{
			fareOption(4500, "J", "J"),
			fareOption(1700, "Y", "Y"),
			fareOption(1100, "M", "M"),
			fareOption(650, "Q", "Q"),
		})
	if err != nil {
		return nil, err
	}

	codeshare, err := entities.NewTravelSolution(
		[]string{BA1084CDGSFO},
		[]entities.FareOption{
			fareOption(700, "Y"),
			fareOption(450, "M"),
		})
	if err != nil {
		return nil, err
	}

	return []*entities.TravelSolution{direct, connection, codeshare}, nil
}

func fareOption(fare float64, classPath ...string) entities.FareOption {
	return entities.FareOption{
		ClassPath: classPath,
		Fare:      decimal.NewFromFloat(fare),
	}
}
