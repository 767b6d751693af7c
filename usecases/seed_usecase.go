package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/crewledger/crewpay-backend/models"
	"github.com/crewledger/crewpay-backend/repositories"
	"github.com/crewledger/crewpay-backend/usecases/executor_factory"
	"github.com/crewledger/crewpay-backend/utils"
)

var (
	domesticAirports      = []string{"ORD", "DEN", "IAH", "SFO", "EWR", "LAX", "DCA"}
	internationalAirports = []string{"LHR", "NRT", "FRA", "GRU", "SYD"}
)

type tripCreator interface {
	InsertTrip(ctx context.Context, exec repositories.Executor, input models.TripCreate) error
}

// SeedUsecase writes fake completed trips so a development environment has
// something for the pipeline to chew on. Never wired in production.
type SeedUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	tripRepository  tripCreator
}

func (u Usecases) NewSeedUsecase() SeedUsecase {
	return SeedUsecase{
		executorFactory: u.NewExecutorFactory(),
		tripRepository:  u.Repositories.CrewPayDbRepo,
	}
}

// SeedSampleTrips inserts count completed trips, spread over a handful of
// fake crew members and the last two days so discovery picks them up.
func (u SeedUsecase) SeedSampleTrips(ctx context.Context, count int) error {
	exec := u.executorFactory.NewExecutor()

	crewMemberIds := make([]uuid.UUID, 0, 3)
	for range 3 {
		crewMemberIds = append(crewMemberIds, uuid.MustParse(faker.UUIDHyphenated()))
	}

	for i := 0; i < count; i++ {
		trip := sampleTrip(crewMemberIds[i%len(crewMemberIds)], i)
		if err := u.tripRepository.InsertTrip(ctx, exec, trip); err != nil {
			return err
		}
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx,
		fmt.Sprintf("seeded %d sample trips for %d crew members", count, len(crewMemberIds)))
	return nil
}

func sampleTrip(crewMemberId uuid.UUID, seq int) models.TripCreate {
	international := rand.Intn(4) == 0
	origin := domesticAirports[rand.Intn(len(domesticAirports))]
	destination := domesticAirports[rand.Intn(len(domesticAirports))]
	if international {
		destination = internationalAirports[rand.Intn(len(internationalAirports))]
	}

	blockHours := 2 + rand.Float64()*12
	departure := time.Now().Add(-time.Duration(rand.Intn(48)) * time.Hour).Truncate(time.Minute)
	arrival := departure.Add(time.Duration(blockHours * float64(time.Hour)))

	return models.TripCreate{
		Id:                 uuid.MustParse(faker.UUIDHyphenated()),
		TripNumber:         fmt.Sprintf("UA%04d", 1000+seq),
		Date:               departure.Truncate(24 * time.Hour),
		Origin:             origin,
		Destination:        destination,
		ScheduledDeparture: departure,
		ScheduledArrival:   arrival,
		BlockHours:         blockHours,
		FlightTimeHours:    blockHours * 0.9,
		CreditHours:        blockHours,
		IsInternational:    international,
		CrewMemberId:       crewMemberId,
		Status:             models.TripStatusCompleted,
	}
}
