package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/suteetoe/employee-service/internal/model"
	"github.com/suteetoe/employee-service/pkg/logger"
)

// Store is the part of the employee repository seeding needs.
type Store interface {
	Count(ctx context.Context) (int64, error)
	Add(ctx context.Context, e *model.Employee) error
}

type sample struct {
	first, last string
	dept        model.Department
	active      bool
	joined      string
}

var samples = []sample{
	{"John", "Doe", model.DepartmentHR, true, "2020-12-01"},
	{"Jane", "Smith", model.DepartmentFinance, false, "2021-03-15"},
	{"Ali", "Khan", model.DepartmentIT, true, "2021-08-22"},
	{"Maria", "Gomez", model.DepartmentMarketing, false, "2022-11-09"},
	{"David", "Brown", model.DepartmentOperations, true, "2022-06-30"},
	{"Wei", "Li", model.DepartmentIT, true, "2023-01-17"},
	{"Aisha", "Ahmed", model.DepartmentHR, false, "2019-05-05"},
	{"Carlos", "Santos", model.DepartmentFinance, true, "2020-09-12"},
	{"Anna", "Kowalski", model.DepartmentMarketing, false, "2023-02-28"},
	{"Mohamed", "Hassan", model.DepartmentOperations, true, "2021-07-19"},
	{"Sara", "Connor", model.DepartmentHR, false, "2022-01-25"},
	{"James", "Wilson", model.DepartmentFinance, true, "2022-05-14"},
	{"Fatima", "Youssef", model.DepartmentIT, true, "2021-09-09"},
	{"Liam", "O'Connor", model.DepartmentMarketing, false, "2023-03-30"},
	{"Emily", "Blunt", model.DepartmentOperations, true, "2022-08-12"},
	{"Noah", "Brown", model.DepartmentHR, false, "2021-12-01"},
	{"Oliver", "Smith", model.DepartmentFinance, true, "2022-04-21"},
	{"Sophia", "Taylor", model.DepartmentIT, false, "2023-07-19"},
	{"Isabella", "Martinez", model.DepartmentMarketing, true, "2020-11-11"},
	{"Ethan", "Clark", model.DepartmentOperations, false, "2021-06-05"},
	{"William", "Johnson", model.DepartmentHR, true, "2022-10-23"},
	{"Mia", "Davis", model.DepartmentFinance, false, "2023-01-15"},
	{"Benjamin", "Miller", model.DepartmentIT, true, "2022-02-28"},
	{"Lucas", "Garcia", model.DepartmentMarketing, false, "2021-08-18"},
	{"Charlotte", "Lopez", model.DepartmentOperations, true, "2022-05-12"},
	{"Amelia", "Hernandez", model.DepartmentHR, false, "2023-09-01"},
	{"Henry", "Lopez", model.DepartmentFinance, true, "2021-11-19"},
	{"Alexander", "Wilson", model.DepartmentIT, false, "2022-07-07"},
	{"Ella", "Moore", model.DepartmentMarketing, true, "2023-04-25"},
	{"Daniel", "Taylor", model.DepartmentOperations, false, "2021-09-30"},
}

// joinWindow is how far back random join dates reach.
const joinWindow = 5 * 365 * 24 * time.Hour

// Employees inserts the sample employees when the store is empty and
// returns how many were written. With a nil rng every employee gets its
// listed join date; otherwise join dates are drawn from rng within the
// five years before now, so equal seeds give equal data.
func Employees(ctx context.Context, store Store, rng *rand.Rand, now time.Time) (int, error) {
	log := logger.FromCtx(ctx)

	n, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info("Skipping seed, employees already present", zap.Int64("count", n))
		return 0, nil
	}

	for i, s := range samples {
		joined, err := joinDate(s, rng, now)
		if err != nil {
			return i, err
		}
		email := sampleEmail(s)
		phone := fmt.Sprintf("010100100%02d", i+1)

		e := &model.Employee{
			FirstName:    s.first,
			LastName:     s.last,
			Department:   s.dept,
			EmailAddress: &email,
			Phone:        &phone,
			IsActive:     s.active,
			JoinedDate:   joined,
		}
		if err := store.Add(ctx, e); err != nil {
			return i, fmt.Errorf("seed employee %s: %w", e.FullName(), err)
		}
	}

	log.Info("Seeded employees", zap.Int("count", len(samples)))
	return len(samples), nil
}

func joinDate(s sample, rng *rand.Rand, now time.Time) (time.Time, error) {
	if rng == nil {
		return time.Parse("2006-01-02", s.joined)
	}
	back := time.Duration(rng.Int64N(int64(joinWindow)))
	return now.Add(-back).Truncate(24 * time.Hour), nil
}

func sampleEmail(s sample) string {
	clean := func(v string) string {
		return strings.ToLower(strings.ReplaceAll(v, "'", ""))
	}
	return clean(s.first) + "." + clean(s.last) + "@example.com"
}
