package stats_test

import (
	"testing"
	"time"

	"hotelier/shared/stats"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTally(t *testing.T) {
	type room struct {
		Status string
	}

	rooms := []room{
		{Status: "available"},
		{Status: "occupied"},
		{Status: "occupied"},
	}

	counts := stats.Tally(rooms, []string{"available", "occupied", "maintenance"}, func(r room) string {
		return r.Status
	})

	if counts["available"] != 1 {
		t.Errorf("expected 1 available, got %d", counts["available"])
	}

	if counts["occupied"] != 2 {
		t.Errorf("expected 2 occupied, got %d", counts["occupied"])
	}

	if value, ok := counts["maintenance"]; !ok || value != 0 {
		t.Errorf("expected maintenance to be present with 0, got %d (present: %v)", value, ok)
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name     string
		part     int
		whole    int
		expected float64
	}{
		{
			name:     "zero whole returns 0",
			part:     3,
			whole:    0,
			expected: 0,
		},
		{
			name:     "partial occupancy",
			part:     2,
			whole:    5,
			expected: 40.0,
		},
		{
			name:     "full occupancy",
			part:     5,
			whole:    5,
			expected: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stats.Rate(tt.part, tt.whole)
			if result != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		expected int
	}{
		{
			name:     "two nights",
			checkIn:  date(2025, time.January, 1),
			checkOut: date(2025, time.January, 3),
			expected: 2,
		},
		{
			name:     "same day counts as zero",
			checkIn:  date(2025, time.January, 1),
			checkOut: date(2025, time.January, 1),
			expected: 0,
		},
		{
			name:     "inverted range counts as zero",
			checkIn:  date(2025, time.January, 3),
			checkOut: date(2025, time.January, 1),
			expected: 0,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2025, time.January, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.January, 2, 11, 0, 0, 0, time.UTC),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stats.NightsBetween(tt.checkIn, tt.checkOut)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "empty input returns 0",
			values:   nil,
			expected: 0,
		},
		{
			name:     "average of stay lengths",
			values:   []float64{2, 5},
			expected: 3.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stats.Mean(tt.values)
			if result != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestSum(t *testing.T) {
	type payment struct {
		Amount float64
		PaidAt time.Time
	}

	payments := []payment{
		{Amount: 100, PaidAt: date(2025, time.January, 15)},
		{Amount: 250.5, PaidAt: date(2025, time.February, 1)},
		{Amount: 50, PaidAt: date(2025, time.February, 20)},
	}

	total := stats.Sum(payments, func(p payment) float64 { return p.Amount })
	if total != 400.5 {
		t.Errorf("expected 400.5, got %f", total)
	}

	february := stats.SumWhere(payments,
		func(p payment) bool { return p.PaidAt.Month() == time.February },
		func(p payment) float64 { return p.Amount },
	)
	if february != 300.5 {
		t.Errorf("expected 300.5, got %f", february)
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    float64
		payments []float64
		expected float64
		settled  bool
	}{
		{
			name:     "no payments",
			total:    200,
			payments: nil,
			expected: 200,
			settled:  false,
		},
		{
			name:     "partial payments leave a balance",
			total:    200,
			payments: []float64{50, 50},
			expected: 100,
			settled:  false,
		},
		{
			name:     "exact payment settles",
			total:    200,
			payments: []float64{200},
			expected: 0,
			settled:  true,
		},
		{
			name:     "over-payment goes negative and settles",
			total:    200,
			payments: []float64{150, 100},
			expected: -50,
			settled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance := stats.Balance(tt.total, tt.payments)
			if balance != tt.expected {
				t.Errorf("expected balance %f, got %f", tt.expected, balance)
			}

			settled := stats.SettledBy(tt.total, tt.payments)
			if settled != tt.settled {
				t.Errorf("expected settled %v, got %v", tt.settled, settled)
			}
		})
	}
}
