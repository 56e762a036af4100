// Package stats derives read-only aggregates from entity collections. Every
// function is pure; callers fetch the data and pass it in.
package stats

import (
	"math"
	"time"
)

// Tally counts items per extracted key, starting from a zero entry for every
// member of keys so absent categories still report 0.
func Tally[T any](items []T, keys []string, key func(item T) string) map[string]int {
	counts := make(map[string]int, len(keys))

	for _, k := range keys {
		counts[k] = 0
	}

	for _, item := range items {
		counts[key(item)]++
	}

	return counts
}

// Rate returns part over whole as a percentage, 0 when whole is zero.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}

// NightsBetween is the stay length in whole nights, rounding partial days up.
// Same-day or inverted ranges count as zero nights.
func NightsBetween(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}

	hoursPerNight := 24.0

	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
}

// Mean averages the values, 0 for an empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Sum adds the extracted amounts.
func Sum[T any](items []T, amount func(item T) float64) float64 {
	var total float64

	for _, item := range items {
		total += amount(item)
	}

	return total
}

// SumWhere adds the extracted amounts of items passing the condition.
func SumWhere[T any](items []T, condition func(item T) bool, amount func(item T) float64) float64 {
	var total float64

	for _, item := range items {
		if condition(item) {
			total += amount(item)
		}
	}

	return total
}

// Balance is what remains owed after the given payments. It can go negative
// on over-payment; SettledBy treats any non-positive balance as paid in full.
func Balance(totalAmount float64, payments []float64) float64 {
	for _, p := range payments {
		totalAmount -= p
	}

	return totalAmount
}

// SettledBy reports whether the payments cover the total amount.
func SettledBy(totalAmount float64, payments []float64) bool {
	return Balance(totalAmount, payments) <= 0
}
