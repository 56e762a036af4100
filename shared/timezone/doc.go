// Package timezone centralizes time handling in the configured application
// timezone so that dates, schedules, and monthly aggregates agree on what
// "today" and "this month" mean.
package timezone
