package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusScheduled Status = "Scheduled"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// Pending only exists on legacy rows and behaves like Scheduled.
var transitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true, StatusCompleted: true},
	StatusScheduled: {StatusConfirmed: true, StatusCancelled: true, StatusCompleted: true},
	StatusConfirmed: {StatusCancelled: true, StatusCompleted: true},
}

// ===============================
// Validations
// ===============================

// CanTransition allows staying in the current status so that repeated
// confirm/cancel calls are no-ops.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if transitions[from][to] {
		return nil
	}
	return httperr.ErrConflict(
		"invalid_state",
		fmt.Sprintf("appointment cannot move from %s to %s", from, to),
	)
}

func CanConfirm(current Status) error {
	return CanTransition(current, StatusConfirmed)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

func InitialStatus() Status {
	return StatusScheduled
}
