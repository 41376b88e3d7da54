package appointment

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm moves ap to Confirmed and reports whether anything changed.
func Confirm(ap *models.Appointment) (bool, error) {
	return moveTo(ap, StatusConfirmed)
}

func Cancel(ap *models.Appointment) (bool, error) {
	return moveTo(ap, StatusCancelled)
}

// AssignDoctor records the doctor reference and a snapshot of the name.
func AssignDoctor(ap *models.Appointment, doctor *models.User) {
	id := doctor.ID
	name := doctor.Name
	ap.DoctorID = &id
	ap.DoctorName = &name
}

func moveTo(ap *models.Appointment, to Status) (bool, error) {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}
	ap.Status = string(to)
	return true, nil
}
