package queue

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

const DefaultWaitMinutesPerPatient = 15

type Status struct {
	Current  int `json:"current"`
	Total    int `json:"total"`
	WaitTime int `json:"waitTime"`
}

// Aggregate sums the queue counters of the given doctors. Rows that are not
// doctors are ignored and the waiting count never goes below zero.
func Aggregate(doctors []models.User, minutesPerPatient int) Status {
	var s Status
	for _, d := range doctors {
		if !d.IsDoctor() {
			continue
		}
		s.Current += d.QueueCurrent
		s.Total += d.QueueTotal
	}

	waiting := s.Total - s.Current
	if waiting < 0 {
		waiting = 0
	}
	s.WaitTime = waiting * minutesPerPatient
	return s
}
