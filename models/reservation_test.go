package models

import "testing"

var allReservationStatuses = []ReservationStatus{
	ReservationPending, ReservationRejected, ReservationReserved,
	ReservationBorrowed, ReservationReturned, ReservationCanceled,
}

func TestReservationTransitions(t *testing.T) {
	allowed := map[ReservationStatus][]ReservationStatus{
		ReservationPending:  {ReservationRejected, ReservationReserved, ReservationCanceled},
		ReservationReserved: {ReservationBorrowed, ReservationCanceled},
		ReservationBorrowed: {ReservationReturned},
		ReservationRejected: {},
		ReservationReturned: {},
		ReservationCanceled: {},
	}

	for from, nexts := range allowed {
		ok := map[ReservationStatus]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range allReservationStatuses {
			if got := from.CanTransitionTo(to); got != ok[to] {
				t.Errorf("%s -> %s: got %v, want %v", from, to, got, ok[to])
			}
		}
	}
}

func TestReservationCannotCancelOnceBorrowed(t *testing.T) {
	if ReservationBorrowed.CanTransitionTo(ReservationCanceled) {
		t.Error("a Borrowed reservation must not be cancelable; only Return closes it")
	}
}

func TestReservationHolding(t *testing.T) {
	holding := map[ReservationStatus]bool{
		ReservationReserved: true,
		ReservationBorrowed: true,
	}
	for _, s := range allReservationStatuses {
		if got := s.Holding(); got != holding[s] {
			t.Errorf("%s.Holding() = %v, want %v", s, got, holding[s])
		}
	}
}

func TestReservationTerminal(t *testing.T) {
	terminal := map[ReservationStatus]bool{
		ReservationRejected: true,
		ReservationReturned: true,
		ReservationCanceled: true,
	}
	for _, s := range allReservationStatuses {
		if got := s.Terminal(); got != terminal[s] {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, terminal[s])
		}
	}
}
