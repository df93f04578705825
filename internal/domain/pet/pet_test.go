package pet

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusAvailable, StatusPending, true},
		{StatusAvailable, StatusSold, true},
		{StatusAvailable, StatusAdopted, true},
		{StatusAvailable, StatusRejected, true},
		{StatusPending, StatusSold, true},
		{StatusPending, StatusAvailable, true},
		{StatusPending, StatusPending, true},
		{StatusPending, StatusAdopted, false},
		{StatusSold, StatusSold, true},
		{StatusSold, StatusAvailable, true},
		{StatusSold, StatusPending, false},
		{StatusSold, StatusAdopted, false},
		{StatusAdopted, StatusAdopted, true},
		{StatusAdopted, StatusAvailable, false},
		{StatusAdopted, StatusSold, false},
		{StatusRejected, StatusAvailable, true},
		{StatusRejected, StatusSold, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestTerminal(t *testing.T) {
	for s, want := range map[Status]bool{
		StatusAvailable: false,
		StatusPending:   false,
		StatusSold:      true,
		StatusAdopted:   true,
		StatusRejected:  false,
	} {
		if got := s.Terminal(); got != want {
			t.Errorf("%s.Terminal() = %v, want %v", s, got, want)
		}
	}
}

func TestClaimConsistent(t *testing.T) {
	owner := uuid.New()

	if ClaimConsistent(StatusSold, nil) {
		t.Error("sold without a claimant should be inconsistent")
	}
	if ClaimConsistent(StatusAdopted, nil) {
		t.Error("adopted without a claimant should be inconsistent")
	}
	if ClaimConsistent(StatusAvailable, &owner) {
		t.Error("available with a claimant should be inconsistent")
	}
	if !ClaimConsistent(StatusAvailable, nil) {
		t.Error("available without a claimant should be consistent")
	}
	if !ClaimConsistent(StatusSold, &owner) {
		t.Error("sold with a claimant should be consistent")
	}
	if !ClaimConsistent(StatusPending, nil) || !ClaimConsistent(StatusPending, &owner) {
		t.Error("pending is unconstrained either way")
	}
}
