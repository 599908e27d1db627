package lifecycle

import (
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func TestAllowedTransition(t *testing.T) {
	all := []domain.ApplicationStatus{
		domain.StatusApplied, domain.StatusShortlisted, domain.StatusRejected,
		domain.StatusSelected, domain.StatusOfferAccepted, domain.StatusOfferDeclined,
		domain.StatusWithdrawn,
	}

	allowed := map[[2]domain.ApplicationStatus]bool{
		{domain.StatusApplied, domain.StatusShortlisted}:       true,
		{domain.StatusApplied, domain.StatusRejected}:          true,
		{domain.StatusApplied, domain.StatusWithdrawn}:         true,
		{domain.StatusShortlisted, domain.StatusSelected}:      true,
		{domain.StatusShortlisted, domain.StatusRejected}:      true,
		{domain.StatusShortlisted, domain.StatusWithdrawn}:     true,
		{domain.StatusSelected, domain.StatusOfferAccepted}:    true,
		{domain.StatusSelected, domain.StatusOfferDeclined}:    true,
		{domain.StatusSelected, domain.StatusWithdrawn}:        true,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]domain.ApplicationStatus{from, to}]
			if got := allowedTransition(from, to); got != want {
				t.Errorf("allowedTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []domain.ApplicationStatus{
		domain.StatusRejected, domain.StatusOfferAccepted,
		domain.StatusOfferDeclined, domain.StatusWithdrawn,
	}
	live := []domain.ApplicationStatus{
		domain.StatusApplied, domain.StatusShortlisted, domain.StatusSelected,
	}
	for _, s := range terminal {
		if !isTerminal(s) {
			t.Errorf("isTerminal(%s) = false", s)
		}
	}
	for _, s := range live {
		if isTerminal(s) {
			t.Errorf("isTerminal(%s) = true", s)
		}
	}
}

func TestCandidateOwned(t *testing.T) {
	if !candidateOwned(domain.StatusWithdrawn) || !candidateOwned(domain.StatusOfferAccepted) || !candidateOwned(domain.StatusOfferDeclined) {
		t.Error("candidate moves not recognized")
	}
	if candidateOwned(domain.StatusShortlisted) || candidateOwned(domain.StatusSelected) || candidateOwned(domain.StatusRejected) {
		t.Error("cell moves reported as candidate owned")
	}
}
