package lifecycle

import "github.com/akshaynaik00018/cpms/internal/domain"

// allowedTransition is the whole state machine. Anything not listed here is
// rejected, including every move out of a terminal state.
func allowedTransition(from, to domain.ApplicationStatus) bool {
	switch from {
	case domain.StatusApplied:
		return to == domain.StatusShortlisted || to == domain.StatusRejected || to == domain.StatusWithdrawn
	case domain.StatusShortlisted:
		return to == domain.StatusSelected || to == domain.StatusRejected || to == domain.StatusWithdrawn
	case domain.StatusSelected:
		return to == domain.StatusOfferAccepted || to == domain.StatusOfferDeclined || to == domain.StatusWithdrawn
	default:
		return false
	}
}

func isTerminal(s domain.ApplicationStatus) bool {
	switch s {
	case domain.StatusRejected, domain.StatusOfferAccepted, domain.StatusOfferDeclined, domain.StatusWithdrawn:
		return true
	}
	return false
}

// candidateOwned reports whether the move belongs to the candidate rather
// than the placement cell. Only withdrawal and offer responses are.
func candidateOwned(to domain.ApplicationStatus) bool {
	switch to {
	case domain.StatusWithdrawn, domain.StatusOfferAccepted, domain.StatusOfferDeclined:
		return true
	}
	return false
}
