// Package policy is the authorization decision engine. Every function is a
// pure predicate over an Actor and a target resource: no I/O, no ambient
// state, deterministic for a given input.
//
// Each decision dispatches exhaustively over the three roles with an explicit
// default-deny arm, so an unknown or empty role can never fall through to an
// allow. Callers translate a false result into the single uniform Forbidden
// error; the engine never reports why access was denied.
package policy

import "go-jobboard-api/internal/domain"

// Job offers ----------------------------------------------------------------

// CanViewAnyJobOffer: any authenticated actor may list job offers. The
// visible set is scoped separately (see JobOfferListScope).
func CanViewAnyJobOffer(domain.Actor) bool { return true }

// CanViewJobOffer: any authenticated actor may view a single offer.
func CanViewJobOffer(domain.Actor, *domain.JobOffer) bool { return true }

func CanCreateJobOffer(a domain.Actor) bool {
	switch a.Role {
	case domain.RoleRecruiter, domain.RoleAdmin:
		return true
	case domain.RoleCandidate:
		return false
	default:
		return false
	}
}

func CanUpdateJobOffer(a domain.Actor, offer *domain.JobOffer) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleRecruiter:
		return a.ID == offer.RecruiterID
	case domain.RoleCandidate:
		return false
	default:
		return false
	}
}

func CanDeleteJobOffer(a domain.Actor, offer *domain.JobOffer) bool {
	return CanUpdateJobOffer(a, offer)
}

// Applications --------------------------------------------------------------

func CanViewAnyApplication(a domain.Actor) bool {
	switch a.Role {
	case domain.RoleCandidate, domain.RoleRecruiter, domain.RoleAdmin:
		return true
	default:
		return false
	}
}

func CanViewApplication(a domain.Actor, app *domain.Application) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate:
		return a.ID == app.UserID
	case domain.RoleRecruiter:
		return a.ID == app.OfferRecruiterID
	default:
		return false
	}
}

func CanCreateApplication(a domain.Actor) bool {
	switch a.Role {
	case domain.RoleCandidate:
		return true
	case domain.RoleRecruiter, domain.RoleAdmin:
		return false
	default:
		return false
	}
}

// CanUpdateApplication: candidates may edit their own application only while
// it is still pending; the owning recruiter may update it (i.e. move its
// status) at any point in the lifecycle. The asymmetry is deliberate: a
// recruiter moving interview -> accepted must not be blocked, while a
// candidate must not rewrite a submission under review.
func CanUpdateApplication(a domain.Actor, app *domain.Application) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate:
		return a.ID == app.UserID && app.Status == domain.ApplicationStatusPending
	case domain.RoleRecruiter:
		return a.ID == app.OfferRecruiterID
	default:
		return false
	}
}

func CanDeleteApplication(a domain.Actor, app *domain.Application) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate:
		return a.ID == app.UserID && app.Status == domain.ApplicationStatusPending
	case domain.RoleRecruiter:
		return false
	default:
		return false
	}
}

// CanFilterApplicationsByOffer gates the job_offer_id list filter itself:
// only an admin or the offer's owning recruiter may ask for the applications
// of a specific offer. Everyone else gets a denial, not an empty list.
func CanFilterApplicationsByOffer(a domain.Actor, offer *domain.JobOffer) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleRecruiter:
		return a.ID == offer.RecruiterID
	case domain.RoleCandidate:
		return false
	default:
		return false
	}
}

// Users ---------------------------------------------------------------------

func CanViewAnyUser(a domain.Actor) bool {
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate, domain.RoleRecruiter:
		return false
	default:
		return false
	}
}

func CanViewUser(a domain.Actor, target *domain.User) bool {
	if a.ID == target.ID {
		return true
	}
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleRecruiter:
		return target.Role == domain.RoleCandidate
	case domain.RoleCandidate:
		return false
	default:
		return false
	}
}

func CanUpdateUser(a domain.Actor, target *domain.User) bool {
	if a.ID == target.ID {
		return true
	}
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate, domain.RoleRecruiter:
		return false
	default:
		return false
	}
}

func CanDeleteUser(a domain.Actor, target *domain.User) bool {
	return CanUpdateUser(a, target)
}

// CVs -----------------------------------------------------------------------

// CanViewCV augments ownership with a derived relation: a recruiter may view
// the CV of a user who has applied to at least one of the recruiter's offers.
// hasApplicationToRecruiter is that precomputed existential fact; the query
// producing it lives in ApplicationRepository.ExistsForRecruiter so the two
// can be tested independently.
func CanViewCV(a domain.Actor, cv *domain.CV, hasApplicationToRecruiter bool) bool {
	if a.ID == cv.UserID {
		return true
	}
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleRecruiter:
		return hasApplicationToRecruiter
	case domain.RoleCandidate:
		return false
	default:
		return false
	}
}

func CanUpdateCV(a domain.Actor, cv *domain.CV) bool {
	if a.ID == cv.UserID {
		return true
	}
	switch a.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleCandidate, domain.RoleRecruiter:
		return false
	default:
		return false
	}
}

func CanDeleteCV(a domain.Actor, cv *domain.CV) bool {
	return CanUpdateCV(a, cv)
}
