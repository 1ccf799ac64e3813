package billing

import "fleetbill-backend/internal/domain"

// Actor is the acting principal for every core operation. It is always
// passed explicitly; the core never reads session state.
type Actor struct {
	UserID   int32
	Role     domain.UserRole
	AgencyID *int32
	PlantID  *int32
}

// ActorForUser builds the billing actor from a user record.
func ActorForUser(u *domain.User) Actor {
	return Actor{UserID: u.ID, Role: u.Role, AgencyID: u.AgencyID, PlantID: u.PlantID}
}

// FilterVisibleTrips restricts the trip set to what the actor's role and
// affiliation entitle them to see. Admins see everything. Drivers see their
// own agency's trips. Plant-scoped roles see trips attributed to their
// plant, directly or transitively through the trip's agency. An actor
// missing the affiliation their role depends on sees nothing.
func FilterVisibleTrips(trips []domain.Trip, actor Actor) []domain.Trip {
	switch actor.Role {
	case domain.UserRoleAdmin, domain.UserRoleSuperAdmin:
		return trips

	case domain.UserRoleDriver:
		if actor.AgencyID == nil {
			return nil
		}
		visible := make([]domain.Trip, 0, len(trips))
		for _, t := range trips {
			if t.AgencyID == *actor.AgencyID {
				visible = append(visible, t)
			}
		}
		return visible

	case domain.UserRolePlantAdmin, domain.UserRoleFinance, domain.UserRoleMMD:
		if actor.PlantID == nil {
			return nil
		}
		visible := make([]domain.Trip, 0, len(trips))
		for _, t := range trips {
			if t.PlantID != nil && *t.PlantID == *actor.PlantID {
				visible = append(visible, t)
				continue
			}
			if t.Agency != nil && t.Agency.PlantID == *actor.PlantID {
				visible = append(visible, t)
			}
		}
		return visible
	}

	return nil
}

// CanMutateBilling reports whether the actor may create or edit bills.
// Only the driver who ran the trip may price it; every other role,
// including admin, is view only.
func CanMutateBilling(actor Actor) bool {
	return actor.Role == domain.UserRoleDriver
}

// CanViewBilling reports whether the actor may open the billing ledger
// at all.
func CanViewBilling(actor Actor) bool {
	switch actor.Role {
	case domain.UserRoleDriver, domain.UserRoleAdmin, domain.UserRoleSuperAdmin,
		domain.UserRolePlantAdmin, domain.UserRoleFinance, domain.UserRoleMMD:
		return true
	}
	return false
}
