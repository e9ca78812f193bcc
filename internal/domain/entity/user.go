package entity

// UserEntitlement is the read-only membership view of a traveler,
// sourced from the user-profile store.
type UserEntitlement struct {
	UserID      string   `bson:"_id" json:"user_id"`
	Name        string   `bson:"name" json:"name,omitempty"`
	HomeAirport string   `bson:"homeAirport" json:"home_airport,omitempty"`
	Memberships []string `bson:"memberships" json:"memberships"`
}

// HoldsAnyOf reports whether the user holds at least one of the given
// access providers.
func (u *UserEntitlement) HoldsAnyOf(providers []string) bool {
	for _, p := range providers {
		for _, m := range u.Memberships {
			if m == p {
				return true
			}
		}
	}
	return false
}
