package model

type Role string

const (
	RoleClient   Role = "client"
	RoleOperator Role = "operator"
)

// Actor is the authenticated caller identity, resolved once by the external
// identity layer and passed to the engine as an explicit decision input.
type Actor struct {
	ClientID string
	Role     Role
}

func (a Actor) IsOperator() bool {
	return a.Role == RoleOperator
}

// Owns reports whether the actor is the owning client of the reservation.
// A reservation whose owner was removed belongs to nobody.
func (a Actor) Owns(r *Reservation) bool {
	return r.ClientID != "" && a.ClientID == r.ClientID
}
