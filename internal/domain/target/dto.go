package target

type CreateTargetRequest struct {
	Name   string        `json:"name"`
	Roster []RosterEntry `json:"roster"`
}

// UpdateTargetRequest is a partial patch; nil fields are left untouched.
// A non-nil Roster replaces the whole roster (order matters).
type UpdateTargetRequest struct {
	Name   *string        `json:"name,omitempty"`
	Roster *[]RosterEntry `json:"roster,omitempty"`
}

type TargetResponse struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Roster []RosterEntry `json:"roster"`
}
