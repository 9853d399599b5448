package roster

// Participant is one entrant in the draw. GroupID is empty for people
// entering alone; members of the same declared couple or group share
// one minted id and are never matched with each other.
type Participant struct {
	Name    string
	Phone   string
	GroupID string
}

// Grouped reports whether the participant belongs to a declared group.
func (p Participant) Grouped() bool {
	return p.GroupID != ""
}

// SameGroup reports whether both participants belong to the same declared group.
func (p Participant) SameGroup(other Participant) bool {
	return p.Grouped() && other.Grouped() && p.GroupID == other.GroupID
}
