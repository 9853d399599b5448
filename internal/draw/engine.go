// Package draw computes the gift assignment: a bijection over the roster
// with no one drawing themselves and no one drawing within their own group.
package draw

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zauwn/secret-santa/internal/roster"
)

// ErrTooFewParticipants is returned for rosters below the minimum of two.
var ErrTooFewParticipants = errors.New("draw: need at least two participants")

// InfeasibleError means no valid assignment was found. Attempts is zero
// when the roster is provably unsolvable, otherwise the exhausted budget.
type InfeasibleError struct {
	Attempts int
}

func (e *InfeasibleError) Error() string {
	if e.Attempts == 0 {
		return "draw: no valid assignment exists for this roster"
	}
	return fmt.Sprintf("draw: no valid assignment found after %d attempts", e.Attempts)
}

// Pair matches one santa with the person they gift.
type Pair struct {
	Santa    roster.Participant
	Receiver roster.Participant
}

// Assignment holds one pair per participant. Every participant appears
// exactly once as santa and exactly once as receiver; receivers keep the
// roster order.
type Assignment []Pair

// Generate draws a valid assignment by rejection sampling: shuffle, test,
// repeat up to maxAttempts times. The rng is required so runs can be
// reproduced from a seed. Rosters where one group holds more than half
// of the participants are rejected up front without spending attempts.
func Generate(participants []roster.Participant, maxAttempts int, rng *rand.Rand) (Assignment, error) {
	if len(participants) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewParticipants, len(participants))
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("draw: maxAttempts must be positive, got %d", maxAttempts)
	}
	if rng == nil {
		return nil, errors.New("draw: rng is required")
	}
	if !feasible(participants) {
		return nil, &InfeasibleError{Attempts: 0}
	}

	perm := make([]int, len(participants))
	for i := range perm {
		perm[i] = i
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		rng.Shuffle(len(perm), func(i, j int) {
			perm[i], perm[j] = perm[j], perm[i]
		})
		if !valid(participants, perm) {
			continue
		}
		assignment := make(Assignment, len(participants))
		for i, santa := range perm {
			assignment[i] = Pair{
				Santa:    participants[santa],
				Receiver: participants[i],
			}
		}
		return assignment, nil
	}
	return nil, &InfeasibleError{Attempts: maxAttempts}
}

// valid reports whether perm maps every receiver i to an allowed santa:
// not themselves and not a member of their group. Identity is the roster
// index, so duplicate display names cannot mask a self-assignment.
func valid(participants []roster.Participant, perm []int) bool {
	for i, santa := range perm {
		if santa == i {
			return false
		}
		if participants[santa].SameGroup(participants[i]) {
			return false
		}
	}
	return true
}

// feasible checks that no group holds more than half of the roster.
// Members of a group can only receive from outsiders, and each outsider
// gifts once, so a group of g needs n-g >= g.
func feasible(participants []roster.Participant) bool {
	sizes := make(map[string]int)
	for _, p := range participants {
		if p.Grouped() {
			sizes[p.GroupID]++
		}
	}
	for _, g := range sizes {
		if 2*g > len(participants) {
			return false
		}
	}
	return true
}
