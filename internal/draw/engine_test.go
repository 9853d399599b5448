package draw

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zauwn/secret-santa/internal/roster"
)

func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func sampleRoster() []roster.Participant {
	return []roster.Participant{
		{Name: "Ana", Phone: "1"},
		{Name: "Bruno", Phone: "2"},
		{Name: "Carla", Phone: "3", GroupID: "g0"},
		{Name: "Diego", Phone: "4", GroupID: "g0"},
	}
}

func assertValid(t *testing.T, participants []roster.Participant, assignment Assignment) {
	t.Helper()
	require.Len(t, assignment, len(participants))

	santas := make(map[string]int)
	receivers := make(map[string]int)
	for i, pair := range assignment {
		assert.Equal(t, participants[i].Name, pair.Receiver.Name, "receivers keep roster order")
		assert.NotEqual(t, pair.Santa.Name, pair.Receiver.Name, "no self-assignment")
		assert.False(t, pair.Santa.SameGroup(pair.Receiver),
			"%s and %s share a group", pair.Santa.Name, pair.Receiver.Name)
		santas[pair.Santa.Name]++
		receivers[pair.Receiver.Name]++
	}
	for _, p := range participants {
		assert.Equal(t, 1, santas[p.Name], "%s must gift exactly once", p.Name)
		assert.Equal(t, 1, receivers[p.Name], "%s must receive exactly once", p.Name)
	}
}

func TestGenerateMinimalValidRun(t *testing.T) {
	participants := sampleRoster()
	assignment, err := Generate(participants, 1000, newRNG(7))
	require.NoError(t, err)
	assertValid(t, participants, assignment)
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	participants := sampleRoster()
	first, err := Generate(participants, 1000, newRNG(99))
	require.NoError(t, err)
	second, err := Generate(participants, 1000, newRNG(99))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateManySeeds(t *testing.T) {
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1", GroupID: "g0"},
		{Name: "Bruno", Phone: "2", GroupID: "g0"},
		{Name: "Carla", Phone: "3", GroupID: "g1"},
		{Name: "Diego", Phone: "4", GroupID: "g1"},
		{Name: "Elsa", Phone: "5"},
		{Name: "Fabio", Phone: "6"},
	}
	for seed := int64(0); seed < 50; seed++ {
		assignment, err := Generate(participants, 1000, newRNG(seed))
		require.NoError(t, err, "seed %d", seed)
		assertValid(t, participants, assignment)
	}
}

func TestGenerateCoupleOnlyIsInfeasible(t *testing.T) {
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1", GroupID: "g0"},
		{Name: "Bruno", Phone: "2", GroupID: "g0"},
	}
	_, err := Generate(participants, 1000, newRNG(1))
	var infeasible *InfeasibleError
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, 0, infeasible.Attempts, "provably unsolvable rosters fail before sampling")
}

func TestGenerateOversizedGroupIsInfeasible(t *testing.T) {
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1", GroupID: "g0"},
		{Name: "Bruno", Phone: "2", GroupID: "g0"},
		{Name: "Carla", Phone: "3", GroupID: "g0"},
		{Name: "Diego", Phone: "4"},
		{Name: "Elsa", Phone: "5"},
	}
	_, err := Generate(participants, 1000, newRNG(1))
	var infeasible *InfeasibleError
	require.True(t, errors.As(err, &infeasible))
	assert.Equal(t, 0, infeasible.Attempts)
}

func TestGenerateHalfSizedGroupSucceeds(t *testing.T) {
	// One group of exactly n/2 is the tightest solvable case.
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1", GroupID: "g0"},
		{Name: "Bruno", Phone: "2", GroupID: "g0"},
		{Name: "Carla", Phone: "3"},
		{Name: "Diego", Phone: "4"},
	}
	assignment, err := Generate(participants, 10000, newRNG(3))
	require.NoError(t, err)
	assertValid(t, participants, assignment)
}

func TestGenerateTwoSinglesSwap(t *testing.T) {
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1"},
		{Name: "Bruno", Phone: "2"},
	}
	assignment, err := Generate(participants, 1000, newRNG(5))
	require.NoError(t, err)
	require.Len(t, assignment, 2)
	assert.Equal(t, "Bruno", assignment[0].Santa.Name)
	assert.Equal(t, "Ana", assignment[1].Santa.Name)
}

func TestGenerateAttemptExhaustionReportsBudget(t *testing.T) {
	// A 1-attempt budget over a tight roster rejects for some seeds.
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1", GroupID: "g0"},
		{Name: "Bruno", Phone: "2", GroupID: "g0"},
		{Name: "Carla", Phone: "3"},
		{Name: "Diego", Phone: "4"},
	}
	sawExhaustion := false
	for seed := int64(0); seed < 200 && !sawExhaustion; seed++ {
		_, err := Generate(participants, 1, newRNG(seed))
		var infeasible *InfeasibleError
		if errors.As(err, &infeasible) {
			assert.Equal(t, 1, infeasible.Attempts)
			sawExhaustion = true
		}
	}
	assert.True(t, sawExhaustion, "expected at least one seed to exhaust a 1-attempt budget")
}

func TestGeneratePreconditions(t *testing.T) {
	single := []roster.Participant{{Name: "Ana", Phone: "1"}}

	_, err := Generate(single, 100, newRNG(1))
	assert.True(t, errors.Is(err, ErrTooFewParticipants))

	_, err = Generate(sampleRoster(), 0, newRNG(1))
	assert.Error(t, err)

	_, err = Generate(sampleRoster(), 100, nil)
	assert.Error(t, err)
}

func TestGenerateDuplicateNamesStillExcludeSelfByIndex(t *testing.T) {
	// Two distinct participants may share a display name; the self check
	// keys off the roster index, so they are allowed to draw each other.
	participants := []roster.Participant{
		{Name: "Ana", Phone: "1"},
		{Name: "Ana", Phone: "2"},
		{Name: "Bruno", Phone: "3"},
	}
	assignment, err := Generate(participants, 1000, newRNG(11))
	require.NoError(t, err)
	for i, pair := range assignment {
		assert.NotEqual(t, participants[i].Phone, pair.Santa.Phone, "position %d assigned to itself", i)
	}
}
