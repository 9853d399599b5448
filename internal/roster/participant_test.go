package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameGroup(t *testing.T) {
	ana := Participant{Name: "Ana", GroupID: "g0"}
	bruno := Participant{Name: "Bruno", GroupID: "g0"}
	carla := Participant{Name: "Carla", GroupID: "g1"}
	diego := Participant{Name: "Diego"}

	assert.True(t, ana.SameGroup(bruno))
	assert.True(t, bruno.SameGroup(ana))
	assert.False(t, ana.SameGroup(carla))
	assert.False(t, ana.SameGroup(diego))
	assert.False(t, diego.SameGroup(diego), "ungrouped participants never share a group")
}

func TestGrouped(t *testing.T) {
	assert.True(t, Participant{GroupID: "g0"}.Grouped())
	assert.False(t, Participant{}.Grouped())
}
