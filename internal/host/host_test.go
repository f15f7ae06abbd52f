package host

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubObject struct{ id ObjectID }

func (o stubObject) ID() ObjectID  { return o.id }
func (o stubObject) Pos() Position { return Position{} }
func (o stubObject) Energy() int   { return 10 }

type stubGame map[ObjectID]Object

func (g stubGame) Time() uint32     { return 0 }
func (g stubGame) CPUUsed() float64 { return 0 }
func (g stubGame) Creeps() []Creep  { return nil }
func (g stubGame) Spawns() []Spawn  { return nil }
func (g stubGame) GetObjectByID(id ObjectID) (Object, bool) {
	o, ok := g[id]
	return o, ok
}

func TestRefResolve(t *testing.T) {
	g := stubGame{"src": stubObject{id: "src"}}

	src, ok := NewRef[Source]("src").Resolve(g)
	require.True(t, ok)
	assert.Equal(t, ObjectID("src"), src.ID())

	_, ok = NewRef[Source]("gone").Resolve(g)
	assert.False(t, ok, "missing referent resolves to none")

	_, ok = NewRef[Controller]("src").Resolve(g)
	assert.False(t, ok, "wrong kind resolves to none")

	_, ok = Ref[Source]{}.Resolve(g)
	assert.False(t, ok)

	// resolving a vanished object repeatedly never errors
	for i := 0; i < 3; i++ {
		_, ok = NewRef[Source]("gone").Resolve(g)
		assert.False(t, ok)
	}
}

func TestPositionRanges(t *testing.T) {
	a := Position{Room: "W1N1", X: 10, Y: 10}
	assert.True(t, a.IsNearTo(Position{Room: "W1N1", X: 11, Y: 9}))
	assert.False(t, a.IsNearTo(Position{Room: "W1N1", X: 12, Y: 10}))
	assert.True(t, a.InRangeTo(Position{Room: "W1N1", X: 13, Y: 7}, 3))
	assert.Equal(t, -1, a.RangeTo(Position{Room: "W2N1", X: 10, Y: 10}))
	assert.False(t, a.IsNearTo(Position{Room: "W2N1", X: 10, Y: 10}))
}

func TestStoreCapacity(t *testing.T) {
	s := Store{Amounts: map[ResourceType]int{ResourceEnergy: 30}, Capacity: 50}
	assert.Equal(t, 30, s.UsedCapacity(ResourceEnergy))
	assert.Equal(t, 20, s.FreeCapacity(ResourceEnergy))

	over := Store{Amounts: map[ResourceType]int{ResourceEnergy: 60}, Capacity: 50}
	assert.Zero(t, over.FreeCapacity(ResourceEnergy))
	assert.Zero(t, Store{}.UsedCapacity(ResourceEnergy))
}

func TestErrorCodes(t *testing.T) {
	err := fmt.Errorf("upgrade: %w", ErrNotInRange)
	assert.True(t, errors.Is(err, ErrNotInRange))
	assert.False(t, errors.Is(err, ErrFull))
	assert.Equal(t, "not in range", ErrNotInRange.Error())
	assert.Equal(t, "error code -99", ErrorCode(-99).Error())
}

func TestParseBody(t *testing.T) {
	body, err := ParseBody([]string{"move", "MOVE", " carry", "work"})
	require.NoError(t, err)
	assert.Equal(t, []Part{PartMove, PartMove, PartCarry, PartWork}, body)
	assert.Equal(t, 250, BodyCost(body))
	assert.Equal(t, 2, CountParts(body, PartMove))

	_, err = ParseBody(nil)
	assert.Error(t, err)
	_, err = ParseBody([]string{"wings"})
	assert.Error(t, err)
}
