package interaction

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSpawner struct {
	bodies []*physics.Body
	err    error
}

func (s *recordingSpawner) Add(bodies ...*physics.Body) error {
	if s.err != nil {
		return s.err
	}
	s.bodies = append(s.bodies, bodies...)
	return nil
}

func testOptions(seed int64) Options {
	material := physics.DefaultBodyOptions()
	material.Mass = 10
	material.Restitution = 1.2
	material.Force = physics.Vector{X: 0.5, Y: 0.6}
	return Options{
		MaxBodies: 40,
		MinRadius: 10,
		MaxRadius: 40,
		Material:  material,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func TestController_spawnCap(t *testing.T) {
	spawner := &recordingSpawner{}
	controller := NewController(spawner, testOptions(1))

	for i := 1; i <= 40; i++ {
		body, err := controller.OnMove(float64(i), float64(i))
		require.NoError(t, err)
		require.NotNil(t, body)
		assert.Equal(t, i, controller.Count())
	}
	assert.Len(t, spawner.bodies, 40)
	assert.True(t, controller.Capped())

	body, err := controller.OnMove(41, 41)
	assert.NoError(t, err)
	assert.Nil(t, body)
	assert.Equal(t, 41, controller.Count())
	assert.Len(t, spawner.bodies, 40)
}

func TestController_pressedGate(t *testing.T) {
	spawner := &recordingSpawner{}
	controller := NewController(spawner, testOptions(2))

	controller.OnPress()
	for i := 0; i < 5; i++ {
		body, err := controller.OnMove(100, 100)
		require.NoError(t, err)
		assert.Nil(t, body)
	}
	assert.Empty(t, spawner.bodies)
	assert.Equal(t, 5, controller.Count(), "count advances while pressed")

	controller.OnRelease()
	body, err := controller.OnMove(120, 130)
	require.NoError(t, err)
	require.NotNil(t, body)
	assert.Equal(t, "id-6", body.ID())
	assert.Equal(t, physics.Vector{X: 120, Y: 130}, body.Position())
	assert.Equal(t, 6, controller.Count())
}

func TestController_radiusBounds(t *testing.T) {
	opts := testOptions(3)
	opts.MaxBodies = 10000
	spawner := &recordingSpawner{}
	controller := NewController(spawner, opts)

	for i := 0; i < opts.MaxBodies; i++ {
		_, err := controller.OnMove(0, 0)
		require.NoError(t, err)
	}
	require.Len(t, spawner.bodies, opts.MaxBodies)
	for _, b := range spawner.bodies {
		assert.GreaterOrEqual(t, b.Radius(), 10.0)
		assert.Less(t, b.Radius(), 40.0)
	}
}

func TestController_material(t *testing.T) {
	spawner := &recordingSpawner{}
	opts := testOptions(4)
	controller := NewController(spawner, opts)

	body, err := controller.OnMove(5, 5)
	require.NoError(t, err)

	got := body.Options()
	assert.Equal(t, "id-1", got.ID)
	assert.False(t, got.IsStatic)
	assert.Equal(t, 10.0, got.Mass)
	assert.Equal(t, 1.2, got.Restitution)
	assert.Equal(t, physics.Vector{X: 0.5, Y: 0.6}, got.Force)
	assert.Empty(t, opts.Material.ID, "the template is not modified")
}

func TestController_spawnError(t *testing.T) {
	spawner := &recordingSpawner{err: errors.New("closed")}
	controller := NewController(spawner, testOptions(5))

	body, err := controller.OnMove(5, 5)
	assert.Error(t, err)
	assert.Nil(t, body)
	assert.Equal(t, 1, controller.Count())
}
