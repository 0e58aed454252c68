package collisions

import (
	"fmt"
	"testing"

	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	world := physics.NewWorld()
	walls, err := BuildWalls(800, 600, WallOptions{Thickness: 20, Restitution: 1.2})
	require.NoError(t, err)
	require.NoError(t, world.Add(walls...))
	require.NoError(t, world.Add(
		physics.NewCircle(100, 100, 20, physics.BodyOptions{ID: "id-1", Mass: 10}),
		physics.NewCircle(110, 100, 20, physics.BodyOptions{ID: "id-2", Mass: 10}),
		physics.NewCircle(400, 400, 10, physics.BodyOptions{ID: "id-3", Mass: 10}),
	))

	index := NewIndex(800, 600)
	index.Sync(world.Bodies())
	assert.Equal(t, 7, index.Len())

	assert.Equal(t, []string{"id-1", "id-2"}, index.At(105, 100))
	assert.Equal(t, []string{"id-1"}, index.At(85, 100))
	assert.Equal(t, []string{"id-3"}, index.At(400, 405))
	assert.Empty(t, index.At(700, 500))
	assert.Empty(t, index.At(400, -10), "walls are not reported")

	world.Clear()
	index.Sync(world.Bodies())
	assert.Equal(t, 0, index.Len())
	assert.Empty(t, index.At(105, 100))
}

func TestIndex_Clear(t *testing.T) {
	index := NewIndex(200, 200)
	index.Sync([]*physics.Body{
		physics.NewCircle(50, 50, 10, physics.BodyOptions{ID: "a", Mass: 1}),
	})
	require.Equal(t, 1, index.Len())

	index.Clear()
	assert.Equal(t, 0, index.Len())
	assert.Empty(t, index.At(50, 50))
}

func TestIndex_AtInsertionOrder(t *testing.T) {
	world := physics.NewWorld()
	for n := 1; n <= 10; n++ {
		require.NoError(t, world.Add(physics.NewCircle(100, 100, 20, physics.BodyOptions{
			ID:   fmt.Sprintf("id-%d", n),
			Mass: 10,
		})))
	}

	index := NewIndex(800, 600)
	index.Sync(world.Bodies())

	ids := index.At(100, 100)
	require.Len(t, ids, 10)
	assert.Equal(t, "id-1", ids[0])
	assert.Equal(t, "id-9", ids[8])
	assert.Equal(t, "id-10", ids[9], "the last synced body is reported last")
}
