package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMouseConstraint(t *testing.T) {
	world := NewWorld()
	world.Configure(Gravity{Scale: 0}, DefaultIterations)
	wall := NewRectangle(50, 50, 100, 100, BodyOptions{IsStatic: true, ID: "wall"})
	ball := NewCircle(300, 300, 20, dynamicOptions("ball"))
	require.NoError(t, world.Add(wall, ball))

	mouse := NewMouseConstraint(world, MouseConstraintOptions{Stiffness: 0.2, MaxForce: 50000})

	assert.False(t, mouse.Press(50, 50), "walls cannot be grabbed")
	assert.Nil(t, mouse.Grabbed())
	assert.Equal(t, 0, world.ConstraintCount())
	mouse.Release()

	require.True(t, mouse.Press(300, 300))
	assert.Same(t, ball, mouse.Grabbed())
	assert.Equal(t, 1, world.ConstraintCount())

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		mouse.Move(400, 300)
		mouse.Update(dt)
		world.Step(dt)
	}
	assert.Greater(t, ball.Position().X, 300.0, "the grabbed body follows the pointer")

	mouse.Release()
	assert.Nil(t, mouse.Grabbed())
	assert.Equal(t, 0, world.ConstraintCount())
	assert.NotPanics(t, mouse.Release)
}
