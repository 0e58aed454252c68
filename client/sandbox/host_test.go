package sandbox

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/cbodonnell/ballpit/client/flow"
	"github.com/cbodonnell/ballpit/client/pointer"
	"github.com/cbodonnell/ballpit/pkg/collisions"
	"github.com/cbodonnell/ballpit/pkg/config"
	"github.com/cbodonnell/ballpit/pkg/log"
	"github.com/cbodonnell/ballpit/pkg/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	width, height int
}

func (e *fakeElement) ClientWidth() int {
	return e.width
}

func (e *fakeElement) ClientHeight() int {
	return e.height
}

type fakeSurface struct {
	calls    *[]string
	running  bool
	closed   bool
	lookAt   physics.Bounds
	closeErr error
}

func (s *fakeSurface) LookAt(bounds physics.Bounds) {
	*s.calls = append(*s.calls, "surface.LookAt")
	s.lookAt = bounds
}

func (s *fakeSurface) ScreenToWorld(x, y float64) (float64, float64) {
	return x, y
}

func (s *fakeSurface) Run() {
	*s.calls = append(*s.calls, "surface.Run")
	s.running = true
}

func (s *fakeSurface) Stop() {
	*s.calls = append(*s.calls, "surface.Stop")
	s.running = false
}

func (s *fakeSurface) Close() error {
	*s.calls = append(*s.calls, "surface.Close")
	s.closed = true
	return s.closeErr
}

type fakeSource struct {
	x, y    int
	pressed bool
}

func (s *fakeSource) Position() (int, int) {
	return s.x, s.y
}

func (s *fakeSource) Pressed() bool {
	return s.pressed
}

type fixture struct {
	host    *Host
	surface *fakeSurface
	calls   []string
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, element Element, source pointer.Source) *fixture {
	t.Helper()
	f := &fixture{logs: &bytes.Buffer{}}
	f.host = NewHost(Options{
		Element: element,
		NewSurface: func(world *physics.World, width, height int) (Surface, error) {
			f.surface = &fakeSurface{calls: &f.calls}
			return f.surface, nil
		},
		Pointer: source,
		Config:  config.DefaultConfig(),
		Rand:    rand.New(rand.NewSource(7)),
		Logger:  log.New(f.logs, "", 0, log.LogLevelTrace),
	})
	return f
}

func dynamicBodies(world *physics.World) []*physics.Body {
	var bodies []*physics.Body
	for _, b := range world.Bodies() {
		if !b.IsStatic() {
			bodies = append(bodies, b)
		}
	}
	return bodies
}

func TestHost_Mount(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	assert.Equal(t, flow.SceneStateUnmounted, f.host.State())

	require.NoError(t, f.host.Mount())
	assert.Equal(t, flow.SceneStateRunning, f.host.State())
	assert.True(t, f.host.Running())
	assert.True(t, f.surface.running)

	world := f.host.World()
	require.NotNil(t, world)
	assert.Equal(t, 4, world.BodyCount())
	for _, id := range []string{collisions.WallTop, collisions.WallLeft, collisions.WallBottom, collisions.WallRight} {
		assert.NotNil(t, world.Body(id), id)
	}
	assert.Equal(t, physics.Gravity{X: 0, Y: -5, Scale: 0}, world.Gravity())
	assert.Equal(t, physics.Iterations{Velocity: 4, Position: 6, Constraint: 2}, world.Iterations())
	assert.Equal(t, physics.Bounds{Max: physics.Vector{X: 800, Y: 600}}, f.surface.lookAt)

	assert.Error(t, f.host.Mount(), "a host mounts once")
}

func TestHost_MountFailures(t *testing.T) {
	tests := []struct {
		name    string
		element Element
		wantErr error
	}{
		{name: "missing element", element: nil, wantErr: ErrNoElement},
		{name: "zero size", element: &fakeElement{width: 0, height: 600}, wantErr: collisions.ErrInvalidViewport},
		{name: "negative size", element: &fakeElement{width: 800, height: -1}, wantErr: collisions.ErrInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.element, nil)
			err := f.host.Mount()

			var initErr *InitializationError
			require.ErrorAs(t, err, &initErr)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, flow.SceneStateTornDown, f.host.State())
			assert.Nil(t, f.host.World())
			assert.Nil(t, f.host.Surface())
			assert.Nil(t, f.surface, "no surface is created for an invalid viewport")
		})
	}
}

func TestHost_MountSurfaceFailure(t *testing.T) {
	host := NewHost(Options{
		Element: &fakeElement{width: 800, height: 600},
		NewSurface: func(world *physics.World, width, height int) (Surface, error) {
			return nil, errors.New("no graphics")
		},
		Logger: log.New(&bytes.Buffer{}, "", 0, log.LogLevelError),
	})

	err := host.Mount()
	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, flow.SceneStateTornDown, host.State())
	assert.Nil(t, host.World())
	assert.False(t, host.Running())
}

func TestHost_UnmountOrderAndIdempotence(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	require.NoError(t, f.host.Mount())
	f.calls = nil

	f.host.Unmount()
	assert.Equal(t, []string{"surface.Stop", "surface.Close"}, f.calls)
	assert.Equal(t, flow.SceneStateTornDown, f.host.State())
	assert.Nil(t, f.host.Surface())
	assert.Nil(t, f.host.World())
	assert.False(t, f.host.Running())

	assert.NotPanics(t, f.host.Unmount)
	assert.Equal(t, []string{"surface.Stop", "surface.Close"}, f.calls, "the second call does nothing")
	assert.NoError(t, f.host.Update())
	assert.NoError(t, f.host.HandleMove(10, 10))
	assert.Error(t, f.host.Mount(), "a torn down host cannot be mounted again")
}

func TestHost_UnmountBeforeMount(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	f.host.Unmount()
	assert.Equal(t, flow.SceneStateTornDown, f.host.State())
	assert.Error(t, f.host.Mount())
}

func TestHost_pressedGate(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	require.NoError(t, f.host.Mount())
	world := f.host.World()

	f.host.HandlePress(500, 500)
	for i := 0; i < 10; i++ {
		require.NoError(t, f.host.HandleMove(500, float64(500+i)))
	}
	assert.Empty(t, dynamicBodies(world))
	assert.Equal(t, 10, f.host.SpawnCount())
	assert.True(t, f.host.Pressed())

	f.host.HandleRelease(500, 510)
	require.NoError(t, f.host.HandleMove(520, 520))
	bodies := dynamicBodies(world)
	require.Len(t, bodies, 1)
	assert.Equal(t, "id-11", bodies[0].ID())
	assert.Equal(t, 11, f.host.SpawnCount())
}

func TestHost_pointerSource(t *testing.T) {
	source := &fakeSource{x: 50, y: 50}
	f := newFixture(t, &fakeElement{width: 800, height: 600}, source)
	require.NoError(t, f.host.Mount())
	world := f.host.World()

	require.NoError(t, f.host.Update())
	assert.Empty(t, dynamicBodies(world), "the first poll only records the position")

	source.x, source.y = 300, 300
	require.NoError(t, f.host.Update())
	bodies := dynamicBodies(world)
	require.Len(t, bodies, 1)
	assert.Equal(t, bodies[0].ID(), f.host.Hovered())

	source.pressed = true
	require.NoError(t, f.host.Update())
	assert.True(t, f.host.Pressed())

	source.x = 320
	require.NoError(t, f.host.Update())
	assert.Len(t, dynamicBodies(world), 1, "dragging spawns nothing")
	assert.Equal(t, 2, f.host.SpawnCount())
}

func TestHost_spawnForceMovesBall(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	require.NoError(t, f.host.Mount())
	world := f.host.World()

	require.NoError(t, f.host.HandleMove(400, 300))
	for i := 0; i < 10; i++ {
		require.NoError(t, f.host.Update())
	}

	bodies := dynamicBodies(world)
	require.Len(t, bodies, 1)
	v := bodies[0].Velocity()
	assert.Greater(t, v.X, 500.0)
	assert.InDelta(t, 1.2, v.Y/v.X, 1e-6, "velocity follows the (0.5, 0.6) force")

	p := bodies[0].Position()
	assert.Greater(t, p.X-400, 50.0)
	assert.InDelta(t, 1.2, (p.Y-300)/(p.X-400), 1e-6)
}

func TestHost_endToEnd(t *testing.T) {
	f := newFixture(t, &fakeElement{width: 800, height: 600}, nil)
	require.NoError(t, f.host.Mount())
	world := f.host.World()

	f.host.HandleRelease(0, 0)
	require.NoError(t, f.host.HandleMove(100, 100))
	require.NoError(t, f.host.Update())

	bodies := dynamicBodies(world)
	require.Len(t, bodies, 1)
	assert.Equal(t, 1, f.host.SpawnCount())
	first := bodies[0].Position()
	assert.InDelta(t, 100, first.X, 1)
	assert.InDelta(t, 100, first.Y, 1)
	assert.GreaterOrEqual(t, bodies[0].Radius(), 10.0)
	assert.Less(t, bodies[0].Radius(), 40.0)

	for i := 0; i < 39; i++ {
		require.NoError(t, f.host.HandleMove(200, 200))
	}
	assert.Equal(t, 40, f.host.SpawnCount())
	assert.Len(t, dynamicBodies(world), 40)

	require.NoError(t, f.host.HandleMove(200, 200))
	assert.Equal(t, 41, f.host.SpawnCount())
	assert.Len(t, dynamicBodies(world), 40)

	for i := 0; i < 30; i++ {
		require.NoError(t, f.host.Update())
	}

	f.host.Unmount()
	assert.Equal(t, 0, world.BodyCount())
	assert.True(t, world.Closed())
	assert.False(t, f.host.Running())
	assert.False(t, f.surface.running)
	assert.True(t, f.surface.closed)
}
