package flow

type GameMode int

const (
	GameModeLoading GameMode = iota
	GameModeSandbox
	GameModeStopped
	GameModeError
)

func (m GameMode) String() string {
	switch m {
	case GameModeLoading:
		return "Loading"
	case GameModeSandbox:
		return "Sandbox"
	case GameModeStopped:
		return "Stopped"
	case GameModeError:
		return "Error"
	}
	return "Unknown"
}

// SceneState is the lifecycle of a mounted scene. A scene moves forward only:
// Unmounted, Initializing, Running, TornDown.
type SceneState int

const (
	SceneStateUnmounted SceneState = iota
	SceneStateInitializing
	SceneStateRunning
	SceneStateTornDown
)

func (s SceneState) String() string {
	switch s {
	case SceneStateUnmounted:
		return "Unmounted"
	case SceneStateInitializing:
		return "Initializing"
	case SceneStateRunning:
		return "Running"
	case SceneStateTornDown:
		return "Torn Down"
	}
	return "Unknown"
}
