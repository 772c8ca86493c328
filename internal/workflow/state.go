package workflow

// State is a step of the per-invocation state machine:
//
//	Idle → Spawning → SpawnFailed → NotifyFailure → Aborted
//	                → Running → WaitFailed → NotifyFailure → Aborted
//	                          → Completed → NotifySummary → Done
//
// No transition re-enters an earlier state.
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateSpawnFailed
	StateRunning
	StateWaitFailed
	StateCompleted
	StateNotifyFailure
	StateNotifySummary
	StateAborted
	StateDone
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateSpawnFailed:
		return "spawn_failed"
	case StateRunning:
		return "running"
	case StateWaitFailed:
		return "wait_failed"
	case StateCompleted:
		return "completed"
	case StateNotifyFailure:
		return "notify_failure"
	case StateNotifySummary:
		return "notify_summary"
	case StateAborted:
		return "aborted"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateAborted || s == StateDone
}
