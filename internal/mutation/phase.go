package mutation

// Phase is a step of the mutation state machine.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseLockAcquired
	PhaseGuardEvaluated
	PhaseWriteApplied
	PhaseCascadeFired
	PhaseCommit
	PhaseRollback
)

var phaseNames = [...]string{
	PhaseStart:          "start",
	PhaseLockAcquired:   "lock_acquired",
	PhaseGuardEvaluated: "guard_evaluated",
	PhaseWriteApplied:   "write_applied",
	PhaseCascadeFired:   "cascade_fired",
	PhaseCommit:         "commit",
	PhaseRollback:       "rollback",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}
