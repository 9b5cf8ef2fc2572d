package core

import "fmt"

// StartModeKind tells the indexer where the first block of a run comes from.
type StartModeKind uint8

const (
	// StartModeFromInterruption resumes from the last persisted block and
	// is the default when no mode is given.
	StartModeFromInterruption StartModeKind = iota
	StartModeFromHeight
	StartModeFromLatest
)

// StartMode is the operator intent for choosing the first block to index.
// Exactly one kind is active for the whole run.
type StartMode struct {
	Kind   StartModeKind
	Height uint64 // meaningful only for StartModeFromHeight
}

func StartFromHeight(h uint64) StartMode {
	return StartMode{Kind: StartModeFromHeight, Height: h}
}

func StartFromInterruption() StartMode {
	return StartMode{Kind: StartModeFromInterruption}
}

func StartFromLatest() StartMode {
	return StartMode{Kind: StartModeFromLatest}
}

func (m StartMode) String() string {
	switch m.Kind {
	case StartModeFromHeight:
		return fmt.Sprintf("from-height(%d)", m.Height)
	case StartModeFromLatest:
		return "from-latest"
	default:
		return "from-interruption"
	}
}

// StartSource records which source actually produced the start height.
type StartSource string

const (
	StartSourceExplicit  StartSource = "explicit"
	StartSourcePersisted StartSource = "persisted"
	StartSourceFinalized StartSource = "finalized"
)

// ResolvedStartHeight pairs the chosen height with its provenance, so logs
// and the status endpoint can tell how a run began.
type ResolvedStartHeight struct {
	Height uint64      `json:"height"`
	Source StartSource `json:"source"`
}
