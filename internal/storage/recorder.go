package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Recorder saves finished runs for one session.
// Saving is best-effort: failures are logged and play continues.
type Recorder struct {
	store     *Store
	logger    *log.Logger
	sessionID string
	pack      string
	player    string
}

// NewRecorder creates a recorder. A nil store turns Record into a log-only call
// and a nil logger discards log output.
func NewRecorder(store *Store, logger *log.Logger, sessionID, pack, player string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:     store,
		logger:    logger,
		sessionID: sessionID,
		pack:      pack,
		player:    player,
	}
}

// Record saves a run built from the snapshot. A finished game reports the
// number of levels beaten; any other phase reports the level being played.
func (r *Recorder) Record(snap hangman.Snapshot, outcome string) {
	level := snap.Level
	if snap.Phase == hangman.PhaseAllLevelsComplete {
		level = snap.LevelCount
	}

	r.logger.Info("run finished",
		"session", r.sessionID,
		"pack", r.pack,
		"outcome", outcome,
		"score", snap.Score,
		"level", level,
	)

	if r.store == nil {
		return
	}

	_, err := r.store.SaveRun(Run{
		SessionID: r.sessionID,
		Pack:      r.pack,
		Player:    r.player,
		Score:     snap.Score,
		Level:     level,
		Outcome:   outcome,
	})
	if err != nil {
		r.logger.Error("save run failed", "session", r.sessionID, "err", err)
	}
}
