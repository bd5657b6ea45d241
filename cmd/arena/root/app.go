package root

import (
	"context"

	"go.uber.org/zap"

	"focusarena/internal/config"
	"focusarena/internal/game"
	"focusarena/internal/logging"
	"focusarena/internal/notify"
	"focusarena/internal/store"
)

// App bundles everything a command needs: config, logger, the snapshot store
// and the reducer that owns the loaded state.
type App struct {
	Cfg     *config.Config
	Log     *zap.Logger
	Store   *store.Store
	Reducer *game.Reducer

	persistOnClose bool
}

// openApp is the composition root: load config, open the store, hydrate the
// state, run the once-per-session streak automaton. The returned cleanup
// mirrors the final state back to disk and closes everything.
func openApp(ctx context.Context) (*App, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(cfg.LogFile, verbose)

	st, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	state := st.Load(ctx)
	reducer := game.NewReducer(state, game.WithCompletionHook(func(t game.Task) {
		notify.TaskCompleted(t.Title, t.XP)
	}))

	if status := reducer.AdvanceStreak(); status != game.StreakFresh {
		log.Info("login streak advanced",
			zap.Int("streak", reducer.State().Streak),
			zap.Bool("continued", status == game.StreakContinued))
	}

	app := &App{Cfg: cfg, Log: log, Store: st, Reducer: reducer, persistOnClose: true}
	cleanup := func() {
		if app.persistOnClose {
			if err := st.Save(context.Background(), reducer.State()); err != nil {
				log.Warn("final save failed", zap.Error(err))
			}
		}
		_ = st.Close()
		_ = log.Sync()
	}
	return app, cleanup, nil
}

// skipFinalSave leaves the persisted slot as-is on close (used by reset,
// which already cleared it).
func (a *App) skipFinalSave() {
	a.persistOnClose = false
}
