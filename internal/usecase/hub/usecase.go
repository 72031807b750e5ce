package hub

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/seliv-dev/tic-tac-toe/internal/domain"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

const sweepPeriod = time.Minute

// useCase keeps one game per client key, in memory only, so a dropped
// connection can pick its unfinished board back up. Finished games are
// swept out periodically.
type useCase struct {
	session domain.SessionUseCase
	states  map[string]domain.GameState
	started *atomic.Int64
	ticker  *time.Ticker
	mu      *sync.RWMutex
	done    chan struct{}
	logger  *zap.Logger
}

func New(session domain.SessionUseCase, logger *zap.Logger) *useCase {
	u := &useCase{
		session: session,
		states:  make(map[string]domain.GameState),
		started: atomic.NewInt64(0),
		ticker:  time.NewTicker(sweepPeriod),
		mu:      &sync.RWMutex{},
		done:    make(chan struct{}),
		logger:  logger,
	}
	go u.sweepFinished()
	return u
}

func (u *useCase) Handle(ctx context.Context, client domain.Client) error {
	state, resumed := u.loadState(client.Uuid())
	if resumed {
		u.logger.Info("resuming unfinished game", zap.String("client", client.Uuid()))
	} else {
		u.started.Inc()
	}
	final, err := u.session.Run(ctx, client, state)
	u.storeState(client.Uuid(), final)
	if err != nil {
		return errors.WithMessage(err, "run game session")
	}
	return nil
}

func (u *useCase) GamesStarted() int64 {
	return u.started.Load()
}

func (u *useCase) Close() {
	close(u.done)
}

// loadState returns the client's unfinished game if one is stored,
// otherwise a fresh one. Finished games are never resumed.
func (u *useCase) loadState(clientUuid string) (domain.GameState, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	state, ok := u.states[clientUuid]
	if !ok || state.Result() != domain.InProgress {
		return domain.NewGameState(), false
	}
	return state, true
}

func (u *useCase) storeState(clientUuid string, state domain.GameState) {
	u.mu.Lock()
	u.states[clientUuid] = state
	u.mu.Unlock()
}

func (u *useCase) sweepFinished() {
	defer u.ticker.Stop()
	for {
		select {
		case <-u.ticker.C:
			u.mu.Lock()
			for clientUuid, state := range u.states {
				if state.Result() != domain.InProgress {
					delete(u.states, clientUuid)
				}
			}
			u.mu.Unlock()
		case <-u.done:
			return
		}
	}
}
