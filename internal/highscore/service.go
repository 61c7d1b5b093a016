// Package highscore is the score persistence collaborator of the game:
// a Service contract, a store-backed implementation, a JSON HTTP API
// serving it and a client for submitting to a remote API.
package highscore

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/tui-chase/internal/storage"
)

// GameID is the storage key for chase scores.
const GameID = "chase"

// ErrInvalidScore is returned for scores the service refuses to store.
var ErrInvalidScore = errors.New("highscore: invalid score")

// Entry is one stored high score.
type Entry struct {
	ID     int64
	Player string
	Score  int
	Date   time.Time
}

// Service records and lists high scores.
type Service interface {
	Submit(ctx context.Context, player string, score int) (Entry, error)
	Top(ctx context.Context, limit int) ([]Entry, error)
}

// StoreService is a Service backed by a local or remote SQL store.
type StoreService struct {
	store  *storage.Store
	gameID string
}

// NewStoreService wraps store. Scores are kept under GameID.
func NewStoreService(store *storage.Store) *StoreService {
	return &StoreService{store: store, gameID: GameID}
}

// Submit implements Service.
func (s *StoreService) Submit(ctx context.Context, player string, score int) (Entry, error) {
	if score < 0 {
		return Entry{}, ErrInvalidScore
	}
	rec, err := s.store.SaveScore(ctx, s.gameID, player, score)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidScore) {
			return Entry{}, ErrInvalidScore
		}
		return Entry{}, err
	}
	return fromRecord(rec), nil
}

// Top implements Service.
func (s *StoreService) Top(ctx context.Context, limit int) ([]Entry, error) {
	recs, err := s.store.TopScores(ctx, s.gameID, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(recs))
	for i, rec := range recs {
		entries[i] = fromRecord(rec)
	}
	return entries, nil
}

func fromRecord(rec storage.ScoreEntry) Entry {
	return Entry{ID: rec.ID, Player: rec.Player, Score: rec.Score, Date: rec.CreatedAt}
}
