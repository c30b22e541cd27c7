package store

import (
	"context"
	"errors"

	"github.com/s0up4200/tmdbkit/tmdb"
)

type watcher struct {
	ch chan tmdb.Movie
}

// deliver hands m to the watcher, replacing a value the receiver has not
// picked up yet. Callers hold s.mu.
func (w *watcher) deliver(m tmdb.Movie) {
	select {
	case w.ch <- m:
		return
	default:
	}
	select {
	case <-w.ch:
	default:
	}
	select {
	case w.ch <- m:
	default:
	}
}

// WatchMovie streams a movie: the cached row first, if any, then every insert
// or update of that id. Receivers that fall behind only see the latest value.
// The channel is closed when ctx is done or the store is closed, whichever
// comes first.
func (s *Store) WatchMovie(ctx context.Context, id int) <-chan tmdb.Movie {
	w := &watcher{ch: make(chan tmdb.Movie, 1)}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(w.ch)
		return w.ch
	}
	set, ok := s.watchers[id]
	if !ok {
		set = make(map[*watcher]struct{})
		s.watchers[id] = set
	}
	set[w] = struct{}{}

	// read while holding the lock so a concurrent write cannot be overtaken
	// by the older row
	current, err := s.GetMovie(ctx, id)
	switch {
	case err == nil:
		w.deliver(*current)
	case !errors.Is(err, ErrNotFound):
		s.logger.Warn().Err(err).Int("movie_id", id).Msg("Failed to read movie for watcher")
	}
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.unwatch(id, w)
		case <-s.done:
		}
	}()

	return w.ch
}

func (s *Store) unwatch(id int, w *watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.watchers[id]
	if !ok {
		return
	}
	if _, ok := set[w]; !ok {
		return
	}
	delete(set, w)
	if len(set) == 0 {
		delete(s.watchers, id)
	}
	close(w.ch)
}

func (s *Store) notify(m tmdb.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for w := range s.watchers[m.ID] {
		w.deliver(m)
	}
}
