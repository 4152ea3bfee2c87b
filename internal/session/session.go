// Package session ties a Game to a level set, saved progress and the
// level-switching controls the front-ends expose.
package session

import (
	"fmt"

	"github.com/plus3/sokoban/internal/config"
	"github.com/plus3/sokoban/internal/progress"
	"github.com/plus3/sokoban/levels"
	"github.com/plus3/sokoban/sokoban"
	"go.uber.org/zap"
)

type Session struct {
	Game   *sokoban.Game
	Levels *sokoban.LevelSet
	index  int
	store  *progress.Store
	logger *zap.Logger
}

// New loads the configured level set and the starting level. store may be
// nil, in which case progress is neither resumed nor saved.
func New(cfg config.Config, logger *zap.Logger, store *progress.Store) (*Session, error) {
	set, err := loadLevelSet(cfg.LevelsFile)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Game:   sokoban.NewGame(sokoban.WithLogger(logger), sokoban.WithTickRate(cfg.TicksPerSecond)),
		Levels: set,
		index:  cfg.StartLevel,
		store:  store,
		logger: logger,
	}

	if cfg.Save.Resume {
		s.resume()
	}
	if s.index >= set.Len() {
		return nil, fmt.Errorf("start level: %w: %d not in [0,%d)", sokoban.ErrLevelIndex, s.index, set.Len())
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func loadLevelSet(path string) (*sokoban.LevelSet, error) {
	if path == "" {
		return levels.Classic()
	}
	return sokoban.LoadLevelSet(path)
}

func (s *Session) resume() {
	rec, ok, err := s.store.Load()
	if err != nil {
		s.logger.Warn("saved progress unreadable", zap.Error(err))
		return
	}
	if !ok {
		return
	}
	if i, found := s.Levels.Find(rec.Checksum); found {
		s.index = i
		s.logger.Info("resuming saved level", zap.Int("level", i))
		return
	}
	s.logger.Info("saved level no longer in level set", zap.Int("level", rec.Level))
}

func (s *Session) load() error {
	level, err := s.Levels.Level(s.index)
	if err != nil {
		return err
	}
	if err := s.Game.LoadLevel(level); err != nil {
		return err
	}
	s.logger.Info("level selected",
		zap.Int("level", s.index),
		zap.String("name", level.Name),
		zap.Uint64("checksum", level.Checksum()),
	)
	if err := s.store.Save(progress.Record{Level: s.index, Checksum: level.Checksum()}); err != nil {
		s.logger.Warn("progress not saved", zap.Error(err))
	}
	return nil
}

// Index returns the current level index.
func (s *Session) Index() int {
	return s.index
}

// Current returns the current level.
func (s *Session) Current() sokoban.Level {
	return s.Levels.Levels[s.index]
}

// Select switches to level i. On failure the current level stays loaded.
func (s *Session) Select(i int) error {
	if _, err := s.Levels.Level(i); err != nil {
		return err
	}
	prev := s.index
	s.index = i
	if err := s.load(); err != nil {
		s.index = prev
		return err
	}
	return nil
}

// Next switches to the following level, wrapping around.
func (s *Session) Next() error {
	return s.Select((s.index + 1) % s.Levels.Len())
}

// Prev switches to the previous level, wrapping around.
func (s *Session) Prev() error {
	return s.Select((s.index - 1 + s.Levels.Len()) % s.Levels.Len())
}

// Restart reloads the current level.
func (s *Session) Restart() error {
	return s.Game.Restart()
}
