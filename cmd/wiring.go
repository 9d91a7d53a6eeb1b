package cmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/gym/internal/codec"
	"github.com/Tiliavir/gym/internal/daycalc"
	"github.com/Tiliavir/gym/internal/kv"
	"github.com/Tiliavir/gym/internal/workout"
)

// session bundles the storage stack used by a single command run.
type session struct {
	kv    kv.Store
	codec *codec.Codec
	store *workout.Store
	clock daycalc.Clock
}

func openSession(ctx context.Context) (*session, error) {
	backing, err := kv.Open(ctx, cfg.KVOptions())
	if err != nil {
		return nil, err
	}
	logrus.WithField("backend", cfg.Storage.Backend).Debug("storage opened")

	scope := codec.MarkerGlobal
	if cfg.Reset.PerDay {
		scope = codec.MarkerPerDay
	}
	clock := daycalc.SystemClock{}
	c := codec.New(backing, clock, codec.WithMarkerScope(scope))
	return &session{
		kv:    backing,
		codec: c,
		store: workout.NewStore(c, clock),
		clock: clock,
	}, nil
}

func (s *session) Close() {
	if err := s.kv.Close(); err != nil {
		logrus.Warnf("closing storage: %v", err)
	}
}

// openDay opens a session and loads the day named by arg.
func openDay(ctx context.Context, arg string) (*session, error) {
	s, err := openSession(ctx)
	if err != nil {
		return nil, err
	}
	day, err := daycalc.NormalizeDay(arg, s.clock.Now())
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := s.store.Load(ctx, day); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
