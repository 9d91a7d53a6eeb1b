// Package workout holds the exercises of the selected day and applies user
// intents to them. Every successful change is written through to storage
// before the call returns.
package workout

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/gym/internal/codec"
	"github.com/Tiliavir/gym/internal/daycalc"
	"github.com/Tiliavir/gym/internal/model"
)

// Store is the authoritative in-memory collection for one day.
// It is not safe for concurrent use.
type Store struct {
	codec *codec.Codec
	clock daycalc.Clock
	newID func() string

	day     string
	records model.DayCollection
	loaded  bool
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the id generator used by Add.
func WithIDGenerator(f func() string) Option {
	return func(s *Store) { s.newID = f }
}

// NewStore returns a Store persisting through c. clock stamps PR entries.
func NewStore(c *codec.Codec, clock daycalc.Clock, opts ...Option) *Store {
	s := &Store{
		codec: c,
		clock: clock,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Day returns the loaded day, or "" before Load.
func (s *Store) Day() string { return s.day }

// Records returns a copy of the loaded collection in display order.
func (s *Store) Records() model.DayCollection {
	out := s.records.Clone()
	if out == nil {
		out = model.DayCollection{}
	}
	return out
}

// Load makes day the active day, reading it from storage and applying the daily reset.
func (s *Store) Load(ctx context.Context, day string) error {
	day = strings.ToLower(strings.TrimSpace(day))
	if day == "" {
		return &ValidationError{Field: "day", Reason: "must not be empty"}
	}
	coll, err := s.codec.Load(ctx, day)
	if err != nil {
		return err
	}
	s.day = day
	s.records = coll
	s.loaded = true
	logrus.WithFields(logrus.Fields{"day": day, "exercises": len(coll)}).Debug("day loaded")
	return nil
}

// commit persists next and adopts it only when the write succeeded.
func (s *Store) commit(ctx context.Context, next model.DayCollection) error {
	if err := s.codec.Encode(ctx, s.day, next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Add validates draft and appends it as a new, unchecked exercise.
func (s *Store) Add(ctx context.Context, draft model.Draft) (model.ExerciseRecord, error) {
	if !s.loaded {
		return model.ExerciseRecord{}, ErrNoDay
	}
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.ExerciseRecord{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if draft.Sets <= 0 {
		return model.ExerciseRecord{}, &ValidationError{Field: "sets", Reason: "must be a positive integer"}
	}
	if draft.Reps <= 0 {
		return model.ExerciseRecord{}, &ValidationError{Field: "reps", Reason: "must be a positive integer"}
	}
	muscle, _ := model.CanonicalMuscle(draft.TargetMuscle)
	if muscle == "" {
		muscle = model.DefaultMuscle
	}

	id := s.newID()
	for s.records.Index(id) >= 0 {
		id = s.newID()
	}
	rec := model.ExerciseRecord{
		ID:           id,
		Name:         name,
		Sets:         draft.Sets,
		Reps:         draft.Reps,
		TargetMuscle: muscle,
	}

	next := append(s.records.Clone(), rec)
	if err := s.commit(ctx, next); err != nil {
		return model.ExerciseRecord{}, err
	}
	logrus.WithFields(logrus.Fields{"day": s.day, "id": id, "name": name}).Debug("exercise added")
	return rec.Clone(), nil
}

// Delete removes the exercise with the given id. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	if !s.loaded {
		return ErrNoDay
	}
	i := s.records.Index(id)
	if i < 0 {
		return nil
	}
	next := s.records.Clone()
	next = append(next[:i], next[i+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"day": s.day, "id": id}).Debug("exercise deleted")
	return nil
}

// update applies fn to a copy of the record with the given id and persists the result.
func (s *Store) update(ctx context.Context, id string, fn func(r *model.ExerciseRecord)) (model.ExerciseRecord, error) {
	if !s.loaded {
		return model.ExerciseRecord{}, ErrNoDay
	}
	i := s.records.Index(id)
	if i < 0 {
		return model.ExerciseRecord{}, &NotFoundError{Day: s.day, ID: id}
	}
	next := s.records.Clone()
	fn(&next[i])
	if err := s.commit(ctx, next); err != nil {
		return model.ExerciseRecord{}, err
	}
	return next[i].Clone(), nil
}

// ToggleChecked flips the completion flag of an exercise.
func (s *Store) ToggleChecked(ctx context.Context, id string) (model.ExerciseRecord, error) {
	return s.update(ctx, id, func(r *model.ExerciseRecord) {
		r.IsChecked = !r.IsChecked
	})
}

// SetNote replaces the note of an exercise. Empty text clears it.
func (s *Store) SetNote(ctx context.Context, id, text string) (model.ExerciseRecord, error) {
	return s.update(ctx, id, func(r *model.ExerciseRecord) {
		if text == "" {
			r.Note = nil
			return
		}
		note := text
		r.Note = &note
	})
}

// RecordPR logs value as a personal-record attempt, see NextPR.
func (s *Store) RecordPR(ctx context.Context, id, value string) (model.ExerciseRecord, error) {
	if !s.loaded {
		return model.ExerciseRecord{}, ErrNoDay
	}
	if s.records.Index(id) < 0 {
		return model.ExerciseRecord{}, &NotFoundError{Day: s.day, ID: id}
	}
	v, err := model.ParsePRValue(value)
	if err != nil {
		return model.ExerciseRecord{}, &ValidationError{Field: "pr", Reason: err.Error()}
	}
	now := s.clock.Now()
	return s.update(ctx, id, func(r *model.ExerciseRecord) {
		pr := NextPR(r.PersonalRecord, v, now)
		r.PersonalRecord = &pr
	})
}

// Resolve maps an exact id or a unique id prefix to the full id.
func (s *Store) Resolve(ref string) (string, error) {
	if !s.loaded {
		return "", ErrNoDay
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if s.records.Index(ref) >= 0 {
		return ref, nil
	}
	match := ""
	for _, r := range s.records {
		if strings.HasPrefix(r.ID, ref) {
			if match != "" {
				return "", &ValidationError{Field: "id", Reason: "prefix " + ref + " is ambiguous"}
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", &NotFoundError{Day: s.day, ID: ref}
	}
	return match, nil
}
