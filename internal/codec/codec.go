// Package codec translates day collections to and from the storage medium and
// owns the daily reset of completion checkmarks.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/gym/internal/daycalc"
	"github.com/Tiliavir/gym/internal/kv"
	"github.com/Tiliavir/gym/internal/model"
)

const (
	dayKeyPrefix = "workout_"
	backupSuffix = "_corrupt"
	// MarkerKey holds the date on which checkmarks were last cleared.
	MarkerKey = "lastCheckedDate"
)

// MarkerScope controls how many reset markers exist.
type MarkerScope int

const (
	// MarkerGlobal uses one marker for all days: the first day visited on a new
	// date is reset and every other day counts as already reset for that date.
	MarkerGlobal MarkerScope = iota
	// MarkerPerDay keeps a separate marker per day so each day resets on its
	// first visit of a new date.
	MarkerPerDay
)

// CorruptDataError reports a stored blob that could not be parsed.
type CorruptDataError struct {
	Key string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data under %s: %v", e.Key, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// Codec reads and writes day collections.
type Codec struct {
	store kv.Store
	clock daycalc.Clock
	scope MarkerScope
	newID func() string
}

// Option configures a Codec.
type Option func(*Codec)

// WithMarkerScope selects global or per-day reset markers.
func WithMarkerScope(scope MarkerScope) Option {
	return func(c *Codec) { c.scope = scope }
}

// WithIDGenerator overrides the id generator used to repair records without an id.
func WithIDGenerator(f func() string) Option {
	return func(c *Codec) { c.newID = f }
}

// New returns a Codec writing into store. clock supplies today's date for the reset rule.
func New(store kv.Store, clock daycalc.Clock, opts ...Option) *Codec {
	c := &Codec{
		store: store,
		clock: clock,
		scope: MarkerGlobal,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DayKey returns the storage key of a day, e.g. "workout_monday".
func DayKey(day string) string {
	return dayKeyPrefix + strings.ToLower(strings.TrimSpace(day))
}

func (c *Codec) markerKey(day string) string {
	if c.scope == MarkerPerDay {
		return MarkerKey + "_" + strings.ToLower(strings.TrimSpace(day))
	}
	return MarkerKey
}

// Decode reads the collection stored for day. A missing key yields an empty
// collection. Records that do not parse are logged and skipped, and a blob
// that is not a JSON array yields an empty collection. In both cases the
// original blob is first copied to BackupKey(day). Only storage failures are
// returned as errors.
func (c *Codec) Decode(ctx context.Context, day string) (model.DayCollection, error) {
	coll, _, err := c.decode(ctx, day)
	return coll, err
}

// BackupKey returns the key that holds the last unreadable blob of a day,
// e.g. "workout_monday_corrupt".
func BackupKey(day string) string {
	return DayKey(day) + backupSuffix
}

func (c *Codec) decode(ctx context.Context, day string) (model.DayCollection, bool, error) {
	key := DayKey(day)
	blob, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !ok || strings.TrimSpace(blob) == "" {
		return model.DayCollection{}, false, nil
	}

	coll, repaired, dropped, err := c.parse(blob)
	if err != nil {
		cerr := &CorruptDataError{Key: key, Err: err}
		logrus.WithField("key", key).Warnf("discarding stored workout: %s", cerr)
		if err := c.backup(ctx, day, blob); err != nil {
			return nil, false, err
		}
		return model.DayCollection{}, false, nil
	}
	if dropped > 0 {
		if err := c.backup(ctx, day, blob); err != nil {
			return nil, false, err
		}
	}
	return coll, repaired, nil
}

// backup keeps a copy of blob before a later write can replace it.
func (c *Codec) backup(ctx context.Context, day, blob string) error {
	key := BackupKey(day)
	if prev, ok, err := c.store.Get(ctx, key); err == nil && ok && prev == blob {
		return nil
	}
	if err := c.store.Set(ctx, key, blob); err != nil {
		return fmt.Errorf("backing up %s: %w", DayKey(day), err)
	}
	logrus.WithField("key", key).Warn("unreadable workout data backed up")
	return nil
}

// Encode writes coll under the day's key in a single replace.
func (c *Codec) Encode(ctx context.Context, day string, coll model.DayCollection) error {
	out := make(model.DayCollection, 0, len(coll))
	for _, r := range coll {
		r = r.Clone()
		if r.PersonalRecord != nil && r.PersonalRecord.History == nil {
			r.PersonalRecord.History = []model.PREntry{}
		}
		out = append(out, r)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", day, err)
	}
	return c.store.Set(ctx, DayKey(day), string(data))
}

// ApplyDailyReset clears every checkmark in coll the first time it runs on a
// new calendar date, persisting both the cleared collection and the marker.
// It reports whether a reset happened. On the same date coll is returned as is.
func (c *Codec) ApplyDailyReset(ctx context.Context, day string, coll model.DayCollection) (model.DayCollection, bool, error) {
	key := c.markerKey(day)
	now := c.clock.Now()
	today := daycalc.DateKey(now)

	last, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return coll, false, err
	}
	if ok {
		// A marker in no known form counts as a new date.
		marked, err := daycalc.ParseDate(last, now.Location())
		if err == nil && daycalc.SameDay(marked, now) {
			return coll, false, nil
		}
	}

	reset := coll.Clone()
	if reset == nil {
		reset = model.DayCollection{}
	}
	for i := range reset {
		reset[i].IsChecked = false
	}

	// Collection first: if the marker write fails the reset simply runs again.
	if err := c.Encode(ctx, day, reset); err != nil {
		return coll, false, err
	}
	if err := c.store.Set(ctx, key, today); err != nil {
		return coll, false, err
	}
	logrus.WithFields(logrus.Fields{"day": day, "date": today, "previous": last}).Debug("daily reset applied")
	return reset, true, nil
}

// Load decodes the day's collection and applies the daily reset. Records that
// had to be repaired while decoding (missing or duplicate ids) are written back.
func (c *Codec) Load(ctx context.Context, day string) (model.DayCollection, error) {
	coll, repaired, err := c.decode(ctx, day)
	if err != nil {
		return nil, err
	}
	if repaired {
		if err := c.Encode(ctx, day, coll); err != nil {
			return nil, err
		}
	}
	coll, _, err = c.ApplyDailyReset(ctx, day, coll)
	if err != nil {
		return nil, err
	}
	return coll, nil
}
