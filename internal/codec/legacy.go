package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/gym/internal/model"
)

// wireRecord accepts every record shape written so far: "category" before
// "targetMuscle" existed, records without ids, and "pr" as a bare value
// before it carried a date and history. Scalar fields tolerate the wrong
// JSON type so one odd field never costs the whole record.
type wireRecord struct {
	ID           flexString      `json:"id"`
	Name         flexString      `json:"name"`
	Sets         flexInt         `json:"sets"`
	Reps         flexInt         `json:"reps"`
	TargetMuscle *flexString     `json:"targetMuscle"`
	Category     *flexString     `json:"category"`
	IsChecked    flexBool        `json:"isChecked"`
	Note         *flexString     `json:"note"`
	PR           json.RawMessage `json:"pr"`
}

type wirePR struct {
	Value   json.RawMessage   `json:"value"`
	Date    flexTime          `json:"date"`
	History []json.RawMessage `json:"history"`
}

type wirePREntry struct {
	Value model.PRValue `json:"value"`
	Date  flexTime      `json:"date"`
}

// parse decodes a stored day. Only a blob that is not a JSON array is an
// error; records that cannot be read are logged, skipped and counted in
// dropped. repaired reports ids that had to be regenerated.
func (c *Codec) parse(blob string) (coll model.DayCollection, repaired bool, dropped int, err error) {
	var raws []json.RawMessage
	if err := json.Unmarshal([]byte(blob), &raws); err != nil {
		return nil, false, 0, err
	}

	seen := make(map[string]bool, len(raws))
	coll = make(model.DayCollection, 0, len(raws))
	for i, raw := range raws {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var w wireRecord
		if err := json.Unmarshal(raw, &w); err != nil {
			logrus.WithField("index", i).Warnf("skipping unreadable exercise: %s", err)
			dropped++
			continue
		}

		r := model.ExerciseRecord{
			ID:        string(w.ID),
			Name:      string(w.Name),
			Sets:      int(w.Sets),
			Reps:      int(w.Reps),
			IsChecked: bool(w.IsChecked),
		}
		switch {
		case w.TargetMuscle != nil:
			r.TargetMuscle = string(*w.TargetMuscle)
		case w.Category != nil:
			r.TargetMuscle = string(*w.Category)
		}
		if w.Note != nil {
			note := string(*w.Note)
			r.Note = &note
		}

		if r.ID == "" || seen[r.ID] {
			r.ID = c.newID()
			repaired = true
		}
		seen[r.ID] = true

		pr, err := parsePR(w.PR)
		if err != nil {
			logrus.WithField("exercise", r.Name).Warnf("dropping unreadable personal record: %s", err)
		}
		r.PersonalRecord = pr

		coll = append(coll, r)
	}
	return coll, repaired, dropped, nil
}

func parsePR(raw json.RawMessage) (*model.PRState, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] != '{' {
		// Bare value from before PRs were dated.
		var v model.PRValue
		if bytes.Equal(raw, []byte(`""`)) {
			return nil, nil
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &model.PRState{Value: v, History: []model.PREntry{}}, nil
	}

	var w wirePR
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	var v model.PRValue
	if len(w.Value) > 0 {
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return nil, err
		}
	}

	pr := &model.PRState{Value: v, Date: time.Time(w.Date), History: []model.PREntry{}}
	for _, h := range w.History {
		var e wirePREntry
		if err := json.Unmarshal(h, &e); err != nil {
			logrus.Debugf("skipping unreadable history entry %s: %s", h, err)
			continue
		}
		pr.History = append(pr.History, model.PREntry{Value: e.Value, Date: time.Time(e.Date)})
	}
	if len(pr.History) > model.MaxPRHistory {
		pr.History = pr.History[len(pr.History)-model.MaxPRHistory:]
	}
	return pr, nil
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexString(n.String())
	return nil
}

// flexInt decodes a JSON number or numeric string into an int. Values that
// are not numeric decode as 0.
type flexInt int

func (i *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*i = 0
		return nil
	}
	*i = flexInt(f)
	return nil
}

// flexBool decodes true/false, their string forms, and 0/1. Anything else
// decodes as false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		*b = true
	default:
		*b = false
	}
	return nil
}

// timeLayouts are tried in order for PR dates. Layouts without a zone are
// read in local time.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime decodes RFC 3339 and ISO-8601 date or date-time strings as well as
// millisecond epoch numbers. A date that cannot be read decodes as the zero
// time so the value it belongs to survives.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	*t = flexTime(time.Time{})
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '"' {
		if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
			*t = flexTime(time.UnixMilli(ms))
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = flexTime(parsed)
			return nil
		}
	}
	return nil
}
