package models

import (
	"time"

	"github.com/dedededepepi/koala/internal/constants"
)

// Trigger is one logged occurrence of a compulsive urge, resisted or not.
//
// Timestamp is an RFC3339 date-time string rather than a time.Time so that
// records round-trip byte-for-byte through exported backup documents,
// including documents produced by older releases.
type Trigger struct {
	ID             string `json:"id"`
	Timestamp      string `json:"timestamp"`
	IsResisted     bool   `json:"isResisted"`
	CompulsionType string `json:"compulsionType,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Mood           *int   `json:"mood,omitempty"`      // 1-5 scale
	Intensity      *int   `json:"intensity,omitempty"` // 1-10 scale
}

// Time parses the trigger's timestamp.
func (t Trigger) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, t.Timestamp)
}

// Day returns the trigger's local calendar date (YYYY-MM-DD), or the empty
// string when the timestamp does not parse.
func (t Trigger) Day() string {
	ts, err := t.Time()
	if err != nil {
		return ""
	}
	return ts.Local().Format(constants.DateFormat)
}

// Type returns the compulsion type label, falling back to the default label
// for triggers logged without one.
func (t Trigger) Type() string {
	if t.CompulsionType == "" {
		return constants.DefaultCompulsionType
	}
	return t.CompulsionType
}

// TriggerPatch carries partial updates for a stored trigger. Nil fields are
// left untouched.
type TriggerPatch struct {
	Timestamp      *string
	IsResisted     *bool
	CompulsionType *string
	Notes          *string
	Mood           *int
	Intensity      *int
}

// Apply merges the patch onto the trigger and returns the result.
func (t Trigger) Apply(p TriggerPatch) Trigger {
	if p.Timestamp != nil {
		t.Timestamp = *p.Timestamp
	}
	if p.IsResisted != nil {
		t.IsResisted = *p.IsResisted
	}
	if p.CompulsionType != nil {
		t.CompulsionType = *p.CompulsionType
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Mood != nil {
		t.Mood = p.Mood
	}
	if p.Intensity != nil {
		t.Intensity = p.Intensity
	}
	return t
}
