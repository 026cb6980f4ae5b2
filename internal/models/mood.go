package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type MoodType string

const (
	MoodJoy        MoodType = "JOY"
	MoodGratitude  MoodType = "GRATITUDE"
	MoodCalm       MoodType = "CALM"
	MoodEnergy     MoodType = "ENERGY"
	MoodAnxiety    MoodType = "ANXIETY"
	MoodSadness    MoodType = "SADNESS"
	MoodIrritation MoodType = "IRRITATION"
	MoodTired      MoodType = "TIRED"

	// Legacy values written by early builds. They are accepted when decoding
	// stored entries and are never written back.
	MoodNeedSupport MoodType = "NEED_SUPPORT"
	MoodReadyToGrow MoodType = "READY_TO_GROW"
)

// CurrentMoods lists every mood a new entry may carry.
var CurrentMoods = []MoodType{
	MoodJoy,
	MoodGratitude,
	MoodCalm,
	MoodEnergy,
	MoodAnxiety,
	MoodSadness,
	MoodIrritation,
	MoodTired,
}

// IsLegacy reports whether m is one of the decode-only aliases.
func (m MoodType) IsLegacy() bool {
	return m == MoodNeedSupport || m == MoodReadyToGrow
}

// Valid reports whether m may be used for a new entry.
func (m MoodType) Valid() bool {
	for _, c := range CurrentMoods {
		if m == c {
			return true
		}
	}
	return false
}

// Known reports whether m is a current or legacy mood.
func (m MoodType) Known() bool {
	return m.Valid() || m.IsLegacy()
}

// Canonical maps legacy aliases onto the current mood they were split into.
// NEED_SUPPORT covered tiredness and anxiety together and READY_TO_GROW was
// the old energy option.
func (m MoodType) Canonical() MoodType {
	switch m {
	case MoodNeedSupport:
		return MoodTired
	case MoodReadyToGrow:
		return MoodEnergy
	default:
		return m
	}
}

// MarshalJSON always writes the canonical mood. The mood log is stored as one
// document, so the append after a legacy entry was loaded rewrites it on
// disk as TIRED or ENERGY. Decoding keeps the legacy value as read.
func (m MoodType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m.Canonical()))
}

func (m *MoodType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("mood must be a string: %w", err)
	}
	*m = MoodType(s)
	return nil
}

// ParseMood parses user input such as "calm" or "CALM". Legacy aliases are
// rejected because new entries must not carry them.
func ParseMood(s string) (MoodType, error) {
	m := MoodType(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood: %q", s)
	}
	return m, nil
}
