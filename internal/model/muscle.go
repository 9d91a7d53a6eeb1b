package model

import "strings"

// Target muscles offered when adding an exercise.
const (
	MuscleChest     = "Chest"
	MuscleBack      = "Back"
	MuscleShoulders = "Shoulders"
	MuscleArms      = "Arms"
	MuscleLegs      = "Legs"
	MuscleCore      = "Core"
	MuscleCardio    = "Cardio"
)

// DefaultMuscle is preselected for new exercises.
const DefaultMuscle = MuscleChest

// Muscles lists the known target muscles in display order.
var Muscles = []string{
	MuscleChest,
	MuscleBack,
	MuscleShoulders,
	MuscleArms,
	MuscleLegs,
	MuscleCore,
	MuscleCardio,
}

// CanonicalMuscle maps s onto a known muscle, case-insensitively.
// Unknown values are returned trimmed and reported as not known; older data
// used free-form categories, so they are still accepted.
func CanonicalMuscle(s string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, m := range Muscles {
		if strings.EqualFold(m, s) {
			return m, true
		}
	}
	return s, false
}
