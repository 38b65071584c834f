package game

import "testing"

func TestStarsDayLightCycleFadesAtMidday(t *testing.T) {
	params := NewParameters()
	stars := NewStars(NewRand(5))

	// Cycle off: the field twinkles at full strength.
	stars.Update(DayLightCycleDuration/4, params)
	for i, st := range stars.Visuals() {
		if st.Brightness <= 0 {
			t.Fatalf("star %d dark with the daylight cycle off", i)
		}
	}

	// Midday, cycle on: everything fades out.
	params.DoDayLightCycle = true
	stars.Update(DayLightCycleDuration/4, params)
	for i, st := range stars.Visuals() {
		if st.Brightness > 1e-5 {
			t.Fatalf("star %d brightness %v at midday, want 0", i, st.Brightness)
		}
	}
}
