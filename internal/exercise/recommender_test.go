package exercise

import (
	"testing"
)

func TestRecommend_WeightLoss(t *testing.T) {
	recs := Recommend(70, "weight_loss")

	if len(recs) != 3 {
		t.Fatalf("Recommend() returned %d exercises, want 3", len(recs))
	}

	// At the 70kg reference weight the estimates equal the base figures.
	want := []struct {
		name     string
		calories int
	}{
		{"Running", 300},
		{"Cycling", 300},
		{"Swimming", 250},
	}

	for i, w := range want {
		if recs[i].Name != w.name {
			t.Errorf("recs[%d].Name = %q, want %q", i, recs[i].Name, w.name)
		}
		if recs[i].Calories != w.calories {
			t.Errorf("recs[%d].Calories = %d, want %d", i, recs[i].Calories, w.calories)
		}
		if recs[i].Duration == "" {
			t.Errorf("recs[%d] missing duration", i)
		}
	}
}

func TestRecommend_MuscleGain(t *testing.T) {
	recs := Recommend(70, "muscle_gain")

	if len(recs) != 3 {
		t.Fatalf("Recommend() returned %d exercises, want 3", len(recs))
	}
	if recs[0].Name != "Weight Lifting" {
		t.Errorf("recs[0].Name = %q, want Weight Lifting", recs[0].Name)
	}

	// Bodyweight exercises use sets and fixed calories, not duration.
	if recs[1].Sets != "3x15" || recs[1].Calories != 100 {
		t.Errorf("recs[1] = %+v, want 3x15 sets at 100 kcal", recs[1])
	}
	if recs[2].Sets != "3x20" || recs[2].Calories != 150 {
		t.Errorf("recs[2] = %+v, want 3x20 sets at 150 kcal", recs[2])
	}
}

func TestRecommend_DefaultGoal(t *testing.T) {
	for _, goal := range []string{"general", "", "anything-else"} {
		recs := Recommend(70, goal)
		if len(recs) != 3 {
			t.Fatalf("Recommend(70, %q) returned %d exercises, want 3", goal, len(recs))
		}
		if recs[0].Name != "Walking" {
			t.Errorf("Recommend(70, %q) first = %q, want Walking", goal, recs[0].Name)
		}
	}
}

func TestRecommend_ScalesWithWeight(t *testing.T) {
	light := Recommend(50, "weight_loss")
	heavy := Recommend(100, "weight_loss")

	for i := range light {
		if light[i].Calories >= heavy[i].Calories {
			t.Errorf("%s: calories at 50kg (%d) not below 100kg (%d)",
				light[i].Name, light[i].Calories, heavy[i].Calories)
		}
	}
}

func TestTotalCalories(t *testing.T) {
	recs := Recommend(70, "muscle_gain")

	want := 0
	for _, r := range recs {
		want += r.Calories
	}

	if got := TotalCalories(recs); got != want {
		t.Errorf("TotalCalories() = %d, want %d", got, want)
	}
}
