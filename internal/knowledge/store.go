package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

var ErrWeekNotFound = errors.New("pregnancy week not found")

// BMIRange describes one band of the BMI partition. Lower is inclusive,
// Upper is exclusive; the table is scanned in order with first-match-wins.
type BMIRange struct {
	Category string
	Lower    float64
	Upper    float64
	Advice   string
}

// PregnancyWeek holds the canned information for a single week of pregnancy.
type PregnancyWeek struct {
	Week            int    `json:"week"`
	BabyDevelopment string `json:"baby_development"`
	MotherChanges   string `json:"mother_changes"`
	Advice          string `json:"advice"`
	Trimester       int    `json:"trimester"`
}

// Symptom holds women's-health advice keyed by symptom name.
type Symptom struct {
	Phase    string `json:"phase"`
	Advice   string `json:"advice"`
	Severity string `json:"severity"`
}

// WaterDefaults parameterize the daily water computation.
type WaterDefaults struct {
	LitersPerKg float64 `json:"liters_per_kg"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// QAEntry is one row of the retrieval corpus. The corpus order is fixed and
// aligns 1:1 with the fitted vector space.
type QAEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Store is the process-wide read-only knowledge base. It is built once at
// startup and never mutated afterwards, so concurrent reads need no locking.
type Store struct {
	BMIRanges      []BMIRange
	Water          WaterDefaults
	StepGoals      map[string]int
	SleepHours     map[string][2]int
	PregnancyWeeks map[int]PregnancyWeek
	Symptoms       map[string]Symptom
	Corpus         []QAEntry
}

// Week looks up the record for a pregnancy week number.
func (s *Store) Week(week int) (PregnancyWeek, error) {
	info, ok := s.PregnancyWeeks[week]
	if !ok {
		return PregnancyWeek{}, ErrWeekNotFound
	}
	return info, nil
}

// file mirrors the on-disk health_knowledge.json layout.
type file struct {
	BMIRanges map[string]struct {
		Range  [2]float64 `json:"range"`
		Advice string     `json:"advice"`
	} `json:"bmi_ranges"`
	DailyWater   *WaterDefaults           `json:"daily_water"`
	DailySteps   map[string]int           `json:"daily_steps"`
	SleepHours   map[string][2]int        `json:"sleep_hours"`
	Pregnancy    map[string]PregnancyWeek `json:"pregnancy"`
	WomensHealth map[string]Symptom       `json:"womens_health"`
	Corpus       []QAEntry                `json:"corpus"`
}

// Load reads a knowledge file and overlays it on the built-in defaults.
// Sections absent from the file keep their default contents, so a partial
// file (say, only a larger corpus) is valid.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}

	store := Defaults()

	if len(f.BMIRanges) > 0 {
		ranges := make([]BMIRange, 0, len(f.BMIRanges))
		for category, entry := range f.BMIRanges {
			ranges = append(ranges, BMIRange{
				Category: category,
				Lower:    entry.Range[0],
				Upper:    entry.Range[1],
				Advice:   entry.Advice,
			})
		}
		// The JSON object is unordered; restore scan order by lower bound.
		sort.Slice(ranges, func(i, j int) bool { return ranges[i].Lower < ranges[j].Lower })
		store.BMIRanges = ranges
	}

	if f.DailyWater != nil {
		if f.DailyWater.LitersPerKg == 0 {
			f.DailyWater.LitersPerKg = store.Water.LitersPerKg
		}
		store.Water = *f.DailyWater
	}
	if len(f.DailySteps) > 0 {
		store.StepGoals = f.DailySteps
	}
	if len(f.SleepHours) > 0 {
		store.SleepHours = f.SleepHours
	}

	if len(f.Pregnancy) > 0 {
		weeks := make(map[int]PregnancyWeek, len(f.Pregnancy))
		for key, info := range f.Pregnancy {
			var week int
			if _, err := fmt.Sscanf(key, "%d", &week); err != nil {
				return nil, fmt.Errorf("invalid pregnancy week key %q", key)
			}
			info.Week = week
			if info.Trimester == 0 {
				info.Trimester = TrimesterFor(week)
			}
			weeks[week] = info
		}
		store.PregnancyWeeks = weeks
	}

	if len(f.WomensHealth) > 0 {
		store.Symptoms = f.WomensHealth
	}
	if len(f.Corpus) > 0 {
		store.Corpus = f.Corpus
	}

	return store, nil
}

// TrimesterFor derives the trimester from a week number.
func TrimesterFor(week int) int {
	switch {
	case week <= 13:
		return 1
	case week <= 27:
		return 2
	default:
		return 3
	}
}
