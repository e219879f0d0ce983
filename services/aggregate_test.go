package services

import (
	"math"
	"moodgut-server/entities"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// fixtureLogs matches the reference scenario: moods Happy/Sad/Neutral,
// sleep 7/5/8, water 1.0/1.2/2.0, symptoms Bloating/Bloating/None.
func fixtureLogs() []entities.DailyLog {
	return []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "Bloating", SleepHours: 7, WaterIntake: 1.0},
		{Date: "2024-05-02", Mood: "Sad", GutSymptom: "Bloating", SleepHours: 5, WaterIntake: 1.2},
		{Date: "2024-05-03", Mood: "Neutral", GutSymptom: "None", SleepHours: 8, WaterIntake: 2.0},
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if s := Aggregate(nil); s != nil {
		t.Fatalf("expected nil summary for no logs, got %+v", s)
	}
	if s := Aggregate([]entities.DailyLog{}); s != nil {
		t.Fatalf("expected nil summary for empty slice, got %+v", s)
	}
}

func TestAggregateFixtureScalars(t *testing.T) {
	s := Aggregate(fixtureLogs())
	if s == nil {
		t.Fatal("expected summary")
	}

	if !almostEqual(s.AvgMood, (5.0+2.0+3.0)/3.0) {
		t.Errorf("AvgMood = %v, want %v", s.AvgMood, (5.0+2.0+3.0)/3.0)
	}
	if !almostEqual(s.AvgSleep, 20.0/3.0) {
		t.Errorf("AvgSleep = %v, want %v", s.AvgSleep, 20.0/3.0)
	}
	if !almostEqual(s.AvgWater, 1.4) {
		t.Errorf("AvgWater = %v, want 1.4", s.AvgWater)
	}
	if s.CommonSymptom != "Bloating" {
		t.Errorf("CommonSymptom = %q, want Bloating", s.CommonSymptom)
	}
	if s.UnknownMoods != 0 {
		t.Errorf("UnknownMoods = %d, want 0", s.UnknownMoods)
	}
}

func TestAggregateSeries(t *testing.T) {
	s := Aggregate(fixtureLogs())

	wantMood := []TrendPoint{
		{Date: "2024-05-01", Value: 5},
		{Date: "2024-05-02", Value: 2},
		{Date: "2024-05-03", Value: 3},
	}
	if len(s.MoodTrend) != len(wantMood) {
		t.Fatalf("MoodTrend has %d points, want %d", len(s.MoodTrend), len(wantMood))
	}
	for i, p := range wantMood {
		if s.MoodTrend[i] != p {
			t.Errorf("MoodTrend[%d] = %+v, want %+v", i, s.MoodTrend[i], p)
		}
	}

	if len(s.WaterTrend) != 3 || !almostEqual(s.WaterTrend[2].Value, 2.0) {
		t.Errorf("unexpected WaterTrend: %+v", s.WaterTrend)
	}

	if len(s.SleepMood) != 3 {
		t.Fatalf("SleepMood has %d points, want 3", len(s.SleepMood))
	}
	if s.SleepMood[1].GutSymptom != "Bloating" || !almostEqual(s.SleepMood[1].MoodScore, 2) {
		t.Errorf("unexpected SleepMood[1]: %+v", s.SleepMood[1])
	}
}

func TestAggregateSortsTrendSeriesByDate(t *testing.T) {
	logs := []entities.DailyLog{
		{Date: "2024-05-03", Mood: "Happy", GutSymptom: "None", SleepHours: 8, WaterIntake: 2},
		{Date: "2024-05-01", Mood: "Sad", GutSymptom: "None", SleepHours: 5, WaterIntake: 1},
		{Date: "2024-05-02", Mood: "Calm", GutSymptom: "None", SleepHours: 7, WaterIntake: 1.5},
	}
	s := Aggregate(logs)

	for i := 1; i < len(s.MoodTrend); i++ {
		if s.MoodTrend[i-1].Date > s.MoodTrend[i].Date {
			t.Fatalf("MoodTrend not sorted by date: %+v", s.MoodTrend)
		}
	}
	for i := 1; i < len(s.WaterTrend); i++ {
		if s.WaterTrend[i-1].Date > s.WaterTrend[i].Date {
			t.Fatalf("WaterTrend not sorted by date: %+v", s.WaterTrend)
		}
	}
}

func TestSymptomFrequencySumsToLogCount(t *testing.T) {
	logs := fixtureLogs()
	s := Aggregate(logs)

	total := 0
	for _, c := range s.SymptomCounts {
		total += c.Count
	}
	if total != len(logs) {
		t.Fatalf("symptom counts sum to %d, want %d", total, len(logs))
	}

	// first-seen ordering
	if s.SymptomCounts[0].Symptom != "Bloating" || s.SymptomCounts[1].Symptom != "None" {
		t.Fatalf("unexpected symptom order: %+v", s.SymptomCounts)
	}
}

func TestCommonSymptomTieBrokenByFirstSeen(t *testing.T) {
	logs := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "Cramps", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-02", Mood: "Happy", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-03", Mood: "Happy", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-04", Mood: "Happy", GutSymptom: "Cramps", SleepHours: 7, WaterIntake: 1},
	}
	if s := Aggregate(logs); s.CommonSymptom != "Cramps" {
		t.Fatalf("CommonSymptom = %q, want first-seen Cramps", s.CommonSymptom)
	}
}

func TestMeanMoodPerSymptomMatchesNaiveGrouping(t *testing.T) {
	logs := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "Bloating", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-02", Mood: "Tired", GutSymptom: "Bloating", SleepHours: 6, WaterIntake: 1},
		{Date: "2024-05-03", Mood: "Calm", GutSymptom: "None", SleepHours: 8, WaterIntake: 2},
		{Date: "2024-05-04", Mood: "Stressed", GutSymptom: "Cramps", SleepHours: 5, WaterIntake: 1},
		{Date: "2024-05-05", Mood: "Neutral", GutSymptom: "None", SleepHours: 7, WaterIntake: 2},
	}
	s := Aggregate(logs)

	// naive group-then-average over the same rows
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, row := range logs {
		score, ok := MoodScore(row.Mood)
		if !ok {
			continue
		}
		sums[row.GutSymptom] += score
		counts[row.GutSymptom]++
	}

	if len(s.MoodBySymptom) != len(sums) {
		t.Fatalf("got %d symptom groups, want %d", len(s.MoodBySymptom), len(sums))
	}
	for _, g := range s.MoodBySymptom {
		want := sums[g.Symptom] / float64(counts[g.Symptom])
		if !almostEqual(g.MeanMood, want) {
			t.Errorf("mean mood for %s = %v, want %v", g.Symptom, g.MeanMood, want)
		}
	}
}

func TestUnknownMoodsExcludedWithoutError(t *testing.T) {
	logs := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-02", Mood: "Ecstatic", GutSymptom: "None", SleepHours: 6, WaterIntake: 1},
	}
	s := Aggregate(logs)

	if s.UnknownMoods != 1 {
		t.Fatalf("UnknownMoods = %d, want 1", s.UnknownMoods)
	}
	// the unknown row still counts toward sleep/water/symptom figures
	if !almostEqual(s.AvgSleep, 6.5) {
		t.Errorf("AvgSleep = %v, want 6.5", s.AvgSleep)
	}
	if s.SymptomCounts[0].Count != 2 {
		t.Errorf("symptom count = %d, want 2", s.SymptomCounts[0].Count)
	}
	// but is excluded from every mood figure
	if !almostEqual(s.AvgMood, 5) {
		t.Errorf("AvgMood = %v, want 5", s.AvgMood)
	}
	if len(s.MoodTrend) != 1 || len(s.SleepMood) != 1 {
		t.Errorf("unknown mood leaked into scored series: %+v %+v", s.MoodTrend, s.SleepMood)
	}
}

func TestAggregateAllUnknownMoods(t *testing.T) {
	logs := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Meh", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
	}
	s := Aggregate(logs)
	if s == nil {
		t.Fatal("expected summary even when no mood is scorable")
	}
	if s.AvgMood != 0 || len(s.MoodTrend) != 0 || len(s.MoodBySymptom) != 0 {
		t.Fatalf("expected empty mood figures, got %+v", s)
	}
}

func TestSleepMoodTrendline(t *testing.T) {
	// perfectly linear: score = 0.5*sleep + 1
	logs := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Stressed", GutSymptom: "None", SleepHours: 0, WaterIntake: 1}, // 1
		{Date: "2024-05-02", Mood: "Sad", GutSymptom: "None", SleepHours: 2, WaterIntake: 1},      // 2
		{Date: "2024-05-03", Mood: "Neutral", GutSymptom: "None", SleepHours: 4, WaterIntake: 1},  // 3
	}
	s := Aggregate(logs)
	if s.SleepMoodFit == nil {
		t.Fatal("expected a trendline")
	}
	if !almostEqual(s.SleepMoodFit.Slope, 0.5) || !almostEqual(s.SleepMoodFit.Intercept, 1) {
		t.Fatalf("fit = %+v, want slope 0.5 intercept 1", s.SleepMoodFit)
	}
}

func TestTrendlineDegenerateCases(t *testing.T) {
	one := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
	}
	if s := Aggregate(one); s.SleepMoodFit != nil {
		t.Fatalf("expected no trendline for a single point, got %+v", s.SleepMoodFit)
	}

	flat := []entities.DailyLog{
		{Date: "2024-05-01", Mood: "Happy", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
		{Date: "2024-05-02", Mood: "Sad", GutSymptom: "None", SleepHours: 7, WaterIntake: 1},
	}
	if s := Aggregate(flat); s.SleepMoodFit != nil {
		t.Fatalf("expected no trendline with zero sleep variance, got %+v", s.SleepMoodFit)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	logs := fixtureLogs()
	a := Aggregate(logs)
	b := Aggregate(logs)

	if a.AvgMood != b.AvgMood || a.CommonSymptom != b.CommonSymptom ||
		len(a.MoodTrend) != len(b.MoodTrend) || len(a.SymptomCounts) != len(b.SymptomCounts) {
		t.Fatal("same input produced different summaries")
	}
}
