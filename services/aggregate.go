package services

import (
	"moodgut-server/entities"
	"sort"
)

// moodScores projects categorical mood labels onto a 1-5 ordinal scale.
var moodScores = map[string]float64{
	"Happy":    5,
	"Calm":     4,
	"Neutral":  3,
	"Sad":      2,
	"Stressed": 1,
	"Tired":    2,
}

// MoodScore returns the numeric score for a mood label. Labels outside the
// fixed vocabulary report ok=false and are excluded from scored series.
func MoodScore(mood string) (float64, bool) {
	score, ok := moodScores[mood]
	return score, ok
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type SleepMoodPoint struct {
	SleepHours float64 `json:"sleep_hours"`
	MoodScore  float64 `json:"mood_score"`
	GutSymptom string  `json:"gut_symptom"`
}

// Trendline is an ordinary-least-squares fit y = Slope*x + Intercept.
type Trendline struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

type SymptomCount struct {
	Symptom string `json:"symptom"`
	Count   int    `json:"count"`
}

type SymptomMood struct {
	Symptom  string  `json:"symptom"`
	MeanMood float64 `json:"mean_mood"`
}

// Summary is the full aggregation output for one user's logs.
type Summary struct {
	MoodTrend     []TrendPoint
	SleepMood     []SleepMoodPoint
	SleepMoodFit  *Trendline
	WaterTrend    []TrendPoint
	SymptomCounts []SymptomCount
	MoodBySymptom []SymptomMood

	AvgSleep      float64
	AvgWater      float64
	AvgMood       float64
	CommonSymptom string

	// UnknownMoods counts rows whose mood label is outside the scoring
	// vocabulary. Such rows contribute to sleep/water/symptom figures but
	// are excluded from every mood series and mean.
	UnknownMoods int
}

// Aggregate computes the dashboard summary from a user's logs. It is pure:
// a single pass over the slice plus a stable date sort, no I/O. An empty
// slice returns nil, which callers treat as "no data yet" rather than an
// error, so no mean is ever taken over zero elements.
func Aggregate(logs []entities.DailyLog) *Summary {
	if len(logs) == 0 {
		return nil
	}

	// Entries arrive in insertion order; trend charts should follow the
	// calendar. Stable sort keeps same-day entries in submission order.
	sorted := make([]entities.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	s := &Summary{}

	var sleepSum, waterSum, moodSum float64
	scoredRows := 0

	// first-seen order for symptom groupings
	symptomOrder := []string{}
	counts := map[string]int{}
	moodSumBySymptom := map[string]float64{}
	moodCountBySymptom := map[string]int{}

	for _, row := range sorted {
		sleepSum += row.SleepHours
		waterSum += row.WaterIntake
		s.WaterTrend = append(s.WaterTrend, TrendPoint{Date: row.Date, Value: row.WaterIntake})

		if _, seen := counts[row.GutSymptom]; !seen {
			symptomOrder = append(symptomOrder, row.GutSymptom)
		}
		counts[row.GutSymptom]++

		score, known := MoodScore(row.Mood)
		if !known {
			s.UnknownMoods++
			continue
		}

		moodSum += score
		scoredRows++
		s.MoodTrend = append(s.MoodTrend, TrendPoint{Date: row.Date, Value: score})
		s.SleepMood = append(s.SleepMood, SleepMoodPoint{
			SleepHours: row.SleepHours,
			MoodScore:  score,
			GutSymptom: row.GutSymptom,
		})
		moodSumBySymptom[row.GutSymptom] += score
		moodCountBySymptom[row.GutSymptom]++
	}

	s.AvgSleep = sleepSum / float64(len(sorted))
	s.AvgWater = waterSum / float64(len(sorted))
	if scoredRows > 0 {
		s.AvgMood = moodSum / float64(scoredRows)
	}

	for _, symptom := range symptomOrder {
		s.SymptomCounts = append(s.SymptomCounts, SymptomCount{Symptom: symptom, Count: counts[symptom]})
		if n := moodCountBySymptom[symptom]; n > 0 {
			s.MoodBySymptom = append(s.MoodBySymptom, SymptomMood{
				Symptom:  symptom,
				MeanMood: moodSumBySymptom[symptom] / float64(n),
			})
		}
	}

	// Mode of gut_symptom; ties go to the symptom seen first.
	best := -1
	for _, symptom := range symptomOrder {
		if counts[symptom] > best {
			best = counts[symptom]
			s.CommonSymptom = symptom
		}
	}

	s.SleepMoodFit = fitLine(s.SleepMood)

	return s
}

// fitLine computes an ordinary-least-squares line over sleep (x) vs mood
// score (y). Returns nil with fewer than two points or zero x variance.
func fitLine(points []SleepMoodPoint) *Trendline {
	n := float64(len(points))
	if len(points) < 2 {
		return nil
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.SleepHours
		sumY += p.MoodScore
	}
	meanX := sumX / n
	meanY := sumY / n

	var covXY, varX float64
	for _, p := range points {
		dx := p.SleepHours - meanX
		covXY += dx * (p.MoodScore - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return nil
	}

	slope := covXY / varX
	return &Trendline{Slope: slope, Intercept: meanY - slope*meanX}
}
