package services

import (
	"fmt"
	"strings"
)

// Chart kinds understood by the dashboard's client-side renderer.
const (
	ChartLine    = "line"
	ChartScatter = "scatter"
	ChartBar     = "bar"
)

type ChartPoint struct {
	Label string  `json:"label,omitempty"` // category or date axis
	X     float64 `json:"x,omitempty"`     // numeric axis (scatter)
	Y     float64 `json:"y"`
	Group string  `json:"group,omitempty"`
}

// ChartSpec is a renderer-agnostic chart description. The dashboard
// template serializes these to JSON for the charting library.
type ChartSpec struct {
	Kind      string       `json:"kind"`
	Title     string       `json:"title"`
	XLabel    string       `json:"x_label"`
	YLabel    string       `json:"y_label"`
	Points    []ChartPoint `json:"points"`
	Trendline *Trendline   `json:"trendline,omitempty"`
}

// BuildCharts turns an aggregation summary into the five dashboard charts.
func BuildCharts(s *Summary) []ChartSpec {
	if s == nil {
		return nil
	}

	moodTrend := ChartSpec{Kind: ChartLine, Title: "Mood Trend Over Time", XLabel: "Date", YLabel: "Mood score"}
	for _, p := range s.MoodTrend {
		moodTrend.Points = append(moodTrend.Points, ChartPoint{Label: p.Date, Y: p.Value})
	}

	sleepMood := ChartSpec{
		Kind:      ChartScatter,
		Title:     "Sleep vs Mood",
		XLabel:    "Sleep hours",
		YLabel:    "Mood score",
		Trendline: s.SleepMoodFit,
	}
	for _, p := range s.SleepMood {
		sleepMood.Points = append(sleepMood.Points, ChartPoint{X: p.SleepHours, Y: p.MoodScore, Group: p.GutSymptom})
	}

	waterTrend := ChartSpec{Kind: ChartLine, Title: "Water Intake Over Time", XLabel: "Date", YLabel: "Liters"}
	for _, p := range s.WaterTrend {
		waterTrend.Points = append(waterTrend.Points, ChartPoint{Label: p.Date, Y: p.Value})
	}

	symptomFreq := ChartSpec{Kind: ChartBar, Title: "Gut Symptom Frequency", XLabel: "Symptom", YLabel: "Count"}
	for _, c := range s.SymptomCounts {
		symptomFreq.Points = append(symptomFreq.Points, ChartPoint{Label: c.Symptom, Y: float64(c.Count)})
	}

	moodBySymptom := ChartSpec{Kind: ChartBar, Title: "Average Mood by Gut Symptom", XLabel: "Symptom", YLabel: "Mood score"}
	for _, m := range s.MoodBySymptom {
		moodBySymptom.Points = append(moodBySymptom.Points, ChartPoint{Label: m.Symptom, Y: m.MeanMood})
	}

	return []ChartSpec{moodTrend, sleepMood, waterTrend, symptomFreq, moodBySymptom}
}

// Interpretation thresholds. Fixed; deliberately not configurable.
const (
	lowSleepHours  = 6.0
	highSleepHours = 8.0
	lowWaterLiters = 1.5
	goodMoodScore  = 4.0
	lowMoodScore   = 3.0
)

// watchedSymptoms are compared case-insensitively against the most
// frequent gut symptom.
var watchedSymptoms = map[string]bool{
	"bloating":     true,
	"constipation": true,
}

// insightRules is evaluated in order; each clause that applies is appended
// to the interpretation. Keeping the rules as data keeps them testable.
var insightRules = []struct {
	applies func(*Summary) bool
	text    func(*Summary) string
}{
	{
		applies: func(s *Summary) bool { return s.AvgSleep < lowSleepHours },
		text: func(s *Summary) string {
			return "You might benefit from more sleep; your mood seems lower on shorter sleep days."
		},
	},
	{
		applies: func(s *Summary) bool { return s.AvgSleep > highSleepHours },
		text: func(s *Summary) string {
			return "You are sleeping well; moods are likely more stable."
		},
	},
	{
		applies: func(s *Summary) bool { return s.AvgWater < lowWaterLiters },
		text: func(s *Summary) string {
			return "Try increasing water intake for better digestion and mood balance."
		},
	},
	{
		applies: func(s *Summary) bool { return watchedSymptoms[strings.ToLower(s.CommonSymptom)] },
		text: func(s *Summary) string {
			return fmt.Sprintf("Watch out for %s; it appears often, so note any meal patterns causing it.", strings.ToLower(s.CommonSymptom))
		},
	},
	{
		applies: func(s *Summary) bool { return s.AvgMood > goodMoodScore },
		text: func(s *Summary) string {
			return "Great! Your moods are generally positive."
		},
	},
	{
		applies: func(s *Summary) bool { return s.AvgMood < lowMoodScore },
		text: func(s *Summary) string {
			return "Your moods seem on the lower side; consider focusing on rest and gut comfort."
		},
	},
}

// Interpret builds the deterministic natural-language summary: a fixed
// header followed by every threshold clause that applies, in rule order.
func Interpret(s *Summary) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Over your recent entries: your average sleep is %.1f hours and water intake is %.1f L. The most frequent gut symptom is %s. Your average mood score is %.1f/5.",
		s.AvgSleep, s.AvgWater, strings.ToLower(s.CommonSymptom), s.AvgMood)

	for _, rule := range insightRules {
		if rule.applies(s) {
			b.WriteString(" ")
			b.WriteString(rule.text(s))
		}
	}
	return b.String()
}
