package usecases

import (
	"moodgut-server/entities"
	"moodgut-server/repositories"
	"strconv"
	"strings"
	"time"
)

// EntryInput is the validated form payload for a new daily log.
type EntryInput struct {
	Mood        string
	Meal        string
	GutSymptom  string
	SleepHours  float64
	WaterIntake float64
}

// ParseEntryInput turns raw form values into an EntryInput. Sleep and
// water must parse as non-negative numbers; anything else is ErrInvalidInput.
func ParseEntryInput(mood, meal, gutSymptom, sleepHours, waterIntake string) (EntryInput, error) {
	mood = strings.TrimSpace(mood)
	gutSymptom = strings.TrimSpace(gutSymptom)
	if mood == "" || gutSymptom == "" {
		return EntryInput{}, ErrInvalidInput
	}

	sleep, err := strconv.ParseFloat(strings.TrimSpace(sleepHours), 64)
	if err != nil || sleep < 0 {
		return EntryInput{}, ErrInvalidInput
	}
	water, err := strconv.ParseFloat(strings.TrimSpace(waterIntake), 64)
	if err != nil || water < 0 {
		return EntryInput{}, ErrInvalidInput
	}

	return EntryInput{
		Mood:        mood,
		Meal:        strings.TrimSpace(meal),
		GutSymptom:  gutSymptom,
		SleepHours:  sleep,
		WaterIntake: water,
	}, nil
}

type EntryUseCase struct {
	LogRepo repositories.DailyLogRepository
}

func NewEntryUseCase(logRepo repositories.DailyLogRepository) *EntryUseCase {
	return &EntryUseCase{LogRepo: logRepo}
}

// AddEntry persists a new log for userID. The date is stamped with the
// current calendar date at submission time, not taken from the caller.
func (uc *EntryUseCase) AddEntry(userID string, input EntryInput) (*entities.DailyLog, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}

	log := &entities.DailyLog{
		Date:        time.Now().Format("2006-01-02"),
		Mood:        input.Mood,
		Meal:        input.Meal,
		GutSymptom:  input.GutSymptom,
		SleepHours:  input.SleepHours,
		WaterIntake: input.WaterIntake,
		UserID:      userID,
	}
	if err := uc.LogRepo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListEntries returns every log owned by userID in insertion order.
func (uc *EntryUseCase) ListEntries(userID string) ([]entities.DailyLog, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return uc.LogRepo.GetByUserID(userID)
}
