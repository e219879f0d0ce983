package repositories

import (
	"moodgut-server/db"
	"moodgut-server/entities"
)

type dailyLogPgRepository struct {
	db db.Database
}

func NewDailyLogPgRepository(database db.Database) DailyLogRepository {
	return &dailyLogPgRepository{db: database}
}

func (r *dailyLogPgRepository) Create(log *entities.DailyLog) error {
	return r.db.GetDB().Create(log).Error
}

// GetByUserID returns all logs owned by userID in insertion order.
func (r *dailyLogPgRepository) GetByUserID(userID string) ([]entities.DailyLog, error) {
	var logs []entities.DailyLog
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at ASC").Find(&logs).Error
	return logs, err
}
