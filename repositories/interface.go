package repositories

import "moodgut-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
}

type DailyLogRepository interface {
	Create(log *entities.DailyLog) error
	GetByUserID(userID string) ([]entities.DailyLog, error)
}
