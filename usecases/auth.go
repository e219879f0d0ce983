package usecases

import (
	"errors"
	"moodgut-server/entities"
	"moodgut-server/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// Register creates a new account. The plaintext password is hashed with
// bcrypt and never stored.
func (uc *UserUseCase) Register(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	if _, err := uc.UserRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{Username: username, PasswordHash: string(hash)}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (uc *UserUseCase) Authenticate(username, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by id, for session validation.
func (uc *UserUseCase) GetUser(id string) (*entities.User, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return uc.UserRepo.GetByID(id)
}
