package user

import (
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"gorm.io/gorm"
)

type Service struct {
	repo *Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepository(db)}
}

// CreateUser creates a user, converting a negative repository result into a
// client-facing error
func (s *Service) CreateUser(userName, password string) (UserResponse, error) {
	resp, err := s.repo.CreateUser(userName, password)
	if err != nil {
		return UserResponse{}, err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "User creation failed"
		}
		zaplogger.Error("User creation failed", zaplogger.Fields{"message": message})
		return UserResponse{}, apierror.NewBadRequestError(message)
	}

	return resp, nil
}

// GetAllUsers returns all users, raising NotFound when the table is empty
func (s *Service) GetAllUsers() ([]User, error) {
	users, err := s.repo.GetAllUsers()
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		zaplogger.Warn("No users found")
		return nil, apierror.NewNotFoundError("No users found")
	}

	return users, nil
}
