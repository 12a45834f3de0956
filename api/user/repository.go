package user

import (
	"github.com/google/uuid"
	"github.com/marketpulse/watchlistapi/pkg/utils/zaplogger"
	"github.com/marketpulse/watchlistapi/shared/apierror"
	"gorm.io/gorm"
)

const uuidLength = 36

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateUser inserts a user row with a generated id. Validation is the
// caller's job; only store-level failures surface as errors.
func (r *Repository) CreateUser(userName, password string) (UserResponse, error) {
	zaplogger.Info("Creating a new user", zaplogger.Fields{"username": userName})

	newUser := UserModel{
		ID:       uuid.NewString(),
		UserName: userName,
		Password: password,
	}
	if err := r.DB.Create(&newUser).Error; err != nil {
		zaplogger.Error("Failed to create user", zaplogger.Fields{
			"username": userName,
			"error":    err.Error(),
		})
		return UserResponse{}, apierror.NewStoreError("Failed to create user", err)
	}

	if len(newUser.ID) != uuidLength {
		zaplogger.Error("Failed to create user", zaplogger.Fields{"username": userName})
		return UserResponse{Success: false, Message: "Failed to create user"}, nil
	}

	zaplogger.Info("User created successfully", zaplogger.Fields{"userId": newUser.ID})
	return UserResponse{Success: true, Message: "User created successfully"}, nil
}

// GetAllUsers returns every user row as-is
func (r *Repository) GetAllUsers() ([]User, error) {
	zaplogger.Info("Retrieving a list of all users from the database")

	var rows []UserModel
	if err := r.DB.Find(&rows).Error; err != nil {
		zaplogger.Error("Failed to retrieve users", zaplogger.Fields{"error": err.Error()})
		return nil, apierror.NewStoreError("Failed to retrieve users", err)
	}

	users := make([]User, 0, len(rows))
	for _, m := range rows {
		users = append(users, User{ID: m.ID, Username: m.UserName, Password: m.Password})
	}

	zaplogger.Info("Retrieved users", zaplogger.Fields{"count": len(users)})
	return users, nil
}
