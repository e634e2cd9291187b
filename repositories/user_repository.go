package repositories

import (
	"gorm.io/gorm"

	"fitness-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername looks up a user by exact, case-sensitive username.
// Returns gorm.ErrRecordNotFound if no such user exists.
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A concurrent duplicate registration loses
// against the unique index on username and surfaces as
// gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
