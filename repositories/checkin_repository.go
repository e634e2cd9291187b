package repositories

import (
	"gorm.io/gorm"

	"fitness-api/models"
)

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// ListByRouteAndUsername returns the user's check-ins on a route, oldest
// first.
func (r *CheckInRepository) ListByRouteAndUsername(routeID uint, username string) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := r.db.
		Joins("JOIN users ON users.id = check_ins.user_id").
		Where("check_ins.route_id = ? AND users.username = ?", routeID, username).
		Order("check_ins.checked_at ASC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *CheckInRepository) Create(checkIn *models.CheckIn) error {
	return r.db.Create(checkIn).Error
}
