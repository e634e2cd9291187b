package repositories

import (
	"gorm.io/gorm"

	"fitness-api/models"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// checkpointsAscending scopes a checkpoint preload to visiting order.
func checkpointsAscending(db *gorm.DB) *gorm.DB {
	return db.Order("sequence_order ASC")
}

// FindAll returns every route with its checkpoints sorted ascending by
// sequence order.
func (r *RouteRepository) FindAll() ([]models.Route, error) {
	var routes []models.Route
	err := r.db.Preload("Checkpoints", checkpointsAscending).Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// FindByID returns one route with ordered checkpoints, or
// gorm.ErrRecordNotFound.
func (r *RouteRepository) FindByID(routeID uint) (*models.Route, error) {
	var route models.Route
	err := r.db.Preload("Checkpoints", checkpointsAscending).First(&route, routeID).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// FindCheckpointByID looks up a single checkpoint independent of its route;
// the caller decides whether the route reference matches.
func (r *RouteRepository) FindCheckpointByID(checkpointID uint) (*models.Checkpoint, error) {
	var checkpoint models.Checkpoint
	if err := r.db.First(&checkpoint, checkpointID).Error; err != nil {
		return nil, err
	}
	return &checkpoint, nil
}
