package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fitness-api/models"
	"fitness-api/utils"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Route{},
		&models.Checkpoint{},
		&models.CheckIn{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData loads demo routes and their checkpoints. This is the only
// creation path for routes: the API surface is read-only for them.
// Checkpoints are intentionally written out of sequence order; readers
// sort ascending by sequence_order.
func SeedData(db *gorm.DB) error {
	var routeCount int64
	db.Model(&models.Route{}).Count(&routeCount)

	if routeCount > 0 {
		fmt.Println("Database already has routes, skipping seed")
		return nil
	}

	routes := []struct {
		route       models.Route
		checkpoints []models.Checkpoint
	}{
		{
			route: models.Route{
				Name:        "Riverside Loop",
				Description: "Flat gravel loop along the river, good for an easy run.",
				DistanceKm:  5.2,
			},
			checkpoints: []models.Checkpoint{
				{SequenceOrder: 3, Latitude: 47.5032, Longitude: 19.0469},
				{SequenceOrder: 1, Latitude: 47.4979, Longitude: 19.0402},
				{SequenceOrder: 2, Latitude: 47.5001, Longitude: 19.0431},
			},
		},
		{
			route: models.Route{
				Name:        "Hill Climb",
				Description: "Steady ascent to the lookout tower and back.",
				DistanceKm:  8.7,
			},
			checkpoints: []models.Checkpoint{
				{SequenceOrder: 2, Latitude: 47.5171, Longitude: 18.9740},
				{SequenceOrder: 1, Latitude: 47.5096, Longitude: 18.9855},
			},
		},
	}

	for _, entry := range routes {
		route := entry.route
		if err := db.Create(&route).Error; err != nil {
			return fmt.Errorf("failed to seed route %q: %w", route.Name, err)
		}

		for _, cp := range entry.checkpoints {
			if !utils.IsValidLatitude(cp.Latitude) || !utils.IsValidLongitude(cp.Longitude) {
				fmt.Printf("Warning: skipping checkpoint with invalid coordinates (%f, %f)\n", cp.Latitude, cp.Longitude)
				continue
			}
			cp.RouteID = route.ID
			if err := db.Create(&cp).Error; err != nil {
				return fmt.Errorf("failed to seed checkpoint for route %q: %w", route.Name, err)
			}
		}
	}

	fmt.Println("Database seeded with demo routes and checkpoints")
	return nil
}
