package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fitness-api/models"
	"fitness-api/repositories"
)

type RouteController struct {
	routes   *repositories.RouteRepository
	checkIns *repositories.CheckInRepository
	users    *repositories.UserRepository
}

func NewRouteController(routes *repositories.RouteRepository, checkIns *repositories.CheckInRepository, users *repositories.UserRepository) *RouteController {
	return &RouteController{
		routes:   routes,
		checkIns: checkIns,
		users:    users,
	}
}

type RouteResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	DistanceKm  float64              `json:"distanceKm"`
	Checkpoints []CheckpointResponse `json:"checkpoints"`
}

type CheckpointResponse struct {
	ID        uint    `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Order     int     `json:"order"`
}

type CheckInRequest struct {
	Username     string `json:"username"`
	CheckpointID *uint  `json:"checkpointId"`
}

type CheckInResponse struct {
	ID           uint      `json:"id"`
	RouteID      uint      `json:"routeId"`
	CheckpointID *uint     `json:"checkpointId"`
	Username     string    `json:"username"`
	CheckedAt    time.Time `json:"checkedAt"`
}

func toRouteResponse(route models.Route) RouteResponse {
	checkpoints := make([]CheckpointResponse, 0, len(route.Checkpoints))
	for _, cp := range route.Checkpoints {
		checkpoints = append(checkpoints, CheckpointResponse{
			ID:        cp.ID,
			Latitude:  cp.Latitude,
			Longitude: cp.Longitude,
			Order:     cp.SequenceOrder,
		})
	}

	return RouteResponse{
		ID:          route.ID,
		Name:        route.Name,
		Description: route.Description,
		DistanceKm:  route.DistanceKm,
		Checkpoints: checkpoints,
	}
}

func toCheckInResponse(checkIn models.CheckIn, username string) CheckInResponse {
	return CheckInResponse{
		ID:           checkIn.ID,
		RouteID:      checkIn.RouteID,
		CheckpointID: checkIn.CheckpointID,
		Username:     username,
		CheckedAt:    checkIn.CheckedAt,
	}
}

// parseRouteID reads the routeId path parameter. An unparseable id cannot
// match any route, so callers treat it the same as an unknown route.
func parseRouteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("routeId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (rc *RouteController) GetRoutes(c *gin.Context) {
	routes, err := rc.routes.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch routes"})
		return
	}

	responses := make([]RouteResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, toRouteResponse(route))
	}

	c.JSON(http.StatusOK, responses)
}

func (rc *RouteController) GetRoute(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	route, err := rc.routes.FindByID(routeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	c.JSON(http.StatusOK, toRouteResponse(*route))
}

func (rc *RouteController) GetCheckIns(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	username := c.Query("username")
	checkIns, err := rc.checkIns.ListByRouteAndUsername(routeID, username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch check-ins"})
		return
	}

	responses := make([]CheckInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		responses = append(responses, toCheckInResponse(checkIn, username))
	}

	c.JSON(http.StatusOK, responses)
}

// CreateCheckIn validates its input as a sequence of fail-fast checks, each
// with its own client-facing message, then persists a check-in stamped with
// the current server time.
func (rc *RouteController) CreateCheckIn(c *gin.Context) {
	routeID, ok := parseRouteID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if req.Username == "" {
		c.String(http.StatusBadRequest, "Username is required")
		return
	}
	if req.CheckpointID == nil {
		c.String(http.StatusBadRequest, "Checkpoint id is required")
		return
	}

	route, err := rc.routes.FindByID(routeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	user, err := rc.users.FindByUsername(req.Username)
	if err != nil {
		c.String(http.StatusBadRequest, "Unknown user")
		return
	}

	checkpoint, err := rc.routes.FindCheckpointByID(*req.CheckpointID)
	if err != nil {
		c.String(http.StatusBadRequest, "Checkpoint does not exist")
		return
	}
	if checkpoint.RouteID != route.ID {
		c.String(http.StatusBadRequest, "Checkpoint does not belong to the route")
		return
	}

	checkIn := models.CheckIn{
		RouteID:      route.ID,
		UserID:       user.ID,
		CheckpointID: &checkpoint.ID,
		CheckedAt:    time.Now(),
	}

	if err := rc.checkIns.Create(&checkIn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create check-in"})
		return
	}

	c.JSON(http.StatusOK, toCheckInResponse(checkIn, user.Username))
}
