package main

import (
	"errors"
	"net/http"

	"fhapp-weather/internal/geolocation"
	"fhapp-weather/internal/screen"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MountScreenRequest is what a device sends when the weather tab opens
type MountScreenRequest struct {
	PermissionGranted *bool   `json:"permission_granted" binding:"required" example:"true"`     // Outcome of the location permission prompt
	Latitude          float64 `json:"latitude" binding:"min=-90,max=90" example:"39.11539"`     // Raw device latitude
	Longitude         float64 `json:"longitude" binding:"min=-180,max=180" example:"-107.6584"` // Raw device longitude
	UseDefault        bool    `json:"use_default_location" example:"false"`                     // Ignore the device position and use the configured location
}

// MountScreenResponse identifies a mounted screen
type MountScreenResponse struct {
	ID string `json:"id" example:"0b7e6a4c-2f1d-4c8e-9a55-0e3f6f7b1c2d"`
}

// handleMountScreen godoc
// @Summary Mount a weather screen
// @Description Start a screen session. The forecast loads in the background; poll GET /screens/{id} for its view.
// @Tags screens
// @Accept json
// @Produce json
// @Param request body MountScreenRequest true "Device permission and position"
// @Success 201 {object} MountScreenResponse
// @Failure 400 {object} map[string]string
// @Router /screens [post]
func (app *App) handleMountScreen(c *gin.Context) {
	var input MountScreenRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var locator geolocation.Provider
	if input.UseDefault {
		locator = geolocation.NewStatic(app.cfg.Location.Latitude, app.cfg.Location.Longitude)
	} else {
		locator = geolocation.NewDevice(*input.PermissionGranted, input.Latitude, input.Longitude)
	}

	id, _ := app.screens.Mount(locator)

	c.JSON(http.StatusCreated, MountScreenResponse{ID: id.String()})
}

// handleGetScreen godoc
// @Summary Get screen view
// @Description Current conditions, unit preference, and up to ten wrapped forecast periods
// @Tags screens
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} screen.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /screens/{id} [get]
func (app *App) handleGetScreen(c *gin.Context) {
	s, ok := app.lookupScreen(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// handleToggleUnit godoc
// @Summary Toggle temperature unit
// @Description Switch between Fahrenheit and Celsius. Does not refetch the forecast.
// @Tags screens
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} screen.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /screens/{id}/unit [post]
func (app *App) handleToggleUnit(c *gin.Context) {
	s, ok := app.lookupScreen(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.ToggleUnit())
}

// handleToggleDetail godoc
// @Summary Toggle forecast detail
// @Description Open or close the forecast detail list
// @Tags screens
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} screen.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /screens/{id}/detail [post]
func (app *App) handleToggleDetail(c *gin.Context) {
	s, ok := app.lookupScreen(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.ToggleDetail())
}

// handleRefreshScreen godoc
// @Summary Refresh forecast
// @Description Fetch the forecast again for the screen's location. Upstream failures are reported in the view status.
// @Tags screens
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} screen.View
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /screens/{id}/refresh [post]
func (app *App) handleRefreshScreen(c *gin.Context) {
	s, ok := app.lookupScreen(c)
	if !ok {
		return
	}

	if err := s.Refresh(c.Request.Context()); err != nil {
		if errors.Is(err, screen.ErrNotLocated) || errors.Is(err, screen.ErrUnmounted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// Upstream failures are already logged and show up in the view.
	}

	c.JSON(http.StatusOK, s.View())
}

// handleUnmountScreen godoc
// @Summary Unmount a weather screen
// @Description End the session and cancel any in-flight forecast fetch
// @Tags screens
// @Param id path string true "Screen id"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /screens/{id} [delete]
func (app *App) handleUnmountScreen(c *gin.Context) {
	id, ok := parseScreenID(c)
	if !ok {
		return
	}

	if err := app.screens.Unmount(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (app *App) lookupScreen(c *gin.Context) (*screen.Screen, bool) {
	id, ok := parseScreenID(c)
	if !ok {
		return nil, false
	}

	s, err := app.screens.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return nil, false
	}
	return s, true
}

func parseScreenID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid screen id"})
		return uuid.UUID{}, false
	}
	return id, true
}
