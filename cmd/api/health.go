package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse reports liveness and how many screens are currently mounted
type PingResponse struct {
	Message string `json:"message" example:"pong"`
	Screens int    `json:"screens" example:"3"` // mounted screen sessions, idle ones included until swept
}

// handlePing godoc
// @Summary Ping health check
// @Description Liveness probe; also reports the number of mounted weather screens
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Screens: app.screens.Len(),
	})
}
