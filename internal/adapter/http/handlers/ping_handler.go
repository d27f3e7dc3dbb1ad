package handlers

import (
	"net/http"

	"vetcare/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.PingResponse
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.PingResponse{Message: "pong"})
}
