package controller

import (
	"ctchen222/tictactoe/internal/api/models"
	"ctchen222/tictactoe/internal/api/response"
	"ctchen222/tictactoe/internal/api/service"
	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/validator"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MoveController handles requests for computer moves.
type MoveController struct {
	moveService service.MoveService
}

// NewMoveController creates a new MoveController.
func NewMoveController(moveService service.MoveService) *MoveController {
	return &MoveController{
		moveService: moveService,
	}
}

// Move handles the move endpoint.
func (mc *MoveController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := mc.moveService.NextMove(c.Request.Context(), &req)
	switch {
	case err == nil:
		response.SuccessResponse(c, resp)
	case errors.Is(err, game.ErrInvalidCell),
		errors.Is(err, bot.ErrGameOver),
		errors.Is(err, bot.ErrInvalidPlayer):
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "Move calculation failed", "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

// Health reports that the service is up.
func (mc *MoveController) Health(c *gin.Context) {
	response.SuccessResponseContent(c, "ok")
}
