package controller

import (
	"errors"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) NewGame(c *fiber.Ctx) error {
	gameID := gc.gameService.NewGame()
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.GetGameState())
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	from := model.Position{
		Rank: c.QueryInt("rank", -1),
		File: c.QueryInt("file", -1),
	}

	moves, err := gc.gameService.LegalMoves(from)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(legalMovesReply{From: from, Moves: moves})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.MoveRequest
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}

	if err := gc.gameService.HandleMove(move); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gc.gameService.GetGameState())
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.Undo(); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(gc.gameService.GetGameState())
}

type legalMovesReply struct {
	From  model.Position   `json:"from"`
	Moves []model.Position `json:"moves"`
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidSquare), errors.Is(err, model.ErrInvalidPromotion):
		return fiber.StatusBadRequest
	case errors.Is(err, model.ErrNoPiece):
		return fiber.StatusNotFound
	case model.IsRuleRejection(err):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}
