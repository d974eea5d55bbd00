package controller

import (
	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api/game and the live socket at /ws/game.
func SetupRoutes(app *fiber.App, gameService *service.GameService, wsConfig websocket.Config) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Use("/ws", middleware.EnsureClientID(), middleware.WebSocketUpgrade())
	app.Get("/ws/game", websocket.New(wsController.HandleConnection, wsConfig))

	gameRoutes := app.Group("/api/game")
	gameRoutes.Get("/", gameController.GetGameState)
	gameRoutes.Post("/new", gameController.NewGame)
	gameRoutes.Get("/moves", gameController.LegalMoves)
	gameRoutes.Post("/move", gameController.MakeMove)
	gameRoutes.Post("/undo", gameController.Undo)
}
