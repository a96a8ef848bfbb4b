// Package http wires the HTTP routes to the handlers.
package http

import (
	"github.com/gofiber/fiber/v3"

	"noteful/internal/adapters/http/apierr"
	"noteful/internal/adapters/http/folders"
	"noteful/internal/adapters/http/middleware"
	"noteful/internal/adapters/http/notes"
	"noteful/internal/adapters/http/tags"
	"noteful/internal/adapters/http/users"
	"noteful/internal/app"
	svc "noteful/internal/ports/services"
)

// SetupRouter configures the middleware chain and all routes.
func SetupRouter(
	fiberApp *fiber.App,
	userUseCase *app.UserUseCase,
	noteUseCase *app.NoteUseCase,
	folderUseCase *app.FolderUseCase,
	tagUseCase *app.TagUseCase,
	tokenService svc.TokenService,
) {
	userHandler := users.NewHandler(userUseCase, tokenService)
	noteHandler := notes.NewHandler(noteUseCase)
	folderHandler := folders.NewHandler(folderUseCase)
	tagHandler := tags.NewHandler(tagUseCase)

	fiberApp.Use(middleware.NewRequestIDMiddleware())
	fiberApp.Use(middleware.NewLoggerMiddleware())
	fiberApp.Use(middleware.NewRecoveryMiddleware())

	api := fiberApp.Group("/api")

	// Public routes.
	api.Post("/users", userHandler.Register)
	api.Post("/login", userHandler.Login)

	// Protected routes; ownership is always taken from the token identity.
	authRequired := middleware.NewAuthMiddleware(tokenService)

	notesRoutes := api.Group("/notes")
	notesRoutes.Use(authRequired)
	notesRoutes.Get("/", noteHandler.ListNotes)
	notesRoutes.Get("/:id", noteHandler.GetNote)
	notesRoutes.Post("/", noteHandler.CreateNote)
	notesRoutes.Put("/:id", noteHandler.UpdateNote)
	notesRoutes.Delete("/:id", noteHandler.DeleteNote)

	foldersRoutes := api.Group("/folders")
	foldersRoutes.Use(authRequired)
	foldersRoutes.Get("/", folderHandler.ListFolders)
	foldersRoutes.Post("/", folderHandler.CreateFolder)
	foldersRoutes.Delete("/:id", folderHandler.DeleteFolder)

	tagsRoutes := api.Group("/tags")
	tagsRoutes.Use(authRequired)
	tagsRoutes.Get("/", tagHandler.ListTags)
	tagsRoutes.Post("/", tagHandler.CreateTag)
	tagsRoutes.Delete("/:id", tagHandler.DeleteTag)

	// Unknown routes.
	fiberApp.Use(func(c fiber.Ctx) error {
		return apierr.Write(c, fiber.StatusNotFound, apierr.ReasonNotFound, apierr.MsgNotFound, "")
	})
}
