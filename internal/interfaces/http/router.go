package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/YudheerRM/bidding-insights/internal/application/analytics"
	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/documents"
	"github.com/YudheerRM/bidding-insights/internal/application/tendering"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
)

// RouterDeps dependencies for the router. UploadUC may be nil when object storage is not configured.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	TenderUC      *usecase.TenderUseCase
	ApplicationUC *tendering.ApplicationUseCase
	UserUC        *usecase.UserDirectoryUseCase
	StatsUC       *analytics.StatsUseCase
	UploadUC      *documents.UploadUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/sign-up", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)

	// Tenders: reads are public, writes need an official or admin.
	tenders := api.Group("/tenders")
	tenderHandler := NewTenderHandler(deps.TenderUC)
	tenders.Get("/", tenderHandler.List)
	tenders.Get("/:id", tenderHandler.GetByID)
	publishers := RequireRole(string(entity.RoleGovernmentOfficial), string(entity.RoleAdmin))
	tenders.Post("/", requireAuth, publishers, tenderHandler.Create)
	tenders.Patch("/:id", requireAuth, publishers, tenderHandler.Update)

	// Tender applications (own records only)
	applications := api.Group("/tender-applications", requireAuth)
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Get("/", applicationHandler.List)
	applications.Post("/", applicationHandler.Create)
	applications.Delete("/", applicationHandler.Withdraw)
	applications.Delete("/:id", applicationHandler.Withdraw)
	applications.Get("/:id/receipt", applicationHandler.Receipt)

	// Own account
	account := api.Group("/user", requireAuth)
	profileHandler := NewProfileHandler(deps.UserUC)
	account.Get("/profile", profileHandler.Get)
	account.Patch("/profile", profileHandler.Update)
	account.Post("/change-password", profileHandler.ChangePassword)

	// Admin
	admin := api.Group("/admin", requireAuth, RequireRole(string(entity.RoleAdmin)))
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/stats", NewStatsHandler(deps.StatsUC).Summary)

	// Uploads
	if deps.UploadUC != nil {
		uploads := api.Group("/upload", requireAuth, publishers)
		uploadHandler := NewUploadHandler(deps.UploadUC)
		uploads.Post("/", uploadHandler.Upload)
		uploads.Get("/presign", uploadHandler.Presign)
		uploads.Delete("/", uploadHandler.Delete)
	}
}
