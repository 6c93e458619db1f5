package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"mediaboard/internal/config"
	"mediaboard/internal/handlers"
	"mediaboard/internal/identity"
	"mediaboard/internal/middleware"
	"mediaboard/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires stores, identity and handlers onto the engine.
// Everything is constructed here and passed down; nothing reaches for a
// package-level handle.
func RegisterRoutes(r *gin.Engine, database *gorm.DB, cfg *config.Config) {
	users := store.NewUserStore(database)
	posts := store.NewPostStore(database)
	comments := store.NewCommentStore(database)
	catalog := store.NewCatalogStore(database, cfg.CatalogSort)

	verifier := identity.NewVerifier(cfg.IdentityTimeout)
	if cfg.TokenInfoURL != "" {
		verifier.Endpoint = cfg.TokenInfoURL
	}
	oauth := identity.NewOAuthFlow(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.SiteURL)

	authHandler := handlers.NewAuthHandler(users, verifier, oauth)
	postHandler := handlers.NewPostHandler(posts, comments, users)
	catalogHandler := handlers.NewCatalogHandler(catalog)

	r.Use(noCache())
	r.Use(middleware.LoadUser(database))

	api := r.Group("/api")

	// Reads are open; only mutations pass the session gate.
	api.POST("/login", authHandler.Login)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Detail)
	api.GET("/catalog", catalogHandler.List)
	api.GET("/catalog/:category", catalogHandler.ListByCategory)

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/logout", authHandler.Logout)
		authorized.POST("/posts", postHandler.Create)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/catalog", catalogHandler.Create)
		authorized.DELETE("/catalog/:id", catalogHandler.Delete)
		authorized.POST("/comments", postHandler.CreateComment)
	}

	// Server-side OAuth flow (alternative to the client-posted id_token).
	r.GET("/auth/google", authHandler.GoogleLogin)
	r.GET("/auth/google/callback", authHandler.GoogleCallback)

	// Everything unmatched serves the client shell; real files under the app
	// dir are served as-is.
	r.NoRoute(spaFallback(cfg.AppDir))
}

func noCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache")
		c.Next()
	}
}

func spaFallback(appDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{})
			return
		}
		full := filepath.Join(appDir, filepath.Clean("/"+path))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}
		c.File(filepath.Join(appDir, "index.html"))
	}
}
