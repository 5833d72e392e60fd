package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	"sisgad/internal/auth"
	"sisgad/internal/config"
	"sisgad/internal/entities"
	h "sisgad/internal/http/handlers"
	"sisgad/internal/http/middleware"
	"sisgad/internal/repositories"
	"sisgad/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine. Every entity's route set is mounted
// from the registry; nothing is hand-written per table.
func NewRouter(env config.Env, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "ruta no encontrada",
		})
	})

	tokens := auth.NewManager(env.JWTSecret, 24*time.Hour)
	usuarios := repositories.Usuarios{DB: db}
	generic := repositories.Generic{DB: db}
	authHandler := h.AuthHandler{Usuarios: usuarios, Tokens: tokens}
	system := h.SystemHandler{DB: db}
	reportes := h.ReportesHandler{Service: services.Reportes{DB: db}, Repo: generic}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)
		api.GET("/routes", system.Routes)

		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("", middleware.Authenticate(tokens, usuarios.LoadIdentity))
		protected.GET("/auth/perfil", authHandler.Perfil)

		for _, ent := range entities.All() {
			handler := h.EntityHandler{Ent: ent, Repo: generic}
			if ent.Name == "usuarios" {
				handler.BeforeWrite = h.HashPassword
			}
			mountEntity(protected.Group("/"+ent.Name), ent, handler)
		}

		// Printable complaint summary lives beside the quejas CRUD.
		protected.GET("/quejas/:id/reporte",
			middleware.RequirePermission("quejas.leer"), reportes.QuejaPDF)

		rep := protected.Group("/reportes", middleware.RequirePermission("reportes.leer"))
		rep.GET("/quejas-por-estado", reportes.QuejasPorEstado)
		rep.GET("/telefonos-por-municipio", reportes.TelefonosPorMunicipio)
		rep.GET("/lineas-por-tipo", reportes.LineasPorTipo)
	}

	h.SetRouter(r)
	return r
}

func mountEntity(g *gin.RouterGroup, ent entities.Entity, handler h.EntityHandler) {
	g.GET("", middleware.RequirePermission(ent.Permission("leer")), handler.List)
	g.GET("/exportar", middleware.RequirePermission(ent.Permission("leer")), handler.Export)
	g.GET("/:id", middleware.RequirePermission(ent.Permission("leer")), handler.GetByID)
	g.POST("", middleware.RequirePermission(ent.Permission("crear")), handler.Create)
	g.PUT("/:id", middleware.RequirePermission(ent.Permission("editar")), handler.Update)
	g.DELETE("/:id", middleware.RequirePermission(ent.Permission("eliminar")), handler.Delete)
}
