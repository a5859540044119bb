package routers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"catalog/internal/config"
	"catalog/internal/handlers"
)

func SetupRouters(cfg config.Config, h *handlers.ProductHandler) *gin.Engine {
	r := gin.Default()

	// uploaded images live under the public root
	r.Static("/public", cfg.PublicDir)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions("catalog_session", store))

	r.LoadHTMLGlob(cfg.ViewsGlob)

	r.GET("/health", h.Health)

	r.GET("/products", h.List)
	r.GET("/products/add", h.AddForm)
	r.POST("/products", h.Create)
	r.GET("/products/:id", h.EditForm)
	r.PUT("/products/:id", h.Update)
	r.DELETE("/products/:id", h.Delete)

	return r
}

// MethodOverride rewrites a POST carrying ?_method=PUT|DELETE before gin
// routes it. HTML forms can only send GET and POST, so the edit and delete
// forms post with the override in the query string.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch strings.ToUpper(r.URL.Query().Get("_method")) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}
