package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS 允许任意来源访问 API，预检请求在此结束。
var CORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	MaxAge:         300,
})
