package api

import (
	"net/http"

	"github.com/freightops/manifest/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Chat.Handler().Routes(),
		domain.Tasks.Handler().Routes(),
		domain.Classifications.Handler().Routes(),
	)
}
