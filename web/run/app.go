package webapp

import (
	"fmt"
	"net/http"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// WebApp serves the inventory JSON API over a previously populated store.
type WebApp struct {
	AppConfig *models.AppConfig
	Store     *app.Store
}

func (webapp *WebApp) GetListenAddr() string {
	port := 8080
	if webapp.AppConfig != nil && webapp.AppConfig.Server.Port > 0 {
		port = webapp.AppConfig.Server.Port
	}
	return fmt.Sprintf(":%d", port)
}

func (webapp *WebApp) GetRouter() http.Handler {
	return router(webapp)
}
