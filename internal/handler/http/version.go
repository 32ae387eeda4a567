package http

import (
	"net/http"

	"github.com/MKhiriev/vibechef/internal/utils"
)

// getServerVersion answers with the server's build information as JSON.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
