package http

import (
	"net/http"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/utils"
)

// versionResponse is the JSON body of GET /api/version.
type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	response := versionResponse{
		Version: buildInfo.BuildVersion(),
		Date:    buildInfo.BuildDate(),
		Commit:  buildInfo.BuildCommit(),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAppVersion").Msg("error writing response")
	}
}
