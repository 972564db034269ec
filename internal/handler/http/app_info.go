package http

import (
	"net/http"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/utils"
	"github.com/MKhiriev/go-accounts-service/models"
)

const healthStatusOK = "OK"

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetServiceInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.index").Msg("error writing response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
