package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/service"
	"github.com/MKhiriev/go-accounts-service/internal/utils"
)

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := decodeAccountRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createAccount").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.CreateAccount(r.Context(), req)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.createAccount").Msg("error creating account")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", service.AccountsPath+"/"+strconv.FormatInt(account.ID, 10))
	if _, err = utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error writing response")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := accountIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.getAccount").Int64("account_id", id).Msg("error reading account")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Msg("error writing response")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := accountIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := decodeAccountRequest(w, r)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.updateAccount").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	account, err := h.services.AccountService.UpdateAccount(r.Context(), id, req)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.updateAccount").Int64("account_id", id).Msg("error updating account")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("error writing response")
	}
}

// deleteAccount answers 204 whether or not the account existed.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := accountIDFromURL(r)
	if err != nil {
		// an id that cannot exist is already deleted
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
