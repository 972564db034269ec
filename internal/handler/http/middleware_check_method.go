// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// probedMethods are the methods checked when building the Allow header.
var probedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi invokes it when the request path matches a registered route but the
// HTTP method is not handled. The handler probes the routing tree with
// [chi.Mux.Match] for every method in probedMethods, lists the matches in
// the Allow header and answers 405 with a JSON error body. If no method
// matches at all the path is treated as unknown and 404 is returned.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			writeError(w, r, ErrRouteNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeError(w, r, ErrMethodNotAllowed)
	}
}

func allowedMethods(router *chi.Mux, path string) []string {
	allowed := make([]string, 0, len(probedMethods))
	for _, method := range probedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
