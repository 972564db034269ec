// Package http implements the HTTP transport layer of the accounts service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as security headers, request tracing,
// access logging, and content type checks are handled in this package before
// requests are delegated to the service layer.
package http
