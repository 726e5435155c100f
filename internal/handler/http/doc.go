// Package http implements the HTTP transport layer of the auth service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request correlation,
// and access logging are handled in this package before requests are
// delegated to the service layer. Every response, success or failure, is
// wrapped in the envelope defined in the models package.
package http
