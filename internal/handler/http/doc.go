// Package http implements the server's REST transport for the expense
// document collection.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer token authentication, request tracing, access
// logging, response compression, and body integrity checks are handled here
// before a request reaches the document service.
package http
