// Package api contains the HTTP handlers, request/response models and error
// mapping for the task-tracking REST API. Handlers are thin: they decode and
// validate input, call the service layer, and translate errors into sanitized
// HTTP responses.
package api
