// Package service provides application-level services. The task service is
// the only component allowed to mutate the task store; it enforces ownership
// and validation before delegating to storage.
package service
