// Package mocks provides hand-written test doubles for the store and service
// interfaces. Each mock supports per-method function overrides for custom
// behavior and falls back to an in-memory implementation.
package mocks
