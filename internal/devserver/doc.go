// Package devserver is a self-contained implementation of the
// TechSolutions API for local development and integration testing. It
// serves the same endpoints the production API exposes: JWT bearer
// auth over a sqlite database, with the hour bank derived from the
// stored tasks.
//
// The client never depends on this package; it talks to whatever is
// behind its configured base URL.
package devserver
