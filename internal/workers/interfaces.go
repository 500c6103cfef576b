// Package workers runs the background jobs of the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Worker is a background job. Run starts it and returns immediately; Stop
// blocks until the job has finished.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Flusher writes pending in-memory state to persistent storage.
// *localsync.Engine implements it.
type Flusher interface {
	Flush(ctx context.Context) error
}

// Rescanner brings in-memory trees in line with the local filesystem.
// *localsync.Engine implements it.
type Rescanner interface {
	Rescan(ctx context.Context) error
}
