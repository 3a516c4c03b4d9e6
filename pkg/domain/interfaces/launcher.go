package interfaces

import "context"

// Launcher abstracts the external URI launch capability of the host system
type Launcher interface {
	// CanLaunch probes whether the host can open the given URI
	CanLaunch(ctx context.Context, uri string) bool

	// Launch opens the URI with the host's default handler
	Launch(ctx context.Context, uri string) error
}
