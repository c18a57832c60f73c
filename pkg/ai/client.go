// pkg/ai/client.go

package ai

import (
	"context"
	"errors"
)

// ErrProvider covers every way a completion call can fail: transport error,
// non-2xx status, unparseable body or an empty choice list. Callers are not
// expected to tell these apart.
var ErrProvider = errors.New("completion provider error")

// Client sends one system/user message pair to a generative text provider.
// A single attempt per call; no retry.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
