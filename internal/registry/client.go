package registry

import (
	"context"

	"vramfit/pkg/types"
)

// Client is the narrow contract the estimation core needs from a model
// registry: a weight file size and the raw configuration document. The hub
// implementation lives in this package; tests inject stubs.
type Client interface {
	// FileSizeBytes returns the serialized weight size of the model in bytes.
	FileSizeBytes(ctx context.Context, model string) (int64, error)
	// Config returns the model's configuration document.
	Config(ctx context.Context, model string) (types.ModelConfig, error)
}
