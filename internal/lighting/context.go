package lighting

import "context"

type engineKey struct{}

// WithEngine attaches e to ctx for consumers further down the call chain.
func WithEngine(ctx context.Context, e *Engine) context.Context {
	return context.WithValue(ctx, engineKey{}, e)
}

// FromContext returns the engine attached to ctx, or nil when there is none.
// A nil engine is valid and serves static defaults.
func FromContext(ctx context.Context) *Engine {
	if ctx == nil {
		return nil
	}
	e, _ := ctx.Value(engineKey{}).(*Engine)
	return e
}
