package ports

// ContextSetter publishes boolean flags the front end uses to show or hide
// actions. Flags are derived from store state and never read back by the core.
type ContextSetter interface {
	SetContext(key string, value bool)
}
