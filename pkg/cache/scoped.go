package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, for
// example to keep several deployments apart in one Redis:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "crossnames:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(words []string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(words, opts)
}
