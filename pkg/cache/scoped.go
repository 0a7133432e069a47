package cache

// ScopedKeyer prefixes every key of an inner [Keyer] with a scope, typically
// the layout engine version. Entries written under another scope are never
// read back, so a changed packing algorithm cannot serve stale layouts from
// a long-lived file or Redis cache.
//
//	keyer := NewScopedKeyer(nil, "engine-v2")
//	keyer.LayoutKey(h, opts) // "engine-v2:layout:<sha256>"
type ScopedKeyer struct {
	inner Keyer
	scope string
}

// NewScopedKeyer wraps inner, or a [DefaultKeyer] when inner is nil. An
// empty scope leaves keys unchanged.
func NewScopedKeyer(inner Keyer, scope string) *ScopedKeyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, scope: scope}
}

// Scope returns the prefix applied to every key.
func (k *ScopedKeyer) Scope() string { return k.scope }

// LayoutKey returns the inner layout key within the scope.
func (k *ScopedKeyer) LayoutKey(inputHash string, opts LayoutKeyOpts) string {
	return k.scoped(k.inner.LayoutKey(inputHash, opts))
}

// ArtifactKey returns the inner artifact key within the scope.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.scoped(k.inner.ArtifactKey(layoutHash, opts))
}

func (k *ScopedKeyer) scoped(key string) string {
	if k.scope == "" {
		return key
	}
	return k.scope + ":" + key
}

var _ Keyer = (*ScopedKeyer)(nil)
