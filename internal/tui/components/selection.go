package components

// Selection holds the key of the highlighted tab. It has two transition
// sources: Observe/Reconcile for caller-supplied keys and Select for user
// picks.
type Selection struct {
	current string

	// observed is the last caller-supplied key, empty or not.
	observed string
}

// NewSelection picks the initial key: activeKey when non-empty, else the
// first tab's key, else no selection.
func NewSelection(tabs []Tab, activeKey string) Selection {
	if activeKey != "" {
		return Selection{current: activeKey, observed: activeKey}
	}
	if len(tabs) > 0 {
		return Selection{current: tabs[0].Key}
	}
	return Selection{}
}

// Current returns the highlighted key, or "" when nothing is selected.
func (s Selection) Current() string {
	return s.current
}

// Reconcile adopts an externally supplied key. Empty keys and keys equal to
// the current one are ignored. It reports whether the selection changed.
func (s *Selection) Reconcile(activeKey string) bool {
	if activeKey == "" || activeKey == s.current {
		return false
	}
	s.current = activeKey
	return true
}

// Observe is called with the caller's key on every props update. Only a key
// that differs from the previously observed one is reconciled, so a caller
// re-sending an unchanged key does not undo a user pick.
func (s *Selection) Observe(activeKey string) bool {
	if activeKey == s.observed {
		return false
	}
	s.observed = activeKey
	return s.Reconcile(activeKey)
}

// Select records a user pick unconditionally.
func (s *Selection) Select(key string) {
	s.current = key
}
