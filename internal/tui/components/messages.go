package components

// TabChangedMsg is emitted when the user picks a tab. It is never emitted
// for keys adopted through SetProps.
type TabChangedMsg struct {
	Key string
}
