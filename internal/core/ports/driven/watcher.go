package driven

// Watcher reports changes to the persisted corpus.
// The matching service rebuilds and swaps the model on each change.
type Watcher interface {
	// Changes returns a channel that receives the changed path.
	// Implementations debounce bursts of filesystem events.
	Changes() <-chan string

	// Close stops watching and closes the Changes channel.
	Close() error
}
