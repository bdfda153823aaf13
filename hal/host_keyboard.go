package hal

import "sync"

// hostKeyboard holds the keys a backend last reported as down.
type hostKeyboard struct {
	mu   sync.Mutex
	held *KeySet
	view *KeySet
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{held: NewKeySet(), view: NewKeySet()}
}

// Pressed returns a copy owned by the caller until the next call.
func (k *hostKeyboard) Pressed() *KeySet {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.view.CopyFrom(k.held)
	return k.view
}

func (k *hostKeyboard) set(keys ...Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.held.Clear()
	for _, key := range keys {
		k.held.Add(key)
	}
}
