package hal

import "github.com/kamstrup/intmap"

// Key is a logical input key. Backends map physical keys onto these.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyForward
	KeyBackward
	KeyStrafeLeft
	KeyStrafeRight
	KeyUp
	KeyDown
	KeyRotateLeft
	KeyRotateRight
	KeyRotateUp
	KeyRotateDown
	KeyZoomIn
	KeyZoomOut
	KeyQuit

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:     "unknown",
	KeyForward:     "forward",
	KeyBackward:    "backward",
	KeyStrafeLeft:  "strafe-left",
	KeyStrafeRight: "strafe-right",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyRotateLeft:  "rotate-left",
	KeyRotateRight: "rotate-right",
	KeyRotateUp:    "rotate-up",
	KeyRotateDown:  "rotate-down",
	KeyZoomIn:      "zoom-in",
	KeyZoomOut:     "zoom-out",
	KeyQuit:        "quit",
}

func (k Key) String() string {
	if k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// AllKeys lists every logical key except KeyUnknown, in declaration order.
func AllKeys() []Key {
	out := make([]Key, 0, keyCount-1)
	for k := KeyForward; k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// KeySet is the set of keys held during one frame.
type KeySet struct {
	m *intmap.Map[Key, struct{}]
}

func NewKeySet(keys ...Key) *KeySet {
	s := &KeySet{m: intmap.New[Key, struct{}](int(keyCount))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s *KeySet) Add(k Key) {
	if k == KeyUnknown || k >= keyCount {
		return
	}
	s.m.Put(k, struct{}{})
}

func (s *KeySet) Remove(k Key) { s.m.Del(k) }

func (s *KeySet) Has(k Key) bool {
	if s == nil {
		return false
	}
	_, ok := s.m.Get(k)
	return ok
}

func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

func (s *KeySet) Clear() { s.m.Clear() }

// Keys returns the members in declaration order.
func (s *KeySet) Keys() []Key {
	var out []Key
	for _, k := range AllKeys() {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// CopyFrom replaces the contents of s with those of o.
func (s *KeySet) CopyFrom(o *KeySet) {
	s.Clear()
	for _, k := range o.Keys() {
		s.Add(k)
	}
}
