package input

// KeyPressTracker turns a polled keyboard state array into press edges so a
// held key fires once. Codes index the state array, e.g. int(sdl.SCANCODE_UP).
type KeyPressTracker struct {
	pressed map[int]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker() KeyPressTracker {
	return KeyPressTracker{
		pressed: make(map[int]bool),
	}
}

// IsPressed reports whether code went down since the previous call for it
func (kpt *KeyPressTracker) IsPressed(keyState []uint8, code int) bool {
	if kpt.pressed == nil {
		kpt.pressed = make(map[int]bool)
	}

	isCurrentlyPressed := code >= 0 && code < len(keyState) && keyState[code] != 0
	wasPressed := kpt.pressed[code]
	kpt.pressed[code] = isCurrentlyPressed

	return isCurrentlyPressed && !wasPressed
}

// Pressed returns the codes from the given set that went down this frame,
// in the order given
func (kpt *KeyPressTracker) Pressed(keyState []uint8, codes ...int) []int {
	var out []int
	for _, code := range codes {
		if kpt.IsPressed(keyState, code) {
			out = append(out, code)
		}
	}
	return out
}

// Reset forgets all held keys, e.g. after the window regains focus
func (kpt *KeyPressTracker) Reset() {
	for code := range kpt.pressed {
		delete(kpt.pressed, code)
	}
}
