package colors

// Key represents a keyboard key the loop cares about.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyCount
)

// InputState holds keyboard state for the current frame.
// This is typically populated by the window backend from GLFW callbacks.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this before collecting the next frame's events.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
}

// SetKey records a key transition.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	if !down && s.keyDown[key] {
		s.keyUp[key] = true
	}
	s.keyDown[key] = down
}

// IsKeyDown returns true while the key is held.
func (s *InputState) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// IsKeyPressed returns true on the frame the key went down.
func (s *InputState) IsKeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// IsKeyReleased returns true on the frame the key went up.
func (s *InputState) IsKeyReleased(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}
