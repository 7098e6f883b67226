package core

// Button is one of the six logical console buttons.
// The mapping from physical keys to buttons belongs to the host platform.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown
	ButtonPrimary   // Z on a keyboard, confirm in game
	ButtonSecondary // X on a keyboard
)

// ButtonCount is the number of logical buttons.
const ButtonCount = 6

// Valid reports whether b is one of the six logical buttons.
func (b Button) Valid() bool {
	return b >= 0 && b < ButtonCount
}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	default:
		return "Unknown"
	}
}

// Input is the button view a cartridge gets during Update.
type Input interface {
	// Btn reports whether the button is held.
	Btn(b Button) bool
	// Btnp reports whether the button went down on this tick.
	Btnp(b Button) bool
}
