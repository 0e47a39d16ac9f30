package model

// AppMode is the top-level operating mode of the target application, read
// from the name of the right-most mode button.
type AppMode int

const (
	ModeOther AppMode = iota
	ModeDirect
	ModeCatchup
)

// Mode button names as displayed by the application.
const (
	DirectButtonName  = "DIRECT"
	CatchupButtonName = "RATTRAPAGE"
)

func (m AppMode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeCatchup:
		return "catchup"
	default:
		return "other"
	}
}

// ButtonName returns the mode button name selecting m, or "" for ModeOther.
func (m AppMode) ButtonName() string {
	switch m {
	case ModeDirect:
		return DirectButtonName
	case ModeCatchup:
		return CatchupButtonName
	default:
		return ""
	}
}

// ModeFromButtonName maps a mode button display name to an AppMode.
func ModeFromButtonName(name string) AppMode {
	switch name {
	case DirectButtonName:
		return ModeDirect
	case CatchupButtonName:
		return ModeCatchup
	default:
		return ModeOther
	}
}

// ParseAppMode converts a user-supplied flag value to an AppMode.
func ParseAppMode(s string) (AppMode, bool) {
	switch s {
	case "direct", "DIRECT", "live":
		return ModeDirect, true
	case "catchup", "catch-up", "rattrapage", "RATTRAPAGE":
		return ModeCatchup, true
	default:
		return ModeOther, false
	}
}
