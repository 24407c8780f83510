package volume

// State classifies a Box3D from its raw bounds. It is derived on demand and
// never stored.
type State int

const (
	// StateNull means no extent was recorded (NaN or SetMinimal bounds).
	StateNull State = iota
	// StateEmpty means the box has no volume.
	StateEmpty
	// StateBounded means the box encloses a volume.
	StateBounded
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "Null"
	case StateEmpty:
		return "Empty"
	case StateBounded:
		return "Bounded"
	default:
		return "Unknown"
	}
}
