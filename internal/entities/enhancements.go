package entities

// NumDice is the number of physical dice on the table. Fixed game rule, so
// everything indexed by die position uses fixed-size arrays.
const NumDice = 5

// NumFaces is the number of faces on each die.
const NumFaces = 6

// MaxPipsPerFace is the pip count of the six face, the largest face.
const MaxPipsPerFace = 6

// PipState is the upgrade state of a single pip slot on one face.
type PipState int

// Pip slot states. A slot holds at most one enhancement type.
const (
	PipNone PipState = iota
	PipPoints
	PipMult
)

// EnhancementType is a purchasable pip upgrade kind.
type EnhancementType int

// Enhancement types. EnhancementNone is the "no offer / no upgrade" sentinel.
const (
	EnhancementNone EnhancementType = iota
	EnhancementPoints
	EnhancementMult
)

var enhancementNames = map[EnhancementType]string{
	EnhancementNone:   "none",
	EnhancementPoints: "points",
	EnhancementMult:   "mult",
}

// String returns the wire name of the enhancement type.
func (t EnhancementType) String() string {
	if s, ok := enhancementNames[t]; ok {
		return s
	}
	return "unknown"
}

// Pip returns the pip state a slot enters when this enhancement is applied.
func (t EnhancementType) Pip() PipState {
	switch t {
	case EnhancementPoints:
		return PipPoints
	case EnhancementMult:
		return PipMult
	case EnhancementNone:
		return PipNone
	}
	return PipNone
}

// ParseEnhancementType maps a wire name to an EnhancementType.
func ParseEnhancementType(name string) (EnhancementType, bool) {
	for t, s := range enhancementNames {
		if s == name && t != EnhancementNone {
			return t, true
		}
	}
	return EnhancementNone, false
}

// FacePips is the pip slots of one face. Only the first FacePipCount(face)
// slots exist physically; the rest stay PipNone forever.
type FacePips [MaxPipsPerFace]PipState

// EnhancementTable is the full per-die, per-face pip upgrade state.
// Indexed [die][face-1]. Pure value: copying the table copies the state.
type EnhancementTable [NumDice][NumFaces]FacePips

// FacePipCount returns how many pip slots a face physically has, which is
// the face value itself (the one face has one pip, the six face has six).
func FacePipCount(face int) int {
	if face < 1 || face > NumFaces {
		return 0
	}
	return face
}
