package steer

import "fmt"

// FamilyTag identifies which path family a Path was built from. The order
// declared here is the fixed, documented tie-break order the Selector
// falls back to when two families produce equal-length paths: the first
// family in this order wins. The Selector's familyTable (selector.go)
// lists the families in this same order, which fixes the iteration order
// predicates are evaluated in.
type FamilyTag int

const (
	FamilyNone FamilyTag = iota
	FamilyEmpty
	FamilyT
	FamilyTT
	FamilyTcT
	FamilyTcTcT
	FamilyTcTT
	FamilyTTcT
	FamilyTST
	FamilyTSTcT
	FamilyTcTST
	FamilyTcTSTcT
	FamilyTTcTT
	FamilyTcTTcT
	FamilyTTT
	FamilyTcST
	FamilyTScT
	FamilyTcScT
)

func (f FamilyTag) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyEmpty:
		return "EMPTY"
	case FamilyT:
		return "T"
	case FamilyTT:
		return "TT"
	case FamilyTcT:
		return "TcT"
	case FamilyTcTcT:
		return "TcTcT"
	case FamilyTcTT:
		return "TcTT/TTcT"
	case FamilyTTcT:
		return "TTcT/TcTT"
	case FamilyTST:
		return "TST"
	case FamilyTSTcT:
		return "TSTcT"
	case FamilyTcTST:
		return "TcTST"
	case FamilyTcTSTcT:
		return "TcTSTcT"
	case FamilyTTcTT:
		return "TTcTT"
	case FamilyTcTTcT:
		return "TcTTcT"
	case FamilyTTT:
		return "TTT"
	case FamilyTcST:
		return "TcST"
	case FamilyTScT:
		return "TScT"
	case FamilyTcScT:
		return "TcScT"
	default:
		return "unknown"
	}
}

// Path is the Selector's decomposition of the shortest connection between
// two endpoint circles: the family, the endpoint circles (copies, not
// shared handles), zero/one/two intermediate circles, up to four
// intermediate join configurations, and the total length. Every field is
// a value or an owned pointer built fresh by the winning family's build
// routine; Go's garbage collector retires the need for the source
// library's manual delete-the-losers bookkeeping. Losing candidates are
// built in full (every admissible family, and both candidates of TcTcT
// and TTT) and then simply dropped.
type Path struct {
	Family       FamilyTag
	CStart, CEnd Circle
	CI1, CI2     *Circle
	Q1, Q2, Q3, Q4 *Configuration
	Length       float64
}

// String renders a short human-readable summary of the path, grounded in
// the teacher's Plan.String()/State.String() convention of a compact
// one-line description suitable for logging.
func (p Path) String() string {
	return fmt.Sprintf("%s path, length %.6f", p.Family, p.Length)
}

// emptyPath is the zero-length, zero-segment result for identical
// endpoints.
func emptyPath(c Circle) Path {
	return Path{Family: FamilyEmpty, CStart: c, CEnd: c, Length: 0}
}

// noPath is the sentinel "no family feasible" result; per the error
// handling design this is a defensive case, mathematically unreachable
// for well-formed input, not a reportable fault.
func noPath() Path {
	return Path{Family: FamilyNone, Length: posInf}
}
