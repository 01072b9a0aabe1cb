package math

// ContainmentType describes how one volume relates to another.
type ContainmentType int

const (
	// The volumes do not touch.
	Disjoint ContainmentType = iota
	// The tested volume lies completely inside.
	Contains
	// The volumes overlap partially.
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Contains:
		return "contains"
	case Intersects:
		return "intersects"
	}
	return "unknown"
}
