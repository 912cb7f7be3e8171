package geometry

// Placement is the requested side and alignment of a panel relative to
// its trigger. The side comes first (top or bottom); an optional -start
// or -end suffix pins the panel's leading or trailing edge to the
// trigger's, while a bare side centers the panel across the trigger.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
)

// ParsePlacement returns the Placement named by s, or PlacementBottom if
// s is not a recognized placement.
func ParsePlacement(s string) Placement {
	switch Placement(s) {
	case PlacementTop, PlacementTopStart, PlacementTopEnd,
		PlacementBottom, PlacementBottomStart, PlacementBottomEnd:
		return Placement(s)
	}
	return PlacementBottom
}

// IsTop reports whether the placement prefers the top side.
func (p Placement) IsTop() bool {
	switch p {
	case PlacementTop, PlacementTopStart, PlacementTopEnd:
		return true
	}
	return false
}

// IsStart reports whether the placement aligns leading edges.
func (p Placement) IsStart() bool {
	return p == PlacementTopStart || p == PlacementBottomStart
}

// IsEnd reports whether the placement aligns trailing edges.
func (p Placement) IsEnd() bool {
	return p == PlacementTopEnd || p == PlacementBottomEnd
}
