package components

import "github.com/yohamta/donburi"

// VisibilityData doubles as logical existence: a hidden enemy is one the
// server has not confirmed, a hidden overlay is switched off.
type VisibilityData int

const (
	Hidden VisibilityData = iota
	Visible
)

func (v VisibilityData) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

var Visibility = donburi.NewComponentType[VisibilityData]()

// IsVisible reports whether e has a Visibility component set to Visible.
func IsVisible(e *donburi.Entry) bool {
	return e.HasComponent(Visibility) && *Visibility.Get(e) == Visible
}
