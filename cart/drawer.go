package cart

// DrawerState is the open/closed state of the slide-out cart.
type DrawerState string

const (
	DrawerClosed DrawerState = "closed"
	DrawerOpen   DrawerState = "open"
)

type DrawerEvent string

const (
	DrawerTrigger  DrawerEvent = "trigger"
	DrawerClose    DrawerEvent = "close"
	DrawerOverlay  DrawerEvent = "overlay"
	DrawerNavigate DrawerEvent = "navigate"
)

// Next applies ev. Any event without a transition from s leaves it unchanged.
func (s DrawerState) Next(ev DrawerEvent) DrawerState {
	switch s {
	case DrawerClosed:
		if ev == DrawerTrigger {
			return DrawerOpen
		}
	case DrawerOpen:
		switch ev {
		case DrawerClose, DrawerOverlay, DrawerNavigate:
			return DrawerClosed
		}
	default:
		return DrawerClosed
	}
	return s
}
