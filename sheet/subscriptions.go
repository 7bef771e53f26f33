package sheet

type subscription uint8

const (
	subPointerUp subscription = 1 << iota
	subOutsideClick
	subCut
	subCopy
	subPaste

	subAll = subPointerUp | subOutsideClick | subCut | subCopy | subPaste
)

// subscriptions is the set of input sources the sheet listens to beyond its
// own cells. The whole bundle is acquired at once and released at once.
type subscriptions struct {
	active subscription
}

func (s *subscriptions) acquire() { s.active = subAll }

func (s *subscriptions) releasePointerUp() { s.active &^= subPointerUp }

func (s *subscriptions) releaseAll() { s.active = 0 }

func (s *subscriptions) has(sub subscription) bool { return s.active&sub != 0 }

func (s *subscriptions) listening() bool { return s.active != 0 }

// lifecycle is shared by every copy of a Model.
type lifecycle struct {
	subs   subscriptions
	closed bool
}
