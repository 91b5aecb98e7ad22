package nav

// initialFocus is the reserved label InitialFocus uses
type initialFocus struct{}

// labels holds the focus-label redirect. A request made during frame N is
// current during frame N+1 and dropped afterwards, matched or not.
type labels struct {
	next       any
	hasNext    bool
	current    any
	hasCurrent bool
}

func (l *labels) request(label any) {
	l.next, l.hasNext = label, true
}

// rotate promotes the pending request. With nothing requested and nothing
// drawn last frame, the initial-focus label becomes current.
func (l *labels) rotate(registryEmpty bool) {
	l.current, l.hasCurrent = l.next, l.hasNext
	l.next, l.hasNext = nil, false
	if !l.hasCurrent && registryEmpty {
		l.current, l.hasCurrent = initialFocus{}, true
	}
}

// take consumes the current label if it equals label
func (l *labels) take(label any) bool {
	if !l.hasCurrent || l.current != label {
		return false
	}
	l.current, l.hasCurrent = nil, false
	return true
}

// FocusLabel tags the node with label. If application code asked for that
// label with SetFocusLabel on the previous frame, the first node drawn
// with it receives focus.
func FocusLabel[L comparable](nd *Node, label L) *Node {
	n := nd.nav
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending == nil && n.labels.take(label) {
		n.logger.Debug("nav: focus label matched", "node", nd.resp.ID(), "label", label)
		nd.resp.RequestFocus()
	}
	return nd
}

// SetFocusLabel asks for the node tagged with label to be focused on the
// next frame. A later request in the same frame replaces an earlier one.
func SetFocusLabel[L comparable](n *Navigator, label L) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.labels.request(label)
}
