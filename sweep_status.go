package mcg

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

type statusNode struct {
	parent, left, right *statusNode
	height              int

	e eventID
}

func height(n *statusNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

// Prev returns the in-order predecessor or nil.
func (n *statusNode) Prev() *statusNode {
	if m := n.left; m != nil {
		for m.right != nil {
			m = m.right
		}
		return m
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next returns the in-order successor or nil.
func (n *statusNode) Next() *statusNode {
	if m := n.right; m != nil {
		for m.left != nil {
			m = m.left
		}
		return m
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

func (n *statusNode) balance() int {
	return height(n.right) - height(n.left)
}

func (n *statusNode) updateHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

func (n *statusNode) swapChild(a, b *statusNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *statusNode) rotateLeft() *statusNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *statusNode) rotateRight() *statusNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

func (n *statusNode) Print(w io.Writer, indent int, str func(eventID) string) {
	if n.right != nil {
		n.right.Print(w, indent+1, str)
	} else if n.left != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
	fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), str(n.e))
	if n.left != nil {
		n.left.Print(w, indent+1, str)
	} else if n.right != nil {
		fmt.Fprintf(w, "%vnil\n", strings.Repeat("  ", indent+1))
	}
}

// sweepStatus is an AVL tree of the left events crossing the sweep line, ordered bottom to top.
// The node of every event is kept so that removal and neighbor lookups never depend on the
// comparator, which may become inconsistent after snapping split points.
type sweepStatus struct {
	root  *statusNode
	nodes []*statusNode // by event id
	cmp   func(eventID, eventID) int
	pool  *sync.Pool
}

func newSweepStatus(cmp func(eventID, eventID) int) *sweepStatus {
	return &sweepStatus{
		cmp:  cmp,
		pool: &sync.Pool{New: func() any { return &statusNode{} }},
	}
}

func (s *sweepStatus) node(e eventID) *statusNode {
	if int(e) < len(s.nodes) {
		return s.nodes[e]
	}
	return nil
}

func (s *sweepStatus) setNode(e eventID, n *statusNode) {
	for len(s.nodes) <= int(e) {
		s.nodes = append(s.nodes, nil)
	}
	s.nodes[e] = n
}

func (s *sweepStatus) newNode(e eventID) *statusNode {
	n := s.pool.Get().(*statusNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.e = e
	s.setNode(e, n)
	return n
}

func (s *sweepStatus) returnNode(n *statusNode) {
	s.setNode(n.e, nil)
	n.e = noEvent
	s.pool.Put(n)
}

// Contains is true if e is in the status.
func (s *sweepStatus) Contains(e eventID) bool {
	return s.node(e) != nil
}

func (s *sweepStatus) find(e eventID) (*statusNode, int) {
	n := s.root
	for n != nil {
		cmp := s.cmp(e, n.e)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *sweepStatus) rebalance(n *statusNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// right-heavy, rotate left; first rotate a left-heavy right child to the right
			if n.right.balance() < 0 {
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// left-heavy, rotate right; first rotate a right-heavy left child to the left
			if 0 < n.left.balance() {
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("tree too far out of shape")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		} else if oheight == n.height {
			return
		}
		n = n.parent
	}
}

func (s *sweepStatus) First() *statusNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

func (s *sweepStatus) Last() *statusNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// Insert adds e and returns false if it was already present.
func (s *sweepStatus) Insert(e eventID) bool {
	if s.Contains(e) {
		return false
	} else if s.root == nil {
		s.root = s.newNode(e)
		return true
	}

	n, cmp := s.find(e)
	if cmp == 0 {
		// the comparator considers equal only identical events
		return false
	}
	m := s.newNode(e)
	m.parent = n
	if cmp < 0 {
		n.left = m
	} else {
		n.right = m
	}
	s.rebalance(n)
	return true
}

// Remove removes e and returns false if it was not present.
func (s *sweepStatus) Remove(e eventID) bool {
	n := s.node(e)
	if n == nil {
		return false
	}
	for {
		var o *statusNode
		if n.left == nil && n.right == nil {
			if o = n.parent; o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return true
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		}

		// move the event down to o
		n.e, o.e = o.e, n.e
		s.setNode(n.e, n)
		s.setNode(o.e, o)
		n = o
	}
}

// Adjacent returns the events directly above and below e, or noEvent.
func (s *sweepStatus) Adjacent(e eventID) (eventID, eventID) {
	n := s.node(e)
	if n == nil {
		return noEvent, noEvent
	}
	up, dn := noEvent, noEvent
	if next := n.Next(); next != nil {
		up = next.e
	}
	if prev := n.Prev(); prev != nil {
		dn = prev.e
	}
	return up, dn
}

// Below returns the event directly below e, or noEvent.
func (s *sweepStatus) Below(e eventID) eventID {
	if n := s.node(e); n != nil {
		if prev := n.Prev(); prev != nil {
			return prev.e
		}
	}
	return noEvent
}

// Above returns the event directly above e, or noEvent.
func (s *sweepStatus) Above(e eventID) eventID {
	if n := s.node(e); n != nil {
		if next := n.Next(); next != nil {
			return next.e
		}
	}
	return noEvent
}

// Ascend calls f for all events from bottom to top.
func (s *sweepStatus) Ascend(f func(eventID)) {
	for n := s.First(); n != nil; n = n.Next() {
		f(n.e)
	}
}

// Descend calls f for all events from top to bottom.
func (s *sweepStatus) Descend(f func(eventID)) {
	for n := s.Last(); n != nil; n = n.Prev() {
		f(n.e)
	}
}

// Len returns the number of events in the status.
func (s *sweepStatus) Len() int {
	n := 0
	s.Ascend(func(eventID) { n++ })
	return n
}

func (s *sweepStatus) Print(w io.Writer, str func(eventID) string) {
	if s.root == nil {
		fmt.Fprintln(w, "nil")
		return
	}
	s.root.Print(w, 0, str)
}
