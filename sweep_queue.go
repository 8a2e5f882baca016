package mcg

import (
	"fmt"
	"io"
	"strings"
)

// eventQueue is a heap priority queue of sweep events.
type eventQueue struct {
	items []eventID
	cmp   func(eventID, eventID) int
}

func (q *eventQueue) Len() int {
	return len(q.items)
}

func (q *eventQueue) less(i, j int) bool {
	return q.cmp(q.items[i], q.items[j]) < 0
}

func (q *eventQueue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// Init establishes the heap order after items were appended directly.
func (q *eventQueue) Init() {
	n := len(q.items)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *eventQueue) Push(e eventID) {
	q.items = append(q.items, e)
	q.up(len(q.items) - 1)
}

func (q *eventQueue) Pop() eventID {
	n := len(q.items) - 1
	q.swap(0, n)
	q.down(0, n)

	e := q.items[n]
	q.items = q.items[:n]
	return e
}

// from container/heap
func (q *eventQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(j, i) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

func (q *eventQueue) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}

// Print writes the queued events in order, using str to format each.
func (q *eventQueue) Print(w io.Writer, str func(eventID) string) {
	q2 := &eventQueue{items: append([]eventID{}, q.items...), cmp: q.cmp}
	for i := 0; 0 < q2.Len(); i++ {
		fmt.Fprintln(w, i, str(q2.Pop()))
	}
}

func (q *eventQueue) String() string {
	sb := strings.Builder{}
	q.Print(&sb, func(e eventID) string { return fmt.Sprint(int(e)) })
	return strings.TrimSuffix(sb.String(), "\n")
}
