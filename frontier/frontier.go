package frontier

// Stack is a LIFO frontier with O(1) membership checks.
// The zero value is ready to use.
type Stack struct {
	items   []string
	members map[string]int // vertex ID → pending occurrence count
}

// Push appends v to the top of the stack.
func (s *Stack) Push(v string) {
	if s.members == nil {
		s.members = make(map[string]int)
	}
	s.items = append(s.items, v)
	s.members[v]++
}

// Pop removes and returns the most recently pushed vertex.
// The second result is false when the stack is empty.
func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	s.drop(v)

	return v, true
}

// Contains reports whether v is currently pending.
func (s *Stack) Contains(v string) bool { return s.members[v] > 0 }

// Len returns the number of pending vertices.
func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) drop(v string) {
	if s.members[v] <= 1 {
		delete(s.members, v)
	} else {
		s.members[v]--
	}
}

// Queue is a FIFO frontier with O(1) membership checks.
// The zero value is ready to use.
type Queue struct {
	items   []string
	members map[string]int
}

// Push appends v to the back of the queue.
func (q *Queue) Push(v string) {
	if q.members == nil {
		q.members = make(map[string]int)
	}
	q.items = append(q.items, v)
	q.members[v]++
}

// Pop removes and returns the earliest pushed vertex.
// The second result is false when the queue is empty.
func (q *Queue) Pop() (string, bool) {
	if len(q.items) == 0 {
		return "", false
	}
	v := q.items[0]
	q.items = q.items[1:]
	if q.members[v] <= 1 {
		delete(q.members, v)
	} else {
		q.members[v]--
	}

	return v, true
}

// Contains reports whether v is currently pending.
func (q *Queue) Contains(v string) bool { return q.members[v] > 0 }

// Len returns the number of pending vertices.
func (q *Queue) Len() int { return len(q.items) }
