package bst

// stack and queue are the work lists used by the iterative traversals, so that
// walking a degenerate (list-shaped) tree does not grow the goroutine stack.

type stack[T any] struct {
	elements []T
}

func newStack[T any]() *stack[T] {
	return &stack[T]{
		elements: []T{},
	}
}

func (s *stack[T]) push(x T) {
	s.elements = append(s.elements, x)
}

// pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *stack[T]) pop() (T, bool) {
	if len(s.elements) == 0 {
		var zero T
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

func (s *stack[T]) len() int {
	return len(s.elements)
}

// queue is a FIFO built from two stacks: pushes go to back, and front is
// refilled from back (reversing it) only when it runs dry.
type queue[T any] struct {
	back  *stack[T]
	front *stack[T]
}

func newQueue[T any]() queue[T] {
	return queue[T]{
		back:  newStack[T](),
		front: newStack[T](),
	}
}

func (q queue[T]) push(x T) {
	q.back.push(x)
}

func (q queue[T]) emptyBack() {
	for {
		x, ok := q.back.pop()
		if ok {
			q.front.push(x)
		} else {
			break
		}
	}
}

func (q queue[T]) pop() (T, bool) {
	x, ok := q.front.pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	x, ok2 := q.front.pop()
	return x, ok2
}

func (q queue[T]) len() int {
	return q.back.len() + q.front.len()
}
