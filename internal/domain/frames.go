package domain

// FrameStack holds the frames still to be visited.
//
// PushBlock places a group of sibling frames ahead of everything already
// queued, keeping the siblings in their original left-to-right order. Pop
// always takes the front frame. Together this gives a pre-order depth-first
// walk: a document's first child subtree is finished before its second child
// is visited.
type FrameStack struct {
	// Front of the queue is the end of the slice.
	frames []Frame
}

// NewFrameStack returns a stack containing the given frames in order
func NewFrameStack(frames ...Frame) *FrameStack {
	s := &FrameStack{}
	s.PushBlock(frames)
	return s
}

// PushBlock puts frames at the front, frames[0] first
func (s *FrameStack) PushBlock(frames []Frame) {
	for i := len(frames) - 1; i >= 0; i-- {
		s.frames = append(s.frames, frames[i])
	}
}

// Pop removes and returns the front frame
func (s *FrameStack) Pop() (Frame, bool) {
	n := len(s.frames)
	if n == 0 {
		return Frame{}, false
	}
	f := s.frames[n-1]
	s.frames[n-1] = Frame{}
	s.frames = s.frames[:n-1]
	return f, true
}

// Len returns the number of pending frames
func (s *FrameStack) Len() int {
	return len(s.frames)
}
