package tlv

// frame represents the decoding state of a sequence of sibling records.
type frame struct {
	// node is the constructed record whose value is being decoded. node is nil
	// for the top-level sequence.
	node *Node

	data   []byte  // the sequence of records
	start  int     // offset of data within the input
	offset int     // offset of the next record within data
	nodes  []*Node // records decoded so far
}

// done indicates whether all records of f have been decoded.
func (f *frame) done() bool {
	return f.offset == len(f.data)
}

// state maintains the state of the tree builder. The state consists of a stack
// of constructed records whose values are currently being decoded. At the
// bottom of the stack there is a virtual frame representing the input.
//
// Note that only the topmost frame is updated during decoding. Children are
// attached to their parent node when the frame is popped.
type state struct {
	stack []frame
	curr  frame // top entry of the stack
}

// reset clears the state to a single root frame over data. The allocated stack
// space is reused.
func (s *state) reset(data []byte) {
	if s.stack == nil {
		s.stack = make([]frame, 0, 8)
	}
	s.stack = s.stack[:0]
	s.curr = frame{data: data}
}

// root indicates whether s is currently at the top level.
func (s *state) root() bool {
	return len(s.stack) == 0
}

// depth returns the number of constructed records enclosing the current
// frame.
func (s *state) depth() int {
	return len(s.stack)
}

// offset returns the input offset of the next record of the current frame.
func (s *state) offset() int {
	return s.curr.start + s.curr.offset
}

// push starts decoding the value of n, which begins at input offset start.
func (s *state) push(n *Node, start int) {
	s.stack = append(s.stack, s.curr)
	s.curr = frame{node: n, data: n.Value, start: start}
}

// pop finishes the current frame, attaching its records to its node.
func (s *state) pop() {
	s.curr.node.Children = s.curr.nodes
	s.curr = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// syntaxError wraps err with the location of the next record.
func (s *state) syntaxError(err error) *SyntaxError {
	e := &SyntaxError{Err: err, ByteOffset: s.offset()}
	if s.curr.node != nil {
		e.Tag = s.curr.node.Tag
	}
	return e
}
