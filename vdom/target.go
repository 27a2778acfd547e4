package vdom

// Target receives rendered frames. The first frame is passed to Mount and
// every later frame to Patch together with the frame it replaces.
type Target interface {
	Mount(n *VNode) error
	Patch(prev, next *VNode) error
}

// Recorder is a Target that keeps the latest frame in memory. Terminal and
// batch front-ends read Last instead of drawing to a DOM.
type Recorder struct {
	Last   *VNode
	Frames int
}

func (r *Recorder) Mount(n *VNode) error {
	r.Last = n
	r.Frames++
	return nil
}

func (r *Recorder) Patch(_, next *VNode) error {
	return r.Mount(next)
}
