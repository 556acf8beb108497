package combinator

// Diagnostics records the furthest position at which a leaf parser failed
// and the names of the leaves attempted there. One Diagnostics belongs to
// one parse; it is not safe for concurrent use.
type Diagnostics struct {
	furthest Position
	offset   int
	names    []string
	seen     map[string]bool
	touched  bool
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]bool)}
}

// Reset forgets everything recorded so far.
func (d *Diagnostics) Reset() {
	d.furthest = Position{}
	d.offset = 0
	d.names = nil
	d.seen = make(map[string]bool)
	d.touched = false
}

// Fail records that the leaf called name did not match at c.
func (d *Diagnostics) Fail(c Cursor, name string) {
	if d == nil || name == "" {
		return
	}
	pos := c.Position()
	switch {
	case !d.touched || d.furthest.Before(pos):
		d.furthest = pos
		d.offset = c.Offset()
		d.names = []string{name}
		d.seen = map[string]bool{name: true}
		d.touched = true
	case d.furthest == pos:
		if !d.seen[name] {
			d.seen[name] = true
			d.names = append(d.names, name)
		}
	}
}

// Furthest returns the deepest failure position and whether any failure
// was recorded.
func (d *Diagnostics) Furthest() (Position, bool) {
	return d.furthest, d.touched
}

// FurthestOffset is the input byte offset of the furthest failure.
func (d *Diagnostics) FurthestOffset() int {
	return d.offset
}

// Expected returns the leaf names attempted at the furthest position, in
// the order they were first tried.
func (d *Diagnostics) Expected() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Attempted reports whether name was tried at the furthest position.
func (d *Diagnostics) Attempted(name string) bool {
	return d.seen[name]
}
