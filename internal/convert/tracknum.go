package convert

// trackCounter allocates the running first-track number across the discs of
// one sheet, so multi-disc sheets are numbered continuously instead of
// restarting at 1 per disc. Scope is a single sheet conversion.
type trackCounter struct {
	next int
}

func newTrackCounter() *trackCounter {
	return &trackCounter{next: 1}
}

// First returns the number the next disc's first track receives.
func (c *trackCounter) First() int {
	return c.next
}

// Advance consumes n track numbers. It is called per disc whether or not
// the disc converted, keeping numbering stable across partial failures.
func (c *trackCounter) Advance(n int) {
	c.next += n
}
