package rename

// Counters holds the monotonically increasing counters used by the
// counter transform and the {counter} template variable. The two values
// advance independently. Each pipeline owns its own Counters, so
// numbering restarts with every new pipeline.
type Counters struct {
	transform int
	template  int
}

// NextTransform increments and returns the custom-transform counter.
func (c *Counters) NextTransform() int {
	c.transform++
	return c.transform
}

// NextTemplate increments and returns the template counter.
func (c *Counters) NextTemplate() int {
	c.template++
	return c.template
}
