package anim

// Animation is one piece of per-frame state. Step advances it by one frame and
// reports whether it has finished.
type Animation interface {
	Step() bool
}

type entry struct {
	key       string
	anim      Animation
	cancelled bool
}

// Driver advances every active animation once per frame. It is not safe for
// concurrent use; the game runs on a single goroutine.
type Driver struct {
	active []*entry
	keyed  map[string]*entry
	frames int
}

// NewDriver returns an idle driver.
func NewDriver() *Driver {
	return &Driver{keyed: make(map[string]*entry)}
}

// Start schedules a to run from the next frame on.
func (d *Driver) Start(a Animation) {
	d.active = append(d.active, &entry{anim: a})
}

// StartKeyed schedules a and cancels any animation previously started under
// the same key.
func (d *Driver) StartKeyed(key string, a Animation) {
	if prev, ok := d.keyed[key]; ok {
		prev.cancelled = true
	}
	e := &entry{key: key, anim: a}
	d.keyed[key] = e
	d.active = append(d.active, e)
}

// Tick advances every animation that was active when the frame began.
// Animations started during the tick first step on the next one. It returns the
// number of animations still running.
func (d *Driver) Tick() int {
	d.frames++
	current := d.active
	d.active = nil

	kept := make([]*entry, 0, len(current))
	for _, e := range current {
		if e.cancelled {
			continue
		}
		if e.anim.Step() {
			d.release(e)
			continue
		}
		kept = append(kept, e)
	}

	d.active = append(kept, d.active...)
	return d.Active()
}

// Active returns the number of running animations.
func (d *Driver) Active() int {
	n := 0
	for _, e := range d.active {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Idle reports whether no animation is running.
func (d *Driver) Idle() bool {
	return d.Active() == 0
}

// Frames returns how many ticks the driver has run.
func (d *Driver) Frames() int {
	return d.frames
}

// Run ticks until the driver is idle or maxFrames have passed, and returns the
// number of frames it ran.
func (d *Driver) Run(maxFrames int) int {
	n := 0
	for n < maxFrames && !d.Idle() {
		d.Tick()
		n++
	}
	return n
}

// Stop drops every animation without finishing it.
func (d *Driver) Stop() {
	d.active = nil
	d.keyed = make(map[string]*entry)
}

func (d *Driver) release(e *entry) {
	if e.key != "" && d.keyed[e.key] == e {
		delete(d.keyed, e.key)
	}
}
