package splitter

// ProgressFunc receives aggregate progress updates: seconds of planned output
// completed so far, against the run's total planned seconds.
type ProgressFunc func(elapsedSeconds, totalSeconds float64)

// aggregate folds per-chapter ffmpeg progress into one monotonic counter.
//
// While a chapter runs, its reported offset is clamped to the chapter's
// planned duration so a process reporting slightly past its boundary cannot
// push the aggregate ahead. When a chapter finishes, successfully or not,
// the baseline advances by the full planned duration so the counter reaches
// the total at run completion.
type aggregate struct {
	baseline float64
	current  float64
	total    float64
	notify   ProgressFunc
}

func newAggregate(total float64, notify ProgressFunc) *aggregate {
	return &aggregate{total: total, notify: notify}
}

func (a *aggregate) observe(offsetSeconds, plannedSeconds float64) {
	if offsetSeconds < 0 {
		offsetSeconds = 0
	}
	if plannedSeconds > 0 && offsetSeconds > plannedSeconds {
		offsetSeconds = plannedSeconds
	}
	value := a.baseline + offsetSeconds
	if value < a.current {
		return
	}
	a.current = value
	a.publish()
}

func (a *aggregate) advance(plannedSeconds float64) {
	if plannedSeconds < 0 {
		plannedSeconds = 0
	}
	a.baseline += plannedSeconds
	if a.baseline > a.current {
		a.current = a.baseline
	}
	a.publish()
}

func (a *aggregate) publish() {
	if a.notify != nil {
		a.notify(a.current, a.total)
	}
}
