package lint

import "sync"

// AuditEvent carries the details of one audit notification.
// The typical sequence per run is:
//
//	AuditStarted
//	  (FileStarted
//	    (Violation | Error)*
//	  FileFinished)*
//	AuditFinished
type AuditEvent struct {
	// RunID identifies the audit run the event belongs to.
	RunID string
	// File is the source file the event concerns ("" for run-level events).
	File string
	// Violation is set for Violation events.
	Violation *Violation
	// Err carries the originating error for Error events.
	Err error
}

// AuditListener receives events from the audit driver. Implementations
// must tolerate being called from the dispatcher's lock; events for a
// single run arrive serialized.
type AuditListener interface {
	AuditStarted(evt AuditEvent)
	AuditFinished(evt AuditEvent)
	FileStarted(evt AuditEvent)
	FileFinished(evt AuditEvent)
	Violation(evt AuditEvent)
	Error(evt AuditEvent)
}

// Dispatcher fans audit events out to a set of listeners. Files may be
// audited in parallel, so the dispatcher serializes event delivery; all
// events for one file arrive contiguously because the driver dispatches
// a file's sequence under a single critical section per event.
type Dispatcher struct {
	mu        sync.Mutex
	listeners []AuditListener
}

// NewDispatcher creates a dispatcher for the given listeners.
func NewDispatcher(listeners ...AuditListener) *Dispatcher {
	return &Dispatcher{listeners: listeners}
}

// AddListener registers an additional listener. Not safe to call once
// events are being dispatched.
func (d *Dispatcher) AddListener(l AuditListener) {
	d.listeners = append(d.listeners, l)
}

func (d *Dispatcher) AuditStarted(evt AuditEvent) {
	d.each(func(l AuditListener) { l.AuditStarted(evt) })
}

func (d *Dispatcher) AuditFinished(evt AuditEvent) {
	d.each(func(l AuditListener) { l.AuditFinished(evt) })
}

func (d *Dispatcher) FileStarted(evt AuditEvent) {
	d.each(func(l AuditListener) { l.FileStarted(evt) })
}

func (d *Dispatcher) FileFinished(evt AuditEvent) {
	d.each(func(l AuditListener) { l.FileFinished(evt) })
}

func (d *Dispatcher) Violation(evt AuditEvent) {
	d.each(func(l AuditListener) { l.Violation(evt) })
}

func (d *Dispatcher) Error(evt AuditEvent) {
	d.each(func(l AuditListener) { l.Error(evt) })
}

func (d *Dispatcher) each(fire func(AuditListener)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, l := range d.listeners {
		fire(l)
	}
}

// Collector is an AuditListener that accumulates violations and errors
// per file, for reporters that render a whole run at once.
type Collector struct {
	mu    sync.Mutex
	files []string
	byFil map[string][]Violation
	errs  map[string]error
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		byFil: make(map[string][]Violation),
		errs:  make(map[string]error),
	}
}

func (c *Collector) AuditStarted(AuditEvent)  {}
func (c *Collector) AuditFinished(AuditEvent) {}

func (c *Collector) FileStarted(evt AuditEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = append(c.files, evt.File)
}

func (c *Collector) FileFinished(AuditEvent) {}

func (c *Collector) Violation(evt AuditEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if evt.Violation != nil {
		c.byFil[evt.File] = append(c.byFil[evt.File], *evt.Violation)
	}
}

func (c *Collector) Error(evt AuditEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs[evt.File] = evt.Err
}

// Files returns the audited file names in the order their audits started.
func (c *Collector) Files() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.files...)
}

// ViolationsFor returns the violations recorded for a file.
func (c *Collector) ViolationsFor(file string) []Violation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Violation(nil), c.byFil[file]...)
}

// ErrorFor returns the fatal error recorded for a file, or nil.
func (c *Collector) ErrorFor(file string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs[file]
}

// TotalViolations returns the number of violations across all files.
func (c *Collector) TotalViolations() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, vs := range c.byFil {
		n += len(vs)
	}
	return n
}

// ErrorCount returns the number of files that failed fatally.
func (c *Collector) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}
