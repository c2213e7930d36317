// Package organizer runs the line-oriented command session that books,
// cancels and lists events.
//
// Commands, one per line, whitespace separated:
//
//	A <m/d/yyyy> <slot> <location> <department> <email> <minutes>
//	R <m/d/yyyy> <slot> <location>
//	P | PE | PC | PD | PI
//	Q
package organizer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"evtsched/internal/clock"
	"evtsched/internal/ics"
	appLog "evtsched/internal/log"
	"evtsched/internal/store"
)

const (
	DefaultMinDuration = 30
	DefaultMaxDuration = 120
)

// State is where a session is in its lifecycle. Running is the only state
// that accepts commands; Stopped is terminal.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the per-run interpreter state handed to Execute.
type Session struct {
	State State
	// Lines counts the input lines processed so far.
	Lines int
}

// NewSession returns a session ready to accept commands.
func NewSession() *Session {
	return &Session{State: Running}
}

// Organizer validates commands and applies them to an EventStore.
type Organizer struct {
	store *store.EventStore
	clock clock.Clock
	out   io.Writer

	loc         *time.Location
	minDuration int
	maxDuration int
	icsProdID   string
	newUID      func() string
}

type Option func(*Organizer)

// WithDurationRange overrides the inclusive event length bounds in minutes.
func WithDurationRange(lo, hi int) Option {
	return func(o *Organizer) {
		if lo > 0 && hi >= lo {
			o.minDuration = lo
			o.maxDuration = hi
		}
	}
}

// WithLocation sets the zone exported slot times are written in.
func WithLocation(loc *time.Location) Option {
	return func(o *Organizer) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithICSProdID sets the PRODID used by the PI command.
func WithICSProdID(id string) Option {
	return func(o *Organizer) {
		if id != "" {
			o.icsProdID = id
		}
	}
}

// WithUIDGenerator replaces the random UID source for new bookings.
func WithUIDGenerator(fn func() string) Option {
	return func(o *Organizer) {
		if fn != nil {
			o.newUID = fn
		}
	}
}

func New(st *store.EventStore, clk clock.Clock, out io.Writer, opts ...Option) *Organizer {
	o := &Organizer{
		store:       st,
		clock:       clk,
		out:         out,
		loc:         time.Local,
		minDuration: DefaultMinDuration,
		maxDuration: DefaultMaxDuration,
		icsProdID:   ics.DefaultProdID,
		newUID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run reads commands from in until Q, end of input, or ctx is done.
// Commands are executed one at a time on the calling goroutine; a helper
// goroutine only reads lines.
func (o *Organizer) Run(ctx context.Context, in io.Reader) error {
	o.println("Event Organizer running...")
	defer o.println("Event Organizer terminated.")

	stop := make(chan struct{})
	defer close(stop)
	lines, errc := readLines(in, stop)

	sess := NewSession()
	for sess.State == Running {
		select {
		case <-ctx.Done():
			appLog.Info("session cancelled", "lines", sess.Lines)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					appLog.Error("reading commands failed", err, "lines", sess.Lines)
					return err
				}
				appLog.Info("end of input, stopping", "lines", sess.Lines)
				sess.State = Stopped
				continue
			}
			o.Execute(sess, line)
		}
	}
	return nil
}

// readLines delivers input one line at a time with the line terminator
// removed. Lines of any length are passed through; a final line without a
// newline is still delivered before end of input.
func readLines(in io.Reader, stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			line, err := r.ReadString('\n')
			if err == nil || line != "" {
				select {
				case lines <- strings.TrimRight(line, "\r\n"):
				case <-stop:
					errc <- nil
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				errc <- err
				return
			}
		}
	}()
	return lines, errc
}

// Execute runs a single command line against sess. Blank lines are ignored.
func (o *Organizer) Execute(sess *Session, line string) {
	if sess.State != Running {
		return
	}
	sess.Lines++

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	cmd, args := fields[0], fields[1:]
	appLog.Debug("command received", "line", sess.Lines, "command", cmd, "args", len(args))

	var err error
	switch cmd {
	case "Q":
		sess.State = Stopped
	case "A":
		o.handleAdd(args)
	case "R":
		o.handleRemove(args)
	case "P":
		err = o.store.Print(o.out)
	case "PE":
		err = o.store.PrintByDate(o.out)
	case "PC":
		err = o.store.PrintByCampus(o.out)
	case "PD":
		err = o.store.PrintByDepartment(o.out)
	case "PI":
		err = o.printICS()
	default:
		appLog.Debug("command rejected", "command", cmd, "err", ErrInvalidCommand)
		o.println(cmd + " is an invalid command!")
	}
	if err != nil {
		appLog.Error("writing output failed", err, "command", cmd)
	}
}

func (o *Organizer) handleAdd(args []string) {
	e, err := o.Add(args)
	switch {
	case errors.Is(err, ErrMissingArgs):
		o.println("Error parsing event details for add.")
	case err != nil:
		appLog.Debug("add rejected", "err", err)
		o.println(o.message(err))
	default:
		appLog.Debug("event added", "uid", e.UID, "date", e.Date, "slot", e.Slot.Key, "location", e.Location.Key)
		o.println("Event added to the calendar.")
	}
}

func (o *Organizer) handleRemove(args []string) {
	err := o.Remove(args)
	switch {
	case errors.Is(err, ErrMissingArgs):
		o.println("Error parsing event details for removal.")
	case err != nil:
		appLog.Debug("remove rejected", "err", err)
		o.println(o.message(err))
	default:
		o.println("Event has been removed from the calendar!")
	}
}

func (o *Organizer) printICS() error {
	if o.store.IsEmpty() {
		o.println("Event calendar is empty!")
		return nil
	}
	return ics.Render(o.out, o.store.Events(), ics.RenderConfig{
		ProdID:   o.icsProdID,
		Location: o.loc,
		Now:      o.clock.Now(),
	})
}

func (o *Organizer) println(s string) {
	if _, err := fmt.Fprintln(o.out, s); err != nil {
		appLog.Error("writing output failed", err)
	}
}
