package vec3

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-highway/vector3/hwy"
)

// backendID names the backend an Inserter writes to. Inserters keep the id
// rather than a Backend so that nothing they hold points at the heap.
type backendID uint8

const (
	unbound backendID = iota
	scalar32ID
	scalar64ID
	narrowID
	wideID
)

var backendNames = [...]string{
	unbound:    "unbound",
	scalar32ID: "scalar32",
	scalar64ID: "scalar64",
	narrowID:   "narrow",
	wideID:     "wide",
}

func (id backendID) String() string {
	if int(id) < len(backendNames) {
		return backendNames[id]
	}
	return "unknown"
}

// maxRecorded bounds the misuse an Inserter keeps in detail; later misuse is
// only counted.
const maxRecorded = 4

type misuse[T hwy.Floats] struct {
	value    T
	notArmed bool
}

func (m misuse[T]) err() error {
	sentinel := ErrTooManyValues
	if m.notArmed {
		sentinel = ErrNotArmed
	}
	return fmt.Errorf("vec3: insert %v: %w", m.value, sentinel)
}

// Inserter fills a vector one component at a time.
//
// Inserter is a small value: Then returns the advanced chain and the vector's
// own storage is written directly, so a chain allocates nothing unless it is
// misused. An Inserter obtained from Insert is armed: its first Then writes y
// and its second writes z. One obtained from Inserter, or the zero value, is
// inert. Use the result of each Then; a discarded result does not advance
// the copy it was called on.
type Inserter[T hwy.Floats] struct {
	dst     [3]*T
	backend backendID
	next    int // next component to write; 0 means not armed

	recorded [maxRecorded]misuse[T]
	misuses  int

	logger *slog.Logger
}

func newInserter[T hwy.Floats](backend backendID, x, y, z *T) Inserter[T] {
	return Inserter[T]{dst: [3]*T{x, y, z}, backend: backend}
}

// arm writes x into component 0 and prepares the chain for y.
func (in Inserter[T]) arm(x T) Inserter[T] {
	*in.dst[0] = x
	in.next = 1
	return in
}

// WithLogger sets the logger that receives misuse diagnostics. A nil logger
// restores the package logger.
func (in Inserter[T]) WithLogger(l *slog.Logger) Inserter[T] {
	in.logger = l
	return in
}

// Then writes the next component. On misuse the vector is left unchanged and
// the error is recorded for Done.
func (in Inserter[T]) Then(x T) Inserter[T] {
	switch {
	case in.next == 0 || in.dst[0] == nil:
		in.report(x, true)
	case in.next <= 2:
		*in.dst[in.next] = x
		in.next++
	default:
		in.report(x, false)
	}
	return in
}

func (in *Inserter[T]) report(x T, notArmed bool) {
	m := misuse[T]{value: x, notArmed: notArmed}
	logMisuse(in.logger, in.backend, m)
	if in.misuses < maxRecorded {
		in.recorded[in.misuses] = m
	}
	in.misuses++
}

func logMisuse[T hwy.Floats](l *slog.Logger, backend backendID, m misuse[T]) {
	if l == nil {
		l = Logger()
	}
	l.Error("chained insertion misuse",
		"backend", backend.String(),
		"value", m.value,
		"err", m.err())
}

// Err returns the misuse recorded so far, or nil.
func (in Inserter[T]) Err() error {
	if in.misuses == 0 {
		return nil
	}
	errs := make([]error, 0, maxRecorded+1)
	for _, m := range in.recorded[:min(in.misuses, maxRecorded)] {
		errs = append(errs, m.err())
	}
	if extra := in.misuses - maxRecorded; extra > 0 {
		errs = append(errs, fmt.Errorf("vec3: %d more insertion misuses", extra))
	}
	return errors.Join(errs...)
}

// Done ends the chain and returns the misuse it recorded, or nil. The vector
// keeps no chain state, so nothing is left armed; a new chain starts with
// Insert.
func (in Inserter[T]) Done() error {
	return in.Err()
}
