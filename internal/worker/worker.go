// Package worker runs a solver on its own goroutine and exposes it
// through a command queue and a status queue, matching the original
// ThreadedWFCSolver's command/status split: callers never touch the
// solver directly, they post onto Commands and read the latest
// snapshot off Status.
package worker

import (
	"log"
	"time"

	"github.com/crossplay/wfc/pkg/wfc"
)

// Command is a unit of work posted onto a Worker's queue. Commands run
// sequentially on the worker's own goroutine, so none of them need to
// take a lock on the solver.
type Command struct {
	Kind CommandKind
	Args CommandArgs
}

// CommandKind enumerates the verbs a Worker accepts.
type CommandKind int

const (
	CmdSetLetter CommandKind = iota
	CmdSetMask
	CmdResetCell
	CmdReset
	CmdUpdateOptions
	CmdSolve
	CmdStop
	CmdUpdateStatus
)

// CommandArgs bundles the optional payload for each CommandKind; only
// the fields relevant to Kind are read.
type CommandArgs struct {
	Coord  wfc.Coord
	Letter rune
	Mask   bool
}

// Status is a published snapshot of the worker's current crossword,
// tagged with the outcome of the most recent Solve (Running while a
// solve is not in progress or mid-flight).
type Status struct {
	Snapshot wfc.GridSnapshot
	Outcome  wfc.Outcome
}

// Worker owns a solver and runs it on a dedicated goroutine, consuming
// Commands and publishing Status. The zero value is not usable; use
// New.
type Worker struct {
	solver   *wfc.Solver
	Commands chan Command
	Status   chan Status

	stopRequested bool
}

// New creates a worker around solver. The caller must call Run in its
// own goroutine to start processing commands.
func New(solver *wfc.Solver) *Worker {
	return &Worker{
		solver:   solver,
		Commands: make(chan Command, 16),
		Status:   make(chan Status, 1),
	}
}

// idlePoll is how long Run blocks waiting for a command before it
// checks for nothing in particular and loops again — matching the
// original solver thread's 100ms command-queue timeout.
const idlePoll = 100 * time.Millisecond

// Run processes commands until Commands is closed. It is meant to be
// launched with `go w.Run()`; the caller drives the worker entirely
// through Commands and observes it entirely through Status.
func (w *Worker) Run() {
	w.publishStatus(wfc.Running)
	for {
		select {
		case cmd, ok := <-w.Commands:
			if !ok {
				return
			}
			w.handle(cmd)
		case <-time.After(idlePoll):
			// Nothing queued; loop so a closed Commands channel is
			// noticed promptly even under no traffic.
		}
	}
}

func (w *Worker) handle(cmd Command) {
	switch cmd.Kind {
	case CmdSetLetter:
		w.solver.Current().Grid.Get(cmd.Args.Coord).SetLetter(cmd.Args.Letter)
		w.publishStatus(wfc.Running)
	case CmdSetMask:
		w.solver.Current().Grid.Get(cmd.Args.Coord).Mask = cmd.Args.Mask
		w.publishStatus(wfc.Running)
	case CmdResetCell:
		w.solver.Current().Grid.Get(cmd.Args.Coord).Reset()
		w.publishStatus(wfc.Running)
	case CmdReset:
		w.solver.Reset(nil)
		w.publishStatus(wfc.Running)
	case CmdUpdateOptions:
		w.solver.Current().UpdateOptions()
		w.publishStatus(wfc.Running)
	case CmdSolve:
		w.stopRequested = false
		outcome := w.solver.Solve(func() bool { return w.drainStop() })
		w.publishStatus(outcome)
	case CmdStop:
		w.stopRequested = true
	case CmdUpdateStatus:
		w.publishStatus(wfc.Running)
	default:
		log.Printf("worker: unknown command kind %v", cmd.Kind)
	}
}

// drainStop is the solver's StopFunc while a Solve command is
// in-flight: it polls Commands non-blockingly so a queued Stop (or any
// command at all, mirroring the original's "any command interrupts")
// is noticed between iterations without the caller needing a second
// channel.
func (w *Worker) drainStop() bool {
	if w.stopRequested {
		return true
	}
	select {
	case cmd := <-w.Commands:
		if cmd.Kind == CmdStop {
			w.stopRequested = true
			return true
		}
		// Any other queued command while solving is deferred: put it
		// back by handling it immediately is unsafe mid-solve, so it
		// is dropped with a log, matching the original's "can't stop,
		// won't stop" refusal of non-stop commands during a solve.
		log.Printf("worker: command %v ignored while solving", cmd.Kind)
		return false
	default:
		return false
	}
}

// publishStatus drains any stale status before posting the current
// one, so Status always holds at most one value: the latest.
func (w *Worker) publishStatus(outcome wfc.Outcome) {
	select {
	case <-w.Status:
	default:
	}
	w.Status <- Status{Snapshot: w.solver.Current().Snapshot(), Outcome: outcome}
}
