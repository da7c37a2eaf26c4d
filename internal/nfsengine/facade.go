package nfsengine

import (
	"context"
	"errors"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/oklog/run"
	"go.uber.org/atomic"
)

// ErrAlreadyStarted is returned by Start when called more than once on the
// same Facade.
var ErrAlreadyStarted = errors.New("nfsengine: facade already started")

// Serve is the shape of the transport loop a Facade drives. It must accept
// requests and call Router.DispatchRPC for each one until ctx is canceled,
// then return promptly. Building that loop (RPC record marking, TCP/UDP
// framing, portmapper registration) is a transport concern outside this
// engine, per spec §1; the Facade only owns when the loop starts and stops.
type Serve func(ctx context.Context, router *Router) error

// Facade is the Server Façade of spec §4.7: it owns a Router's lifecycle,
// not its dispatch logic. It never touches the wire itself.
type Facade struct {
	router *Router
	logger log.Logger
	serve  Serve

	started atomic.Bool
	stopped atomic.Bool
	inFlightRequests atomic.Int64

	group    run.Group
	cancel   context.CancelFunc
	doneOnce sync.Once
	done     chan struct{}
	runErr   error
}

// NewFacade builds a Facade around dispatcher and config, wiring an
// internal Router. serve is invoked once, from Start, to drive the actual
// transport loop.
func NewFacade(dispatcher Dispatcher, config Config, logger log.Logger, serve Serve) (*Facade, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Facade{
		router: NewRouter(dispatcher, logger, config),
		logger: logger,
		serve:  serve,
		done:   make(chan struct{}),
	}, nil
}

// Router exposes the Facade's Router so callers can register its
// Prometheus collectors before Start.
func (f *Facade) Router() *Router { return f.router }

// InFlight reports the number of requests currently reported as in
// progress via TrackRequest/EndRequest wrappers a transport can use to
// instrument its own loop. The engine itself never blocks on this counter.
func (f *Facade) InFlight() int64 { return f.inFlightRequests.Load() }

// TrackRequest and EndRequest let a Serve implementation report in-flight
// request counts to the Facade without either side needing shared locking.
func (f *Facade) TrackRequest() { f.inFlightRequests.Inc() }
func (f *Facade) EndRequest()   { f.inFlightRequests.Dec() }

// Start runs the Facade's Serve loop under an oklog/run.Group alongside a
// context-cancellation actor, so Stop's cancel reliably unblocks it. Start
// blocks until the group exits (Serve returns, or Stop is called) and
// returns the error of the first actor to exit, if any.
//
// Start does not wait for in-flight requests to drain before returning
// control to Stop's caller; a request mid-flight when Stop is called may be
// abandoned. See the design notes on why this engine doesn't attempt a
// graceful drain.
func (f *Facade) Start(ctx context.Context) error {
	if !f.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	f.group.Add(func() error {
		return f.serve(runCtx, f.router)
	}, func(error) {
		cancel()
	})

	f.group.Add(func() error {
		<-runCtx.Done()
		return nil
	}, func(error) {
		cancel()
	})

	level.Info(f.logger).Log("msg", "nfs facade starting")
	err := f.group.Run()
	f.runErr = err

	f.doneOnce.Do(func() { close(f.done) })
	return err
}

// Stop cancels the running Serve loop, if any, and waits for Start to
// return. Calling Stop before Start, or more than once, is safe.
func (f *Facade) Stop() error {
	if !f.started.Load() {
		return nil
	}
	if !f.stopped.CompareAndSwap(false, true) {
		<-f.done
		return f.runErr
	}
	f.cancel()
	<-f.done

	var result *multierror.Error
	if f.runErr != nil {
		result = multierror.Append(result, f.runErr)
	}
	level.Info(f.logger).Log("msg", "nfs facade stopped")
	return result.ErrorOrNil()
}

// Done returns a channel that closes once Start has returned, whether
// because Serve exited on its own or because Stop was called.
func (f *Facade) Done() <-chan struct{} { return f.done }
