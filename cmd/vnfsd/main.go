// Command vnfsd runs the NFSv3 procedure engine over an in-memory
// filesystem. It is a demonstration harness, not a mountable server: no
// actual RPC/TCP transport is wired up, per this engine's scope (spec §1
// treats the wire and rpcbind registration as external collaborators).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/vnfsd/vnfsd/internal/nfsengine"
	"github.com/vnfsd/vnfsd/internal/refdispatcher"
)

func main() {
	var caseSensitive bool

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.BoolVar(&caseSensitive, "case-sensitive", true, "report the export as case-sensitive in PATHCONF")

	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing flags: %s\n", err)
		os.Exit(1)
	}

	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	l = log.With(l, "ts", log.DefaultTimestamp, "caller", log.DefaultCaller)

	dispatcher, err := refdispatcher.New()
	if err != nil {
		level.Error(l).Log("msg", "failed to build reference dispatcher", "err", err)
		os.Exit(1)
	}

	cfg := nfsengine.Config{CaseSensitive: caseSensitive}

	facade, err := nfsengine.NewFacade(dispatcher, cfg, l, idleServe)
	if err != nil {
		level.Error(l).Log("msg", "failed to build facade", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level.Info(l).Log("msg", "vnfsd engine ready, exports root handle", "root", dispatcher.Root())
	if err := facade.Start(ctx); err != nil && ctx.Err() == nil {
		level.Error(l).Log("msg", "facade exited with error", "err", err)
		os.Exit(1)
	}
}

// idleServe is the demo's Serve implementation: it does nothing but wait
// for cancellation. A real deployment supplies its own transport loop that
// calls router.DispatchRPC per request.
func idleServe(ctx context.Context, _ *nfsengine.Router) error {
	<-ctx.Done()
	return nil
}
