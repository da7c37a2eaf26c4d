package nfsengine

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnfsd/vnfsd/internal/nfsengine/xdr"
)

// Router is the Dispatch Router of spec §4.4: it validates program/version/
// procedure and routes to the fixed Handler Table, or rejects the call at
// the accept_stat layer without ever invoking a handler.
type Router struct {
	dispatcher Dispatcher
	logger     log.Logger
	config     Config

	callsTotal  *prometheus.CounterVec
	statusTotal *prometheus.CounterVec
}

// NewRouter builds a Router over dispatcher. logger may be log.NewNopLogger()
// if the caller doesn't want trace output.
func NewRouter(dispatcher Dispatcher, logger log.Logger, config Config) *Router {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Router{
		dispatcher: dispatcher,
		logger:     logger,
		config:     config,
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nfs_procedure_calls_total",
			Help: "Number of NFSv3 procedure invocations, by procedure name.",
		}, []string{"procedure"}),
		statusTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nfs_procedure_status_total",
			Help: "Number of NFSv3 procedure replies, by procedure name and nfsstat3 code.",
		}, []string{"procedure", "status"}),
	}
}

// Collectors returns the Router's Prometheus collectors so an embedder can
// register them with its own registry. Registration and scraping are an
// external collaborator's job per spec §1; this engine only produces the
// collectors.
func (rt *Router) Collectors() []prometheus.Collector {
	return []prometheus.Collector{rt.callsTotal, rt.statusTotal}
}

// DispatchRPC implements spec §4.4's dispatchRpc operation. It writes
// exactly one reply into reply: an accept_stat, and (on SUCCESS or
// PROG_MISMATCH) a trailer or result body. xid is accepted for logging
// symmetry with the transport layer and is not otherwise inspected, per
// spec's explicit statement that the router does not correlate by xid.
func (rt *Router) DispatchRPC(
	ctx context.Context,
	xid uint32,
	prog uint32,
	progVer uint32,
	proc uint32,
	args *xdr.Reader,
	reply *xdr.Writer,
) {
	if prog != NFSProgramNumber {
		level.Debug(rt.logger).Log("xid", xid, "msg", "PROG_UNAVAIL", "prog", prog)
		reply.Uint32(AcceptProgUnavail)
		return
	}

	if progVer != NFSVersion3 {
		level.Debug(rt.logger).Log("xid", xid, "msg", "PROG_MISMATCH", "progVer", progVer)
		reply.Uint32(AcceptProgMismatch)
		_ = xdr.EncodeMismatchInfo(reply, xdr.MismatchInfo{Low: NFSVersion3, High: NFSVersion3})
		return
	}

	if proc >= procTableSize {
		level.Warn(rt.logger).Log("xid", xid, "msg", "Invalid procedure", "proc", proc)
		reply.Uint32(AcceptProcUnavail)
		return
	}

	entry := handlerTable[proc]
	rt.callsTotal.WithLabelValues(entry.Name).Inc()
	level.Debug(rt.logger).Log("xid", xid, "procedure", entry.Name)

	handlerCtx := withConfig(withLogger(ctx, rt.logger), rt.config)
	status := entry.Handler(handlerCtx, rt.dispatcher, args, reply)
	if status != noNFSStatus {
		rt.statusTotal.WithLabelValues(entry.Name, statusName(status)).Inc()
	}
}
