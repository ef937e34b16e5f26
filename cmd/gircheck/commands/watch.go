package commands

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/teranos/gircheck/errors"
	"github.com/teranos/gircheck/logger"
	"github.com/teranos/gircheck/watch"
)

var (
	watchDebounce time.Duration
	watchServe    string
)

// EventsPath is where watch --serve accepts websocket subscribers.
const EventsPath = "/events"

// WatchCmd regenerates whenever an input changes
var WatchCmd = &cobra.Command{
	Use:   "watch [file.gir ...]",
	Short: "Regenerate when GIR inputs or exclusion lists change",
	Long: `Run one generation, then watch the GIR inputs, the file list and the
exclusion lists. Every change triggers a new run after a short debounce.

With --serve, every regeneration is pushed as a JSON event to websocket
clients connected to ws://<addr>/events.

Stop with Ctrl-C.

Examples:
  gircheck watch --typeinfo -o build/ Gtk-4.0.gir
  gircheck watch --typeinfo -o build/ --serve localhost:8787 Gtk-4.0.gir`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before regenerating")
	WatchCmd.Flags().StringVar(&watchServe, "serve", "", "Address to push regeneration events to websocket clients (e.g. localhost:8787)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	plan, err := BuildPlan(Flags, Config(), args, cwd)
	if err != nil {
		return err
	}
	if plan.Merge != nil {
		return errors.Wrap(errors.ErrInvalidArgument, "watch does not support --mergeinfo")
	}

	out := cmd.OutOrStdout()
	if _, err := Execute(cmd.Context(), plan, out); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Named("watch")
	hub := watch.NewHub(log.Named("hub"))
	defer hub.Close()
	if watchServe != "" {
		addr, err := serveEvents(ctx, watchServe, hub)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Pushing events to ws://%s%s\n", addr, EventsPath)
	}

	regenerate := func(ctx context.Context, changed []string) error {
		log.Infow("inputs changed", logger.FieldCount, len(changed))
		report, err := rerun(ctx, args, cwd, out)
		hub.Broadcast(regenerationEvent(report, changed, err))
		return err
	}

	w, err := watch.New(watchedFiles(plan), regenerate,
		watch.WithDebounce(watchDebounce),
		watch.WithLogger(log))
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(out, "Watching %d files, press Ctrl-C to stop\n", len(plan.Generate.Files))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// rerun rebuilds the plan so edits to the list files take effect, then
// executes it.
func rerun(ctx context.Context, args []string, cwd string, out io.Writer) (*Report, error) {
	plan, err := BuildPlan(Flags, Config(), args, cwd)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, plan, out)
}

// regenerationEvent describes the outcome of one rerun.
func regenerationEvent(report *Report, changed []string, err error) watch.Event {
	e := watch.Event{Type: watch.EventRegenerated, Changed: changed}
	if report != nil {
		e.RunID = report.RunID
		e.Written = report.Written
	}
	if err != nil {
		e.Type = watch.EventFailed
		e.Error = err.Error()
	}
	return e
}

// serveEvents starts an HTTP server exposing hub at EventsPath and returns
// the bound address. The server shuts down when ctx is done.
func serveEvents(ctx context.Context, addr string, hub *watch.Hub) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to listen on %s", addr)
	}

	mux := http.NewServeMux()
	mux.Handle(EventsPath, hub)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Named("watch").Errorw("event server stopped", logger.FieldError, err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	return ln.Addr(), nil
}

// watchedFiles lists the inputs plus every configured list file.
func watchedFiles(plan *Plan) []string {
	files := append([]string(nil), plan.Generate.Files...)
	cfg := Config()
	for _, p := range []string{
		firstNonEmpty(Flags.Filelist, cfg.Generate.Filelist),
		firstNonEmpty(Flags.ExcludeGTypes, cfg.Exclude.GTypes),
		firstNonEmpty(Flags.ExcludeHeaders, cfg.Exclude.Headers),
		firstNonEmpty(Flags.ExcludeRegistered, cfg.Exclude.Registered),
		firstNonEmpty(Flags.ExcludeManifest, cfg.Exclude.Manifest),
	} {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}
