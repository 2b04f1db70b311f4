package cli

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mhuels/depscout/pkg/errors"
)

// serveCommand creates the serve command: a small HTTP endpoint that runs
// the same check pipeline and returns the JSON report. Useful for wiring
// depscout into dashboards without shelling out.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var dir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve update reports over HTTP",
		Long: `Serve update reports over HTTP.

GET /report returns the JSON report for the configured project directory.
A different directory may be requested per call with ?dir=<path>.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr, dir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8417", "listen address")
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory to report on")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr, dir string) error {
	r := chi.NewRouter()
	r.Use(c.requestLogger)
	r.Get("/report", c.reportHandler(dir))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-cmd.Context().Done()
		srv.Close()
	}()

	c.Logger.Infof("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// reportHandler runs the check pipeline for each request. The manifest
// errors that are fatal for the CLI map to 422 here; everything else is
// the usual degraded-but-complete report.
func (c *CLI) reportHandler(defaultDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		dir := defaultDir
		if q := req.URL.Query().Get("dir"); q != "" {
			dir = q
		}

		logger := loggerFromContext(req.Context())
		rep, err := buildReport(req.Context(), logger, dir, false, "")
		if err != nil {
			status := http.StatusInternalServerError
			switch errors.GetCode(err) {
			case errors.ErrCodeFileNotFound, errors.ErrCodeInvalidManifest, errors.ErrCodeInvalidConfig:
				status = http.StatusUnprocessableEntity
			}
			http.Error(w, errors.UserMessage(err), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := rep.WriteJSON(w); err != nil {
			logger.Errorf("write report: %v", err)
		}
	}
}

// requestLogger tags each request with an id and logs method, path,
// and duration.
func (c *CLI) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), c.Logger)))
		c.Logger.Debugf("%s %s id=%s (%s)", req.Method, req.URL.Path, id, time.Since(start).Round(time.Millisecond))
	})
}
