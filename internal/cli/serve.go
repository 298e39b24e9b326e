package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/gridsolver/internal/adapters/http"
	"svw.info/gridsolver/internal/config"
	"svw.info/gridsolver/internal/hint"
	"svw.info/gridsolver/internal/infrastructure/storage"
	"svw.info/gridsolver/internal/ports"
	"svw.info/gridsolver/internal/usecase"
	"svw.info/gridsolver/internal/validator"
)

// NewServeCommand creates the serve command running the HTTP API.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		addr        string
		solverKind  string
		storageKind string
		storagePath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if solverKind != "" {
				cfg.Solver = solverKind
			}
			if storageKind != "" {
				cfg.Storage.Kind = storageKind
			}
			if storagePath != "" {
				cfg.Storage.Path = storagePath
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&solverKind, "solver", "", "solver to use: backtrack|sat (overrides config)")
	cmd.Flags().StringVar(&storageKind, "storage", "", "storage backend: fs|sqlite (overrides config)")
	cmd.Flags().StringVar(&storagePath, "persist-path", "", "save directory or database file (overrides config)")

	return cmd
}

func runServe(cfg config.Config) error {
	logger := newLogger(cfg.LogLevel)

	var st ports.Storage
	switch cfg.Storage.Kind {
	case "sqlite":
		db, err := storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		st = db
	default:
		if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		st = storage.NewFS(cfg.Storage.Path)
	}

	// Wire providers -> use cases -> HTTP adapter
	uc := usecase.NewService(newSolver(cfg.Solver), validator.New(), hint.NewSingles(), st)
	h := httpadapter.New(uc)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpadapter.RequestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening",
		"addr", cfg.Addr,
		"solver", cfg.Solver,
		"storage", cfg.Storage.Kind,
		"path", cfg.Storage.Path,
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
