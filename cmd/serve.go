package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wellbotdev/wellbot/internal/config"
	"github.com/wellbotdev/wellbot/internal/db"
	"github.com/wellbotdev/wellbot/internal/dialogue"
	"github.com/wellbotdev/wellbot/internal/history"
	"github.com/wellbotdev/wellbot/internal/kb"
	"github.com/wellbotdev/wellbot/internal/server"
	"github.com/wellbotdev/wellbot/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the WellBot HTTP server",
	Long:  `Starts the WellBot server with the REST chat API, WebSocket chat channel, user accounts, feedback and admin analytics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		// Load the knowledge base. An unreadable file degrades to an
		// empty bot rather than a failed start.
		snap, err := kb.Load(cfg.KnowledgeBase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load knowledge base from %s: %v\n", cfg.KnowledgeBase, err)
			fmt.Fprintf(os.Stderr, "The bot will run without diagnosis data. Run `wellbot kb add` to create entries.\n")
			snap = kb.NewSnapshot(nil)
		}

		// Open database.
		dbPath := filepath.Join(cfg.DataDir, "wellbot.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		sessions := session.NewStore(session.NewFileStore(cfg.Sessions))
		manager := dialogue.NewManager(snap, sessions,
			dialogue.WithRecorder(history.NewStore(database)),
			dialogue.WithThreshold(cfg.DiagnosisOverlap),
			dialogue.WithTopN(cfg.MaxConditions),
		)

		srv := server.New(cfg, database, manager)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "wellbot v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Knowledge base: %s (%d entries)\n", cfg.KnowledgeBase, snap.Len())
		fmt.Fprintf(os.Stderr, "  Sessions: %s\n", cfg.Sessions)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
