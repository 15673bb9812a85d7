package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekocak/quizforge/internal/blob"
	"github.com/ekocak/quizforge/internal/llm"
	"github.com/ekocak/quizforge/internal/service"
	"github.com/ekocak/quizforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "AI exam question generator",
	Long:  "QuizForge generates validated exam questions from PDFs and question images using LLMs.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZFORGE_DB env var)")

	rootCmd.AddCommand(pdfCmd)
	rootCmd.AddCommand(cloneCmd)
	rootCmd.AddCommand(refineCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for a command invocation.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// buildService wires the full generation stack for a command. The
// caller owns closing the returned store.
func buildService(cmd *cobra.Command) (*service.Service, *store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	uploadDir := os.Getenv("QUIZFORGE_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/questions"
	}
	baseURL := os.Getenv("QUIZFORGE_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000/uploads/questions"
	}
	blobs := blob.NewFSStore(uploadDir, baseURL)

	svc := service.New(provider, st.SessionRepo(), blobs, 0)
	return svc, st, nil
}
