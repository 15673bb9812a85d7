package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ekocak/quizforge/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past generation sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sessions, err := st.SessionRepo().List(cmd.Context(), store.QueryOpts{
			Limit: limit,
			Kind:  kind,
		})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-5s  %-19s  %-10s  %s\n",
			"ID", "Kind", "Created", "Language", "Source")
		fmt.Println(strings.Repeat("─", 100))
		for _, s := range sessions {
			source := truncate(s.SourceSummary, 40)
			fmt.Printf("%-36s  %-5s  %-19s  %-10s  %s\n",
				s.ID,
				s.Kind,
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				s.TargetLanguage,
				source,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session with all its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := st.SessionRepo().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if sess == nil {
			return fmt.Errorf("session %s not found", id)
		}

		if sess.ImageRef != "" {
			fmt.Printf("Source image: %s\n", sess.ImageRef)
		}
		printSession(sess)
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid session ID %q: %w", args[0], err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SessionRepo().Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Printf("Deleted session %s\n", id)
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals for stored sessions and questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.SessionRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		fmt.Printf("Total sessions:      %d\n", stats.TotalSessions)
		fmt.Printf("Total questions:     %d\n", stats.TotalQuestions)
		fmt.Printf("Sessions (last 7d):  %d\n", stats.SessionsLast7Days)
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyListCmd.Flags().StringP("kind", "k", "", "Filter by kind: pdf or clone")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyStatsCmd)
}
