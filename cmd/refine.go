package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ekocak/quizforge/internal/service"
)

var refineCmd = &cobra.Command{
	Use:   "refine <question-id> <instruction...>",
	Short: "Edit a generated question with an instruction",
	Long: `Refine sends a stored question back to the model with an edit
instruction. Earlier refinements of the same question are replayed so
instructions can build on each other.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid question ID %q: %w", args[0], err)
		}

		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := svc.Refine(cmd.Context(), service.RefineRequest{
			QuestionID:  id,
			Instruction: strings.Join(args[1:], " "),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Changes: %s\n\n", res.ChangesMade)
		printQuestion(1, *res.Question)
		return nil
	},
}
