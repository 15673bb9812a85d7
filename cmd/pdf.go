package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ekocak/quizforge/internal/service"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <file.pdf>",
	Short: "Generate exam questions from a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		qtype, _ := cmd.Flags().GetString("type")
		language, _ := cmd.Flags().GetString("language")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read PDF: %w", err)
		}

		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := svc.Generate(cmd.Context(), service.Request{
			Kind:           service.KindPDF,
			PDF:            data,
			PDFName:        filepath.Base(args[0]),
			Count:          count,
			QuestionType:   qtype,
			TargetLanguage: language,
		})
		if err != nil {
			return err
		}

		printSession(sess)
		return nil
	},
}

func init() {
	pdfCmd.Flags().IntP("count", "n", service.DefaultPDFCount, "Number of questions to generate")
	pdfCmd.Flags().StringP("type", "t", "mcq", "Question type: mcq or open_ended")
	pdfCmd.Flags().StringP("language", "l", "", "Force the output language (e.g. Turkish)")
}
