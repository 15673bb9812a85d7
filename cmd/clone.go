package cmd

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ekocak/quizforge/internal/service"
)

var cloneCmd = &cobra.Command{
	Use:   "clone <image>",
	Short: "Generate new questions in the style of a question image",
	Long: `Clone extracts the exam question from an image (PNG, JPEG or WebP),
stores the image, and generates new questions of the same style and
difficulty. Extraction and generation are separate model calls.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		language, _ := cmd.Flags().GetString("language")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		svc, st, err := buildService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess, err := svc.Generate(cmd.Context(), service.Request{
			Kind:           service.KindClone,
			ImageBase64:    base64.StdEncoding.EncodeToString(data),
			Count:          count,
			TargetLanguage: language,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Source image stored at %s\n\n", sess.ImageRef)
		printSession(sess)
		return nil
	},
}

func init() {
	cloneCmd.Flags().IntP("count", "n", service.DefaultCloneCount, "Number of questions to generate")
	cloneCmd.Flags().StringP("language", "l", "", "Force the output language (default: language of the image)")
}
