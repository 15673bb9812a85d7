// Package ingest normalizes raw user input (PDF bytes, base64 images)
// into material the generation pipeline can work with. Inputs that
// cannot be normalized fail fast with ErrUnreadableInput; nothing in
// this package retries.
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MinTextLength is the minimum amount of extracted text considered
// usable. Scanned PDFs without a text layer typically extract to a few
// stray characters; generating questions from those produces garbage.
const MinTextLength = 100

// PDFText extracts the plain text of every page. Pages are separated by
// a marker so downstream prompts can reference page numbers.
func PDFText(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", &ErrUnreadableInput{Reason: "empty PDF upload"}
	}

	// The parser panics on some malformed documents instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ErrUnreadableInput{Reason: fmt.Sprintf("PDF parser failed: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ErrUnreadableInput{Reason: "could not open PDF", Err: err}
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page does not sink the document.
			continue
		}
		fmt.Fprintf(&b, "--- Page %d ---\n%s\n", i, strings.TrimSpace(text))
	}

	extracted := strings.TrimSpace(b.String())
	if len(extracted) < MinTextLength {
		return "", &ErrUnreadableInput{
			Reason: fmt.Sprintf("PDF yielded only %d characters of text; it may be scanned or image-only", len(extracted)),
		}
	}
	return extracted, nil
}
