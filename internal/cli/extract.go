package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"smartcarbon/internal/config"
	"smartcarbon/internal/domain"
	"smartcarbon/internal/extractor"
	"smartcarbon/internal/ocr"
	"smartcarbon/internal/ocr/tesseract"
)

// extractOutput is printed by the extract command.
type extractOutput struct {
	Category domain.Category        `json:"category"`
	Unit     string                 `json:"unit"`
	RawText  string                 `json:"raw_text,omitempty"`
	Fields   domain.ExtractedFields `json:"fields"`
}

func newExtractCmd() *cobra.Command {
	var (
		category string
		file     string
		today    string
		image    bool
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract amount, cost, and date from bill text",
		Long: `Runs the field extractor over OCR text read from --file or stdin.
With --image the input is a png or jpeg bill and is run through tesseract first.`,
		Example: `  carbonctl extract --category fuel --file receipt.txt
  cat bill.txt | carbonctl extract --category electricity --today 2024-06-01
  carbonctl extract --category water --image --file bill.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := domain.Category(category)
			factor, ok := domain.LookupFactor(c)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
			}

			clock := time.Now
			if today != "" {
				d, err := domain.ParseCalendarDate(today)
				if err != nil {
					return err
				}
				clock = func() time.Time { return d.Time }
			}

			input, err := readInput(cmd, file)
			if err != nil {
				return err
			}

			text := string(input)
			if image {
				runner := runnerFrom(cmd)
				rec := tesseract.NewRecognizer(config.OCRConfig{Lang: lang}, runner)
				text, err = rec.RecognizeText(cmd.Context(), input)
				if err != nil {
					return fmt.Errorf("ocr: %w", err)
				}
				loggerFrom(cmd).Debug().Int("chars", len(text)).Msg("ocr complete")
			}

			out := extractOutput{
				Category: c,
				Unit:     factor.Unit,
				Fields:   extractor.New(extractor.WithClock(clock)).Extract(text, c),
			}
			if image {
				out.RawText = text
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "emission category (required)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "input file (default stdin)")
	cmd.Flags().StringVar(&today, "today", "", "date used when the text has none (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&image, "image", false, "treat input as an image and run tesseract")
	cmd.Flags().StringVar(&lang, "lang", "eng", "tesseract language")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func readInput(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", file, err)
	}
	return data, nil
}

type runnerKey struct{}

// WithRunner returns a context whose extract --image runs commands through r.
func WithRunner(ctx context.Context, r ocr.Runner) context.Context {
	return context.WithValue(ctx, runnerKey{}, r)
}

// runnerFrom returns the runner set by WithRunner, or nil to use os/exec.
func runnerFrom(cmd *cobra.Command) ocr.Runner {
	if r, ok := cmd.Context().Value(runnerKey{}).(ocr.Runner); ok {
		return r
	}
	return nil
}
