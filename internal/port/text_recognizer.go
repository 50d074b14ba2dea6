package port

import "context"

// TextRecognizer turns image bytes into raw text.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, image []byte) (string, error)
}
