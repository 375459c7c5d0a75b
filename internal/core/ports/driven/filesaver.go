package driven

import "context"

// FileSaver saves generated document bytes as a named file.
type FileSaver interface {
	// Save writes data under name and returns where it was written.
	Save(ctx context.Context, name string, data []byte) (string, error)
}
