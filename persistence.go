package quotegen

import (
	"context"
	"io"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles file export and import and explicit saves.
type Persistence interface {
	// Export writes every quote to w in the given format
	Export(w io.Writer, format quotes.Format) error

	// Import reads a document from r and merges it by id. An invalid
	// document returns an ImportFormatError and changes nothing.
	Import(ctx context.Context, r io.Reader, format quotes.Format) (quotes.MergeResult, error)

	// Save persists the current snapshot
	Save(ctx context.Context) error
}

// Export implements Persistence.
func (c *client) Export(w io.Writer, format quotes.Format) error {
	data, err := quotes.Encode(format, c.store.List())
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.WrapIO("write", "export", err)
	}
	return nil
}

// Import implements Persistence.
func (c *client) Import(ctx context.Context, r io.Reader, format quotes.Format) (quotes.MergeResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, constants.MaxImportBytes+1))
	if err != nil {
		return quotes.MergeResult{}, errors.WrapIO("read", "import", err)
	}

	list, err := quotes.Decode(format, data)
	if err != nil {
		c.notify(OpImport, NoticeError, "Import failed, nothing was applied", err)
		return quotes.MergeResult{}, err
	}

	result := c.store.Merge(ctx, list)
	if result.Changed() {
		c.refresh()
	}
	return result, nil
}

// Save implements Persistence.
func (c *client) Save(ctx context.Context) error {
	if err := c.store.Save(ctx); err != nil {
		return errors.WrapIO("write", "quotes", err)
	}
	return nil
}
