package file

import (
	"fmt"

	"github.com/arloliu/colfile/errs"
	"github.com/arloliu/colfile/internal/options"
)

// DefaultCreatedBy is the creator string recorded in the file metadata
// when WithCreatedBy is not supplied.
const DefaultCreatedBy = "colfile version 1.0"

// Option represents a functional option for configuring a Writer.
type Option = options.Option[*Writer]

// WithRowGroupSize sets the maximum number of rows per row group. Encode
// partitions its input into ceil(totalRows / size) groups; every group
// holds size rows except possibly the last. Size must be positive.
//
// Without this option the writer produces a single row group holding all
// rows. The option does not constrain EncodeGroups, which takes already
// partitioned input.
func WithRowGroupSize(size int) Option {
	return options.New(func(w *Writer) error {
		if size <= 0 {
			return fmt.Errorf("%w: row group size must be positive, got %d", errs.ErrValue, size)
		}
		w.rowGroupSize = size

		return nil
	})
}

// WithCreatedBy sets the creator string recorded in the file metadata.
func WithCreatedBy(createdBy string) Option {
	return options.NoError(func(w *Writer) {
		w.createdBy = createdBy
	})
}
