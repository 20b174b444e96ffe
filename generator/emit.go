package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultCount is the number of records produced when nothing else is asked for.
const DefaultCount = 1_000_000

// ErrInvalidCount is returned for a negative record count.
var ErrInvalidCount = errors.New("invalid record count")

// EmitSchema writes the schema line.
func EmitSchema(w io.Writer) error {
	if _, err := io.WriteString(w, SchemaLine+"\n"); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

// EmitRecords writes count insert statements with ids 1..count in order.
// It stops at the first write error.
func EmitRecords(w io.Writer, src Source, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	line := make([]byte, 0, 128)
	for id := 1; id <= count; id++ {
		line = AppendInsert(line[:0], NewRecord(id, src))
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write record %d: %w", id, err)
		}
	}
	return nil
}

// Generate writes the schema line followed by count records through a
// buffered writer. Nothing is written when count is invalid.
func Generate(w io.Writer, src Source, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	bw := bufio.NewWriterSize(w, 64*1024)
	if err := EmitSchema(bw); err != nil {
		return err
	}
	if err := EmitRecords(bw, src, count); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
