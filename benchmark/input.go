package benchmark

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/yourusername/go-exam-gen/generator"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingSchema      = errors.New("missing exam schema line")
	ErrMalformedStatement = errors.New("malformed insert statement")
)

const (
	insertPrefix = "insert into exam values ("
	insertSuffix = ");"
)

// ParseSchema checks that line is the exam table declaration.
func ParseSchema(line string) error {
	if strings.TrimSpace(line) != generator.SchemaLine {
		return fmt.Errorf("%w: got %q", ErrMissingSchema, line)
	}
	return nil
}

// ParseInsert reads one statement in the exact form the generator writes it.
func ParseInsert(line string) (generator.Record, error) {
	var rec generator.Record

	body, ok := strings.CutPrefix(strings.TrimSpace(line), insertPrefix)
	if !ok {
		return rec, fmt.Errorf("%w: missing %q", ErrMalformedStatement, insertPrefix)
	}
	body, ok = strings.CutSuffix(body, insertSuffix)
	if !ok {
		return rec, fmt.Errorf("%w: missing %q", ErrMalformedStatement, insertSuffix)
	}

	idText, rest, ok := strings.Cut(body, `, "`)
	if !ok {
		return rec, fmt.Errorf("%w: missing quoted name", ErrMalformedStatement)
	}
	id, err := strconv.Atoi(idText)
	if err != nil || id <= 0 {
		return rec, fmt.Errorf("%w: bad id %q", ErrMalformedStatement, idText)
	}

	name, rest, ok := strings.Cut(rest, `", `)
	if !ok || name == "" {
		return rec, fmt.Errorf("%w: unterminated name", ErrMalformedStatement)
	}

	fields := strings.Split(rest, ", ")
	if len(fields) != 4 {
		return rec, fmt.Errorf("%w: want 4 scores, got %d", ErrMalformedStatement, len(fields))
	}
	var scores [4]float64
	for i, f := range fields {
		if scores[i], err = strconv.ParseFloat(f, 64); err != nil {
			return rec, fmt.Errorf("%w: bad score %q", ErrMalformedStatement, f)
		}
	}

	return generator.Record{
		ID:        id,
		Name:      name,
		Maths:     scores[0],
		Physics:   scores[1],
		Chemistry: scores[2],
		Biology:   scores[3],
	}, nil
}

// ReadRecords parses a generated stream: the schema line, then inserts.
// Blank lines are skipped.
func ReadRecords(r io.Reader) ([]generator.Record, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrMissingSchema)
	}
	if err := ParseSchema(scanner.Text()); err != nil {
		return nil, err
	}

	var records []generator.Record
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := ParseInsert(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	return records, scanner.Err()
}

func LoadInputRecords(path string) ([]generator.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadRecords(file)
}
