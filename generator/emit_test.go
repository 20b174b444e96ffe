package generator

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var insertRE = regexp.MustCompile(`^insert into exam values \((\d+), "([A-Z][a-z]+ [A-Z][a-z]+)", (\d{1,2}\.\d{2}), (\d{1,2}\.\d{2}), (\d{1,2}\.\d{2}), (\d{1,2}\.\d{2})\);$`)

func TestEmitSchema(t *testing.T) {
	var buf bytes.Buffer
	if err := EmitSchema(&buf); err != nil {
		t.Fatalf("EmitSchema() error = %v", err)
	}
	if buf.String() != SchemaLine+"\n" {
		t.Errorf("EmitSchema() wrote %q", buf.String())
	}
}

func TestEmitRecordsScripted(t *testing.T) {
	src := &scriptedSource{
		t: t,
		ints: []int{
			0, 0, 0,
			1, 1, 1, 2,
			len(FamilyNames) - 1, 0, len(GivenNameSyllables) - 1,
		},
		floats: []float64{
			12.3, 45.6, 78.9, 0.1,
			99.999, 0, 50.5, 1.234,
			33.333, 66.666, 7, 88.8,
		},
	}

	var buf bytes.Buffer
	if err := EmitRecords(&buf, src, 3); err != nil {
		t.Fatalf("EmitRecords() error = %v", err)
	}

	want := `insert into exam values (1, "Li Wei", 12.30, 45.60, 78.90, 0.10);
insert into exam values (2, "Wang Minjie", 99.99, 0.00, 50.50, 1.23);
insert into exam values (3, "Wen Dan", 33.33, 66.67, 7.00, 88.80);
`
	if buf.String() != want {
		t.Errorf("EmitRecords() =\n%s\nwant\n%s", buf.String(), want)
	}
	if len(src.ints) != 0 || len(src.floats) != 0 {
		t.Errorf("unused draws: ints=%v floats=%v", src.ints, src.floats)
	}
}

func TestEmitRecordsCount(t *testing.T) {
	for _, count := range []int{0, 1, 2, 250} {
		var buf bytes.Buffer
		if err := EmitRecords(&buf, NewSource(int64(count)), count); err != nil {
			t.Fatalf("EmitRecords(%d) error = %v", count, err)
		}
		if got := strings.Count(buf.String(), "\n"); got != count {
			t.Errorf("EmitRecords(%d) wrote %d lines", count, got)
		}
	}
}

func TestEmitRecordsNegativeCount(t *testing.T) {
	var buf bytes.Buffer
	err := EmitRecords(&buf, NewSource(1), -1)
	if !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("EmitRecords(-1) error = %v, want ErrInvalidCount", err)
	}
	if buf.Len() != 0 {
		t.Errorf("EmitRecords(-1) wrote %q", buf.String())
	}
}

var errClosed = errors.New("stream closed")

// failingWriter accepts ok writes and fails every write after that.
type failingWriter struct {
	ok     int
	writes int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.writes > w.ok {
		return 0, errClosed
	}
	return len(p), nil
}

func TestEmitRecordsStopsOnWriteError(t *testing.T) {
	w := &failingWriter{ok: 5}
	err := EmitRecords(w, NewSource(3), 100)
	if !errors.Is(err, errClosed) {
		t.Fatalf("EmitRecords() error = %v, want %v", err, errClosed)
	}
	if !strings.Contains(err.Error(), "record 6") {
		t.Errorf("error %q does not name the failing record", err)
	}
	if w.writes != 6 {
		t.Errorf("writer saw %d writes after failure, want 6", w.writes)
	}
}

func TestGenerateRejectsNegativeCountBeforeOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, NewSource(1), -5); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("Generate(-5) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Generate(-5) wrote %d bytes", buf.Len())
	}
}

func TestGenerateFlushError(t *testing.T) {
	err := Generate(&failingWriter{}, NewSource(1), 10)
	if !errors.Is(err, errClosed) {
		t.Fatalf("Generate() error = %v, want %v", err, errClosed)
	}
}

func TestGenerateOutput(t *testing.T) {
	const count = 2000

	var buf bytes.Buffer
	if err := Generate(&buf, NewSource(42), count); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	sc := bufio.NewScanner(&buf)
	if !sc.Scan() || sc.Text() != SchemaLine {
		t.Fatalf("first line = %q, want schema line", sc.Text())
	}

	next := 1
	for sc.Scan() {
		line := sc.Text()
		m := insertRE.FindStringSubmatch(line)
		if m == nil {
			t.Fatalf("line %d does not match insert format: %q", next+1, line)
		}
		id, _ := strconv.Atoi(m[1])
		if id != next {
			t.Fatalf("id = %d, want %d", id, next)
		}
		_, given, _ := strings.Cut(m[2], " ")
		if n := syllableCount(strings.ToLower(given)); n == 0 {
			t.Fatalf("given name %q not built from syllable table", given)
		}
		for _, s := range m[3:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || v < 0 || v >= 100 {
				t.Fatalf("score %q out of range", s)
			}
		}
		next++
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if next-1 != count {
		t.Errorf("got %d insert lines, want %d", next-1, count)
	}
}

func TestGenerateSeedReproducible(t *testing.T) {
	var a, b bytes.Buffer
	if err := Generate(&a, NewSource(11), 100); err != nil {
		t.Fatal(err)
	}
	if err := Generate(&b, NewSource(11), 100); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same seed produced different output")
	}
}
