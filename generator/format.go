package generator

import "strconv"

// SchemaLine declares the exam table. It never changes between runs.
const SchemaLine = ".create exam sid:int primary key, name:string, maths:float, physics:float, chemistry:float, biology:float"

const (
	insertPrefix = "insert into exam values ("
	insertSuffix = ");"
	maxScoreText = "99.99"
)

// AppendInsert appends the insert statement for r to dst, without a
// trailing newline. The name is written as-is between double quotes.
func AppendInsert(dst []byte, r Record) []byte {
	dst = append(dst, insertPrefix...)
	dst = strconv.AppendInt(dst, int64(r.ID), 10)
	dst = append(dst, ", \""...)
	dst = append(dst, r.Name...)
	dst = append(dst, '"')
	for _, score := range r.Scores() {
		dst = append(dst, ", "...)
		dst = appendScore(dst, score)
	}
	return append(dst, insertSuffix...)
}

// FormatInsert returns the insert statement for r.
func FormatInsert(r Record) string {
	return string(AppendInsert(make([]byte, 0, 96), r))
}

// FormatScore renders a score with exactly two decimals.
func FormatScore(v float64) string {
	return string(appendScore(nil, v))
}

// appendScore keeps the rendered value below 100: a sample just under the
// upper bound would otherwise round up to "100.00".
func appendScore(dst []byte, v float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'f', 2, 64)
	if string(dst[start:]) == "100.00" {
		dst = append(dst[:start], maxScoreText...)
	}
	return dst
}
