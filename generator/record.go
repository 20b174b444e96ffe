package generator

const (
	scoreMin = 0.0
	scoreMax = 100.0
)

// Record is one row of the exam table.
type Record struct {
	ID        int
	Name      string
	Maths     float64
	Physics   float64
	Chemistry float64
	Biology   float64
}

// NewRecord samples a record with the given id. The name is drawn first,
// then the scores in column order.
func NewRecord(id int, src Source) Record {
	r := Record{ID: id, Name: SampleName(src)}
	r.Maths = src.Uniform(scoreMin, scoreMax)
	r.Physics = src.Uniform(scoreMin, scoreMax)
	r.Chemistry = src.Uniform(scoreMin, scoreMax)
	r.Biology = src.Uniform(scoreMin, scoreMax)
	return r
}

// Scores returns the four scores in column order.
func (r Record) Scores() [4]float64 {
	return [4]float64{r.Maths, r.Physics, r.Chemistry, r.Biology}
}
