package models

type Exam struct {
	Sid       int     `gorm:"column:sid;primaryKey;autoIncrement:false"`
	Name      string  `gorm:"column:name;size:64"`
	Maths     float64 `gorm:"column:maths;type:numeric(5,2)"`
	Physics   float64 `gorm:"column:physics;type:numeric(5,2)"`
	Chemistry float64 `gorm:"column:chemistry;type:numeric(5,2)"`
	Biology   float64 `gorm:"column:biology;type:numeric(5,2)"`
}

func (Exam) TableName() string {
	return "exam"
}
