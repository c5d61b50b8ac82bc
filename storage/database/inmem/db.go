package inmemdb

import (
	"sync"

	"github.com/google/uuid"

	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

// DB owns every in-memory table. Nothing is persisted.
// When both tables are needed, the student table is locked before the mark table.
type (
	DB struct {
		student *studentTable
		mark    *markTable
		catalog *catalogTable
	}

	studentTable struct {
		table map[string]*student.Student
		mutex sync.RWMutex
	}

	markTable struct {
		table map[mark.Key]*markRow
		seq   int
		mutex sync.RWMutex
	}

	// markRow keeps the insertion sequence so that queries return marks in entry order.
	markRow struct {
		seq  int
		mark mark.Mark
	}

	catalogTable struct {
		subjects      []catalog.Subject
		examTypes     []catalog.ExamType
		classSections []catalog.ClassSection
	}
)

// Open returns an empty DB holding the reference catalogs.
func Open() *DB {
	return &DB{
		student: &studentTable{table: make(map[string]*student.Student)},
		mark:    &markTable{table: make(map[mark.Key]*markRow)},
		catalog: &catalogTable{
			subjects:      defaultSubjects(),
			examTypes:     defaultExamTypes(),
			classSections: defaultClassSections(),
		},
	}
}

func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
