package inmemdb

import (
	"fmt"

	"github.com/trezcool/matokeo/core/catalog"
)

type catalogRepository struct {
	db *catalogTable
}

func NewCatalogRepository(db *DB) catalog.Repository {
	return &catalogRepository{db: db.catalog}
}

func (repo *catalogRepository) QuerySubjects() ([]catalog.Subject, error) {
	return append([]catalog.Subject(nil), repo.db.subjects...), nil
}

func (repo *catalogRepository) GetSubject(id string) (catalog.Subject, error) {
	for _, s := range repo.db.subjects {
		if s.ID == id {
			return s, nil
		}
	}
	return catalog.Subject{}, catalog.ErrSubjectNotFound
}

func (repo *catalogRepository) QueryExamTypes() ([]catalog.ExamType, error) {
	return append([]catalog.ExamType(nil), repo.db.examTypes...), nil
}

func (repo *catalogRepository) GetExamType(id string) (catalog.ExamType, error) {
	for _, e := range repo.db.examTypes {
		if e.ID == id {
			return e, nil
		}
	}
	return catalog.ExamType{}, catalog.ErrExamTypeNotFound
}

func (repo *catalogRepository) QueryClassSections() ([]catalog.ClassSection, error) {
	return append([]catalog.ClassSection(nil), repo.db.classSections...), nil
}

func (repo *catalogRepository) GetClassSection(class, section string) (catalog.ClassSection, error) {
	for _, cs := range repo.db.classSections {
		if cs.Class == class && cs.Section == section {
			return cs, nil
		}
	}
	return catalog.ClassSection{}, catalog.ErrClassSectionNotFound
}

func defaultSubjects() []catalog.Subject {
	return []catalog.Subject{
		{ID: "math", Name: "Mathematics", Code: "MATH", MaxMarks: 100, MinMarks: 33},
		{ID: "science", Name: "Science", Code: "SCI", MaxMarks: 100, MinMarks: 33},
		{ID: "english", Name: "English", Code: "ENG", MaxMarks: 100, MinMarks: 33},
		{ID: "hindi", Name: "Hindi", Code: "HIN", MaxMarks: 100, MinMarks: 33},
		{ID: "social", Name: "Social Studies", Code: "SST", MaxMarks: 100, MinMarks: 33},
		{ID: "computer", Name: "Computer Science", Code: "CS", MaxMarks: 100, MinMarks: 33, IsOptional: true},
		{ID: "drawing", Name: "Drawing", Code: "ART", MaxMarks: 50, MinMarks: 16, IsOptional: true},
		{ID: "physical", Name: "Physical Education", Code: "PE", MaxMarks: 50, MinMarks: 16, IsOptional: true},
	}
}

func defaultExamTypes() []catalog.ExamType {
	return []catalog.ExamType{
		{ID: "unit-test-1", Name: "Unit Test 1", Weight: 10, MaxMarks: 25},
		{ID: "unit-test-2", Name: "Unit Test 2", Weight: 10, MaxMarks: 25},
		{ID: "half-yearly", Name: "Half Yearly", Weight: 40, MaxMarks: 100},
		{ID: "final", Name: "Final Examination", Weight: 40, MaxMarks: 100},
	}
}

func defaultClassSections() []catalog.ClassSection {
	teachers := []string{
		"Mrs. Sunita Sharma", "Mr. Rajesh Kumar",
		"Mrs. Priya Gupta", "Mr. Amit Singh",
		"Mrs. Neha Patel", "Mr. Vikash Jain",
		"Mrs. Kavita Agarwal", "Mr. Suresh Bansal",
		"Mrs. Ritu Mittal", "Mr. Manoj Joshi",
	}
	sections := make([]catalog.ClassSection, 0, len(teachers))
	for class := 6; class <= 10; class++ {
		for i, section := range []string{"A", "B"} {
			sections = append(sections, catalog.ClassSection{
				Class:        fmt.Sprint(class),
				Section:      section,
				ClassTeacher: teachers[(class-6)*2+i],
				StudentCount: 50,
			})
		}
	}
	return sections
}
