package testutil

import (
	"fmt"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/marksheet"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/storage/database/inmem"
)

// Env is an isolated set of repositories and services backed by a fresh in-memory DB.
type Env struct {
	DB          *inmemdb.DB
	StudentRepo student.Repository
	MarkRepo    mark.Repository

	CatalogSvc   *catalog.Service
	StudentSvc   *student.Service
	MarkSvc      *mark.Service
	MarksheetSvc *marksheet.Service

	Validate   *validator.Validate
	Translator ut.Translator
}

func NewEnv() *Env {
	db := inmemdb.Open()
	env := &Env{
		DB:          db,
		StudentRepo: inmemdb.NewStudentRepository(db),
		MarkRepo:    inmemdb.NewMarkRepository(db),
		CatalogSvc:  catalog.NewService(inmemdb.NewCatalogRepository(db)),
	}
	env.StudentSvc = student.NewService(env.StudentRepo)
	env.MarkSvc = mark.NewService(env.MarkRepo, env.StudentSvc, env.CatalogSvc)
	env.MarksheetSvc = marksheet.NewService(env.StudentSvc, env.MarkSvc, env.CatalogSvc)
	env.Validate, env.Translator = NewValidator()
	return env
}

func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	if err := core.InitValidators(validate, translator); err != nil {
		panic(err)
	}
	if err := student.InitValidators(validate, translator); err != nil {
		panic(err)
	}
	return validate, translator
}

func CreateStudent(t *testing.T, repo student.Repository, rollNo, name, class, section string) student.Student {
	s, err := repo.CreateStudent(student.Student{
		RollNo:        rollNo,
		Name:          name,
		FatherName:    "Father of " + name,
		MotherName:    "Mother of " + name,
		Class:         class,
		Section:       section,
		DateOfBirth:   "2012-05-17",
		Address:       "1 School Lane",
		PhoneNumber:   "+91 900000000" + rollNo[len(rollNo)-1:],
		AdmissionDate: "2018-04-01",
		Gender:        student.GenderFemale,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return s
}

func SaveMark(t *testing.T, repo mark.Repository, studentID, subjectID, examTypeID string, obtained, maxMarks float64) mark.Mark {
	grade, err := mark.Grade(obtained, maxMarks)
	if err != nil {
		t.Fatalf("SaveMark() failed: %v", err)
	}
	marks, err := repo.UpsertMarks(mark.Mark{
		StudentID:     studentID,
		SubjectID:     subjectID,
		ExamTypeID:    examTypeID,
		MarksObtained: obtained,
		MaxMarks:      maxMarks,
		Grade:         grade,
		EntryDate:     "2024-09-30",
	})
	if err != nil {
		t.Fatalf("SaveMark() failed: %v", err)
	}
	return marks[0]
}

func Float(f float64) *float64 {
	return &f
}

func Int(i int) *int {
	return &i
}

func RollNo(n int) string {
	return fmt.Sprintf("%04d", n)
}
