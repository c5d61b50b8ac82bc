package mark

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/student"
)

var (
	// errors
	ErrNotFound     = core.NewNotFoundError(errors.New("Mark entry not found"))
	errInvalidBatch = errors.New("invalid mark entries")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		// UpsertMarks saves all marks atomically: an existing Mark with the same Key is overwritten in place
		// (keeping its ID), otherwise a new one is created. Fails with student.ErrNotFound, writing nothing,
		// if any mark references an unknown student.
		UpsertMarks(marks ...Mark) ([]Mark, error)
		// QueryMarksByStudent returns the student's marks in entry order; an empty examTypeID matches all exams.
		QueryMarksByStudent(studentID, examTypeID string) ([]Mark, error)
		QueryMarksByStudents(studentIDs []string, subjectID, examTypeID string) ([]Mark, error)
		DeleteMark(key Key) (Mark, error)
	}

	Service struct {
		repo       Repository
		studentSvc *student.Service
		catalogSvc *catalog.Service
	}
)

func NewService(repo Repository, studentSvc *student.Service, catalogSvc *catalog.Service) *Service {
	return &Service{repo: repo, studentSvc: studentSvc, catalogSvc: catalogSvc}
}

// Save upserts a validated Batch. Subjects and exam types must exist and marks may not exceed
// the exam's max marks; the batch is checked as a whole before anything is written.
func (svc *Service) Save(batch Batch) ([]Mark, error) {
	if len(batch) == 0 {
		return []Mark{}, nil
	}

	entryDate := NowFunc().Format(EntryDateLayout)
	exams := make(map[string]catalog.ExamType)
	marks := make([]Mark, 0, len(batch))
	var fldErrs []core.FieldError

	for i, e := range batch {
		if _, err := svc.catalogSvc.Subject(e.SubjectID); err != nil {
			return nil, errs.Wrapf(err, "entry %d", i)
		}
		exam, ok := exams[e.ExamTypeID]
		if !ok {
			var err error
			if exam, err = svc.catalogSvc.ExamType(e.ExamTypeID); err != nil {
				return nil, errs.Wrapf(err, "entry %d", i)
			}
			exams[e.ExamTypeID] = exam
		}

		obtained := *e.MarksObtained
		if obtained > exam.MaxMarks {
			fldErrs = append(fldErrs, core.FieldError{
				Field: indexedField(i, "marksObtained"),
				Error: fmt.Sprintf("marksObtained must be %v or less", exam.MaxMarks),
			})
			continue
		}
		grade, err := Grade(obtained, exam.MaxMarks)
		if err != nil {
			return nil, errs.Wrapf(err, "grading entry %d", i)
		}
		marks = append(marks, Mark{
			StudentID:     e.StudentID,
			SubjectID:     e.SubjectID,
			ExamTypeID:    e.ExamTypeID,
			MarksObtained: obtained,
			MaxMarks:      exam.MaxMarks,
			Grade:         grade,
			EntryDate:     entryDate,
		})
	}
	if len(fldErrs) > 0 {
		return nil, core.NewValidationError(errInvalidBatch, fldErrs...)
	}

	return svc.repo.UpsertMarks(marks...)
}

// QueryByStudent returns the marks of a student, optionally restricted to one exam type.
func (svc *Service) QueryByStudent(studentID, examTypeID string) ([]Mark, error) {
	return svc.repo.QueryMarksByStudent(core.CleanString(studentID), core.CleanString(examTypeID))
}

// QueryByClass returns the existing marks of a class section for one subject and exam.
func (svc *Service) QueryByClass(q ClassQuery) ([]Mark, error) {
	students, err := svc.studentSvc.InClass(q.ClassName, q.Section)
	if err != nil {
		return nil, errs.Wrap(err, "querying class students")
	}
	if len(students) == 0 {
		return []Mark{}, nil
	}
	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	return svc.repo.QueryMarksByStudents(ids, q.SubjectID, q.ExamTypeID)
}

func (svc *Service) Delete(key Key) (Mark, error) {
	return svc.repo.DeleteMark(key)
}
