package marksheet

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/catalog"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

// GeneratedDateLayout is the layout of Marksheet.GeneratedDate.
const GeneratedDateLayout = "2006-01-02"

var (
	// errors
	ErrNoStudents = core.NewNotFoundError(errors.New("No students found in the specified class and section"))

	NowFunc = time.Now // mockable
)

type Service struct {
	studentSvc *student.Service
	markSvc    *mark.Service
	catalogSvc *catalog.Service
}

func NewService(studentSvc *student.Service, markSvc *mark.Service, catalogSvc *catalog.Service) *Service {
	return &Service{studentSvc: studentSvc, markSvc: markSvc, catalogSvc: catalogSvc}
}

// Generate builds the marksheet of one student for one exam.
// Its rank is the student's position in their class section; a student without marks has no rank.
func (svc *Service) Generate(req Request) (Marksheet, error) {
	stu, err := svc.studentSvc.GetByID(req.StudentID)
	if err != nil {
		return Marksheet{}, errs.Wrap(err, "getting student")
	}
	exam, err := svc.catalogSvc.ExamType(req.ExamTypeID)
	if err != nil {
		return Marksheet{}, errs.Wrap(err, "getting exam type")
	}

	classmates, err := svc.studentSvc.InClass(stu.Class, stu.Section)
	if err != nil {
		return Marksheet{}, errs.Wrap(err, "querying class students")
	}
	sheets, err := svc.build(classmates, exam, req.AcademicYear)
	if err != nil {
		return Marksheet{}, err
	}
	for _, ms := range sheets {
		if ms.StudentID == stu.ID {
			return ms, nil
		}
	}

	// no marks yet
	names, err := svc.catalogSvc.SubjectNames()
	if err != nil {
		return Marksheet{}, errs.Wrap(err, "querying subjects")
	}
	return svc.newMarksheet(stu, exam, req.AcademicYear, nil, names), nil
}

// GenerateClass builds and ranks the marksheets of every student of a class section who has marks for the exam.
// It fails with ErrNoStudents when nobody is enrolled; an empty roster is not an error.
func (svc *Service) GenerateClass(req ClassRequest) (ClassResult, error) {
	students, err := svc.studentSvc.InClass(req.ClassName, req.Section)
	if err != nil {
		return ClassResult{}, errs.Wrap(err, "querying class students")
	}
	if len(students) == 0 {
		return ClassResult{}, ErrNoStudents
	}
	exam, err := svc.catalogSvc.ExamType(req.ExamTypeID)
	if err != nil {
		return ClassResult{}, errs.Wrap(err, "getting exam type")
	}

	var classTeacher string
	cs, err := svc.catalogSvc.ClassSection(req.ClassName, req.Section)
	switch {
	case err == nil:
		classTeacher = cs.ClassTeacher
	case errs.Cause(err) != catalog.ErrClassSectionNotFound:
		return ClassResult{}, errs.Wrap(err, "getting class section")
	}

	sheets, err := svc.build(students, exam, req.AcademicYear)
	if err != nil {
		return ClassResult{}, err
	}
	return ClassResult{
		Class:        req.ClassName,
		Section:      req.Section,
		ClassTeacher: classTeacher,
		ExamType:     exam.Name,
		AcademicYear: req.AcademicYear,
		Marksheets:   sheets,
		Summary:      summarize(len(students), sheets),
	}, nil
}

// build returns the ranked marksheets of the given students, skipping those without marks.
func (svc *Service) build(students []student.Student, exam catalog.ExamType, academicYear string) ([]Marksheet, error) {
	names, err := svc.catalogSvc.SubjectNames()
	if err != nil {
		return nil, errs.Wrap(err, "querying subjects")
	}

	sheets := make([]Marksheet, 0, len(students))
	for _, stu := range students {
		marks, err := svc.markSvc.QueryByStudent(stu.ID, exam.ID)
		if err != nil {
			return nil, errs.Wrapf(err, "querying marks of %s", stu.ID)
		}
		if len(marks) == 0 {
			continue
		}
		sheets = append(sheets, svc.newMarksheet(stu, exam, academicYear, marks, names))
	}
	rank(sheets)
	return sheets, nil
}

func (svc *Service) newMarksheet(
	stu student.Student,
	exam catalog.ExamType,
	academicYear string,
	marks []mark.Mark,
	subjectNames map[string]string,
) Marksheet {
	res := tally(marks, subjectNames)
	return Marksheet{
		ID:                fmt.Sprintf("marksheet-%s-%s", stu.ID, exam.ID),
		StudentID:         stu.ID,
		StudentName:       stu.Name,
		RollNo:            stu.RollNo,
		Class:             stu.Class,
		Section:           stu.Section,
		ExamType:          exam.Name,
		AcademicYear:      academicYear,
		Subjects:          res.subjects,
		TotalMarks:        res.totalMarks,
		TotalMaxMarks:     res.totalMaxMarks,
		Percentage:        res.percentage,
		TotalMarksInWords: marksInWords(res.totalMarks),
		OverallGrade:      res.overallGrade,
		Pass:              res.pass,
		GeneratedDate:     NowFunc().Format(GeneratedDateLayout),
		Remarks:           remarks(res.pass),
	}
}
