package marksheet

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
)

// Remarks
const (
	RemarksPass = "Promoted to next class"
	RemarksFail = "Needs improvement"

	UnknownSubject = "Unknown Subject"
)

type SubjectResult struct {
	SubjectID     string  `json:"subjectId"`
	SubjectName   string  `json:"subjectName"`
	MarksObtained float64 `json:"marksObtained"`
	MaxMarks      float64 `json:"maxMarks"`
	Grade         string  `json:"grade"`
}

// Marksheet is a student's transcript for one exam. It is computed on demand and never stored.
type Marksheet struct {
	ID                string          `json:"id"`
	StudentID         string          `json:"studentId"`
	StudentName       string          `json:"studentName"`
	RollNo            string          `json:"rollNo"`
	Class             string          `json:"class"`
	Section           string          `json:"section"`
	ExamType          string          `json:"examType"`
	AcademicYear      string          `json:"academicYear"`
	Subjects          []SubjectResult `json:"subjects"`
	TotalMarks        float64         `json:"totalMarks"`
	TotalMaxMarks     float64         `json:"totalMaxMarks"`
	Percentage        float64         `json:"percentage"`
	TotalMarksInWords string          `json:"totalMarksInWords"`
	OverallGrade      string          `json:"overallGrade"`
	Pass              bool            `json:"pass"`
	Rank              *int            `json:"rank,omitempty"`
	GeneratedDate     string          `json:"generatedDate"`
	Remarks           string          `json:"remarks"`
}

// RosterEntry is the one line summary of a ranked Marksheet.
type RosterEntry struct {
	Rank          int     `json:"rank"`
	StudentID     string  `json:"studentId"`
	RollNo        string  `json:"rollNo"`
	StudentName   string  `json:"studentName"`
	TotalMarks    float64 `json:"totalMarks"`
	TotalMaxMarks float64 `json:"totalMaxMarks"`
	Percentage    float64 `json:"percentage"`
	OverallGrade  string  `json:"overallGrade"`
	Pass          bool    `json:"pass"`
}

// ClassSummary holds statistics over the students who appeared, i.e. had at least one mark.
type ClassSummary struct {
	Students          int     `json:"students"`
	Appeared          int     `json:"appeared"`
	Passed            int     `json:"passed"`
	Failed            int     `json:"failed"`
	PassPercentage    float64 `json:"passPercentage"`
	AveragePercentage float64 `json:"averagePercentage"`
	HighestPercentage float64 `json:"highestPercentage"`
	LowestPercentage  float64 `json:"lowestPercentage"`
}

// ClassResult holds the ranked marksheets of one class section; Marksheets are sorted by rank.
// ClassTeacher is empty when the class section is missing from the catalog.
type ClassResult struct {
	Class        string       `json:"class"`
	Section      string       `json:"section"`
	ClassTeacher string       `json:"classTeacher,omitempty"`
	ExamType     string       `json:"examType"`
	AcademicYear string       `json:"academicYear"`
	Marksheets   []Marksheet  `json:"marksheets"`
	Summary      ClassSummary `json:"summary"`
}

func (r ClassResult) Roster() []RosterEntry {
	roster := make([]RosterEntry, 0, len(r.Marksheets))
	for _, ms := range r.Marksheets {
		var rank int
		if ms.Rank != nil {
			rank = *ms.Rank
		}
		roster = append(roster, RosterEntry{
			Rank:          rank,
			StudentID:     ms.StudentID,
			RollNo:        ms.RollNo,
			StudentName:   ms.StudentName,
			TotalMarks:    ms.TotalMarks,
			TotalMaxMarks: ms.TotalMaxMarks,
			Percentage:    ms.Percentage,
			OverallGrade:  ms.OverallGrade,
			Pass:          ms.Pass,
		})
	}
	return roster
}

// Request asks for one student's marksheet.
type Request struct {
	StudentID    string `json:"studentId" query:"studentId" validate:"required"`
	ExamTypeID   string `json:"examTypeId" query:"examTypeId" validate:"required"`
	AcademicYear string `json:"academicYear" query:"academicYear" validate:"required,notblank"`
}

func (r *Request) Validate(validate *validator.Validate) error {
	r.StudentID = core.CleanString(r.StudentID)
	r.ExamTypeID = core.CleanString(r.ExamTypeID)
	r.AcademicYear = core.CleanString(r.AcademicYear)
	return validate.Struct(r)
}

// ClassRequest asks for the marksheets of a whole class section.
type ClassRequest struct {
	ClassName    string `json:"className" query:"className" validate:"required,notblank"`
	Section      string `json:"section" query:"section" validate:"required,notblank"`
	ExamTypeID   string `json:"examTypeId" query:"examTypeId" validate:"required"`
	AcademicYear string `json:"academicYear" query:"academicYear" validate:"required,notblank"`
}

func (r *ClassRequest) Validate(validate *validator.Validate) error {
	r.ClassName = core.CleanString(r.ClassName)
	r.Section = core.CleanString(r.Section)
	r.ExamTypeID = core.CleanString(r.ExamTypeID)
	r.AcademicYear = core.CleanString(r.AcademicYear)
	return validate.Struct(r)
}
