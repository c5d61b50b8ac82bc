package mark

import (
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
)

// EntryDateLayout is the layout of Mark.EntryDate.
const EntryDateLayout = "2006-01-02"

// Mark is one student's score for one subject in one exam. At most one Mark exists per Key.
type Mark struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"studentId"`
	SubjectID     string  `json:"subjectId"`
	ExamTypeID    string  `json:"examTypeId"`
	MarksObtained float64 `json:"marksObtained"`
	MaxMarks      float64 `json:"maxMarks"`
	Grade         string  `json:"grade"`
	EntryDate     string  `json:"entryDate"`
}

func (m Mark) Key() Key {
	return Key{StudentID: m.StudentID, SubjectID: m.SubjectID, ExamTypeID: m.ExamTypeID}
}

// Key identifies a Mark.
type Key struct {
	StudentID  string `json:"studentId" query:"studentId" validate:"required"`
	SubjectID  string `json:"subjectId" query:"subjectId" validate:"required"`
	ExamTypeID string `json:"examTypeId" query:"examTypeId" validate:"required"`
}

func (k *Key) Validate(validate *validator.Validate) error {
	k.StudentID = core.CleanString(k.StudentID)
	k.SubjectID = core.CleanString(k.SubjectID)
	k.ExamTypeID = core.CleanString(k.ExamTypeID)
	return validate.Struct(k)
}

// Entry is one mark to save.
type Entry struct {
	StudentID     string   `json:"studentId" validate:"required"`
	SubjectID     string   `json:"subjectId" validate:"required"`
	ExamTypeID    string   `json:"examTypeId" validate:"required"`
	MarksObtained *float64 `json:"marksObtained" validate:"required,min=0"`
}

func (e Entry) Key() Key {
	return Key{StudentID: e.StudentID, SubjectID: e.SubjectID, ExamTypeID: e.ExamTypeID}
}

// Batch is a list of entries saved together; either all of them are saved or none.
type Batch []Entry

// Validate checks every entry and reports field errors as `[index].field`.
func (b Batch) Validate(validate *validator.Validate, translator ut.Translator) error {
	var fldErrs []core.FieldError
	for i := range b {
		b[i].StudentID = core.CleanString(b[i].StudentID)
		b[i].SubjectID = core.CleanString(b[i].SubjectID)
		b[i].ExamTypeID = core.CleanString(b[i].ExamTypeID)

		err := validate.Struct(b[i])
		if err == nil {
			continue
		}
		vErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, vErr := range vErrs {
			fldErrs = append(fldErrs, core.FieldError{
				Field: indexedField(i, vErr.Field()),
				Error: vErr.Translate(translator),
			})
		}
	}
	if len(fldErrs) > 0 {
		return core.NewValidationError(errInvalidBatch, fldErrs...)
	}
	return nil
}

func indexedField(i int, field string) string {
	return fmt.Sprintf("[%d].%s", i, field)
}

// ClassQuery selects the marks of one class section for one subject and exam.
type ClassQuery struct {
	ClassName  string `query:"className" json:"className" validate:"required"`
	Section    string `query:"section" json:"section" validate:"required"`
	SubjectID  string `query:"subjectId" json:"subjectId" validate:"required"`
	ExamTypeID string `query:"examTypeId" json:"examTypeId" validate:"required"`
}

func (q *ClassQuery) Validate(validate *validator.Validate) error {
	q.ClassName = core.CleanString(q.ClassName)
	q.Section = core.CleanString(q.Section)
	q.SubjectID = core.CleanString(q.SubjectID)
	q.ExamTypeID = core.CleanString(q.ExamTypeID)
	return validate.Struct(q)
}
