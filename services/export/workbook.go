package exportsvc

import (
	"fmt"
	"io"
	"regexp"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/matokeo/core/marksheet"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	resultSheet  = "Result"
	summarySheet = "Summary"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

var resultHeaders = []string{
	"Rank", "Roll No", "Student Name", "Total Marks", "Max Marks", "Percentage", "Grade", "Result",
}

// ClassResultFilename returns the download name of a class result workbook,
// e.g. Result_10_A_Half_Yearly_2024_25.xlsx.
func ClassResultFilename(res marksheet.ClassResult) string {
	clean := func(s string) string { return unsafeFilenameChars.ReplaceAllString(s, "_") }
	return fmt.Sprintf("Result_%s_%s_%s_%s.xlsx", clean(res.Class), clean(res.Section), clean(res.ExamType), clean(res.AcademicYear))
}

// WriteClassResult writes the roster and summary of a class result as an XLSX workbook.
func WriteClassResult(w io.Writer, schoolName string, res marksheet.ClassResult) error {
	f, err := ClassResultWorkbook(schoolName, res)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

// ClassResultWorkbook builds the workbook of a class result: one ranked row per student, then the summary.
// The file is closed when an error is returned.
func ClassResultWorkbook(schoolName string, res marksheet.ClassResult) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return nil, errors.Wrap(err, "renaming sheet")
	}

	title := fmt.Sprintf("%s - Class %s-%s - %s %s", schoolName, res.Class, res.Section, res.ExamType, res.AcademicYear)
	if err := f.SetCellValue(resultSheet, "A1", title); err != nil {
		return nil, errors.Wrap(err, "writing title")
	}
	if res.ClassTeacher != "" {
		if err := f.SetCellValue(resultSheet, "A2", "Class Teacher: "+res.ClassTeacher); err != nil {
			return nil, errors.Wrap(err, "writing class teacher")
		}
	}
	for i, header := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(resultSheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "writing headers")
		}
	}

	for i, r := range res.Roster() {
		result := "Fail"
		if r.Pass {
			result = "Pass"
		}
		values := []interface{}{
			r.Rank, r.RollNo, r.StudentName, r.TotalMarks, r.TotalMaxMarks, r.Percentage, r.OverallGrade, result,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+4)
			if err := f.SetCellValue(resultSheet, cell, v); err != nil {
				return nil, errors.Wrap(err, "writing roster")
			}
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, errors.Wrap(err, "creating summary sheet")
	}
	sum := res.Summary
	rows := [][]interface{}{
		{"Students", sum.Students},
		{"Appeared", sum.Appeared},
		{"Passed", sum.Passed},
		{"Failed", sum.Failed},
		{"Pass Percentage", sum.PassPercentage},
		{"Average Percentage", sum.AveragePercentage},
		{"Highest Percentage", sum.HighestPercentage},
		{"Lowest Percentage", sum.LowestPercentage},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return nil, errors.Wrap(err, "writing summary")
		}
	}
	return f, nil
}
