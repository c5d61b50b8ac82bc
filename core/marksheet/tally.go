package marksheet

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/divan/num2words"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/core/student"
)

type tallyResult struct {
	subjects      []SubjectResult
	totalMarks    float64
	totalMaxMarks float64
	percentage    float64
	overallGrade  string
	pass          bool
}

// tally turns a student's marks for one exam into per-subject rows and totals.
// The overall grade and pass flag are computed from the rounded percentage.
func tally(marks []mark.Mark, subjectNames map[string]string) tallyResult {
	res := tallyResult{subjects: make([]SubjectResult, 0, len(marks))}
	for _, m := range marks {
		name, ok := subjectNames[m.SubjectID]
		if !ok {
			name = UnknownSubject
		}
		res.subjects = append(res.subjects, SubjectResult{
			SubjectID:     m.SubjectID,
			SubjectName:   name,
			MarksObtained: m.MarksObtained,
			MaxMarks:      m.MaxMarks,
			Grade:         m.Grade,
		})
		res.totalMarks += m.MarksObtained
		res.totalMaxMarks += m.MaxMarks
	}
	if res.totalMaxMarks > 0 {
		res.percentage = core.Round2(res.totalMarks / res.totalMaxMarks * 100)
	}
	res.overallGrade = mark.GradeForPercentage(res.percentage)
	res.pass = mark.IsPass(res.percentage)
	return res
}

func remarks(pass bool) string {
	if pass {
		return RemarksPass
	}
	return RemarksFail
}

// rank sorts marksheets by percentage desc, then total marks desc, then roll number asc,
// and numbers them from 1.
func rank(sheets []Marksheet) {
	sort.SliceStable(sheets, func(i, j int) bool {
		a, b := sheets[i], sheets[j]
		if a.Percentage != b.Percentage {
			return a.Percentage > b.Percentage
		}
		if a.TotalMarks != b.TotalMarks {
			return a.TotalMarks > b.TotalMarks
		}
		return student.RollNoLess(a.RollNo, b.RollNo)
	})
	for i := range sheets {
		r := i + 1
		sheets[i].Rank = &r
	}
}

func summarize(students int, sheets []Marksheet) ClassSummary {
	sum := ClassSummary{Students: students, Appeared: len(sheets)}
	if len(sheets) == 0 {
		return sum
	}

	var total float64
	sum.HighestPercentage = sheets[0].Percentage
	sum.LowestPercentage = sheets[0].Percentage
	for _, ms := range sheets {
		if ms.Pass {
			sum.Passed++
		}
		total += ms.Percentage
		sum.HighestPercentage = math.Max(sum.HighestPercentage, ms.Percentage)
		sum.LowestPercentage = math.Min(sum.LowestPercentage, ms.Percentage)
	}
	sum.Failed = sum.Appeared - sum.Passed
	sum.PassPercentage = core.Round2(float64(sum.Passed) / float64(sum.Appeared) * 100)
	sum.AveragePercentage = core.Round2(total / float64(sum.Appeared))
	return sum
}

// marksInWords spells out a mark total, e.g. 125.5 -> "one hundred twenty-five point five".
func marksInWords(total float64) string {
	total = core.Round2(total)
	whole := int(total)
	words := num2words.Convert(whole)

	frac := strings.TrimRight(strconv.FormatFloat(total-float64(whole), 'f', 2, 64), "0")
	frac = strings.TrimPrefix(frac, "0.")
	if frac == "" {
		return words
	}
	digits := make([]string, 0, len(frac))
	for _, d := range frac {
		digits = append(digits, num2words.Convert(int(d-'0')))
	}
	return fmt.Sprintf("%s point %s", words, strings.Join(digits, " "))
}
