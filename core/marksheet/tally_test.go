package marksheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/matokeo/core/mark"
)

func TestTally(t *testing.T) {
	names := map[string]string{"math": "Mathematics", "science": "Science"}

	tests := []struct {
		name      string
		marks     []mark.Mark
		wantTotal float64
		wantMax   float64
		wantPct   float64
		wantGrade string
		wantPass  bool
	}{
		{
			name: "math and science",
			marks: []mark.Mark{
				{SubjectID: "math", MarksObtained: 80, MaxMarks: 100, Grade: "A"},
				{SubjectID: "science", MarksObtained: 45, MaxMarks: 100, Grade: "C"},
			},
			wantTotal: 125, wantMax: 200, wantPct: 62.5, wantGrade: "B", wantPass: true,
		},
		{name: "no marks", wantGrade: "F"},
		{
			name:      "exactly 33",
			marks:     []mark.Mark{{SubjectID: "math", MarksObtained: 33, MaxMarks: 100, Grade: "D"}},
			wantTotal: 33, wantMax: 100, wantPct: 33, wantGrade: "D", wantPass: true,
		},
		{
			name:      "just below 33",
			marks:     []mark.Mark{{SubjectID: "math", MarksObtained: 3299, MaxMarks: 10000, Grade: "F"}},
			wantTotal: 3299, wantMax: 10000, wantPct: 32.99, wantGrade: "F", wantPass: false,
		},
		{
			name: "rounded to 2 decimals",
			marks: []mark.Mark{
				{SubjectID: "math", MarksObtained: 20, MaxMarks: 25, Grade: "A"},
				{SubjectID: "science", MarksObtained: 0, MaxMarks: 50, Grade: "F"},
			},
			wantTotal: 20, wantMax: 75, wantPct: 26.67, wantGrade: "F", wantPass: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tally(tt.marks, names)
			assert.Equal(t, tt.wantTotal, got.totalMarks)
			assert.Equal(t, tt.wantMax, got.totalMaxMarks)
			assert.Equal(t, tt.wantPct, got.percentage)
			assert.Equal(t, tt.wantGrade, got.overallGrade)
			assert.Equal(t, tt.wantPass, got.pass)
			assert.Len(t, got.subjects, len(tt.marks))
		})
	}
}

func TestTally_unknownSubject(t *testing.T) {
	got := tally([]mark.Mark{{SubjectID: "astronomy", MarksObtained: 10, MaxMarks: 25, Grade: "C"}}, map[string]string{})
	assert.Equal(t, []SubjectResult{
		{SubjectID: "astronomy", SubjectName: UnknownSubject, MarksObtained: 10, MaxMarks: 25, Grade: "C"},
	}, got.subjects)
}

func TestRank(t *testing.T) {
	sheets := []Marksheet{
		{StudentID: "c", RollNo: "10", Percentage: 70, TotalMarks: 140},
		{StudentID: "a", RollNo: "2", Percentage: 80, TotalMarks: 80},
		{StudentID: "d", RollNo: "9", Percentage: 70, TotalMarks: 140},
		{StudentID: "b", RollNo: "1", Percentage: 70, TotalMarks: 175},
	}
	rank(sheets)

	got := make([]string, 0, len(sheets))
	for i, ms := range sheets {
		got = append(got, ms.StudentID)
		assert.Equal(t, i+1, *ms.Rank)
	}
	assert.Equal(t, []string{"a", "b", "d", "c"}, got)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, ClassSummary{Students: 4}, summarize(4, nil))

	sum := summarize(5, []Marksheet{
		{Percentage: 91.5, Pass: true},
		{Percentage: 62.5, Pass: true},
		{Percentage: 20, Pass: false},
	})
	assert.Equal(t, ClassSummary{
		Students:          5,
		Appeared:          3,
		Passed:            2,
		Failed:            1,
		PassPercentage:    66.67,
		AveragePercentage: 58,
		HighestPercentage: 91.5,
		LowestPercentage:  20,
	}, sum)
}

func TestMarksInWords(t *testing.T) {
	assert.Equal(t, "zero", marksInWords(0))
	assert.Equal(t, marksInWords(125)+" point five", marksInWords(125.5))
	assert.Equal(t, marksInWords(7)+" point two five", marksInWords(7.25))
	assert.Contains(t, marksInWords(125), "hundred")
}
