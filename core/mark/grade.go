package mark

import "errors"

// PassPercentage is the lowest percentage that passes.
const PassPercentage = 33.0

var ErrInvalidMaxMarks = errors.New("max marks must be greater than zero")

var gradeThresholds = []struct {
	min   float64
	grade string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B+"},
	{60, "B"},
	{50, "C+"},
	{40, "C"},
	{PassPercentage, "D"},
}

// Grade returns the letter grade of marksObtained out of maxMarks.
func Grade(marksObtained, maxMarks float64) (string, error) {
	if maxMarks <= 0 {
		return "", ErrInvalidMaxMarks
	}
	return GradeForPercentage(marksObtained / maxMarks * 100), nil
}

// GradeForPercentage maps a percentage to a letter grade; lower bounds are inclusive.
func GradeForPercentage(p float64) string {
	for _, t := range gradeThresholds {
		if p >= t.min {
			return t.grade
		}
	}
	return "F"
}

func IsPass(percentage float64) bool {
	return percentage >= PassPercentage
}
