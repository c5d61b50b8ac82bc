package catalog

type Subject struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	MaxMarks   float64 `json:"maxMarks"`
	MinMarks   float64 `json:"minMarks"`
	IsOptional bool    `json:"isOptional"`
}

// ExamType is a kind of examination. Weight is the informational share of the final result, in percent.
type ExamType struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Weight   float64 `json:"weight"`
	MaxMarks float64 `json:"maxMarks"`
}

// ClassSection is a homeroom. StudentCount is nominal and may differ from actual enrolment.
type ClassSection struct {
	Class        string `json:"class"`
	Section      string `json:"section"`
	ClassTeacher string `json:"classTeacher"`
	StudentCount int    `json:"studentCount"`
}
