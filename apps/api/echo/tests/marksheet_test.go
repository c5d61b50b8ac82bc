package tests

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/matokeo/core/marksheet"
	exportsvc "github.com/trezcool/matokeo/services/export"
	"github.com/trezcool/matokeo/tests"
)

func fixMarksheetDate(t *testing.T) {
	marksheet.NowFunc = func() time.Time { return time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { marksheet.NowFunc = time.Now })
}

func Test_marksheetApi_generate(t *testing.T) {
	fixMarksheetDate(t)
	app, env := setup(t)

	s := testutil.CreateStudent(t, env.StudentRepo, "0007", "Saanvi Iyer", "8", "A")
	peer := testutil.CreateStudent(t, env.StudentRepo, "0008", "Vivaan Nair", "8", "A")
	idle := testutil.CreateStudent(t, env.StudentRepo, "0009", "Myra Kapoor", "8", "A")
	testutil.SaveMark(t, env.MarkRepo, s.ID, "math", "half-yearly", 80, 100)
	testutil.SaveMark(t, env.MarkRepo, s.ID, "science", "half-yearly", 45, 100)
	testutil.SaveMark(t, env.MarkRepo, peer.ID, "math", "half-yearly", 90, 100)

	want, err := env.MarksheetSvc.Generate(marksheet.Request{StudentID: s.ID, ExamTypeID: "half-yearly", AcademicYear: "2024-25"})
	require.NoError(t, err)
	require.Equal(t, 62.5, want.Percentage)
	require.Equal(t, "B", want.OverallGrade)
	require.Equal(t, 2, *want.Rank)

	wantIdle, err := env.MarksheetSvc.Generate(marksheet.Request{StudentID: idle.ID, ExamTypeID: "half-yearly", AcademicYear: "2024-25"})
	require.NoError(t, err)

	body := func(studentID, examTypeID, year string) []byte {
		return marchallObj(t, marksheet.Request{StudentID: studentID, ExamTypeID: examTypeID, AcademicYear: year})
	}
	query := func(studentID, examTypeID, year string) string {
		return fmt.Sprintf("/api/marksheets?studentId=%s&examTypeId=%s&academicYear=%s", studentID, examTypeID, year)
	}

	tests := []httpTest{
		{
			name: "generate", method: http.MethodPost, path: "/api/marksheets/generate",
			body:     body(s.ID, "half-yearly", "2024-25"),
			wantData: success(t, want, "Marksheet generated successfully"),
		},
		{
			name: "fetch", path: query(s.ID, "half-yearly", "2024-25"),
			wantData: success(t, want, "Marksheet fetched successfully"),
		},
		{
			name: "no marks", method: http.MethodPost, path: "/api/marksheets/generate",
			body:     body(idle.ID, "half-yearly", "2024-25"),
			wantData: success(t, wantIdle, "Marksheet generated successfully"),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/api/marksheets/generate",
			body:     []byte(`{"studentId": "` + s.ID + `"}`),
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Validation failed", map[string]string{
				"examTypeId":   "this field is required",
				"academicYear": "this field is required",
			}),
		},
		{
			name: "unknown student", method: http.MethodPost, path: "/api/marksheets/generate",
			body:     body("student-lol", "half-yearly", "2024-25"),
			wantCode: http.StatusNotFound,
			wantData: failure(t, "student not found", nil),
		},
		{
			name: "unknown exam type", path: query(s.ID, "olympiad", "2024-25"),
			wantCode: http.StatusNotFound,
			wantData: failure(t, "exam type not found", nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}

	t.Run("no marks shape", func(t *testing.T) {
		var resp struct {
			Data map[string]interface{} `json:"data"`
		}
		decode(t, do(app, httpTest{path: query(idle.ID, "half-yearly", "2024-25")}), &resp)
		assert.NotContains(t, resp.Data, "rank")
		assert.Equal(t, "F", resp.Data["overallGrade"])
		assert.Equal(t, false, resp.Data["pass"])
		assert.Equal(t, marksheet.RemarksFail, resp.Data["remarks"])
	})
}

func Test_marksheetApi_bulk(t *testing.T) {
	fixMarksheetDate(t)
	app, env := setup(t)

	s1 := testutil.CreateStudent(t, env.StudentRepo, "0001", "Aarav Patel", "9", "B")
	s2 := testutil.CreateStudent(t, env.StudentRepo, "0002", "Diya Singh", "9", "B")
	s3 := testutil.CreateStudent(t, env.StudentRepo, "0003", "Kabir Rao", "9", "B")
	testutil.CreateStudent(t, env.StudentRepo, "0004", "Anika Das", "9", "B") // absent
	testutil.CreateStudent(t, env.StudentRepo, "0005", "Ishaan Roy", "10", "A")

	testutil.SaveMark(t, env.MarkRepo, s1.ID, "math", "final", 30, 100)
	testutil.SaveMark(t, env.MarkRepo, s2.ID, "math", "final", 92, 100)
	testutil.SaveMark(t, env.MarkRepo, s3.ID, "math", "final", 68, 100)

	req := marksheet.ClassRequest{ClassName: "9", Section: "B", ExamTypeID: "final", AcademicYear: "2024-25"}
	res, err := env.MarksheetSvc.GenerateClass(req)
	require.NoError(t, err)
	require.Len(t, res.Marksheets, 3)

	bulk := func(req marksheet.ClassRequest) httpTest {
		return httpTest{method: http.MethodPost, path: "/api/marksheets/bulk", body: marchallObj(t, req)}
	}

	t.Run("generated", func(t *testing.T) {
		rec := do(app, bulk(req))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Success      bool                   `json:"success"`
			Data         []marksheet.Marksheet  `json:"data"`
			Message      string                 `json:"message"`
			ClassTeacher string                 `json:"classTeacher"`
			Summary      marksheet.ClassSummary `json:"summary"`
		}
		decode(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Generated 3 marksheets for class 9-B", resp.Message)
		assert.Equal(t, "Mr. Suresh Bansal", resp.ClassTeacher)
		assert.Equal(t, res.Marksheets, resp.Data)
		assert.Equal(t, marksheet.ClassSummary{
			Students:          4,
			Appeared:          3,
			Passed:            2,
			Failed:            1,
			PassPercentage:    66.67,
			AveragePercentage: 63.33,
			HighestPercentage: 92,
			LowestPercentage:  30,
		}, resp.Summary)

		var order []string
		for _, ms := range resp.Data {
			order = append(order, ms.RollNo)
		}
		assert.Equal(t, []string{"0002", "0003", "0001"}, order)
	})

	t.Run("bulk matches single", func(t *testing.T) {
		for _, ms := range res.Marksheets {
			single, err := env.MarksheetSvc.Generate(marksheet.Request{StudentID: ms.StudentID, ExamTypeID: "final", AcademicYear: "2024-25"})
			require.NoError(t, err)
			assert.Equal(t, ms, single)
		}
	})

	t.Run("empty roster", func(t *testing.T) {
		empty := req
		empty.ExamTypeID = "unit-test-2"
		rec := do(app, bulk(empty))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Success bool                   `json:"success"`
			Data    []marksheet.Marksheet  `json:"data"`
			Message string                 `json:"message"`
			Summary marksheet.ClassSummary `json:"summary"`
		}
		decode(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Empty(t, resp.Data)
		assert.Equal(t, "No marksheets generated: no student of class 9-B has marks for Unit Test 2", resp.Message)
		assert.Equal(t, 4, resp.Summary.Students)
		assert.Equal(t, 0, resp.Summary.Appeared)
	})

	noStudents := req
	noStudents.ClassName = "6"
	unknownExam := req
	unknownExam.ExamTypeID = "olympiad"

	tests := []httpTest{
		func() httpTest {
			tt := bulk(noStudents)
			tt.name = "no students"
			tt.wantCode = http.StatusNotFound
			tt.wantData = failure(t, "No students found in the specified class and section", nil)
			return tt
		}(),
		func() httpTest {
			tt := bulk(unknownExam)
			tt.name = "unknown exam type"
			tt.wantCode = http.StatusNotFound
			tt.wantData = failure(t, "exam type not found", nil)
			return tt
		}(),
		{
			name: "missing fields", method: http.MethodPost, path: "/api/marksheets/bulk", body: []byte(`{"className": "9"}`),
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Validation failed", map[string]string{
				"section":      "this field is required",
				"examTypeId":   "this field is required",
				"academicYear": "this field is required",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}

	t.Run("export", func(t *testing.T) {
		path := "/api/marksheets/bulk/export?className=9&section=B&examTypeId=final&academicYear=2024-25"
		rec := do(app, httpTest{path: path})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, exportsvc.ContentTypeXLSX, rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=Result_9_B_Final_Examination_2024_25.xlsx", rec.Header().Get("Content-Disposition"))

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows("Result")
		require.NoError(t, err)
		require.Len(t, rows, 6) // title, class teacher, headers, 3 students
		assert.Equal(t, []string{"Class Teacher: Mr. Suresh Bansal"}, rows[1])
		assert.Equal(t, []string{"1", "0002", "Diya Singh"}, rows[3][:3])
	})

	t.Run("export no students", func(t *testing.T) {
		tt := httpTest{
			path:     "/api/marksheets/bulk/export?className=6&section=B&examTypeId=final&academicYear=2024-25",
			wantCode: http.StatusNotFound,
			wantData: failure(t, "No students found in the specified class and section", nil),
		}
		checkCodeAndData(t, tt, do(app, tt))
	})
}
