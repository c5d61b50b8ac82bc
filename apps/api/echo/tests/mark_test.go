package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core/mark"
	"github.com/trezcool/matokeo/tests"
)

type markResponse struct {
	Success bool        `json:"success"`
	Data    []mark.Mark `json:"data"`
	Message string      `json:"message"`
}

func Test_markApi_save(t *testing.T) {
	mark.NowFunc = func() time.Time { return time.Date(2024, 9, 30, 10, 0, 0, 0, time.UTC) }
	defer func() { mark.NowFunc = time.Now }()

	app, env := setup(t)
	s1 := testutil.CreateStudent(t, env.StudentRepo, "0001", "Aarav Patel", "8", "A")
	s2 := testutil.CreateStudent(t, env.StudentRepo, "0002", "Diya Singh", "8", "A")

	entry := func(studentID, subjectID, examTypeID string, obtained interface{}) map[string]interface{} {
		return map[string]interface{}{
			"studentId":     studentID,
			"subjectId":     subjectID,
			"examTypeId":    examTypeID,
			"marksObtained": obtained,
		}
	}

	t.Run("saved", func(t *testing.T) {
		body := marchallObj(t, []interface{}{
			entry(s1.ID, "math", "final", 91),
			entry(s2.ID, "math", "final", 28.5),
		})
		rec := do(app, httpTest{method: http.MethodPost, path: "/api/marks", body: body})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp markResponse
		decode(t, rec, &resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "Updated 2 mark entries", resp.Message)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "A+", resp.Data[0].Grade)
		assert.Equal(t, "F", resp.Data[1].Grade)
		assert.Equal(t, float64(100), resp.Data[0].MaxMarks)
		assert.Equal(t, "2024-09-30", resp.Data[0].EntryDate)
	})

	t.Run("upsert keeps one entry per key", func(t *testing.T) {
		before, err := env.MarkSvc.QueryByStudent(s1.ID, "final")
		require.NoError(t, err)
		require.Len(t, before, 1)

		body := marchallObj(t, []interface{}{entry(s1.ID, "math", "final", 55)})
		rec := do(app, httpTest{method: http.MethodPost, path: "/api/marks", body: body})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		after, err := env.MarkSvc.QueryByStudent(s1.ID, "final")
		require.NoError(t, err)
		require.Len(t, after, 1)
		assert.Equal(t, before[0].ID, after[0].ID)
		assert.Equal(t, float64(55), after[0].MarksObtained)
		assert.Equal(t, "C+", after[0].Grade)
	})

	tests := []httpTest{
		{
			name: "empty batch", method: http.MethodPost, path: "/api/marks", body: []byte(`[]`),
			wantData: success(t, []mark.Mark{}, "Updated 0 mark entries"),
		},
		{
			name: "not an array", method: http.MethodPost, path: "/api/marks", body: []byte(`{"studentId": "x"}`),
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Request body must be an array of mark updates", nil),
		},
		{
			name: "no body", method: http.MethodPost, path: "/api/marks",
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Request body must be an array of mark updates", nil),
		},
		{
			name: "invalid entries", method: http.MethodPost, path: "/api/marks",
			body: marchallObj(t, []interface{}{
				entry(s1.ID, "math", "final", 10),
				map[string]interface{}{"studentId": s1.ID, "subjectId": "science"},
				entry("", "science", "final", -1),
			}),
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "invalid mark entries", map[string]string{
				"[1].examTypeId":    "this field is required",
				"[1].marksObtained": "this field is required",
				"[2].studentId":     "this field is required",
				"[2].marksObtained": "marksObtained must be 0 or greater",
			}),
		},
		{
			name: "above max marks", method: http.MethodPost, path: "/api/marks",
			body: marchallObj(t, []interface{}{
				entry(s1.ID, "math", "unit-test-1", 20),
				entry(s2.ID, "math", "unit-test-1", 30),
			}),
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "invalid mark entries", map[string]string{
				"[1].marksObtained": "marksObtained must be 25 or less",
			}),
		},
		{
			name: "unknown subject", method: http.MethodPost, path: "/api/marks",
			body:     marchallObj(t, []interface{}{entry(s1.ID, "latin", "final", 10)}),
			wantCode: http.StatusNotFound,
			wantData: failure(t, "subject not found", nil),
		},
		{
			name: "unknown exam type", method: http.MethodPost, path: "/api/marks",
			body:     marchallObj(t, []interface{}{entry(s1.ID, "math", "olympiad", 10)}),
			wantCode: http.StatusNotFound,
			wantData: failure(t, "exam type not found", nil),
		},
		{
			name: "unknown student", method: http.MethodPost, path: "/api/marks",
			body: marchallObj(t, []interface{}{
				entry(s2.ID, "english", "final", 70),
				entry("student-lol", "english", "final", 10),
			}),
			wantCode: http.StatusNotFound,
			wantData: failure(t, "student not found", nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}

	// rejected batches write nothing
	marks, err := env.MarkSvc.QueryByStudent(s2.ID, "")
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, "math", marks[0].SubjectID)
	marks, err = env.MarkSvc.QueryByStudent(s1.ID, "unit-test-1")
	require.NoError(t, err)
	assert.Empty(t, marks)
}

func Test_markApi_query(t *testing.T) {
	app, env := setup(t)
	s1 := testutil.CreateStudent(t, env.StudentRepo, "0001", "Aarav Patel", "8", "A")
	s2 := testutil.CreateStudent(t, env.StudentRepo, "0002", "Diya Singh", "8", "A")
	s3 := testutil.CreateStudent(t, env.StudentRepo, "0003", "Kabir Rao", "8", "B")

	m1 := testutil.SaveMark(t, env.MarkRepo, s1.ID, "math", "final", 81, 100)
	m2 := testutil.SaveMark(t, env.MarkRepo, s2.ID, "math", "final", 47, 100)
	m3 := testutil.SaveMark(t, env.MarkRepo, s1.ID, "science", "final", 66, 100)
	m4 := testutil.SaveMark(t, env.MarkRepo, s1.ID, "math", "unit-test-1", 20, 25)
	testutil.SaveMark(t, env.MarkRepo, s3.ID, "math", "final", 99, 100)

	classPath := func(class, section, subject, exam string) string {
		return fmt.Sprintf("/api/marks?className=%s&section=%s&subjectId=%s&examTypeId=%s", class, section, subject, exam)
	}

	tests := []httpTest{
		{
			name: "class", path: classPath("8", "A", "math", "final"),
			wantData: success(t, []mark.Mark{m1, m2}, "Found 2 mark entries"),
		},
		{
			name: "class without marks", path: classPath("8", "A", "hindi", "final"),
			wantData: success(t, []mark.Mark{}, "Found 0 mark entries"),
		},
		{
			name: "class without students", path: classPath("10", "B", "math", "final"),
			wantData: success(t, []mark.Mark{}, "Found 0 mark entries"),
		},
		{
			name: "class query missing params", path: "/api/marks?className=8",
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Validation failed", map[string]string{
				"section":    "this field is required",
				"subjectId":  "this field is required",
				"examTypeId": "this field is required",
			}),
		},
		{
			name: "student", path: "/api/marks/student/" + s1.ID,
			wantData: success(t, []mark.Mark{m1, m3, m4}, "Found 3 mark entries"),
		},
		{
			name: "student & exam", path: "/api/marks/student/" + s1.ID + "?examTypeId=unit-test-1",
			wantData: success(t, []mark.Mark{m4}, "Found 1 mark entries"),
		},
		{
			name: "student without marks", path: "/api/marks/student/" + s2.ID + "?examTypeId=half-yearly",
			wantData: success(t, []mark.Mark{}, "Found 0 mark entries"),
		},
		{
			name: "unknown student", path: "/api/marks/student/student-lol",
			wantCode: http.StatusNotFound,
			wantData: failure(t, "student not found", nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}
}

func Test_markApi_destroy(t *testing.T) {
	app, env := setup(t)
	s := testutil.CreateStudent(t, env.StudentRepo, "0001", "Aarav Patel", "8", "A")
	m := testutil.SaveMark(t, env.MarkRepo, s.ID, "math", "final", 81, 100)

	path := fmt.Sprintf("/api/marks?studentId=%s&subjectId=math&examTypeId=final", s.ID)

	tests := []httpTest{
		{name: "deleted", method: http.MethodDelete, path: path, wantData: success(t, m, "Mark entry deleted successfully")},
		{
			name: "gone", method: http.MethodDelete, path: path,
			wantCode: http.StatusNotFound, wantData: failure(t, "Mark entry not found", nil),
		},
		{
			name: "missing key", method: http.MethodDelete, path: "/api/marks?subjectId=math",
			wantCode: http.StatusBadRequest,
			wantData: failure(t, "Validation failed", map[string]string{
				"studentId":  "this field is required",
				"examTypeId": "this field is required",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, do(app, tt))
		})
	}
}
