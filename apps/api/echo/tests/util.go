package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/matokeo/apps/api/echo"
	"github.com/trezcool/matokeo/core"
	logsvc "github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/tests"
)

func setup(t *testing.T) (Server, *testutil.Env) {
	env := testutil.NewEnv()

	conf := &core.Config{
		Env:        "TEST",
		TestMode:   true,
		AppName:    "Matokeo",
		SchoolName: "Matokeo Public School",
		Server:     core.ServerConfig{DisableReqLogs: true},
	}
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "API : ", 0), conf)
	logger.Enable(false)

	app := NewServer(
		ServerDeps{
			Conf:         conf,
			Logger:       logger,
			CatalogSvc:   env.CatalogSvc,
			StudentSvc:   env.StudentSvc,
			MarkSvc:      env.MarkSvc,
			MarksheetSvc: env.MarksheetSvc,
			Validate:     env.Validate,
			Translator:   env.Translator,
		},
	)
	return app, env
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
	extra    interface{}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func do(app Server, tt httpTest) *httptest.ResponseRecorder {
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req, rec := newRequest(method, tt.path, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func success(t *testing.T, data interface{}, msg string) []byte {
	return marchallObj(t, Response{Success: true, Data: data, Message: msg})
}

func failure(t *testing.T, errMsg string, fields map[string]string) []byte {
	return marchallObj(t, Response{Success: false, Error: errMsg, Fields: fields})
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	assert.Equal(t, wantCode, rec.Code, "status code")
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode() failed: %v; body %s", err, rec.Body.String())
	}
}
