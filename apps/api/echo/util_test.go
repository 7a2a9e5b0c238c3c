package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
)

type testLogger struct {
	errors []string
}

var _ core.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(string, ...interface{}) {}
func (l *testLogger) Info(string, ...interface{})  {}
func (l *testLogger) Warn(string, ...interface{})  {}
func (l *testLogger) Error(msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}
func (l *testLogger) Fatal(msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}

func newTestServer(t *testing.T) (Server, *testLogger) {
	t.Helper()
	validate, translator := core.NewValidator()
	grade.InitValidators(validate, translator)

	logger := &testLogger{}
	s := NewServer(&Options{
		TestMode:       true,
		DisableReqLogs: true,
		DefaultOrder:   grade.OrderDescending,
		Logger:         logger,
		Validate:       validate,
		Translator:     translator,
	})
	return s, logger
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte // JSON
	wantText string // plain text
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	} else {
		assert.Equal(t, tt.wantText, rec.Body.String())
	}
}
