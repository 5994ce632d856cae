package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"student-backend/model"
	"student-backend/store/memstore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st := memstore.New()
	router := chi.NewRouter()
	NewUserController(st, zerolog.Nop()).Register(router)
	NewStudentController(st, zerolog.Nop()).Register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestStudentScenario(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/students", model.Student{
		ID: "S1", FirstName: "Ana", LastName: "Cruz", MiddleName: "", Course: "CS", Year: "2",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Student
	decodeBody(t, resp, &created)
	require.Equal(t, "S1", created.ID)
	require.Equal(t, "Ana", created.FirstName)
	require.Equal(t, "Cruz", created.LastName)
	require.Equal(t, "CS", created.Course)
	require.Equal(t, "2", created.Year)
	require.False(t, created.Oid.IsZero())

	resp = doJSON(t, http.MethodGet, srv.URL+"/students", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var students []model.Student
	decodeBody(t, resp, &students)
	require.Len(t, students, 1)
	require.Equal(t, "S1", students[0].ID)

	resp = doJSON(t, http.MethodPut, srv.URL+"/students/S1", model.Student{
		ID: "S1", FirstName: "Ana", LastName: "Cruz", Course: "CS", Year: "3",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Student
	decodeBody(t, resp, &updated)
	require.Equal(t, "3", updated.Year)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/students/S1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted map[string]string
	decodeBody(t, resp, &deleted)
	require.Equal(t, "Student deleted successfully", deleted["message"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/students", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	students = nil
	decodeBody(t, resp, &students)
	require.Empty(t, students)
}

func TestListStudentsEmptyIsArray(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/students", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestStudentNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/students/S9", model.Student{ID: "S9"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "Student not found", body["message"])

	resp = doJSON(t, http.MethodDelete, srv.URL+"/students/S9", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The failed update must not have created a record.
	resp = doJSON(t, http.MethodGet, srv.URL+"/students", nil)
	var students []model.Student
	decodeBody(t, resp, &students)
	require.Empty(t, students)
}

func TestAddStudentMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/students", strings.NewReader("{not json"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDuplicateStudentIDCreatesSecondRecord(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPost, srv.URL+"/students", model.Student{ID: "S1", Course: "CS"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, http.MethodGet, srv.URL+"/students", nil)
	var students []model.Student
	decodeBody(t, resp, &students)
	require.Len(t, students, 2)
}
