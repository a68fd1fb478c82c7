// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/dayline/models"
	"github.com/danielhkuo/dayline/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected OK body, got %q", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "dayline API v1" {
		t.Errorf("Expected version banner, got %q", w.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	tests := []struct {
		method string
		path   string
	}{
		{"DELETE", "/people"},
		{"PUT", "/questions/abc"},
		{"DELETE", "/insights"},
		{"PUT", "/tasks"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tt.method, tt.path, w.Code)
		}
	}
}

func TestProtectedRoutesRejectMissingPerson(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	tests := []struct {
		method string
		path   string
	}{
		{"GET", "/daily"},
		{"GET", "/insights"},
		{"GET", "/questions"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(tt.method, tt.path, nil, ""))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tt.method, tt.path, w.Code)
		}
	}
}

func TestPathParamRouting(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	personID := testutil.CreateTestPerson(t, conn, "Avery")
	questionID := testutil.CreateTestQuestion(t, conn, personID, "routine", "Exercise", models.TypeCheckbox, "{}", 1)

	mux := NewRouter(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("PATCH", "/questions/"+questionID, models.UpdateQuestionRequest{
		Prompt: testutil.Str("Morning exercise"),
	}, personID))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Question.Prompt != "Morning exercise" {
		t.Errorf("Expected path id routed to the question, got %+v", resp.Question)
	}
}

func TestPeopleRoundTrip(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/people", models.CreatePersonRequest{DisplayName: "Avery"}, ""))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.PersonResponse
	testutil.AssertJSON(t, w, &created)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/session", models.SetSessionRequest{PersonID: created.Person.ID}, ""))
	testutil.AssertStatus(t, w, http.StatusOK)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("GET", "/people", nil, ""))
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.PeopleResponse
	testutil.AssertJSON(t, w, &list)
	if len(list.People) != 1 || list.People[0].DisplayName != "Avery" {
		t.Errorf("Expected created person listed, got %+v", list.People)
	}
}
