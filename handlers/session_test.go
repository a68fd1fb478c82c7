// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/dayline/auth"
	"github.com/danielhkuo/dayline/models"
	"github.com/danielhkuo/dayline/testutil"
)

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.ActivePersonCookie {
			return c
		}
	}
	t.Fatal("Expected active person cookie on response")
	return nil
}

func TestSetSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	personID := testutil.CreateTestPerson(t, conn, "Avery")
	handler := NewSessionHandler(conn, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Set(w, testutil.MakeRequest("POST", "/session", models.SetSessionRequest{PersonID: personID}, ""))

	testutil.AssertStatus(t, w, http.StatusOK)

	c := sessionCookie(t, w)
	if c.Value != personID {
		t.Errorf("Expected cookie value %q, got %q", personID, c.Value)
	}
	if !c.HttpOnly || c.Path != "/" || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("Unexpected cookie attributes: %+v", c)
	}
	if c.MaxAge <= 0 {
		t.Errorf("Expected long-lived cookie, got MaxAge %d", c.MaxAge)
	}
}

func TestSetSessionUnknownPerson(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewSessionHandler(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.Set(w, testutil.MakeRequest("POST", "/session", models.SetSessionRequest{PersonID: "nope"}, ""))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSetSessionMissingID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewSessionHandler(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.Set(w, testutil.MakeRequest("POST", "/session", models.SetSessionRequest{}, ""))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestClearSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewSessionHandler(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.Clear(w, testutil.MakeRequest("POST", "/session/clear", nil, "p1"))

	testutil.AssertStatus(t, w, http.StatusOK)

	c := sessionCookie(t, w)
	if c.MaxAge >= 0 {
		t.Errorf("Expected expired cookie, got MaxAge %d", c.MaxAge)
	}
}
