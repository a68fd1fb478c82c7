// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewID(t *testing.T) {
	id1 := NewID()
	id2 := NewID()

	if id1 == "" || id2 == "" {
		t.Fatal("Expected non-empty IDs")
	}
	if id1 == id2 {
		t.Error("Expected unique IDs")
	}
	if len(id1) != 36 {
		t.Errorf("Expected UUID string length 36, got %d", len(id1))
	}
}

func TestSetActivePerson(t *testing.T) {
	w := httptest.NewRecorder()
	SetActivePerson(w, "person-123")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != ActivePersonCookie {
		t.Errorf("Expected cookie name %s, got %s", ActivePersonCookie, c.Name)
	}
	if c.Value != "person-123" {
		t.Errorf("Expected cookie value 'person-123', got '%s'", c.Value)
	}
	if !c.HttpOnly {
		t.Error("Expected httpOnly cookie")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Error("Expected SameSite=Lax")
	}
	if c.MaxAge <= 0 {
		t.Errorf("Expected positive MaxAge, got %d", c.MaxAge)
	}
}

func TestClearActivePerson(t *testing.T) {
	w := httptest.NewRecorder()
	ClearActivePerson(w)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("Expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("Expected negative MaxAge to expire cookie, got %d", cookies[0].MaxAge)
	}
}

func TestActivePersonID(t *testing.T) {
	tests := []struct {
		name     string
		cookie   *http.Cookie
		wantID   string
		wantOK   bool
	}{
		{
			name:   "cookie present",
			cookie: &http.Cookie{Name: ActivePersonCookie, Value: "person-123"},
			wantID: "person-123",
			wantOK: true,
		},
		{
			name:   "cookie missing",
			cookie: nil,
			wantOK: false,
		},
		{
			name:   "cookie empty",
			cookie: &http.Cookie{Name: ActivePersonCookie, Value: ""},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/daily", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			id, ok := ActivePersonID(req)
			if ok != tt.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tt.wantOK, ok)
			}
			if id != tt.wantID {
				t.Errorf("Expected id '%s', got '%s'", tt.wantID, id)
			}
		})
	}
}
