// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"net/http"

	"github.com/google/uuid"
)

// ActivePersonCookie is the session cookie naming the selected person.
const ActivePersonCookie = "active_person_id"

// cookieMaxAge keeps the selection for a year
const cookieMaxAge = 60 * 60 * 24 * 365

// NewID creates a random identifier for database records
func NewID() string {
	return uuid.NewString()
}

// SetActivePerson stores the person selection in an httpOnly cookie
func SetActivePerson(w http.ResponseWriter, personID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     ActivePersonCookie,
		Value:    personID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearActivePerson expires the session cookie
func ClearActivePerson(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     ActivePersonCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ActivePersonID returns the selected person ID from the request cookie.
// The second return is false when no person is selected.
func ActivePersonID(r *http.Request) (string, bool) {
	c, err := r.Cookie(ActivePersonCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}
