// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the active-person session cookie and ID generation.

# Session Cookie

The app tracks one selected person per browser via an httpOnly cookie:

	auth.SetActivePerson(w, personID)
	personID, ok := auth.ActivePersonID(r)
	auth.ClearActivePerson(w)

The cookie is SameSite=Lax, path "/", with a one-year lifetime. Clearing
sets a negative MaxAge so the browser drops it immediately.

This is deliberately not authentication: anyone with access to the
instance can switch people. The cookie only scopes reads and writes to
a person.

# ID Generation

Random UUIDs for database records:

	id := auth.NewID()
*/
package auth
