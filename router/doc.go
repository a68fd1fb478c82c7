// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

Routes use Go 1.22+ method/path ServeMux patterns and wrap every
application handler in request logging:

	mux := router.NewRouter(db, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))

See package handlers for what each route does.
*/
package router
