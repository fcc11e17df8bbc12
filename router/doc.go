// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table for the Huddleboard API.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	mux := router.NewRouter(db, cfg)
	http.ListenAndServe(addr, mux)

# Route Groups

  - /meetings: meeting CRUD
  - /action-items: action item lifecycle, /action-items/urgent for the
    deadline-sorted urgent list
  - /ideas, /voters: idea CRUD and voting
  - /dashboard/summary: aggregate counters
  - /settings: team settings

All routes except /health and / are wrapped in the logging middleware.
*/
package router
