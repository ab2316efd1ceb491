// Package store implements the state-and-pagination controller behind the
// movie discovery surface.
//
// A Store owns the trending and search result sets, their pagination
// cursors, the active query and filters, the favorites list, and the
// loading/error flags. It talks to two collaborators: a tmdb.API for
// metadata and a KV for durable favorites and last-search persistence.
//
// The two listing tracks keep independent pagination cursors, so paging
// trending and search in any order never contaminates the other track's
// bounds. Every fetch is tagged with a per-track sequence number; a
// response only applies its effect if it is still the latest fetch issued
// for that track, so a slow superseded request can never overwrite newer
// results.
//
// Favorites are write-through: every mutation mirrors the full list to the
// KV store before returning. A failed durable write is logged but not
// surfaced; the in-memory list remains the source of truth.
package store
