// Package board holds the in-memory state of the photo board: boards, the
// images that belong to them, which board is selected, and which entries were
// created or changed locally but not yet acknowledged by the backend.
//
// State is kept in one store per entity type, keyed by id, where every entry
// carries a Status. "Dirty" views are derived from the status, so they are
// always a subset of the authoritative view. Locally created entities receive
// temporary negative ids (see TempIDs) that are reconciled against
// server-assigned ids by Commit.
//
// View performs no I/O. Callers fetch data through their own collaborators
// and feed the results in with the Apply* methods.
package board
