// Package companyscan extracts company names from job-listing web pages:
// Indeed and LinkedIn search and job pages, plus locally saved HTML
// snapshots used to bypass login walls.
//
// This package contains domain types, interfaces, and the pure text
// pipeline (normalization, noise filtering, order-preserving
// deduplication) following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, fs/, csv/).
package companyscan
