// Package helpchunk harvests the articles of a documentation site and turns
// them into bounded, heading-aligned text chunks for downstream indexing.
// It discovers document URLs from the navigation data embedded in an index
// page, fetches each page with retries, extracts the primary article as
// normalized Markdown and splits it at heading boundaries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package helpchunk
