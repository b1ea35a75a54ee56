// Package pagesift provides batch cleaning utilities for crawled web pages.
// Its core is a boilerplate detector that finds content blocks repeated
// across a high fraction of pages in a batch (navbars, footers, cookie
// notices) and removes them, leaving the content unique to each page.
// Around that core it offers contact extraction, text statistics,
// deduplication, and export to CSV, JSON, and SQLite.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, trafilatura/).
package pagesift
