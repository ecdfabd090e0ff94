// Package pagespec provides a rendered-page structural extraction engine.
// Given a URL it drives a headless browser, fully renders the page, and
// produces a structured document describing the page's design tokens,
// per-element geometry and computed styles, layout landmarks, asset
// inventory, and recurring UI-component patterns across multiple viewports.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, sqlite/, goquery/).
package pagespec
