// Package choice implements a generic carousel selector for three-button
// input surfaces.
//
// A Page presents a fixed ordered list of choices supplied by a Factory.
// The left and right buttons move the selector (wrapping around when
// carousel mode is enabled), and the middle button commits the current
// choice. Items can opt into committing on a middle-button long-press
// before release, which gives them a distinct hold gesture; the release
// that follows such a commit is swallowed so a single physical press
// never commits twice.
//
// The page is a pure event consumer: it owns only the selector position
// and reports resolved selections as Commit values. Rendering is entirely
// the caller's concern.
package choice
