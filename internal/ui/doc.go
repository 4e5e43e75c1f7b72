// Package ui implements the terminal interface: a dashboard with fleet
// statistics plus one table panel per collection, with modal forms for
// creating and editing records and confirmation prompts before deletes.
//
// Rendering helpers (row builders, filtering, value formatting) are kept
// as pure functions so they can be tested without driving a program.
package ui
