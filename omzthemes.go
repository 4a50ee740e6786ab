// Package omzthemes scrapes the Oh My Zsh themes wiki page into a JSON
// catalog of theme names, preview images and source files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package omzthemes
