// Package render draws the on-screen part of a host frame, either as
// styled terminal text or as a PNG snapshot.
package render
