// Package toc models a CD table of contents: track offsets, track lengths
// and the lead-out, all in LBA sectors with the lead-in included. Disc IDs
// and rip verification both start from this model.
package toc
