// Package discid derives the disc identifiers used by the lookup
// databases: the FreeDB ID, the MusicBrainz disc ID and the two
// AccurateRip IDs that key dBAR response files.
package discid
