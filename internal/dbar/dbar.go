package dbar

import (
	"encoding/binary"
	"fmt"
	"os"
)

const (
	headerSize = 13
	trackSize  = 9
)

// Header opens every response block in a dBAR file: the track count
// followed by the two AccurateRip disc IDs and the FreeDB disc ID.
type Header struct {
	TrackCount int    `json:"track_count"`
	ID1        uint32 `json:"ar_id1"`
	ID2        uint32 `json:"ar_id2"`
	FreeDB     uint32 `json:"freedb_id"`
}

func (h Header) String() string {
	return fmt.Sprintf("%03d-%08x-%08x-%08x", h.TrackCount, h.ID1, h.ID2, h.FreeDB)
}

// Track is one track record of a response: a confidence counter and the
// two AccurateRip checksums the database knows for the track.
type Track struct {
	Confidence int    `json:"confidence"`
	V1         uint32 `json:"checksum_v1"`
	V2         uint32 `json:"checksum_v2"`
}

// Response is one block of a dBAR file. A file concatenates one response
// per pressing the database has seen, all sharing the same header.
type Response struct {
	Header Header  `json:"header"`
	Tracks []Track `json:"tracks"`
}

// Parse decodes the binary contents of a dBAR file into its responses.
// Every header must repeat the first one and every response must carry
// exactly the track count the header announces. Any violation means the
// data cannot be trusted, so all responses are discarded.
func Parse(data []byte) ([]Response, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("dbar: empty response data")
	}

	var responses []Response
	for len(data) > 0 {
		if len(data) < headerSize {
			return nil, fmt.Errorf("dbar: truncated header: %d bytes left", len(data))
		}
		header := Header{
			TrackCount: int(data[0]),
			ID1:        binary.LittleEndian.Uint32(data[1:5]),
			ID2:        binary.LittleEndian.Uint32(data[5:9]),
			FreeDB:     binary.LittleEndian.Uint32(data[9:13]),
		}
		if header.TrackCount == 0 {
			return nil, fmt.Errorf("dbar: header %s announces no tracks", header)
		}
		if len(responses) > 0 && header != responses[0].Header {
			return nil, fmt.Errorf("dbar: header %s does not repeat %s",
				header, responses[0].Header)
		}
		data = data[headerSize:]

		tracks := make([]Track, 0, header.TrackCount)
		for i := 0; i < header.TrackCount; i++ {
			if len(data) < trackSize {
				return nil, fmt.Errorf("dbar: truncated track record: %d bytes left", len(data))
			}
			tracks = append(tracks, Track{
				Confidence: int(data[0]),
				V1:         binary.LittleEndian.Uint32(data[1:5]),
				V2:         binary.LittleEndian.Uint32(data[5:9]),
			})
			data = data[trackSize:]
		}
		responses = append(responses, Response{Header: header, Tracks: tracks})
	}
	return responses, nil
}

// ParseFile reads and decodes a dBAR file from disk.
func ParseFile(path string) ([]Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dbar: %w", err)
	}
	return Parse(data)
}

// Verify checks that the responses were issued for the disc identified by
// the given track count and disc IDs.
func Verify(responses []Response, trackCount int, id1, id2, freedb uint32) error {
	if len(responses) == 0 {
		return fmt.Errorf("dbar: no responses to verify")
	}
	want := Header{TrackCount: trackCount, ID1: id1, ID2: id2, FreeDB: freedb}
	if got := responses[0].Header; got != want {
		return fmt.Errorf("dbar: response header %s does not match disc %s", got, want)
	}
	return nil
}
