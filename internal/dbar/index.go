package dbar

// Match describes where a checksum was found in database responses: how
// many rippers confirmed it, which checksum version matched, and the
// 1-based ordinal of the response that held it.
type Match struct {
	Confidence int
	Version    int
	Response   int
}

// Index maps 1-based track numbers to the checksums the database knows
// for them. Zero checksums and zero-confidence records carry no
// information and are left out.
type Index map[int]map[uint32]Match

// BuildIndex flattens parsed responses into a lookup table. Checksums are
// assumed unique per track; if a later response repeats one, the earlier
// entry wins so the first (usually highest confidence) match is kept.
func BuildIndex(responses []Response) Index {
	index := make(Index)
	for rsp, response := range responses {
		for trk, track := range response.Tracks {
			if track.Confidence == 0 {
				continue
			}
			num := trk + 1
			if index[num] == nil {
				index[num] = make(map[uint32]Match)
			}
			add := func(sum uint32, version int) {
				if sum == 0 {
					return
				}
				if _, seen := index[num][sum]; seen {
					return
				}
				index[num][sum] = Match{
					Confidence: track.Confidence,
					Version:    version,
					Response:   rsp + 1,
				}
			}
			add(track.V1, 1)
			add(track.V2, 2)
		}
	}
	return index
}

// Find reports whether the database knows the checksum for a track.
func (ix Index) Find(track int, sum uint32) (Match, bool) {
	m, ok := ix[track][sum]
	return m, ok
}
