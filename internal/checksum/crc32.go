package checksum

import "hash/crc32"

// CopyCRC32 is the "copy CRC" rippers report: a standard IEEE CRC32 (the
// zlib/gzip polynomial) over the raw sample bytes in stream order.
func CopyCRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// StripSilence removes all zero-valued 16-bit samples from data, compacting
// the surviving samples in place without reordering them. It returns the
// compacted prefix. The input is destroyed, so this must only run after
// every read-only pass over the buffer has finished.
func StripSilence(data []byte) []byte {
	var j int
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			continue
		}
		data[j] = data[i]
		data[j+1] = data[i+1]
		j += 2
	}
	return data[:j]
}
