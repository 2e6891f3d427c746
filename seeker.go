// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pio

// Derived seek operations, implemented once against the Seeker primitive.

// Rewind seeks back to the beginning of the stream.
func Rewind(s Seeker) error {
	_, err := s.Seek(0, SeekStart)
	return err
}

// StreamPosition returns the current position from the start of the
// stream without moving it.
func StreamPosition(s Seeker) (int64, error) {
	return s.Seek(0, SeekCurrent)
}

// StreamLen returns the length of the stream in bytes, using at most
// three seek operations. On success the position is unchanged; on error
// it is unspecified.
//
// Stream length can change over time, so repeated calls need not agree.
func StreamLen(s Seeker) (int64, error) {
	pos, err := StreamPosition(s)
	if err != nil {
		return 0, err
	}
	end, err := s.Seek(0, SeekEnd)
	if err != nil {
		return 0, err
	}
	// Skip the restoring seek when we were already at the end.
	if pos != end {
		if _, err := s.Seek(pos, SeekStart); err != nil {
			return 0, err
		}
	}
	return end, nil
}
