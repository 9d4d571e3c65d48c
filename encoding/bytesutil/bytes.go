// Package bytesutil defines helper methods for converting between byte slices
// and the fixed-size values used as database keys and roots.
package bytesutil

import "encoding/binary"

// ToBytes32 is a convenience method for converting a byte slice to a fix
// sized 32 byte array. This method will truncate the input if it is larger
// than 32 bytes.
func ToBytes32(x []byte) [32]byte {
	var y [32]byte
	copy(y[:], x)
	return y
}

// Uint64ToBytesBigEndian conversion.
func Uint64ToBytesBigEndian(i uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, i)
	return buf
}

// BytesToUint64BigEndian conversion. Returns 0 if empty bytes or byte slice
// with length less than 8.
func BytesToUint64BigEndian(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Uint64ToBytesLittleEndian conversion.
func Uint64ToBytesLittleEndian(i uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, i)
	return buf
}

// FromBytes8 returns an integer which is decoded from a byte slice containing
// at most 8 bytes in little endian order.
func FromBytes8(x []byte) uint64 {
	if len(x) < 8 {
		var b [8]byte
		copy(b[:], x)
		return binary.LittleEndian.Uint64(b[:])
	}
	return binary.LittleEndian.Uint64(x[:8])
}
