package binio

import "encoding/binary"

// DecodeSynchsafe decodes a synchsafe integer (7 usable bits per byte).
// ID3v2 clears bit 7 of every byte so tag sizes cannot produce false audio
// sync patterns; the value is base-128 big-endian and fits in 28 bits.
//
// A 1-byte operand is returned verbatim (degenerate form used by some
// single-byte size fields). Any other length decodes to 0.
func DecodeSynchsafe(b []byte) uint32 {
	switch len(b) {
	case 1:
		return uint32(b[0])
	case 4:
		return uint32(b[0]&0x7F)<<21 |
			uint32(b[1]&0x7F)<<14 |
			uint32(b[2]&0x7F)<<7 |
			uint32(b[3]&0x7F)
	default:
		return 0
	}
}

// DecodeUint32 decodes a plain big-endian 32-bit integer. ID3v2.3 frame
// sizes use this form; only the tag size itself is synchsafe in v2.3.
func DecodeUint32(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// ReadSynchsafe reads a 4-byte synchsafe integer from r.
func ReadSynchsafe(r *Reader, what string) (uint32, error) {
	b, err := r.Take(4, what)
	if err != nil {
		return 0, err
	}
	return DecodeSynchsafe(b), nil
}
