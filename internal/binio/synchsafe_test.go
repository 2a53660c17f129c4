package binio

import "testing"

func TestDecodeSynchsafe(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  uint32
	}{
		{
			name:  "zero",
			input: []byte{0x00, 0x00, 0x00, 0x00},
			want:  0,
		},
		{
			name:  "small value",
			input: []byte{0x00, 0x00, 0x00, 0x10},
			want:  16,
		},
		{
			name:  "carries across bytes",
			input: []byte{0x00, 0x00, 0x01, 0x7F},
			want:  255,
		},
		{
			name:  "all bits set",
			input: []byte{0x7F, 0x7F, 0x7F, 0x7F},
			want:  0x0FFFFFFF,
		},
		{
			name:  "top bits masked off",
			input: []byte{0xFF, 0xFF, 0xFF, 0xFF},
			want:  0x0FFFFFFF,
		},
		{
			name:  "single byte verbatim",
			input: []byte{0x42},
			want:  0x42,
		},
		{
			name:  "wrong length",
			input: []byte{0x01, 0x02},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeSynchsafe(tt.input); got != tt.want {
				t.Errorf("DecodeSynchsafe(% x) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// Synchsafe decoding must be injective over 4-byte inputs with the top bit
// of every byte cleared, and results must fit in 28 bits.
func TestDecodeSynchsafe_Injective(t *testing.T) {
	seen := make(map[uint32][4]byte)

	// Exhaustive over the two low bytes, spot values for the high bytes.
	highs := []byte{0x00, 0x01, 0x3F, 0x7F}
	for _, b0 := range highs {
		for _, b1 := range highs {
			for b2 := byte(0); b2 < 0x80; b2++ {
				for b3 := byte(0); b3 < 0x80; b3 += 7 {
					in := [4]byte{b0, b1, b2, b3}
					got := DecodeSynchsafe(in[:])
					if got > 0x0FFFFFFF {
						t.Fatalf("DecodeSynchsafe(% x) = %d exceeds 28 bits", in, got)
					}
					if prev, ok := seen[got]; ok && prev != in {
						t.Fatalf("collision: % x and % x both decode to %d", prev, in, got)
					}
					seen[got] = in
				}
			}
		}
	}
}

func TestDecodeUint32(t *testing.T) {
	if got := DecodeUint32([]byte{0x00, 0x00, 0x02, 0x01}); got != 513 {
		t.Errorf("DecodeUint32 = %d, want 513", got)
	}
	if got := DecodeUint32([]byte{0x80, 0x00, 0x00, 0x00}); got != 0x80000000 {
		t.Errorf("DecodeUint32 = %d, want %d", got, uint32(0x80000000))
	}
	if got := DecodeUint32([]byte{0x01}); got != 0 {
		t.Errorf("DecodeUint32 with short input = %d, want 0", got)
	}
}
