package hal

import "fmt"

func unpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// expandRGBA writes src as opaque RGBA bytes into dst, which must hold at
// least 4*len(src) bytes.
func expandRGBA(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0], dst[j+1], dst[j+2] = unpackRGB(p)
		dst[j+3] = 0xFF
	}
}

func hexColor(p uint32) string {
	return fmt.Sprintf("#%06X", p&0xFFFFFF)
}

func luma(p uint32) uint32 {
	r, g, b := unpackRGB(p)
	return 299*uint32(r) + 587*uint32(g) + 114*uint32(b)
}
