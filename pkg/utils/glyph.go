package utils

// GlyphLen 根据 UTF-8 首字节返回字形的字节长度（1~4）
// 非法首字节（续字节、0xF8 以上）按单字节处理，不拒绝
func GlyphLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// NextGlyph 从 s[offset:] 取出下一个字形
// 返回字形字符串和字节长度；字符串被截断时长度收缩到剩余字节数
func NextGlyph(s string, offset int) (string, int) {
	if offset >= len(s) {
		return "", 0
	}
	n := GlyphLen(s[offset])
	if offset+n > len(s) {
		n = len(s) - offset
	}
	return s[offset : offset+n], n
}

// SplitGlyphs 将字符串切分为字形序列
func SplitGlyphs(s string) []string {
	glyphs := make([]string, 0, len(s))
	for offset := 0; offset < len(s); {
		g, n := NextGlyph(s, offset)
		glyphs = append(glyphs, g)
		offset += n
	}
	return glyphs
}
