package render

import "image/color"

// fillCellsRGBA converts cell states into RGBA pixels in buf, one pixel per
// cell. buf must hold at least 4*len(cells) bytes.
func fillCellsRGBA(buf []byte, cells []bool, alive, dead color.RGBA) {
	for i, c := range cells {
		col := dead
		if c {
			col = alive
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// labelOrigin returns the baseline origin that centres a label of the given
// pixel size inside a w x h box whose top-left corner is (x, y).
func labelOrigin(x, y, w, h, textW, textH int) (int, int) {
	return x + (w-textW)/2, y + (h-textH)/2 + textH
}
