package render

import "testing"

func TestFrameSetBounds(t *testing.T) {
	f := NewFrame()
	f.Set(-1, 0, 0xffffff)
	f.Set(0, -1, 0xffffff)
	f.Set(Width, 0, 0xffffff)
	f.Set(0, Height, 0xffffff)
	if counts := countColors(f); counts[0] != Width*Height {
		t.Error("out-of-bounds Set wrote a pixel")
	}

	f.Set(3, 4, 0xabcdef)
	if f[4][3] != 0xabcdef {
		t.Error("in-bounds Set did not write")
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame()
	f[10][20] = 0x123456
	f.Clear()
	if f[10][20] != 0 {
		t.Error("Clear left a pixel")
	}
}

func TestFrameRGBA(t *testing.T) {
	f := NewFrame()
	f[0][0] = 0x112233
	f[0][1] = 0xffffff

	pix := f.RGBA(nil)
	if len(pix) != Width*Height*4 {
		t.Fatalf("len = %d, want %d", len(pix), Width*Height*4)
	}
	if pix[0] != 0x11 || pix[1] != 0x22 || pix[2] != 0x33 || pix[3] != 0xff {
		t.Errorf("pixel 0 = %v, want [11 22 33 ff]", pix[:4])
	}
	if pix[4] != 0xff || pix[7] != 0xff {
		t.Errorf("pixel 1 = %v, want opaque white", pix[4:8])
	}

	// The buffer is reused when large enough.
	again := f.RGBA(pix)
	if &again[0] != &pix[0] {
		t.Error("RGBA reallocated a sufficient buffer")
	}
}
