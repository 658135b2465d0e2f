package tga

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"testing"
)

func TestHeaderSize(t *testing.T) {
	if got := binary.Size(Header{}); got != HeaderSize {
		t.Errorf("binary.Size(Header{}) = %d, want %d", got, HeaderSize)
	}
}

func encode(t *testing.T, img *Image, o *Options) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(&buf, img, o); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	dims := [][2]int{{1, 1}, {7, 3}, {16, 16}, {130, 2}, {3, 129}}
	opts := []Options{
		{VerticalFlip: true, RLE: true},
		{VerticalFlip: true, RLE: false},
		{VerticalFlip: false, RLE: true},
		{VerticalFlip: false, RLE: false},
	}
	for _, f := range []Format{Grayscale, RGB, RGBA} {
		for _, d := range dims {
			img := randomImage(rng, d[0], d[1], f)
			for _, o := range opts {
				o := o
				got, err := Decode(bytes.NewReader(encode(t, img, &o)))
				if err != nil {
					t.Fatalf("%v %dx%d %+v: Decode() = %v", f, d[0], d[1], o, err)
				}
				if !got.Equal(img) {
					t.Errorf("%v %dx%d %+v: round trip changed the image", f, d[0], d[1], o)
				}
			}
		}
	}
}

func TestRoundTripDefaultOptions(t *testing.T) {
	img := randomImage(rand.New(rand.NewPCG(9, 9)), 5, 4, RGB)
	data := encode(t, img, nil)
	if data[2] != TypeRLEColor || data[17] != 0x00 {
		t.Errorf("default header type=%d descriptor=%#x, want type 10 descriptor 0x00", data[2], data[17])
	}
	got, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if !got.Equal(img) {
		t.Error("round trip with default options changed the image")
	}
}

func TestEncodeHeader(t *testing.T) {
	tests := []struct {
		name       string
		f          Format
		o          Options
		wantType   uint8
		wantDesc   uint8
		wantDepth  uint8
		wantLength int
	}{
		{"gray raw", Grayscale, Options{}, TypeGray, DescTopToBottom, 8, HeaderSize + 6},
		{"gray rle flipped", Grayscale, Options{VerticalFlip: true, RLE: true}, TypeRLEGray, 0, 8, HeaderSize + 2},
		{"rgb raw flipped", RGB, Options{VerticalFlip: true}, TypeColor, 0, 24, HeaderSize + 18},
		{"rgba rle", RGBA, Options{RLE: true}, TypeRLEColor, DescTopToBottom, 32, HeaderSize + 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(3, 2, tt.f)
			data := encode(t, img, &tt.o)
			if len(data) != tt.wantLength {
				t.Errorf("len = %d, want %d", len(data), tt.wantLength)
			}
			if data[2] != tt.wantType {
				t.Errorf("image type = %d, want %d", data[2], tt.wantType)
			}
			if w := binary.LittleEndian.Uint16(data[12:]); w != 3 {
				t.Errorf("width = %d, want 3", w)
			}
			if h := binary.LittleEndian.Uint16(data[14:]); h != 2 {
				t.Errorf("height = %d, want 2", h)
			}
			if data[16] != tt.wantDepth {
				t.Errorf("pixel depth = %d, want %d", data[16], tt.wantDepth)
			}
			if data[17] != tt.wantDesc {
				t.Errorf("descriptor = %#x, want %#x", data[17], tt.wantDesc)
			}
		})
	}
}

func TestEncodeRLESingleRun(t *testing.T) {
	img := New(4, 4, RGB)
	c := RGBColor(10, 20, 30)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	data := encode(t, img, &Options{VerticalFlip: true, RLE: true})
	got := data[HeaderSize:]
	want := []uint8{143, 30, 20, 10}
	if !bytes.Equal(got, want) {
		t.Errorf("rle data = %v, want %v", got, want)
	}
}

func TestEncodeRLEPackets(t *testing.T) {
	tests := []struct {
		name string
		pix  []uint8
		want []uint8
	}{
		{
			"raw then repeat then raw",
			[]uint8{1, 2, 3, 3, 3, 4},
			[]uint8{1, 1, 2, 130, 3, 0, 4},
		},
		{
			"single pixel",
			[]uint8{9},
			[]uint8{0, 9},
		},
		{
			"pair",
			[]uint8{5, 5},
			[]uint8{129, 5},
		},
		{
			"129 identical",
			bytes.Repeat([]uint8{7}, 129),
			[]uint8{255, 7, 0, 7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(len(tt.pix), 1, Grayscale)
			copy(img.Pix(), tt.pix)
			got := encode(t, img, &Options{RLE: true})[HeaderSize:]
			if !bytes.Equal(got, tt.want) {
				t.Errorf("rle data = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("long raw run splits at 128", func(t *testing.T) {
		pix := make([]uint8, 130)
		for i := range pix {
			pix[i] = uint8(i % 2)
		}
		img := New(len(pix), 1, Grayscale)
		copy(img.Pix(), pix)
		got := encode(t, img, &Options{RLE: true})[HeaderSize:]
		if got[0] != 127 {
			t.Errorf("first packet header = %d, want 127", got[0])
		}
		if got[129] != 1 {
			t.Errorf("second packet header = %d, want 1", got[129])
		}
		if len(got) != 1+128+1+2 {
			t.Errorf("rle data len = %d, want %d", len(got), 1+128+1+2)
		}
	})
}

func TestEncodeInvalid(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, New(0, 3, RGB), nil); !errors.Is(err, ErrDimensions) {
		t.Errorf("Encode(0x3) = %v, want ErrDimensions", err)
	}
}

// rawFile assembles a file by hand for decoder tests.
func rawFile(h Header, payload ...[]uint8) []uint8 {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, h)
	for _, p := range payload {
		buf.Write(p)
	}
	return buf.Bytes()
}

func TestDecodeOrigin(t *testing.T) {
	tests := []struct {
		name string
		desc uint8
		want []uint8
	}{
		{"bottom-left", 0x00, []uint8{3, 4, 1, 2}},
		{"top-left", DescTopToBottom, []uint8{1, 2, 3, 4}},
		{"top-right", DescTopToBottom | DescRightToLeft, []uint8{2, 1, 4, 3}},
		{"bottom-right", DescRightToLeft, []uint8{4, 3, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Header{ImageType: TypeGray, Width: 2, Height: 2, PixelDepth: 8, Descriptor: tt.desc}
			img, err := Decode(bytes.NewReader(rawFile(h, []uint8{1, 2, 3, 4})))
			if err != nil {
				t.Fatalf("Decode() = %v", err)
			}
			if !bytes.Equal(img.Pix(), tt.want) {
				t.Errorf("Pix() = %v, want %v", img.Pix(), tt.want)
			}
		})
	}
}

func TestDecodeSkipsImageID(t *testing.T) {
	h := Header{IDLength: 3, ImageType: TypeColor, Width: 1, Height: 1, PixelDepth: 24, Descriptor: DescTopToBottom}
	img, err := Decode(bytes.NewReader(rawFile(h, []uint8("abc"), []uint8{1, 2, 3})))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if got := img.Get(0, 0); !got.Equal(RGBColor(3, 2, 1)) {
		t.Errorf("Get(0, 0) = %v, want bgr(1,2,3)", got)
	}
	if img.Format() != RGB {
		t.Errorf("Format() = %v, want rgb", img.Format())
	}
}

func TestDecodeRLE(t *testing.T) {
	h := Header{ImageType: TypeRLEGray, Width: 5, Height: 1, PixelDepth: 8, Descriptor: DescTopToBottom}
	img, err := Decode(bytes.NewReader(rawFile(h, []uint8{1, 8, 9, 130, 4})))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if want := []uint8{8, 9, 4, 4, 4}; !bytes.Equal(img.Pix(), want) {
		t.Errorf("Pix() = %v, want %v", img.Pix(), want)
	}
}

func TestDecodeErrors(t *testing.T) {
	gray4 := Header{Width: 2, Height: 2, PixelDepth: 8, Descriptor: DescTopToBottom}
	withType := func(h Header, typ uint8) Header {
		h.ImageType = typ
		return h
	}

	tests := []struct {
		name string
		data []uint8
		want error
	}{
		{"empty", nil, ErrHeader},
		{"short header", make([]uint8, 10), ErrHeader},
		{"zero width", rawFile(Header{ImageType: TypeGray, Height: 1, PixelDepth: 8}), ErrHeader},
		{"color mapped", rawFile(Header{ColorMapType: 1, ImageType: 1, Width: 1, Height: 1, PixelDepth: 8}), ErrUnsupported},
		{"rle color mapped type", rawFile(withType(gray4, 9)), ErrUnsupported},
		{"too many pixels", rawFile(Header{ImageType: TypeColor, Width: 65535, Height: 65535, PixelDepth: 32}), ErrDimensions},
		{"16 bit", rawFile(Header{ImageType: TypeColor, Width: 1, Height: 1, PixelDepth: 16}), ErrUnsupported},
		{"truncated id", rawFile(Header{IDLength: 9, ImageType: TypeGray, Width: 1, Height: 1, PixelDepth: 8}, []uint8{1, 2}), ErrTruncated},
		{"truncated raw", rawFile(withType(gray4, TypeGray), []uint8{1, 2, 3}), ErrTruncated},
		{"truncated rle header", rawFile(withType(gray4, TypeRLEGray), []uint8{129, 7}), ErrTruncated},
		{"truncated rle raw packet", rawFile(withType(gray4, TypeRLEGray), []uint8{3, 1, 2}), ErrTruncated},
		{"truncated rle repeat pixel", rawFile(withType(gray4, TypeRLEGray), []uint8{130}), ErrTruncated},
		{"repeat overflow", rawFile(withType(gray4, TypeRLEGray), []uint8{132, 7}), ErrPacketOverflow},
		{"raw overflow", rawFile(withType(gray4, TypeRLEGray), []uint8{4, 1, 2, 3, 4, 5}), ErrPacketOverflow},
		{"trailing bytes ignored", rawFile(withType(gray4, TypeRLEGray), []uint8{129, 7, 129, 7, 0, 1}), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(bytes.NewReader(tt.data))
			if tt.want == nil {
				if err != nil {
					t.Errorf("Decode() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
			if img != nil {
				t.Error("Decode() returned an image alongside an error")
			}
		})
	}
}
