package tga

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxPacket is the longest run one packet header can describe.
const maxPacket = 128

// decodeRLE fills pix from a stream of packets. A header byte h <= 127
// starts a raw packet of h+1 literal pixels; h > 127 repeats the next pixel
// h-127 times.
func decodeRLE(r *bufio.Reader, pix []uint8, bpp int) error {
	npixels := len(pix) / bpp
	var px [4]uint8
	for n := 0; n < npixels; {
		h, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("tga: packet header at pixel %d of %d: %w", n, npixels, ErrTruncated)
		}

		if h <= 127 {
			count := int(h) + 1
			if n+count > npixels {
				return fmt.Errorf("tga: raw packet of %d at pixel %d of %d: %w", count, n, npixels, ErrPacketOverflow)
			}
			if _, err := io.ReadFull(r, pix[n*bpp:(n+count)*bpp]); err != nil {
				return fmt.Errorf("tga: raw packet at pixel %d: %w", n, ErrTruncated)
			}
			n += count
			continue
		}

		count := int(h) - 127
		if n+count > npixels {
			return fmt.Errorf("tga: repeat packet of %d at pixel %d of %d: %w", count, n, npixels, ErrPacketOverflow)
		}
		if _, err := io.ReadFull(r, px[:bpp]); err != nil {
			return fmt.Errorf("tga: repeat packet at pixel %d: %w", n, ErrTruncated)
		}
		for i := 0; i < count; i++ {
			copy(pix[(n+i)*bpp:], px[:bpp])
		}
		n += count
	}
	return nil
}

// encodeRLE writes pix as packets of at most maxPacket pixels. A run turns
// into a repeat packet once two consecutive pixels match; a raw run ends
// just before the first pixel of such a pair.
func encodeRLE(w *bufio.Writer, pix []uint8, bpp int) error {
	npixels := len(pix) / bpp
	for cur := 0; cur < npixels; {
		run := 1
		raw := true
		off := cur * bpp
		for cur+run < npixels && run < maxPacket {
			same := bytes.Equal(pix[off:off+bpp], pix[off+bpp:off+2*bpp])
			if run == 1 {
				raw = !same
			}
			if same && raw {
				run--
				break
			}
			if !same && !raw {
				break
			}
			off += bpp
			run++
		}

		start := cur * bpp
		if raw {
			if err := w.WriteByte(byte(run - 1)); err != nil {
				return err
			}
			if _, err := w.Write(pix[start : start+run*bpp]); err != nil {
				return err
			}
		} else {
			if err := w.WriteByte(byte(run + 127)); err != nil {
				return err
			}
			if _, err := w.Write(pix[start : start+bpp]); err != nil {
				return err
			}
		}
		cur += run
	}
	return nil
}
