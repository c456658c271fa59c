// This file is part of the rp2040 kernel.

package bootrom

import "github.com/armkernel/rp2040/internal/kerrors"

// ImageSize is the fixed size of the second-stage bootloader image the
// boot ROM loads from the start of flash: 252 bytes of code plus a
// 4-byte trailing checksum.
const ImageSize = 256

// ChecksumOffset is where the CRC-32/MPEG-2 checksum belongs within the
// 256-byte image, little-endian.
const ChecksumOffset = ImageSize - 4

// Patch computes the CRC-32/MPEG-2 checksum over image[:ChecksumOffset]
// and writes it little-endian into image[ChecksumOffset:]. image must
// be exactly ImageSize bytes.
func Patch(image []byte) error {
	if len(image) != ImageSize {
		return kerrors.Errorf(kerrors.BadImageSize, len(image), ImageSize)
	}

	sum := CRC32MPEG2(image[:ChecksumOffset])
	image[ChecksumOffset+0] = byte(sum)
	image[ChecksumOffset+1] = byte(sum >> 8)
	image[ChecksumOffset+2] = byte(sum >> 16)
	image[ChecksumOffset+3] = byte(sum >> 24)
	return nil
}

// Verify reports whether image's trailing checksum matches the
// CRC-32/MPEG-2 of its first ChecksumOffset bytes.
func Verify(image []byte) bool {
	if len(image) != ImageSize {
		return false
	}
	want := CRC32MPEG2(image[:ChecksumOffset])
	got := uint32(image[ChecksumOffset]) |
		uint32(image[ChecksumOffset+1])<<8 |
		uint32(image[ChecksumOffset+2])<<16 |
		uint32(image[ChecksumOffset+3])<<24
	return got == want
}
