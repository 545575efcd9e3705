package uinput

import "encoding/binary"

// uinput_user_dev layout, translated from linux/uinput.h.
//
// Bytes (little-endian):
//
//	0-79:      name (NUL-terminated)
//	80-87:     input_id (bustype, vendor, product, version; 4x u16)
//	88-91:     ff_effects_max (u32)
//	92-347:    absmax  (64x i32)
//	348-603:   absmin  (64x i32)
//	604-859:   absfuzz (64x i32)
//	860-1115:  absflat (64x i32)
const (
	maxNameSize = 80
	absCount    = 64
	userDevSize = maxNameSize + 8 + 4 + 4*4*absCount
)

// ffEffectsMax is the number of concurrently uploaded effect slots advertised
// for devices that declare force feedback.
const ffEffectsMax = 16

// encodeUserDev builds the uinput_user_dev setup block for a descriptor.
// Names longer than 79 bytes are truncated to leave room for the NUL.
func encodeUserDev(d Descriptor) []byte {
	b := make([]byte, userDevSize)

	name := d.Name
	if len(name) > maxNameSize-1 {
		name = name[:maxNameSize-1]
	}
	copy(b, name)

	binary.LittleEndian.PutUint16(b[80:82], d.Bustype)
	binary.LittleEndian.PutUint16(b[82:84], d.Vendor)
	binary.LittleEndian.PutUint16(b[84:86], d.Product)
	binary.LittleEndian.PutUint16(b[86:88], d.Version)

	if len(d.Effects) > 0 {
		binary.LittleEndian.PutUint32(b[88:92], ffEffectsMax)
	}

	const (
		absmaxOff  = 92
		absminOff  = absmaxOff + 4*absCount
		absfuzzOff = absminOff + 4*absCount
		absflatOff = absfuzzOff + 4*absCount
	)
	for _, a := range d.Axes {
		if int(a.Code) >= absCount {
			continue
		}
		o := 4 * int(a.Code)
		binary.LittleEndian.PutUint32(b[absmaxOff+o:], uint32(a.Max))
		binary.LittleEndian.PutUint32(b[absminOff+o:], uint32(a.Min))
		binary.LittleEndian.PutUint32(b[absfuzzOff+o:], uint32(a.Fuzz))
		binary.LittleEndian.PutUint32(b[absflatOff+o:], uint32(a.Flat))
	}

	return b
}
