package nes

// memBank is a fixed-range window of mirrored byte storage. An access at any
// address in [start,end] is taken modulo len(data) before indexing, so a
// window narrower than its range repeats: 2KiB system RAM mirrored four
// times across $0000-$1FFF is one memBank with start=0, end=0x1FFF and a
// 2048-byte backing array.
type memBank struct {
	start, end uint16
	data       []byte
}

// newMemBank builds a bank covering [start,end] backed by size bytes. The
// caller is responsible for (end-start+1) being a multiple of size; this is
// an invariant of the construction site; not re-validated here.
func newMemBank(start, end uint16, size int) *memBank {
	return &memBank{
		start: start,
		end:   end,
		data:  make([]byte, size),
	}
}

func (b *memBank) contains(addr uint16) bool {
	return addr >= b.start && addr <= b.end
}

func (b *memBank) index(addr uint16) (int, error) {
	if !b.contains(addr) {
		return 0, &AddressOutOfRangeError{Addr: addr}
	}
	return int(addr-b.start) % len(b.data), nil
}

func (b *memBank) read(addr uint16) (byte, error) {
	i, err := b.index(addr)
	if err != nil {
		return 0, err
	}
	return b.data[i], nil
}

func (b *memBank) write(addr uint16, v byte) error {
	i, err := b.index(addr)
	if err != nil {
		return err
	}
	b.data[i] = v
	return nil
}
