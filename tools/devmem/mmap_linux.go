//go:build linux

package devmem

import (
	"os"

	"golang.org/x/sys/unix"
)

func mapRegs(path string, base int64, size int) (mem []byte, unmap func() error, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	pagesize := int64(os.Getpagesize())
	off := base % pagesize
	page, err := unix.Mmap(int(f.Fd()), base-off, int(off)+size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return page[off:], func() error { return unix.Munmap(page) }, nil
}
