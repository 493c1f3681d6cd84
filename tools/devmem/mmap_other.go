//go:build !linux

package devmem

import "errors"

func mapRegs(path string, base int64, size int) (mem []byte, unmap func() error, err error) {
	return nil, nil, errors.New("devmem: only supported on linux")
}
