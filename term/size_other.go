//go:build !unix && !windows

package term

func getSize(uintptr) (Size, error) {
	return Size{}, ErrUnsupported
}
