//go:build windows

package term

import "golang.org/x/sys/windows"

func getSize(fd uintptr) (Size, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return Size{}, err
	}
	// Visible window, not the whole scrollback buffer.
	return Size{
		Cols: int(info.Window.Right - info.Window.Left + 1),
		Rows: int(info.Window.Bottom - info.Window.Top + 1),
	}, nil
}
