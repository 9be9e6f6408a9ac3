//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package tcellcon

func platformModes() ModeController {
	return NewSoftModes()
}
