//go:build darwin

package sysinfo

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit

#import <AppKit/AppKit.h>

// mainScreenSize reports the main screen in points, 0 when there is none.
void mainScreenSize(int *w, int *h) {
    NSScreen *s = [NSScreen mainScreen];
    *w = 0;
    *h = 0;
    if (s != nil) {
        *w = (int)s.frame.size.width;
        *h = (int)s.frame.size.height;
    }
}
*/
import "C"

// GetScreenDimensions returns the main screen size in points.
func GetScreenDimensions() (int, int, error) {
	var w, h C.int
	C.mainScreenSize(&w, &h)
	if w == 0 || h == 0 {
		return 0, 0, ErrNoScreen
	}
	return int(w), int(h), nil
}
