package assert

import (
	"fmt"

	"github.com/bloeys/bumpcube/logging"
)

// T panics with the formatted message if check is false.
// Only use it for programmer errors, never to validate loaded data.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	errMsg := fmt.Sprintf(msg, args...)
	logging.ErrLog.Output(2, "Assert failed: "+errMsg)
	panic("Assert failed: " + errMsg)
}
