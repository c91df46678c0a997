package assert

import (
	"testing"

	testifyassert "github.com/stretchr/testify/assert"
)

func TestT(t *testing.T) {

	testifyassert.NotPanics(t, func() { T(true, "never shown") })
	testifyassert.PanicsWithValue(t, "Assert failed: value was 5", func() { T(false, "value was %d", 5) })
}
