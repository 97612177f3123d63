package mask_test

import (
	"testing"

	"go-hrm/internal/shared/mask"

	"github.com/stretchr/testify/assert"
)

func TestSensitive(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"   ":          "",
		"123":          "***",
		"1234":         "****",
		"VN001":        "*N001",
		"079201001234": "********1234",
	}
	for in, want := range cases {
		assert.Equal(t, want, mask.Sensitive(in), in)
	}
}
