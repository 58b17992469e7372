package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextWithWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx, flush := NewContextWithWriter(context.Background(), true, &buf)

	FromCtx(ctx).Debug().Str("stage", "memorize").Msg("reply selected")
	flush()

	out := buf.String()
	assert.Contains(t, out, "reply selected")
	assert.Contains(t, out, "stage=")
	assert.Contains(t, out, "memorize")
}
