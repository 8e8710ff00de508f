package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "-", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}

func TestTimeLogsOperation(t *testing.T) {
	buf := captureLog(t)
	ctx := WithRequestID(context.Background(), "r-1")

	var err error
	Time(ctx, "repo.List")(&err)
	assert.Contains(t, buf.String(), "req_id=r-1 op=repo.List")
	assert.NotContains(t, buf.String(), "err=")

	buf.Reset()
	err = errors.New("boom")
	Time(ctx, "repo.List")(&err)
	assert.Contains(t, buf.String(), "err=boom")
}
