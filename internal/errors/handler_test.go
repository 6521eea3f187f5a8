package errors

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOutput struct {
	calls []string
}

func (r *recordingOutput) Error(msgs ...string)   { r.calls = append(r.calls, "error:"+msgs[0]) }
func (r *recordingOutput) Warning(msgs ...string) { r.calls = append(r.calls, "warning:"+msgs[0]) }
func (r *recordingOutput) Info(msgs ...string)    { r.calls = append(r.calls, "info:"+msgs[0]) }
func (r *recordingOutput) Success(msgs ...string) { r.calls = append(r.calls, "success:"+msgs[0]) }

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	t.Cleanup(func() { os.Stderr = oldStderr })

	fn()

	require.NoError(t, w.Close())
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}

func TestCLIHandlerForwardsEachLevel(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	h.Error("e")
	h.Warning("w")
	h.Info("i")
	h.Success("s")

	assert.Equal(t, []string{"error:e", "warning:w", "info:i", "success:s"}, out.calls)
}

func TestDefaultCLIHandlerWritesErrorsToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		NewDefaultCLIHandler().Error("outbox unavailable")
	})
	assert.Contains(t, output, "Error:")
	assert.Contains(t, output, "outbox unavailable")
}

func TestReport(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	Report(h, "save preferences", nil)
	assert.Empty(t, out.calls)

	Report(h, "save preferences", stderrors.New("read-only file system"))
	Report(h, "", stderrors.New("boom"))
	Report(nil, "ignored", stderrors.New("boom"))

	assert.Equal(t, []string{
		"error:save preferences: read-only file system",
		"error:boom",
	}, out.calls)
}

func TestTUIHandlerNotifiesAndStores(t *testing.T) {
	var got []Message
	h := NewTUIHandler(func(m Message) { got = append(got, m) })

	h.Info("theme: dark")
	h.Success("sent")

	require.Len(t, got, 2)
	assert.Equal(t, KindInfo, got[0].Kind)
	assert.Equal(t, KindSuccess, got[1].Kind)

	latest, ok := h.Latest()
	require.True(t, ok)
	assert.Equal(t, "sent", latest.Text)
	assert.False(t, latest.Timestamp.IsZero())
}

func TestTUIHandlerHistoryIsBounded(t *testing.T) {
	h := NewTUIHandler(nil)
	h.limit = 3
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Warning(s)
	}

	all := h.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Text)
	assert.Equal(t, "e", all[2].Text)

	all[0].Text = "mutated"
	assert.Equal(t, "c", h.All()[0].Text)
}

func TestTUIHandlerCurrentExpires(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	h := NewTUIHandler(nil)
	h.now = func() time.Time { return clock }

	_, ok := h.Current(5 * time.Second)
	assert.False(t, ok)

	h.Error("could not save")
	msg, ok := h.Current(5 * time.Second)
	require.True(t, ok)
	assert.Equal(t, "could not save", msg.Text)

	clock = clock.Add(5 * time.Second)
	_, ok = h.Current(5 * time.Second)
	assert.False(t, ok)
}

func TestTUIHandlerClear(t *testing.T) {
	h := NewTUIHandler(nil)
	h.Info("x")
	h.Clear()
	_, ok := h.Latest()
	assert.False(t, ok)
	assert.Empty(t, h.All())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "success", KindSuccess.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
