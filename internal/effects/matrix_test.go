package effects_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archemasachika7/Algorythm-auth/internal/effects"
)

func TestEngine_FramesAdvance(t *testing.T) {
	engine := effects.NewEngine(8, 6, 5*time.Millisecond)
	require.NoError(t, engine.Start(context.Background()))
	defer engine.Stop()

	frames, unsub := engine.Subscribe()
	defer unsub()

	first := <-frames
	second := <-frames

	assert.Greater(t, second.Tick, first.Tick)
	require.Len(t, first.Rows, 6)
	for _, row := range first.Rows {
		assert.Len(t, []rune(row), 8)
	}
}

func TestEngine_ClampsDegenerateDimensions(t *testing.T) {
	// Zero or negative configuration must not panic the constructor or loop.
	engine := effects.NewEngine(0, -3, 0)
	require.NoError(t, engine.Start(context.Background()))
	defer engine.Stop()

	frames, unsub := engine.Subscribe()
	defer unsub()

	frame := <-frames
	require.Len(t, frame.Rows, 1)
	assert.Len(t, []rune(frame.Rows[0]), 1)
}

func TestEngine_StartTwiceFails(t *testing.T) {
	engine := effects.NewEngine(4, 4, time.Millisecond)
	require.NoError(t, engine.Start(context.Background()))
	defer engine.Stop()

	assert.Error(t, engine.Start(context.Background()))
}

func TestEngine_StopClosesSubscribers(t *testing.T) {
	engine := effects.NewEngine(4, 4, time.Millisecond)
	require.NoError(t, engine.Start(context.Background()))

	frames, unsub := engine.Subscribe()
	defer unsub()

	engine.Stop()

	// Drain: the channel must be closed once the engine stopped.
	for {
		if _, ok := <-frames; !ok {
			return
		}
	}
}

func TestHandler_StreamsFrames(t *testing.T) {
	engine := effects.NewEngine(4, 4, 5*time.Millisecond)
	require.NoError(t, engine.Start(context.Background()))
	defer engine.Stop()

	srv := httptest.NewServer(effects.NewHandler(engine))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	var frame effects.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Len(t, frame.Rows, 4)
}
