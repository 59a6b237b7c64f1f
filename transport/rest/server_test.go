package rest

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	return strconv.Itoa(port)
}

func TestStart(t *testing.T) {
	t.Run("Stops cleanly when ctx is done", func(t *testing.T) {
		// Given: a running server
		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		port := freePort(t)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- Start(ctx, logger, port) }()

		require.Eventually(t, func() bool {
			resp, err := http.Get("http://127.0.0.1:" + port + "/ping")
			if err != nil {
				return false
			}
			_ = resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 5*time.Second, 50*time.Millisecond)

		// When: the context is canceled
		cancel()

		// Then: Start returns without an error
		select {
		case err := <-errCh:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Busy port", func(t *testing.T) {
		listener, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		t.Cleanup(func() { _ = listener.Close() })
		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err = Start(ctx, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), port)

		require.ErrorContains(t, err, "failed to start server")
	})
}
