//go:build unit

package pushchannel_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/infra/pushchannel"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/usecase/shared"
	"waste-dashboard/tests/common/upstreamtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		frame   string
		want    bin.WeightUpdate
		ok      bool
		wantErr bool
	}{
		{
			name:  "binWeightUpdated",
			frame: `{"event":"binWeightUpdated","data":{"associateBin":"bin-1","currentWeight":12.5}}`,
			want:  bin.WeightUpdate{BinID: "bin-1", Weight: 12.5},
			ok:    true,
		},
		{
			name:  "wasteUpdateのweight",
			frame: `{"event":"wasteUpdate","data":{"associateBin":"bin-2","weight":3}}`,
			want:  bin.WeightUpdate{BinID: "bin-2", Weight: 3},
			ok:    true,
		},
		{
			name:  "関係ないイベント",
			frame: `{"event":"heartbeat","data":{}}`,
		},
		{name: "JSONでない", frame: `not json`, wantErr: true},
		{name: "重量なし", frame: `{"event":"binWeightUpdated","data":{"associateBin":"bin-1"}}`, wantErr: true},
		{name: "ビンIDなし", frame: `{"event":"binWeightUpdated","data":{"currentWeight":1}}`, wantErr: true},
		{name: "負の重量", frame: `{"event":"binWeightUpdated","data":{"associateBin":"bin-1","currentWeight":-2}}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := pushchannel.DecodeFrame([]byte(tt.frame))
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newChannel(t *testing.T, upstream *upstreamtest.Server) *pushchannel.Channel {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Upstream.PushURL = upstream.PushURL()
	return pushchannel.New(cfg.Upstream, cfg.Telemetry, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func receive(t *testing.T, sub shared.Subscription) bin.WeightUpdate {
	t.Helper()
	select {
	case u, ok := <-sub.Updates():
		require.True(t, ok, "updates closed unexpectedly")
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("no update received")
		return bin.WeightUpdate{}
	}
}

func TestSubscribe(t *testing.T) {
	t.Run("空の支店は購読できない", func(t *testing.T) {
		_, err := newChannel(t, upstreamtest.New(t)).Subscribe(context.Background(), " ")
		require.ErrorIs(t, err, pushchannel.ErrEmptyBranch)
	})

	t.Run("更新を受け取り、不正なフレームは読み飛ばす", func(t *testing.T) {
		upstream := upstreamtest.New(t)
		sub, err := newChannel(t, upstream).Subscribe(context.Background(), "branch-1")
		require.NoError(t, err)
		defer sub.Close()

		upstream.WaitSubscribed(t, "branch-1")
		upstream.PushRaw(t, "branch-1", map[string]any{"event": "binWeightUpdated", "data": map[string]any{"associateBin": ""}})
		upstream.Push(t, "branch-1", pushchannel.EventBinWeightUpdated, map[string]any{"associateBin": "bin-1", "currentWeight": 7})

		assert.Equal(t, bin.WeightUpdate{BinID: "bin-1", Weight: 7}, receive(t, sub))
	})

	t.Run("切断後に再接続する", func(t *testing.T) {
		upstream := upstreamtest.New(t)
		sub, err := newChannel(t, upstream).Subscribe(context.Background(), "branch-1")
		require.NoError(t, err)
		defer sub.Close()

		upstream.WaitSubscribed(t, "branch-1")
		upstream.DropPushConnections()
		upstream.WaitSubscribed(t, "branch-1")

		upstream.Push(t, "branch-1", pushchannel.EventWasteUpdate, map[string]any{"associateBin": "bin-9", "weight": 1.25})
		assert.Equal(t, bin.WeightUpdate{BinID: "bin-9", Weight: 1.25}, receive(t, sub))
	})

	t.Run("Closeで更新チャネルが閉じる", func(t *testing.T) {
		upstream := upstreamtest.New(t)
		sub, err := newChannel(t, upstream).Subscribe(context.Background(), "branch-1")
		require.NoError(t, err)
		upstream.WaitSubscribed(t, "branch-1")

		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		select {
		case _, ok := <-sub.Updates():
			assert.False(t, ok)
		case <-time.After(2 * time.Second):
			t.Fatal("updates not closed")
		}
	})

	t.Run("上流がなくてもキャンセルで止まる", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Upstream.PushURL = "ws://127.0.0.1:1/ws"
		ch := pushchannel.New(cfg.Upstream, cfg.Telemetry, slog.New(slog.NewTextHandler(io.Discard, nil)))

		ctx, cancel := context.WithCancel(context.Background())
		sub, err := ch.Subscribe(ctx, "branch-1")
		require.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
		cancel()

		done := make(chan struct{})
		go func() {
			_ = sub.Close()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("subscription did not stop")
		}
	})
}
