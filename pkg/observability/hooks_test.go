package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "bfs")
	p.OnGenerateComplete(ctx, "bfs", 12, false, time.Millisecond, nil)

	pb := NoopPlaybackHooks{}
	pb.OnAction("forward", 1, 5)
	pb.OnFinished("bfs", 5)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "sequence")
	c.OnCacheMiss(ctx, "sequence")
	c.OnCacheSet(ctx, "sequence", 1024)

	s := NoopServerHooks{}
	s.OnResponse("GET", "/api/topics", 200, time.Millisecond)
	s.OnSessionOpen("id")
	s.OnSessionClose("id", time.Second)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Playback().(NoopPlaybackHooks); !ok {
		t.Error("Playback() should return NoopPlaybackHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Error("Server() should return NoopServerHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customPlayback := &testPlaybackHooks{}
	SetPlaybackHooks(customPlayback)
	if Playback() != customPlayback {
		t.Error("SetPlaybackHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customServer := &testServerHooks{}
	SetServerHooks(customServer)
	if Server() != customServer {
		t.Error("SetServerHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

var errTest = errors.New("boom")

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testPlaybackHooks struct{ NoopPlaybackHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testServerHooks struct{ NoopServerHooks }
