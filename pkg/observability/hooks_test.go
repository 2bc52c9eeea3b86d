package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Position hooks
	p := NoopPositionHooks{}
	p.OnComputeStart("bottom", 3)
	p.OnMiddleware("flip", 1, time.Millisecond, nil)
	p.OnReset("flip", "top", false)
	p.OnComputeComplete("top", 1, time.Millisecond, errors.New("boom"))

	// Scene hooks
	s := NoopSceneHooks{}
	s.OnSceneLoad("scene.toml", "toml", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Position().(NoopPositionHooks); !ok {
		t.Error("Position() should return NoopPositionHooks by default")
	}
	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Scene() should return NoopSceneHooks by default")
	}

	// Set custom hooks
	customPosition := &testPositionHooks{}
	SetPositionHooks(customPosition)
	if Position() != customPosition {
		t.Error("SetPositionHooks should set custom hooks")
	}

	customScene := &testSceneHooks{}
	SetSceneHooks(customScene)
	if Scene() != customScene {
		t.Error("SetSceneHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Position().(NoopPositionHooks); !ok {
		t.Error("Reset() should restore NoopPositionHooks")
	}
	if _, ok := Scene().(NoopSceneHooks); !ok {
		t.Error("Reset() should restore NoopSceneHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPositionHooks{}
	SetPositionHooks(custom)

	// Setting nil should be ignored
	SetPositionHooks(nil)

	if Position() != custom {
		t.Error("SetPositionHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPositionHooks struct{ NoopPositionHooks }
type testSceneHooks struct{ NoopSceneHooks }
