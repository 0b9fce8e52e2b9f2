package logging

import "testing"

func TestNewQuietIsNoop(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	// A nop logger must not panic and must not be nil.
	if log == nil {
		t.Fatal("New(false): got nil logger")
	}
	log.Info("should not appear anywhere")
}

func TestNewVerboseBuildsDevelopmentLogger(t *testing.T) {
	log, err := New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	if log == nil {
		t.Fatal("New(true): got nil logger")
	}
	log.Info("verbose logger smoke test")
}
