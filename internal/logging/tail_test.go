package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"moviedb/internal/logging"
)

func TestTailLastLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviedb.log")
	if err := os.WriteFile(path, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	var got []string
	if err := logging.Tail(context.Background(), path, logging.TailOptions{Lines: 2}, func(line string) {
		got = append(got, line)
	}); err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("unexpected lines: %#v", got)
	}
}

func TestTailMissingFile(t *testing.T) {
	called := false
	err := logging.Tail(context.Background(), filepath.Join(t.TempDir(), "none.log"), logging.TailOptions{Lines: 5}, func(string) {
		called = true
	})
	if err != nil || called {
		t.Fatalf("expected silent no-op, got err=%v called=%v", err, called)
	}
}

func TestTailFollowPicksUpAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviedb.log")
	if err := os.WriteFile(path, []byte("start\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var (
		mu    sync.Mutex
		lines []string
	)
	seen := make(chan struct{}, 4)
	done := make(chan error, 1)
	go func() {
		done <- logging.Tail(ctx, path, logging.TailOptions{Lines: 1, Follow: true, Poll: 20 * time.Millisecond}, func(line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
			seen <- struct{}{}
		})
	}()

	<-seen
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open append: %v", err)
	}
	if _, err := f.WriteString("later\n"); err != nil {
		t.Fatalf("append log: %v", err)
	}
	_ = f.Close()

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("follow did not pick up appended line")
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(lines) != 2 || lines[0] != "start" || lines[1] != "later" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}
