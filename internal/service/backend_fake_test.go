package service

import (
	"context"
	"sync"

	"github.com/flashfusion/studio-api/internal/gemini"
)

// fakeBackend implements gemini.Backend with per-call hooks and counters.
type fakeBackend struct {
	mu           sync.Mutex
	textCalls    int
	imageCalls   int
	composeCalls int
	startCalls   int
	pollCalls    int

	textFn    func(prompt string) (string, error)
	imageFn   func(prompt, ratio string) (gemini.Blob, error)
	composeFn func(base, overlay gemini.Blob, instruction string) (gemini.Blob, error)
	startFn   func(prompt, ratio string) (string, error)
	pollFn    func(op string) (bool, gemini.Blob, error)
}

func (f *fakeBackend) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.textCalls++
	f.mu.Unlock()
	if f.textFn != nil {
		return f.textFn(prompt)
	}
	return "generated post", nil
}

func (f *fakeBackend) GenerateImage(ctx context.Context, prompt, ratio string) (gemini.Blob, error) {
	f.mu.Lock()
	f.imageCalls++
	f.mu.Unlock()
	if f.imageFn != nil {
		return f.imageFn(prompt, ratio)
	}
	return gemini.Blob{Data: []byte("image-bytes"), MIME: "image/jpeg"}, nil
}

func (f *fakeBackend) ComposeImage(ctx context.Context, base, overlay gemini.Blob, instruction string) (gemini.Blob, error) {
	f.mu.Lock()
	f.composeCalls++
	f.mu.Unlock()
	if f.composeFn != nil {
		return f.composeFn(base, overlay, instruction)
	}
	return gemini.Blob{Data: []byte("composed-bytes"), MIME: "image/jpeg"}, nil
}

func (f *fakeBackend) StartVideo(ctx context.Context, prompt, ratio string) (string, error) {
	f.mu.Lock()
	f.startCalls++
	f.mu.Unlock()
	if f.startFn != nil {
		return f.startFn(prompt, ratio)
	}
	return "op-1", nil
}

func (f *fakeBackend) PollVideo(ctx context.Context, op string) (bool, gemini.Blob, error) {
	f.mu.Lock()
	f.pollCalls++
	f.mu.Unlock()
	if f.pollFn != nil {
		return f.pollFn(op)
	}
	return true, gemini.Blob{Data: []byte("video-bytes"), MIME: "video/mp4"}, nil
}

func (f *fakeBackend) counts() (text, image, compose, start, poll int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.textCalls, f.imageCalls, f.composeCalls, f.startCalls, f.pollCalls
}
