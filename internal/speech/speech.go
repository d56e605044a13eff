// Package speech reads game events aloud.
package speech

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	htgotts "github.com/hegedustibor/htgo-tts"
	handlers "github.com/hegedustibor/htgo-tts/handlers"
	voices "github.com/hegedustibor/htgo-tts/voices"
)

// Announcer speaks short messages without blocking the caller.
type Announcer interface {
	Say(msg string)
}

// New returns a text-to-speech announcer writing its audio under folder, or a
// silent one when enabled is false.
func New(enabled bool, folder string) Announcer {
	if !enabled {
		return Silent{}
	}
	return &TTS{
		speech: htgotts.Speech{Folder: folder, Language: voices.English, Handler: &handlers.MPlayer{}},
		folder: folder,
	}
}

// Silent discards every message.
type Silent struct{}

func (Silent) Say(string) {}

// TTS speaks through Google Translate text-to-speech and mplayer.
type TTS struct {
	speech htgotts.Speech
	folder string

	mu sync.Mutex // one utterance at a time, they share a file
}

func (t *TTS) Say(msg string) {
	go func() {
		t.mu.Lock()
		defer t.mu.Unlock()

		file := filepath.Join(t.folder, "speech.mp3")
		os.Remove(file)

		fileName, err := t.speech.CreateSpeechFile(msg, "speech")
		if err != nil {
			log.Printf("[SPEECH] create speech file: %v", err)
			return
		}
		defer os.Remove(file)

		if err := t.speech.PlaySpeechFile(fileName); err != nil {
			log.Printf("[SPEECH] play speech file: %v", err)
		}
	}()
}

// Recorder keeps every message. Drivers use it in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Say(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
