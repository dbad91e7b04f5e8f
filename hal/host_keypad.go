//go:build !baremetal

package hal

import (
	"sync"
	"unicode"
)

// hostKeypad queues labels typed on the host keyboard.
type hostKeypad struct {
	mu    sync.Mutex
	queue []byte
}

// press queues r when it names a keypad key. Letters a-d are accepted in
// either case.
func (k *hostKeypad) press(r rune) bool {
	if r > unicode.MaxASCII {
		return false
	}
	b := byte(unicode.ToUpper(r))
	if !IsKey(b) {
		return false
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	k.queue = append(k.queue, b)
	return true
}

func (k *hostKeypad) pressString(s string) {
	for _, r := range s {
		k.press(r)
	}
}

func (k *hostKeypad) GetKey() byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	if len(k.queue) == 0 {
		return 0
	}
	b := k.queue[0]
	k.queue = k.queue[1:]
	return b
}
