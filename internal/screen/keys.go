package screen

// KeySlot holds the most recent key seen since the last Take. A newer key
// overwrites an unread one; there is no queue.
type KeySlot struct {
	key     string
	pending bool
}

func (k *KeySlot) Put(key string) {
	k.key = key
	k.pending = true
}

// Take returns the pending key, if any, and empties the slot.
func (k *KeySlot) Take() (string, bool) {
	if !k.pending {
		return "", false
	}
	key := k.key
	k.key = ""
	k.pending = false
	return key, true
}
