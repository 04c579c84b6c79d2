package photo

import "sync"

// Picker is the single-photo attach control used by the daily-log and
// diary-cover forms. The result is delivered through the callback given
// at construction; a nil value means "clear the photo". On failure the
// callback is never invoked, so prior state stays untouched.
type Picker struct {
	mu       sync.Mutex
	busy     bool
	onResult func(dataURI *string)
}

// NewPicker wires a picker to its result callback.
func NewPicker(onResult func(dataURI *string)) *Picker {
	return &Picker{onResult: onResult}
}

// Attach encodes the file at path and hands the data-URI to the callback.
// A second Attach while one is in flight fails with ErrBusy.
func (p *Picker) Attach(path string) error {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return ErrBusy
	}
	p.busy = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.busy = false
		p.mu.Unlock()
	}()

	uri, err := Encode(path)
	if err != nil {
		return err
	}
	p.onResult(&uri)
	return nil
}

// Clear removes the current photo through the same callback.
func (p *Picker) Clear() {
	p.onResult(nil)
}
