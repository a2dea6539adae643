package domain

// Observer receives the human-readable notification lines emitted by
// record mutations, e.g. preference updates. The wiring layer installs
// one sink at startup; the default discards everything.
type Observer func(line string)

var notifyFn Observer = func(string) {}

// SetObserver installs fn as the notification sink. A nil fn silences
// notifications. Not safe to call concurrently with record mutations;
// wire it once before use.
func SetObserver(fn Observer) {
	if fn == nil {
		fn = func(string) {}
	}
	notifyFn = fn
}

func notify(line string) { notifyFn(line) }
