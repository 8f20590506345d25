package studio

// HistoryLimit bounds how many prior results the session keeps.
const HistoryLimit = 6

// History is a most-recent-first list of generated images (base64 payloads),
// capped at HistoryLimit with FIFO eviction of the oldest entry. Push returns
// a new value so the session reducer stays free of shared mutation.
type History []string

// Push prepends imageBase64 and evicts beyond the cap.
func (h History) Push(imageBase64 string) History {
	out := make(History, 0, len(h)+1)
	out = append(out, imageBase64)
	out = append(out, h...)
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
