package tools

import (
	"os"
	"sync"
)

// guideFallback is served when no guide document exists on disk. Kept
// short; the real guidance ships as guide.md alongside the fold state.
const guideFallback = `# Origami

Your older conversation sections are folded away: each fold keeps a short
summary in context while the full detail sits on disk.

Tools:
- list_folds      - see every fold with its summary, size and relevance
- unfold_section  - bring a fold's full detail back when you need it
- fold_section    - collapse it again as soon as you are done
- write_summary   - tighten a fold's summary in your own words

Fold aggressively and keep summaries lean: every summary token stays in
context for the rest of the session, detail tokens only while unfolded.`

// guideCache loads the guide document once per process. The file is read
// on first use and the result (or the fallback) is served for the
// process lifetime, even if the file changes or disappears afterwards.
type guideCache struct {
	once sync.Once
	text string
}

func (g *guideCache) load(path string) string {
	g.once.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil || len(data) == 0 {
			g.text = guideFallback
			return
		}
		g.text = string(data)
	})
	return g.text
}

// Guide returns the usage guide document.
func (d *Dispatcher) Guide() string {
	return d.guide.load(d.guidePath)
}
