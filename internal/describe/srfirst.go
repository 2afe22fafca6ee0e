package describe

import (
	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// SRFirst is a small window: one document of three paragraphs and two
// window buttons.
type SRFirst struct {
	Minimized int
	Closed    bool
}

var srFirstParagraphs = []string{
	"This is the first paragraph.",
	"Hello, Dreamer of dreams.",
	"Yet another paragraph",
}

func (s *SRFirst) Name() string { return "srfirst" }

func (s *SRFirst) Describe(b *uitree.Builder) {
	b.Pane("Main", func() {
		b.Document("Main", func() {
			for _, p := range srFirstParagraphs {
				b.Text(p)
			}
		})
		b.Button("Minimize Application", func() {
			s.Minimized++
			logger.Info("minimize requested")
		})
		b.Button("Close Application", func() {
			s.Closed = true
			logger.Info("close requested")
		})
	})
}
