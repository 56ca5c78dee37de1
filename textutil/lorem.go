package textutil

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/erraggy/xutil/xuerrors"
)

// LoremType selects the unit Lorem counts.
type LoremType string

const (
	Paragraphs LoremType = "paragraph"
	Sentences  LoremType = "sentence"
	Words      LoremType = "word"
)

// LoremFormat selects plain text or HTML output.
type LoremFormat string

const (
	FormatText LoremFormat = "text"
	FormatHTML LoremFormat = "html"
)

// Count limits per LoremType.
const (
	MaxParagraphs = 20
	MaxSentences  = 50
	MaxWords      = 100
)

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "ut", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "ut", "aliquip", "ex", "ea",
	"commodo", "consequat", "duis", "aute", "irure", "dolor", "in", "reprehenderit",
	"in", "voluptate", "velit", "esse", "cillum", "dolore", "eu", "fugiat",
}

var openingWords = []string{"Lorem", "ipsum", "dolor", "sit", "amet"}

// LoremRequest describes the text to generate.
type LoremRequest struct {
	Type   LoremType   `json:"type"`
	Count  int         `json:"count"`
	Format LoremFormat `json:"format"`
}

func (r *LoremRequest) normalize() error {
	if r.Type == "" {
		r.Type = Paragraphs
	}
	if r.Format == "" {
		r.Format = FormatText
	}
	if r.Format != FormatText && r.Format != FormatHTML {
		return xuerrors.Input("format", "format must be text or html")
	}

	limit := 0
	switch r.Type {
	case Paragraphs:
		limit = MaxParagraphs
	case Sentences:
		limit = MaxSentences
	case Words:
		limit = MaxWords
	default:
		return xuerrors.Input("type", "type must be paragraph, sentence, or word")
	}
	if r.Count < 1 || r.Count > limit {
		return xuerrors.Input("count", "%s count must be between 1 and %d", r.Type, limit)
	}
	return nil
}

// LoremGenerator produces Lorem Ipsum text. It is safe for concurrent use.
type LoremGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLoremGenerator returns a generator drawing from src. A nil src seeds
// from the clock.
func NewLoremGenerator(src rand.Source) *LoremGenerator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>32|1)
	}
	return &LoremGenerator{rnd: rand.New(src)}
}

var defaultLorem = NewLoremGenerator(nil)

// Lorem generates text with the default generator.
func Lorem(req LoremRequest) (string, error) {
	return defaultLorem.Generate(req)
}

// Generate returns req.Count words, sentences or paragraphs. The text always
// opens with "Lorem ipsum dolor sit amet".
func (g *LoremGenerator) Generate(req LoremRequest) (string, error) {
	if err := req.normalize(); err != nil {
		return "", err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	var content string
	switch req.Type {
	case Words:
		n := min(len(openingWords), req.Count)
		words := append([]string(nil), openingWords[:n]...)
		words = append(words, g.words(req.Count-n)...)
		content = strings.Join(words, " ")
	case Sentences:
		sentences := make([]string, req.Count)
		for i := range sentences {
			sentences[i] = g.sentence(i == 0)
		}
		content = strings.Join(sentences, " ")
	case Paragraphs:
		paragraphs := make([]string, req.Count)
		for i := range paragraphs {
			p := g.paragraph(i == 0)
			if req.Format == FormatHTML {
				p = "<p>" + p + "</p>"
			}
			paragraphs[i] = p
		}
		return strings.Join(paragraphs, "\n\n"), nil
	}

	if req.Format == FormatHTML {
		content = "<p>" + content + "</p>"
	}
	return content, nil
}

func (g *LoremGenerator) words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = loremWords[g.rnd.IntN(len(loremWords))]
	}
	return out
}

// between returns a value in [lo, hi].
func (g *LoremGenerator) between(lo, hi int) int {
	return lo + g.rnd.IntN(hi-lo+1)
}

func (g *LoremGenerator) sentence(opening bool) string {
	n := g.between(8, 15)
	var words []string
	if opening {
		words = append(append(words, openingWords...), g.words(n-len(openingWords))...)
	} else {
		words = g.words(n)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

func (g *LoremGenerator) paragraph(opening bool) string {
	sentences := make([]string, g.between(4, 8))
	for i := range sentences {
		sentences[i] = g.sentence(opening && i == 0)
	}
	return strings.Join(sentences, " ")
}
