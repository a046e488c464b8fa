// Package pipeline is the extraction entry point: raw document in, bounded
// list of course records out.
package pipeline

import (
	"math/rand"
	"time"

	"github.com/gangoo91/coursescout/internal/classify"
	"github.com/gangoo91/coursescout/internal/record"
	"github.com/gangoo91/coursescout/internal/segment"
)

// DefaultMaxRecords caps one page of output to bound downstream
// serialization cost no matter how noisy the input document is.
const DefaultMaxRecords = 20

// Context carries the query parameters that scope relevance judgments for
// one invocation. Read-only throughout.
type Context struct {
	Keywords string
	Location string
}

// Pipeline configures extraction. The zero value works: records are capped
// at DefaultMaxRecords, the canonical-URL fallback is empty, and synthesis
// is seeded from the clock. A non-zero Seed makes the synthesized fields
// reproducible.
type Pipeline struct {
	MaxRecords int
	DefaultURL string
	Source     string
	Seed       int64
	Now        func() time.Time
	NewID      func() string
}

// Extract runs segmentation, classification, and assembly over a raw
// document. It is a pure function of its inputs aside from the synthesized
// filler fields: no state survives the call, no input makes it panic, and
// the worst case for empty or malformed documents is an empty slice.
func (p *Pipeline) Extract(doc string, ctx Context) []record.Course {
	max := p.MaxRecords
	if max <= 0 {
		max = DefaultMaxRecords
	}
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	asm := &record.Assembler{
		DefaultURL: p.DefaultURL,
		Source:     p.Source,
		Rand:       rand.New(rand.NewSource(seed)),
		Now:        p.Now,
		NewID:      p.NewID,
	}

	var out []record.Course
	for _, s := range segment.Split(doc) {
		if !classify.IsCourse(s, ctx.Keywords) {
			continue
		}
		out = append(out, asm.Assemble(s))
		if len(out) >= max {
			break
		}
	}
	return out
}
