package pipeline

// Pipeline runs text through an ordered sequence of rewrite stages. The
// output of stage i is the input of stage i+1. A Pipeline is immutable once
// built and safe for unlimited concurrent use.
type Pipeline struct {
	stages []Stage
}

// New builds a Pipeline from stages in execution order. The slice is copied.
// A pipeline with no stages converts text to itself.
func New(stages []Stage) *Pipeline {
	p := &Pipeline{stages: make([]Stage, len(stages))}
	copy(p.stages, stages)
	return p
}

// Convert applies every stage in order and returns the final text.
func (p *Pipeline) Convert(text string) string {
	for _, s := range p.stages {
		text = s.Apply(text)
	}
	return text
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Stages returns a copy of the stage sequence.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}
