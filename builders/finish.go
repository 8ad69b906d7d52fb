package builders

import "github.com/reusee/bcc/optimizers"

// Finish returns the program text, tail-trimmed when optimize is set.
// The Builder must not be used afterwards.
func (b *Builder) Finish(optimize bool) string {
	emitted := len(b.result)
	if optimize {
		b.result = optimizers.TrimTail(b.result)
	}
	if b.logger != nil {
		b.logger.Debug("build finished",
			"emitted", emitted,
			"final", len(b.result),
			"frontier", b.model.Frontier(),
			"open loops", len(b.opens),
		)
	}
	return string(b.result)
}
