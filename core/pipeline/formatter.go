// Package pipeline wires the formatting stages together:
// scrub → extract → validate → normalize → emphasis → bullets → cleanup.
//
// A Formatter holds only immutable configuration and is safe for
// concurrent use.
package pipeline

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
	"github.com/hashicorp/go-hclog"

	"github.com/gaurav-prasanna/postfmt/core"
	"github.com/gaurav-prasanna/postfmt/core/bullet"
	"github.com/gaurav-prasanna/postfmt/core/chunk"
	"github.com/gaurav-prasanna/postfmt/core/emphasis"
	"github.com/gaurav-prasanna/postfmt/core/extract"
	"github.com/gaurav-prasanna/postfmt/core/normalize"
	"github.com/gaurav-prasanna/postfmt/core/scrub"
	"github.com/gaurav-prasanna/postfmt/core/validate"
)

// Options configures a Formatter. Nil stages select the defaults.
type Options struct {
	Policy       core.Policy
	BulletGlyph  string
	GuardBullets bool
	Logger       hclog.Logger

	Scrubber   core.Scrubber
	Extractor  core.Extractor
	Validator  core.Validator
	Normalizer core.Normalizer
	Converter  core.Converter
	// Splitter builds the splitter for a part length. Defaults to chunk.New.
	Splitter func(maxRunes int) core.Splitter
}

// Formatter turns marked-up text into plain post text.
type Formatter struct {
	policy     core.Policy
	scrubber   core.Scrubber
	extractor  core.Extractor
	validator  core.Validator
	normalizer core.Normalizer
	converter  core.Converter
	bullets    core.BulletNormalizer
	splitter   func(maxRunes int) core.Splitter
	logger     hclog.Logger
}

// New creates a Formatter from opts.
func New(opts Options) *Formatter {
	f := &Formatter{
		policy:     opts.Policy,
		scrubber:   opts.Scrubber,
		extractor:  opts.Extractor,
		validator:  opts.Validator,
		normalizer: opts.Normalizer,
		converter:  opts.Converter,
		splitter:   opts.Splitter,
		bullets:    bullet.New(opts.BulletGlyph, opts.GuardBullets),
		logger:     opts.Logger,
	}
	if f.policy == "" {
		f.policy = core.PolicyStrict
	}
	if f.scrubber == nil {
		f.scrubber = scrub.New()
	}
	if f.extractor == nil {
		f.extractor = extract.New()
	}
	if f.validator == nil {
		f.validator = validate.New()
	}
	if f.normalizer == nil {
		f.normalizer = normalize.New(opts.BulletGlyph)
	}
	if f.converter == nil {
		f.converter = emphasis.New()
	}
	if f.splitter == nil {
		f.splitter = func(maxRunes int) core.Splitter { return chunk.New(maxRunes) }
	}
	if f.logger == nil {
		f.logger = hclog.NewNullLogger()
	}
	return f
}

// Policy returns the marker policy in effect.
func (f *Formatter) Policy() core.Policy {
	return f.policy
}

// Format runs the pipeline over text. The error, if any, is a
// *core.FormatError: core.ErrUnbalancedMarkers for rejected input or
// core.ErrInternal for anything unexpected. No partial output is returned
// with an error.
func (f *Formatter) Format(text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e := goerrors.Wrap(r, 2)
			f.logger.Error("formatting failed", "error", e.Error(), "stack", string(e.Stack()))
			out, err = "", core.Internal(e)
		}
	}()

	text = f.scrubber.Scrub(text)

	text, err = f.extractor.Extract(text)
	if err != nil {
		f.logger.Error("extracting document content", "error", err)
		return "", core.Internal(fmt.Errorf("extract: %w", err))
	}

	if f.policy == core.PolicyStrict {
		if err := f.validator.Validate(text); err != nil {
			f.logger.Debug("input rejected", "error", err)
			return "", err
		}
	}

	text = f.normalizer.Normalize(text)
	text = f.converter.Convert(text)
	text = f.bullets.Normalize(text)
	text = normalize.Cleanup(text)
	text = f.bullets.Guard(text)

	f.logger.Trace("formatted text", "runes", len([]rune(text)))
	return text, nil
}

// FormatResult formats text and, when maxRunes > 0, splits the output
// into parts of at most maxRunes runes.
func (f *Formatter) FormatResult(text string, maxRunes int) core.Result {
	out, err := f.Format(text)
	if err != nil {
		return core.Result{Err: err}
	}
	res := core.Result{Text: out}
	if maxRunes > 0 {
		res.Parts = f.splitter(maxRunes).Split(out)
	}
	return res
}
