package mdpaint

import (
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrNilStyleSet is returned when a dispatcher is built without styles.
var ErrNilStyleSet = errors.New("mdpaint: nil style set")

// EventDispatcher drives a single render. It consumes events one at a time,
// routes them to the block handler and queues the resulting fragments in
// document order.
//
// A dispatcher renders exactly one document and is not safe for concurrent
// use.
type EventDispatcher struct {
	ctx     *RenderContext
	handler blockHandler
	frags   []Fragment
	log     *zap.Logger
}

// NewEventDispatcher returns a dispatcher rendering with styles.
func NewEventDispatcher(styles *StyleSet, opts ...RenderOption) (*EventDispatcher, error) {
	if styles == nil {
		return nil, ErrNilStyleSet
	}
	cfg := newRenderConfig(opts)
	d := &EventDispatcher{
		ctx:   NewRenderContext(),
		frags: make([]Fragment, 0, 256),
		log:   cfg.logger,
	}
	d.handler = blockHandler{
		styles:    styles,
		paint:     painter{enabled: cfg.color},
		log:       cfg.logger,
		strict:    cfg.strictGrammar,
		breakMode: cfg.softBreak,
		out:       &d.frags,
	}
	return d, nil
}

// Dispatch applies one event. The only error is an unknown grammar in
// strict mode, or a highlighter failure.
func (d *EventDispatcher) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventStart:
		return d.handler.start(d.ctx, ev.Block)
	case EventEnd:
		d.handler.end(d.ctx, ev.Block)
	case EventText:
		return d.handler.text(d.ctx, ev.Text)
	case EventCode:
		d.handler.code(d.ctx, ev.Text)
	case EventSoftBreak:
		d.handler.softBreak(d.ctx)
	case EventHardBreak:
		d.handler.hardBreak(d.ctx)
	case EventRule:
		d.handler.rule(d.ctx)
	case EventHTML:
		d.log.Debug("html ignored", zap.Int("bytes", len(ev.Text)))
	default:
		d.log.Debug("event ignored", zap.Stringer("kind", ev.Kind))
	}
	return nil
}

// DispatchAll applies events in order and stops at the first error.
func (d *EventDispatcher) DispatchAll(events []Event) error {
	for _, ev := range events {
		if err := d.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// Context returns the render context. It is owned by the dispatcher.
func (d *EventDispatcher) Context() *RenderContext { return d.ctx }

// Fragments returns the queued fragments.
func (d *EventDispatcher) Fragments() []Fragment { return d.frags }

// Flush writes every queued fragment to sink in order, then flushes it. The
// queue is emptied even when writing fails.
func (d *EventDispatcher) Flush(sink Sink) error {
	var err error
	for _, f := range d.frags {
		if werr := sink.WriteFragment(f); werr != nil {
			err = multierr.Append(err, werr)
			break
		}
	}
	d.frags = d.frags[:0]
	return multierr.Append(err, sink.Flush())
}
