// Package sanitize turns untrusted byte streams into text that is safe to
// place on a clipboard.
//
// The transform is incremental: a Reader pulls one bounded chunk at a time
// from its source and carries a small state value across chunk boundaries, so
// memory use is independent of stream length. Escape sequences that straddle
// a chunk boundary are handled by that carried state; output is identical for
// any split of the same input.
package sanitize

import "io"

// Config controls the text pipeline. Built once from flags plus resolver
// defaults and read-only afterwards. StripANSI, StripControl and ConvertCRLF
// act per byte inside the Reader; WrapCodeFence and EmitFileHeaders are
// structural and consumed by the payload assembler, which knows where files
// begin and end.
type Config struct {
	StripANSI       bool
	StripControl    bool
	ConvertCRLF     bool
	WrapCodeFence   bool
	EmitFileHeaders bool
}

// Default returns the flag defaults: strip escapes and control bytes, keep
// line endings as-is, headers on (the assembler only emits them for
// multi-file text anyway).
func Default() Config {
	return Config{StripANSI: true, StripControl: true, EmitFileHeaders: true}
}

// escState tracks progress through an ESC-introduced sequence.
type escState int

const (
	stateNormal    escState = iota
	stateSawEscape          // consumed ESC, next byte picks the sequence kind
	stateInSequence         // inside CSI or OSC, waiting for a terminator
)

// maxSeqLen bounds how many bytes a single escape sequence may span. A
// sequence with no terminator within the bound is malformed; it is abandoned
// and its bytes stay dropped rather than leaking as literal text.
const maxSeqLen = 512

// state is the only mutable value in the pipeline. It belongs to exactly one
// Reader and is never reused across files: a trailing unterminated sequence
// in one file must not bleed into the next.
type state struct {
	esc    escState
	osc    bool // current sequence is OSC (ESC ]) rather than CSI (ESC [)
	oscEsc bool // saw ESC inside an OSC body, possible ST terminator
	seqLen int
	prevCR bool // last byte through the pipeline was CR
}

// chunkSize is the read granularity. Output pending delivery is at most
// double this (CRLF expansion), which is the whole memory bound.
const chunkSize = 32 * 1024

// Reader applies the sanitization pipeline to src. It implements io.Reader;
// errors from src propagate unchanged.
type Reader struct {
	src io.Reader
	cfg Config
	st  state

	in   []byte // reusable raw chunk buffer
	out  []byte // sanitized bytes, delivery window into outB
	outB []byte // backing buffer for out
	err  error
}

// NewReader wraps src with a fresh sanitizer state.
func NewReader(src io.Reader, cfg Config) *Reader {
	return &Reader{src: src, cfg: cfg, in: make([]byte, chunkSize)}
}

func (r *Reader) Read(p []byte) (int, error) {
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		n, err := r.src.Read(r.in)
		if n > 0 {
			r.outB = r.transform(r.outB[:0], r.in[:n])
			r.out = r.outB
		}
		if err != nil {
			r.err = err
		}
	}
	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}

// transform runs the per-byte pipeline over chunk, appending survivors to
// dst. Stage order matters: sequence bytes never reach the control filter,
// and CRLF conversion sees only bytes that will actually be emitted.
func (r *Reader) transform(dst, chunk []byte) []byte {
	for _, b := range chunk {
		if r.cfg.StripANSI && r.eatEscape(b) {
			continue
		}
		if r.cfg.StripControl && strippedControl(b) {
			continue
		}
		if r.cfg.ConvertCRLF && b == '\n' && !r.st.prevCR {
			dst = append(dst, '\r')
		}
		r.st.prevCR = b == '\r'
		dst = append(dst, b)
	}
	return dst
}

// eatEscape advances the escape state machine and reports whether b was
// consumed by it.
func (r *Reader) eatEscape(b byte) bool {
	st := &r.st
	switch st.esc {
	case stateNormal:
		if b == 0x1B {
			st.esc = stateSawEscape
			return true
		}
		return false

	case stateSawEscape:
		switch b {
		case '[':
			st.esc, st.osc, st.oscEsc, st.seqLen = stateInSequence, false, false, 0
		case ']':
			st.esc, st.osc, st.oscEsc, st.seqLen = stateInSequence, true, false, 0
		default:
			// two-byte escape (ESC c, ESC ( X, ...): swallow and resume
			st.esc = stateNormal
		}
		return true

	default: // stateInSequence
		st.seqLen++
		if st.seqLen > maxSeqLen {
			// no terminator within the bound: give up on the sequence and
			// reprocess b as ordinary input
			st.esc = stateNormal
			return r.eatEscape(b)
		}
		if st.osc {
			switch {
			case st.oscEsc:
				st.oscEsc = false
				if b == '\\' { // ST
					st.esc = stateNormal
				} else if b == 0x1B {
					st.oscEsc = true
				}
			case b == 0x07: // BEL terminator
				st.esc = stateNormal
			case b == 0x1B:
				st.oscEsc = true
			}
			return true
		}
		// CSI: any final byte in 0x40..0x7E terminates
		if b >= 0x40 && b <= 0x7E {
			st.esc = stateNormal
		}
		return true
	}
}

// strippedControl reports whether b is removed by the control filter. Tab,
// LF and CR survive unconditionally; every other C0 byte and DEL is dropped.
// This defeats pastejacking payloads that use backspace or bell to make the
// pasted text differ from what a human saw.
func strippedControl(b byte) bool {
	if b == '\t' || b == '\n' || b == '\r' {
		return false
	}
	return b < 0x20 || b == 0x7F
}

// Process streams src through a sanitizer into dst. Convenience for callers
// that do not need the Reader itself.
func Process(dst io.Writer, src io.Reader, cfg Config) (int64, error) {
	return io.Copy(dst, NewReader(src, cfg))
}
