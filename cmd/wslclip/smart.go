package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"go.klb.dev/wslclip/internal/clip"
	"go.klb.dev/wslclip/internal/input"
	"go.klb.dev/wslclip/internal/logging"
	"go.klb.dev/wslclip/internal/payload"
	"go.klb.dev/wslclip/internal/resolve"
	"go.klb.dev/wslclip/internal/sanitize"
	"go.klb.dev/wslclip/internal/winpath"
)

// runSmart handles the bare invocation: classify the inputs, resolve one
// mode for the lot, and hand off.
func runSmart(v *viper.Viper, args []string) error {
	setupLogging(v)
	slog.Debug("wsl-clip started", "files", len(args))

	inputs := make([]*input.Descriptor, 0, len(args))
	if len(args) == 0 {
		if logging.IsTTY(os.Stdin) {
			return resolve.ErrNoInput
		}
		inputs = append(inputs, input.NewStdin())
	} else {
		for _, a := range args {
			inputs = append(inputs, input.NewFile(a))
		}
	}

	mode, err := resolve.Resolve(inputs, nil)
	if err != nil {
		return err
	}
	slog.Debug("resolved mode", "mode", mode.String())

	return dispatch(mode, inputs, textConfig(v))
}

// translator picks the path-translation collaborator for this host.
func translator() payload.Translator {
	if winpath.IsWSL() {
		return winpath.ToWindows
	}
	return winpath.ToLocal
}

// dispatch assembles the payload for the resolved mode and invokes the
// clipboard setter exactly once per payload. The switch is exhaustive over
// the mode variants; no payload mixes content from different modes.
func dispatch(mode resolve.Mode, inputs []*input.Descriptor, cfg sanitize.Config) error {
	setter := clip.New()
	translate := translator()
	slog.Debug("dispatching", "mode", mode.String(), "backend", setter.Name())

	switch mode {
	case resolve.Image:
		// Multiple images are set per-file in sequence; the last one ends up
		// on the host clipboard.
		for _, d := range inputs {
			p, err := payload.AssembleImage(d, translate)
			if err != nil {
				return err
			}
			if err := setter.SetImage(p.Path); err != nil {
				return err
			}
		}
		if len(inputs) > 1 {
			slog.Warn("multiple images set in sequence, only the last remains", "count", len(inputs))
		}
		fmt.Println("[OK] Copied Image to Clipboard")

	case resolve.FileObject:
		p, err := payload.AssembleFileObjects(inputs, translate)
		if err != nil {
			return err
		}
		if err := setter.SetFileDropList(p.Paths); err != nil {
			return err
		}
		fmt.Printf("[OK] Copied %d File Object(s) to Clipboard\n", len(p.Paths))

	case resolve.Path:
		p, err := payload.AssemblePath(inputs[0], translate)
		if err != nil {
			return err
		}
		if err := setter.SetText(p.Path); err != nil {
			return err
		}
		fmt.Println("[OK] Copied Path to Clipboard")

	default: // resolve.Text
		ts, err := setter.TextStream()
		if err != nil {
			return err
		}
		if err := payload.WriteText(ts, inputs, cfg); err != nil {
			ts.Abort()
			return err
		}
		if err := ts.Close(); err != nil {
			return err
		}
		msg := "[OK] Copied Text"
		if !cfg.StripANSI {
			msg += " (Raw ANSI)"
		}
		if cfg.ConvertCRLF {
			msg += " (CRLF)"
		}
		fmt.Println(msg)
	}
	return nil
}
