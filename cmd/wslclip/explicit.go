package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/wslclip/internal/input"
	"go.klb.dev/wslclip/internal/resolve"
)

// The explicit subcommands force a mode and skip all sniffing: no header
// read ever happens when the user has already decided.

func newImgCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "img <file>",
		Short:   "Force image mode (copy pixels)",
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runExplicit(v, resolve.Image, args) },
	}
	addConfigFlag(cmd)
	return cmd
}

func newFileCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:     "file <files...>",
		Short:   "Force file object mode (copy as attachment)",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runExplicit(v, resolve.FileObject, args) },
	}
	addConfigFlag(cmd)
	return cmd
}

func newPathCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Copy the Windows path string",
		Long: `Translates the file's POSIX path to its Windows form and copies the
resulting string as text. This mode is never auto-detected; it only exists
as an explicit request.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, args []string) error { return runExplicit(v, resolve.Path, args) },
	}
	addConfigFlag(cmd)
	return cmd
}

func runExplicit(v *viper.Viper, override resolve.Mode, args []string) error {
	setupLogging(v)

	inputs := make([]*input.Descriptor, 0, len(args))
	for _, a := range args {
		inputs = append(inputs, input.NewFile(a))
	}

	mode, err := resolve.Resolve(inputs, &override)
	if err != nil {
		return err
	}
	return dispatch(mode, inputs, textConfig(v))
}
