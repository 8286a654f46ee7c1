// wsl-clip: smart WSL2 → Windows clipboard utility.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	v := viper.New()

	root := &cobra.Command{
		Use:   "wsl-clip [files...]",
		Short: "Smart clipboard integration for WSL2",
		Long: `wsl-clip pushes files or piped streams onto the Windows clipboard in the
most useful native form. Content is classified by magic bytes and extension:
images become bitmap clipboard entries, binaries and assets become file
objects (pasted like a drag from Explorer), and everything else is copied as
text. ANSI escape sequences and control characters are stripped from text by
default so that what you paste is what you saw.

Use the img/file/path subcommands to force a mode and skip detection.

Config file search order (first found wins):
  /etc/wsl-clip/wsl-clip.toml
  $HOME/.config/wsl-clip/wsl-clip.toml
  path supplied via --config

All flags can be set via WSLCLIP_<FLAG> env vars or config-file keys.`,
		Example: `  wsl-clip image.png       # auto-detects image mode
  wsl-clip doc.pdf         # auto-detects file object mode
  wsl-clip src/*.go        # copies text, headers between files
  ls --color | wsl-clip    # pipes clean text (colors removed)
  ls --color | wsl-clip --no-strip   # pipes raw text`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(_ *cobra.Command, args []string) error { return runSmart(v, args) },
	}

	pf := root.PersistentFlags()
	pf.BoolP("no-header", "n", false, "suppress file headers in text mode")
	pf.Bool("no-strip", false, "keep ANSI escapes and control characters in text")
	pf.Bool("crlf", false, "convert LF line endings to CRLF")
	pf.Bool("code", false, "wrap content in markdown code blocks")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("log-format", "auto", "log format: auto|text|json")

	addConfigFlag(root)

	root.AddCommand(
		newImgCmd(),
		newFileCmd(),
		newPathCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("wsl-clip %s\n", Version)
		},
	}
}
