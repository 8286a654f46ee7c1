package clip

import (
	"io"
	"log/slog"
	"os/exec"
)

// wslSetter drives the Windows host clipboard through the WSL interop layer.
type wslSetter struct{}

func (wslSetter) Name() string { return "wsl" }

// psHeader loads the WinForms assemblies in the global scope. Bodies run
// inside "& { }" so that the trailing argv lands in $args; attacker-
// controlled paths never become script text.
const psHeader = "Add-Type -AssemblyName System.Windows.Forms; Add-Type -AssemblyName System.Drawing;"

const psSetImage = "$img = [System.Drawing.Image]::FromFile($args[0]); [System.Windows.Forms.Clipboard]::SetImage($img);"

const psSetDropList = "$files = New-Object System.Collections.Specialized.StringCollection; $args | ForEach-Object { [void]$files.Add($_) }; [System.Windows.Forms.Clipboard]::SetFileDropList($files);"

// psArgs builds the parameterized powershell.exe argv: a fixed script
// followed by the paths as plain arguments.
func psArgs(body string, paths []string) []string {
	args := []string{"-NoProfile", "-Command", psHeader + " & { " + body + " }"}
	return append(args, paths...)
}

func runPS(op, body string, paths []string) error {
	slog.Debug("running powershell clipboard script", "op", op, "paths", len(paths))
	cmd := exec.Command("powershell.exe", psArgs(body, paths)...)
	if err := cmd.Run(); err != nil {
		return &SetterError{Op: op, Err: err}
	}
	return nil
}

func (wslSetter) SetImage(path string) error {
	return runPS("set image", psSetImage, []string{path})
}

func (wslSetter) SetFileDropList(paths []string) error {
	return runPS("set file drop list", psSetDropList, paths)
}

// textStream pipes into a running clip.exe; Close commits.
type textStream struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

func (t *textStream) Write(p []byte) (int, error) { return t.stdin.Write(p) }

// Abort kills clip.exe before its stdin sees EOF, so the partial content is
// never committed to the clipboard.
func (t *textStream) Abort() {
	_ = t.cmd.Process.Kill()
	_ = t.stdin.Close()
	_ = t.cmd.Wait()
}

func (t *textStream) Close() error {
	// closing stdin tells clip.exe the content is complete
	if err := t.stdin.Close(); err != nil {
		_ = t.cmd.Wait()
		return &SetterError{Op: "clip.exe", Err: err}
	}
	if err := t.cmd.Wait(); err != nil {
		return &SetterError{Op: "clip.exe", Err: err}
	}
	return nil
}

func (wslSetter) TextStream() (TextStream, error) {
	slog.Debug("spawning clip.exe for streaming")
	cmd := exec.Command("clip.exe")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &SetterError{Op: "clip.exe", Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SetterError{Op: "clip.exe", Err: err}
	}
	return &textStream{cmd: cmd, stdin: stdin}, nil
}

func (s wslSetter) SetText(text string) error {
	ts, err := s.TextStream()
	if err != nil {
		return err
	}
	if _, err := io.WriteString(ts, text); err != nil {
		ts.Abort()
		return &SetterError{Op: "clip.exe", Err: err}
	}
	return ts.Close()
}
