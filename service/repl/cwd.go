package repl

import (
	"context"
	"strings"

	"github.com/viant/replbridge/service/terminal"
)

// reconcileCwd aligns the terminal working directory with the file about to
// be executed, when the resource's settings ask for it. On Windows-like
// platforms changing directory across drives needs a separate drive-change
// command; once the terminal has been moved off the workspace root's drive
// the drive is re-asserted on every subsequent file execution, because the
// terminal's actual state cannot be observed from here.
func (s *Service) reconcileCwd(ctx context.Context, handle terminal.Handle, file string) error {
	config, err := s.settings.Resolve(ctx, file)
	if err != nil {
		return err
	}
	if !config.ExecuteInFileDir {
		return nil
	}
	dir := containingDirectory(file)
	if dir == "" {
		return nil
	}
	if s.platform.Windows {
		if fileDrive := driveLetter(dir); fileDrive != "" {
			rootDrive := driveLetter(s.workspaceRoot)
			s.mux.Lock()
			diverged := s.ranOutsideRootDrive || !strings.EqualFold(rootDrive, fileDrive)
			if diverged {
				s.ranOutsideRootDrive = true
			}
			s.mux.Unlock()
			if diverged {
				if err := handle.SendCommand(ctx, fileDrive+":"); err != nil {
					return err
				}
			}
		}
	}
	return handle.SendCommand(ctx, "cd", s.quoteFunc(dir))
}

// containingDirectory returns the directory part of a path, accepting both
// separator conventions so Windows-style paths behave on any build platform.
func containingDirectory(file string) string {
	idx := strings.LastIndexAny(file, `/\`)
	if idx <= 0 {
		return ""
	}
	return file[:idx]
}

// driveLetter returns the upper-cased drive letter of a Windows-style path,
// or "" when the path carries none.
func driveLetter(path string) string {
	if len(path) < 2 || path[1] != ':' {
		return ""
	}
	letter := path[0]
	if (letter >= 'a' && letter <= 'z') || (letter >= 'A' && letter <= 'Z') {
		return strings.ToUpper(string(letter))
	}
	return ""
}
