package cli

import (
	"fmt"
	"strings"

	"github.com/iudanet/carddavsync/internal/contacts"
	"github.com/iudanet/carddavsync/internal/iocli"
)

const testUser = "alice"

// output собирает всё, что CLI напечатал через IO
type output struct {
	lines []string
	raw   []byte
}

func (o *output) String() string {
	return strings.Join(o.lines, "\n") + string(o.raw)
}

func newTestIO(out *output) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.lines = append(out.lines, joinArgs(a))
		},
		PrintfFunc: func(format string, a ...any) {
			out.lines = append(out.lines, fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			out.raw = append(out.raw, p...)
			return len(p), nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "", fmt.Errorf("unexpected password prompt %q", prompt)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", fmt.Errorf("unexpected input prompt %q", prompt)
		},
	}
}

func newTestCli(manager *ManagerMock, reader *contacts.ServiceMock) (*Cli, *output, *iocli.IOMock) {
	out := &output{}
	io := newTestIO(out)
	return New(io, manager, reader, testUser), out, io
}

func joinArgs(args []any) string {
	str := ""
	for i, a := range args {
		if i > 0 {
			str += " "
		}
		str += fmt.Sprintf("%v", a)
	}
	return str
}
