package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ------------ helpers ------------

func scannerFromLines(lines ...string) *bufio.Scanner {
	return bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
}

// capturePrintln replaces printlnFn for the duration of the test and records
// everything printed.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) { out = append(out, fmt.Sprintln(a...)) }
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

type stubExec struct {
	loggedIn bool

	loginCalls  int
	logoutCalls int
	whoamiCalls int
	statusCalls int
	jobLogIDs   []string
}

func (s *stubExec) isLoggedIn() bool                  { return s.loggedIn }
func (s *stubExec) Login(ctx context.Context) error   { s.loginCalls++; return nil }
func (s *stubExec) Logout(ctx context.Context) error  { s.logoutCalls++; return nil }
func (s *stubExec) WhoAmI(ctx context.Context) error  { s.whoamiCalls++; return nil }
func (s *stubExec) Status(ctx context.Context) error  { s.statusCalls++; return nil }
func (s *stubExec) JobLog(ctx context.Context, jobID string) error {
	s.jobLogIDs = append(s.jobLogIDs, jobID)
	return nil
}

func status() string { return "(test)" }

// ------------ tests ------------

func TestREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runREPL(context.Background(), stub, status,
		scannerFromLines("login", "whoami", "logs job-42", "status", "logout", "exit"))

	assert.Equal(t, 1, stub.loginCalls)
	assert.Equal(t, 1, stub.whoamiCalls)
	assert.Equal(t, []string{"job-42"}, stub.jobLogIDs)
	assert.Equal(t, 1, stub.statusCalls)
	assert.Equal(t, 1, stub.logoutCalls)
}

func TestREPL_LogsWithoutArgPrintsUsage(t *testing.T) {
	out := capturePrintln(t)
	stub := &stubExec{loggedIn: true}

	runREPL(context.Background(), stub, status, scannerFromLines("logs", "exit"))

	assert.Empty(t, stub.jobLogIDs)
	assert.Contains(t, strings.Join(*out, ""), "Usage: logs <job-id>")
}

func TestREPL_HelpReflectsLoginState(t *testing.T) {
	out := capturePrintln(t)
	runREPL(context.Background(), &stubExec{loggedIn: false}, status, scannerFromLines("help", "exit"))
	assert.Contains(t, strings.Join(*out, ""), "login, status, exit")

	out = capturePrintln(t)
	runREPL(context.Background(), &stubExec{loggedIn: true}, status, scannerFromLines("help", "exit"))
	assert.Contains(t, strings.Join(*out, ""), "whoami")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := capturePrintln(t)

	runREPL(context.Background(), &stubExec{}, status, scannerFromLines("frobnicate", "exit"))

	assert.Contains(t, strings.Join(*out, ""), "Unknown command: frobnicate")
}

func TestREPL_EmptyLinesAndEOF(t *testing.T) {
	capturePrintln(t)
	stub := &stubExec{}

	// ends on EOF without an explicit exit
	runREPL(context.Background(), stub, status, scannerFromLines("", "   ", "login"))

	assert.Equal(t, 1, stub.loginCalls)
}

func TestREPL_CanceledContextStops(t *testing.T) {
	capturePrintln(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubExec{}
	runREPL(ctx, stub, status, scannerFromLines("login", "exit"))

	assert.Zero(t, stub.loginCalls)
}
