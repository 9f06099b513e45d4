package collect

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Archenoth/project-explorer/pkg/explorer/tree"
)

// DefaultListCommand produces one path per line relative to the working
// directory, directories marked with a trailing slash.
var DefaultListCommand = []string{
	"find", ".", "-mindepth", "1",
	"(", "-type", "d", "-printf", "%p/\n", ")", "-o", "-print",
}

// ProcessCollector shells out to an external listing program once per
// collection. Output chunks are accumulated into a single buffer as they
// arrive; nothing is parsed until the process exits, at which point the
// buffer is split into lines, tagged by trailing separator, filtered, and
// assembled with tree.FromEntries.
type ProcessCollector struct {
	Command []string // argv; run with the collection root as working directory
	Filter  *Filter
}

func NewProcessCollector(command []string, filter *Filter) *ProcessCollector {
	if len(command) == 0 {
		command = DefaultListCommand
	}
	return &ProcessCollector{Command: command, Filter: filter}
}

// CollectAsync spawns the listing process and invokes done from a separate
// goroutine when it exits. Spawn failures and nonzero exits are delivered
// through done as errors.
func (p *ProcessCollector) CollectAsync(rootDir string, done func(*tree.Node, error)) {
	cmd := exec.Command(p.Command[0], p.Command[1:]...)
	cmd.Dir = rootDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		done(nil, fmt.Errorf("listing process: %w", err))
		return
	}
	if err := cmd.Start(); err != nil {
		done(nil, fmt.Errorf("listing process %q: %w", p.Command[0], err))
		return
	}

	go func() {
		var buf bytes.Buffer
		_, copyErr := io.Copy(&buf, stdout)
		waitErr := cmd.Wait()
		if copyErr != nil {
			done(nil, fmt.Errorf("listing process output: %w", copyErr))
			return
		}
		if waitErr != nil {
			done(nil, fmt.Errorf("listing process %q: %w", p.Command[0], waitErr))
			return
		}
		done(p.parse(rootDir, buf.String()), nil)
	}()
}

// Collect runs the listing process and blocks until it completes.
func (p *ProcessCollector) Collect(rootDir string) (*tree.Node, error) {
	type result struct {
		node *tree.Node
		err  error
	}
	ch := make(chan result, 1)
	p.CollectAsync(rootDir, func(n *tree.Node, err error) {
		ch <- result{n, err}
	})
	r := <-ch
	return r.node, r.err
}

func (p *ProcessCollector) parse(rootDir, output string) *tree.Node {
	var entries []tree.Entry
	for _, line := range strings.Split(output, "\n") {
		e, ok := tree.ParseEntry(strings.TrimRight(line, "\r"))
		if !ok {
			continue
		}
		if !p.Filter.KeepPath(e.Path) {
			continue
		}
		entries = append(entries, e)
	}
	return tree.FromEntries(entries, filepath.Base(rootDir))
}
