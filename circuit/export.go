// Circuit export plumbing. The engine does not own exporter formats;
// callers hand in a Dumper per format and a destination, and Export routes
// the recorded log through each configured pair. The one built-in renderer
// is TextDumper, the IR's own listing.

package circuit

import (
	"io"

	"github.com/orionthewake/qcc/ir"
)

// Dumper renders a recorded gate log to a string in some concrete format.
type Dumper func(*ir.Ir) (string, error)

// ExportTarget pairs a renderer with its destination writer.
type ExportTarget struct {
	W      io.Writer
	Render Dumper
}

// ExportConfig enumerates the export slots. A nil slot is skipped; a set
// slot writes that format's rendering to its writer. Replaces any notion
// of process-global output flags; the caller states exactly what goes
// where, per call.
type ExportConfig struct {
	Libq  *ExportTarget
	Qasm  *ExportTarget
	Cirq  *ExportTarget
	Text  *ExportTarget
	Latex *ExportTarget
}

// TextDumper renders the log as the IR's indented human-readable listing.
func TextDumper(log *ir.Ir) (string, error) {
	return log.String(), nil
}

// Export renders the recorded log once per configured target. The first
// failing target aborts; earlier targets may already have written.
func (c *Circuit) Export(cfg ExportConfig) error {
	for _, t := range []*ExportTarget{cfg.Libq, cfg.Qasm, cfg.Cirq, cfg.Text, cfg.Latex} {
		if t == nil {
			continue
		}
		render := t.Render
		if render == nil {
			render = TextDumper
		}
		out, err := render(c.log)
		if err != nil {
			return err
		}
		if _, err = io.WriteString(t.W, out); err != nil {
			return err
		}
	}

	return nil
}
