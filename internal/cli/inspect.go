package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqdraw/pkg/layout"
)

// newInspectCmd creates the inspect command, which summarizes a layout file
// without writing anything.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Print the elements of a sequence diagram layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := layout.ImportJSON(args[0])
			if err != nil {
				return err
			}
			s := m.Stats()

			out := cmd.OutOrStdout()
			printTitle(out, args[0])
			if m.DescriptionUsed() {
				printKeyValue(out, "description", m.Description.Text)
			}
			printKeyValue(out, "lifelines", strconv.Itoa(s.Lifelines))
			printKeyValue(out, "activations", strconv.Itoa(s.Activations))
			printKeyValue(out, "messages", fmt.Sprintf("%d (%d request, %d response, %d self, %d async)",
				s.Messages,
				s.MessagesByKind[layout.Request],
				s.MessagesByKind[layout.Response],
				s.MessagesByKind[layout.Self],
				s.MessagesByKind[layout.Async]))
			printKeyValue(out, "nodes", strconv.Itoa(s.Nodes()))
			printKeyValue(out, "width", m.TotalWidth.String())
			if s.Lifelines == 0 || s.Messages == 0 {
				printWarning(out, "nothing to draw: a diagram needs lifelines and messages")
			}
			return nil
		},
	}
}
