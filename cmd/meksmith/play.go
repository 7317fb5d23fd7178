package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/whiskeyo/meksmith/internal/ui"
)

const playExample = `# live playground: edit on the left, generated code on the right
enum Kind {
    data = 1;
    control = 2..4;
};

struct Frame {
    kind: Kind;
    length: uint16;
    payload: byte[];
};

union Body {
    1 => data: Frame;
    2..4 => control: uint32;
};
`

var playCmd = &cobra.Command{
	Use:   "play [flags] [file.mek]",
	Short: "Interactive schema playground",
	Long:  `Play opens a terminal playground that recompiles the schema on every keystroke`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().String("target", "", "code generation backend (default c)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("play needs an interactive terminal")
	}

	initial := playExample
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		initial = string(content)
	}

	target, _ := cmd.Flags().GetString("target")
	prog := tea.NewProgram(ui.NewPlayModel(initial, target), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
