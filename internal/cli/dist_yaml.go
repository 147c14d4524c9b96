package cli

import (
	"fmt"

	"github.com/pyframe/shipit/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// writeDistYAML emits the dist inventory as YAML for scripted consumers.
func writeDistYAML(cmd *cobra.Command, result *usecase.ListDistOutput) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal dist inventory: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
