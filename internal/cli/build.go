package cli

import (
	"bufio"
	"fmt"

	"github.com/pyframe/shipit/internal/app"
	"github.com/pyframe/shipit/internal/domain"
	"github.com/pyframe/shipit/internal/usecase"
	"github.com/spf13/cobra"
)

func newBuildCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Clean, build and check the package without uploading",
		Long: `Build removes previous build artifacts, builds the distribution
archives with "python -m build" and validates them with "twine check".
Nothing is uploaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			out := cmd.OutOrStdout()

			if _, err := c.CheckToolsUseCase(out).Execute(cmd.Context(), usecase.CheckToolsInput{}); err != nil {
				return err
			}
			return dispatchChoice(c, cmd, bufio.NewReader(cmd.InOrStdin()), domain.ChoiceBuildOnly)
		},
	}
}

func newCleanCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts",
		Long: `Clean removes the build and dist directories and any *.egg-info
directories in the project root. Missing directories are ignored, so
cleaning twice in a row is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			return dispatchChoice(c, cmd, bufio.NewReader(cmd.InOrStdin()), domain.ChoiceCleanOnly)
		},
	}
}

func newPublishCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build and upload the package to an index",
	}
	cmd.AddCommand(newPublishTestCommand(c), newPublishProdCommand(c))
	return cmd
}

func newPublishTestCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Build and upload to TestPyPI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			out := cmd.OutOrStdout()

			if _, err := c.CheckToolsUseCase(out).Execute(cmd.Context(), usecase.CheckToolsInput{}); err != nil {
				return err
			}
			return dispatchChoice(c, cmd, bufio.NewReader(cmd.InOrStdin()), domain.ChoicePublishStaging)
		},
	}
}

func newPublishProdCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "prod",
		Short: "Build and upload to PyPI (production)",
		Long: `Prod builds the package and uploads it to the production index.
The upload requires explicit confirmation unless --yes is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			if _, err := c.CheckToolsUseCase(out).Execute(ctx, usecase.CheckToolsInput{}); err != nil {
				return err
			}
			if _, err := c.BuildPackageUseCase(out, errOut).Execute(ctx, usecase.BuildPackageInput{Dir: c.Config.ProjectDir}); err != nil {
				return err
			}
			if !yes {
				if err := confirmProduction(c, bufio.NewReader(cmd.InOrStdin()), out); err != nil {
					return err
				}
			}
			_, err := c.PublishPackageUseCase(out, errOut).Execute(ctx, usecase.PublishPackageInput{
				Dir:    c.Config.ProjectDir,
				Target: domain.TargetProduction,
			})
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}

func newDistCommand(c *app.Container) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "dist",
		Short: "List built distribution archives",
		Long: `Dist lists the archives currently in the dist directory with their
size and SHA-256 digest. Use --yaml for machine-readable output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil {
				return domain.ErrNoManifest
			}
			result, err := c.ListDistUseCase().Execute(cmd.Context(), usecase.ListDistInput{Dir: c.Config.ProjectDir})
			if err != nil {
				return err
			}
			if asYAML {
				return writeDistYAML(cmd, result)
			}
			styles := DefaultStyles()
			for _, a := range result.Archives {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %8d  %s\n", a.SHA256, a.Size, styles.Title.Render(a.Name))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output the inventory as YAML")

	return cmd
}
