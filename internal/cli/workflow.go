package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/pyframe/shipit/internal/app"
	"github.com/pyframe/shipit/internal/domain"
	"github.com/pyframe/shipit/internal/usecase"
	"github.com/spf13/cobra"
)

// runInteractive is the no-args workflow: requirement check, menu, dispatch.
func runInteractive(c *app.Container, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	styles := DefaultStyles()

	fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("shipit: publishing %s", c.Manifest.Name)))

	if _, err := c.CheckToolsUseCase(out).Execute(cmd.Context(), usecase.CheckToolsInput{}); err != nil {
		return err
	}

	// Reads for the menu and the production confirmation must share one
	// buffered reader so no input is lost between prompts.
	in := bufio.NewReader(cmd.InOrStdin())

	var choice domain.MenuChoice
	if interactiveTerminal(cmd) {
		ch, quit, err := launchMenuFunc(c.Manifest)
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
		choice = ch
	} else {
		ch, err := promptChoice(in, out)
		if err != nil {
			return err
		}
		choice = ch
	}

	return dispatchChoice(c, cmd, in, choice)
}

// dispatchChoice routes a menu choice to its side effects. Build choices
// run the full clean-build-check pipeline before any upload; the
// production upload additionally requires confirmation.
func dispatchChoice(c *app.Container, cmd *cobra.Command, in *bufio.Reader, choice domain.MenuChoice) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	styles := DefaultStyles()
	dir := c.Config.ProjectDir

	if choice == domain.ChoiceCleanOnly {
		if _, err := c.CleanArtifactsUseCase(out).Execute(ctx, usecase.CleanArtifactsInput{Dir: dir}); err != nil {
			return err
		}
		fmt.Fprintln(out, styles.Success.Render("Build artifacts cleaned."))
		return nil
	}

	if _, err := c.BuildPackageUseCase(out, errOut).Execute(ctx, usecase.BuildPackageInput{Dir: dir}); err != nil {
		return err
	}

	switch choice {
	case domain.ChoiceBuildOnly:
		fmt.Fprintln(out, "Package is ready in the dist directory.")
		return nil
	case domain.ChoicePublishStaging:
		_, err := c.PublishPackageUseCase(out, errOut).Execute(ctx, usecase.PublishPackageInput{
			Dir:    dir,
			Target: domain.TargetStaging,
		})
		return err
	case domain.ChoicePublishProduction:
		if err := confirmProduction(c, in, out); err != nil {
			return err
		}
		_, err := c.PublishPackageUseCase(out, errOut).Execute(ctx, usecase.PublishPackageInput{
			Dir:    dir,
			Target: domain.TargetProduction,
		})
		return err
	default:
		return fmt.Errorf("%w: %d", domain.ErrInvalidChoice, choice)
	}
}

// confirmProduction warns about the repository state and requires an
// explicit "y" before a production upload. Anything else, including EOF,
// is ErrPublishCancelled.
func confirmProduction(c *app.Container, in *bufio.Reader, out io.Writer) error {
	styles := DefaultStyles()

	if state, err := c.Repo.Inspect(c.Config.ProjectDir); err == nil && state.Found {
		if state.Dirty {
			fmt.Fprintln(out, styles.Warning.Render("Warning: the git working tree has uncommitted changes."))
		}
		if state.Branch == "" {
			fmt.Fprintln(out, styles.Warning.Render("Warning: HEAD is detached, not on a branch."))
		}
	}

	fmt.Fprintln(out, styles.Warning.Render("You are about to upload to PyPI (production)!"))
	fmt.Fprint(out, "Are you sure? This cannot be undone (y/N): ")

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !domain.IsAffirmative(line) {
		return domain.ErrPublishCancelled
	}
	return nil
}
