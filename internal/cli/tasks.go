package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/awsl-project/entrainde/internal/core"
	"github.com/awsl-project/entrainde/internal/domain"
)

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "Manage recorded tasks",
}

var tasksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recorded tasks",
	Args:    cobra.NoArgs,
	RunE:    runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Record a task now",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task names",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksSearch,
}

var tasksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every task",
	Args:  cobra.NoArgs,
	RunE:  runTasksClear,
}

var tasksCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove tasks recorded before today (UTC)",
	Args:  cobra.NoArgs,
	RunE:  runTasksCleanup,
}

func init() {
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksCleanupCmd)
	tasksCmd.AddCommand(tasksClearCmd)
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksSearchCmd)
}

func runTasksList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	tasks := store.GetAll()
	if len(tasks) == 0 {
		fmt.Fprintln(out, styleHint.Render("No tasks. Run 'entrainde tasks add <name>' to record one."))
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintf(out, "%s  %s\n", styleTime.Render(formatTimestamp(t.Timestamp)), styleValue.Render(t.Name))
	}
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	task, err := domain.NewTask(strings.Join(args, " "), time.Now())
	if err != nil {
		return err
	}
	if err := store.Append(task); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", styleSuccess.Render("Recorded"), task.Name)
	return nil
}

func runTasksSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	names := store.Search(args[0])
	if len(names) == 0 {
		fmt.Fprintln(out, styleHint.Render("No match."))
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func runTasksClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n := len(store.GetAll())
	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s)\n", styleSuccess.Render("Cleared"), n)
	return nil
}

func runTasksCleanup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := core.CleanupOldTasks(store, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d task(s) from previous days\n", styleSuccess.Render("Removed"), n)
	return nil
}

// formatTimestamp renders a Unix timestamp as local "2006-01-02 15:04".
func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02 15:04")
}
