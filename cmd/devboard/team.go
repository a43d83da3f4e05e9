package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Team projects and their task boards",
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team projects with progress",
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			projects, err := a.ws.TeamProjects()
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No team projects.")
				return nil
			}
			for _, p := range projects {
				fmt.Printf("%-6s %-30s %3d%%  %d members, %d tasks\n",
					p.ID, p.Title, p.Progress, len(p.Members), len(p.Tasks))
			}
			return nil
		})
	},
}

var teamBoardCmd = &cobra.Command{
	Use:   "board <project-id>",
	Short: "Show the task board of a team project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			p, err := a.ws.TeamProject(args[0])
			if err != nil {
				return err
			}
			printBoard(p)
			return nil
		})
	},
}

func printBoard(p models.TeamProject) {
	fmt.Printf("%s (%d%% complete)\n", p.Title, p.Progress)
	fmt.Println("Members:")
	for _, m := range p.Members {
		fmt.Printf("  [%s] %s %s - %s\n", m.ID, m.Avatar, m.Name, m.Role)
	}

	groups := engine.GroupByStatus(p.Tasks)
	for _, status := range models.Statuses {
		tasks := groups.Column(status)
		fmt.Printf("\n%s (%d)\n", status, len(tasks))
		for _, t := range tasks {
			fmt.Printf("  [%s] %s - %s, due %s\n", t.ID, t.Title, engine.MemberName(p, t.AssignedTo), t.DueDate)
			for _, c := range t.Comments {
				fmt.Printf("      %s %s: %s\n", c.Timestamp.Local().Format("2006-01-02 15:04"), engine.MemberName(p, c.Author), c.Text)
			}
		}
	}
}

var teamStatusCmd = &cobra.Command{
	Use:   "status <project-id> <task-id> <pending|completed|rejected>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			p, err := a.ws.SetTaskStatus(args[0], args[1], models.TaskStatus(args[2]))
			if err != nil {
				return err
			}
			fmt.Printf("Task %s is now %s. %s is %d%% complete.\n", args[1], args[2], p.Title, p.Progress)
			return nil
		})
	},
}

var teamCommentCmd = &cobra.Command{
	Use:   "comment <project-id> <task-id> <text>",
	Short: "Comment on a task",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		author, _ := cmd.Flags().GetString("author")
		run(func(a *app) error {
			if author == "" {
				author = a.cfg.CurrentMember
			}
			if _, err := a.ws.AddComment(args[0], args[1], author, args[2]); err != nil {
				return err
			}
			fmt.Println("Comment added.")
			return nil
		})
	},
}

var teamAddTaskCmd = &cobra.Command{
	Use:   "add-task <project-id>",
	Short: "Add a pending task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var in engine.NewTaskInput
		in.Title, _ = cmd.Flags().GetString("title")
		in.Description, _ = cmd.Flags().GetString("description")
		in.DueDate, _ = cmd.Flags().GetString("due")
		in.AssignedTo, _ = cmd.Flags().GetString("assignee")

		run(func(a *app) error {
			p, err := a.ws.AddTask(args[0], in)
			if err != nil {
				return err
			}
			task := p.Tasks[len(p.Tasks)-1]
			fmt.Printf("Added task %s (%s). %s is %d%% complete.\n", task.Title, task.ID, p.Title, p.Progress)
			return nil
		})
	},
}

var teamAddMemberCmd = &cobra.Command{
	Use:   "add-member <project-id> <name>",
	Short: "Add a member to a team project",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		role, _ := cmd.Flags().GetString("role")
		run(func(a *app) error {
			if strings.TrimSpace(args[1]) == "" {
				return fmt.Errorf("member name is required")
			}
			p, err := a.ws.AddMember(args[0], args[1], role)
			if err != nil {
				return err
			}
			m := p.Members[len(p.Members)-1]
			fmt.Printf("Added member %s (%s)\n", m.Name, m.ID)
			return nil
		})
	},
}

func init() {
	teamCommentCmd.Flags().String("author", "", "Member id (default from config)")

	teamAddTaskCmd.Flags().String("title", "", "Task title")
	teamAddTaskCmd.Flags().String("description", "", "Task description")
	teamAddTaskCmd.Flags().String("due", "", "Due date, YYYY-MM-DD")
	teamAddTaskCmd.Flags().String("assignee", "", "Member id")

	teamAddMemberCmd.Flags().String("role", "", "Member role")

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamBoardCmd)
	teamCmd.AddCommand(teamStatusCmd)
	teamCmd.AddCommand(teamCommentCmd)
	teamCmd.AddCommand(teamAddTaskCmd)
	teamCmd.AddCommand(teamAddMemberCmd)
}
