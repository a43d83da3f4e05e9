package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/engine"
	"github.com/emilianohg/devboard/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long: `List projects, optionally filtered and sorted.

Examples:
  devboard list --category "AI/ML"
  devboard list --tech Python --sort most-liked
  devboard list --search dashboard`,
	Run: func(cmd *cobra.Command, args []string) {
		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		tech, _ := cmd.Flags().GetString("tech")
		sort, _ := cmd.Flags().GetString("sort")

		run(func(a *app) error {
			if sort == "" {
				sort = a.cfg.DefaultSort
			}
			c, ok := a.registry.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q", category)
			}

			projects, err := a.ws.List(engine.Filter{
				Search:   search,
				Category: c,
				Tech:     tech,
				Sort:     engine.ParseSortOption(sort),
			})
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			for _, p := range projects {
				printProject(p)
			}
			return nil
		})
	},
}

func printProject(p models.Project) {
	star := ""
	if p.Featured {
		star = " *"
	}
	fmt.Printf("%-15s %s%s\n", p.ID, p.Title, star)
	fmt.Printf("%-15s %s | %s | %d likes, %d views\n", "", p.Category, strings.Join(p.TechStack, ", "), p.Likes, p.Views)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard metrics",
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			m, err := a.ws.Summary()
			if err != nil {
				return err
			}

			fmt.Printf("Projects:    %d\n", m.TotalProjects)
			fmt.Printf("Total views: %d\n", m.TotalViews)
			fmt.Printf("Total likes: %d\n", m.TotalLikes)
			changes, err := a.ws.ActivityRepo().Count()
			if err != nil {
				return err
			}
			fmt.Printf("Changes:     %d\n", changes)
			if m.MostPopular != nil {
				fmt.Printf("Most popular: %s (%d likes)\n", m.MostPopular.Title, m.MostPopular.Likes)
			}
			if len(m.Featured) > 0 {
				fmt.Println("\nFeatured:")
				for _, p := range m.Featured {
					fmt.Printf("  %s\n", p.Title)
				}
			}
			if len(m.Categories) > 0 {
				fmt.Println("\nBy category:")
				for _, c := range m.Ordered(a.registry) {
					fmt.Printf("  %-18s %d\n", c.Category, c.Count)
				}
			}
			return nil
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a project",
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		tech, _ := cmd.Flags().GetStringSlice("tech")
		link, _ := cmd.Flags().GetString("link")
		image, _ := cmd.Flags().GetString("image")
		featured, _ := cmd.Flags().GetBool("featured")

		run(func(a *app) error {
			c, ok := a.registry.ParseCategory(category)
			if !ok {
				return fmt.Errorf("unknown category %q (one of: %s)", category, categoryNames(a.registry))
			}

			stack, err := resolveTech(a.registry, tech)
			if err != nil {
				return err
			}

			p, err := a.ws.AddProject(engine.NewProjectInput{
				Title:       title,
				Description: description,
				Category:    c,
				TechStack:   stack,
				Link:        link,
				Image:       image,
				Featured:    featured,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s)\n", p.Title, p.ID)
			return nil
		})
	},
}

// resolveTech maps each --tech value to its registered spelling. Repeats are
// kept here and collapsed by AddProject.
func resolveTech(r *catalog.Registry, tags []string) ([]string, error) {
	var stack []string
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		known, ok := r.ResolveTechTag(tag)
		if !ok {
			return nil, fmt.Errorf("unknown tech tag %q (add it to extra_tech_tags in config.toml)", strings.TrimSpace(tag))
		}
		stack = append(stack, known)
	}
	return stack, nil
}

func categoryNames(r *catalog.Registry) string {
	var names []string
	for _, c := range r.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

var errNothingDeleted = errors.New("no project with that id")

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func(a *app) error {
			found, err := a.ws.DeleteProject(args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %s", errNothingDeleted, args[0])
			}
			fmt.Printf("Deleted project %s\n", args[0])
			return nil
		})
	},
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "Match title or description")
	listCmd.Flags().StringP("category", "c", "", "Category name")
	listCmd.Flags().StringP("tech", "t", "", "Tech tag")
	listCmd.Flags().String("sort", "", "latest, most-liked or most-viewed (default from config)")

	addCmd.Flags().String("title", "", "Project title")
	addCmd.Flags().String("description", "", "Project description")
	addCmd.Flags().String("category", "", "Category name")
	addCmd.Flags().StringSlice("tech", nil, "Tech tags, comma separated")
	addCmd.Flags().String("link", "", "Project URL")
	addCmd.Flags().String("image", "", "Image URL")
	addCmd.Flags().Bool("featured", false, "Mark as featured")
}
