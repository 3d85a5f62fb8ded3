package cmd

import (
	"context"
	"fmt"
)

// GoalCmd manages the weekly session goal
type GoalCmd struct {
	Show GoalShowCmd `cmd:"show" help:"Show the weekly goal and this week's progress" default:"1"`
	Set  GoalSetCmd  `cmd:"set" help:"Set the weekly goal"`
}

// GoalShowCmd displays the weekly goal
type GoalShowCmd struct{}

// GoalSetCmd sets the weekly goal
type GoalSetCmd struct {
	Sessions string `arg:"" help:"Focus sessions per week (positive number)"`
}

// Run executes the show command
func (g *GoalShowCmd) Run(cli *CLI) error {
	stats, err := cli.Container.StatisticsService.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load weekly goal: %w", err)
	}
	fmt.Printf("Weekly goal: %d sessions\n", stats.WeeklyGoal.TargetSessions)
	fmt.Printf("This week:   %d sessions (%.0f%%)\n", stats.SessionsThisWeek, stats.WeeklyProgress)
	return nil
}

// Run executes the set command
func (g *GoalSetCmd) Run(cli *CLI) error {
	goal, err := cli.Container.ProfileService.SetWeeklyGoal(context.Background(), g.Sessions)
	if err != nil {
		return err
	}
	fmt.Printf("Weekly goal set to %d sessions\n", goal.TargetSessions)
	return nil
}
