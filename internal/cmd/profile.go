package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/renato0307/tempo/internal/domain"
)

// ProfileCmd manages the user profile
type ProfileCmd struct {
	Show ProfileShowCmd `cmd:"show" help:"Show the stored profile" default:"1"`
	Set  ProfileSetCmd  `cmd:"set" help:"Update the profile name and email"`
}

// ProfileShowCmd displays the stored profile
type ProfileShowCmd struct{}

// ProfileSetCmd updates the stored profile. Omitted flags keep their value.
type ProfileSetCmd struct {
	Email string `help:"Email address"`
	Name  string `help:"Display name"`
}

// Run executes the show command
func (p *ProfileShowCmd) Run(cli *CLI) error {
	profile, err := cli.Container.ProfileService.GetProfile(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	printProfile(os.Stdout, profile)
	return nil
}

// Run executes the set command
func (p *ProfileSetCmd) Run(cli *CLI) error {
	if p.Name == "" && p.Email == "" {
		return fmt.Errorf("nothing to update: pass --name and/or --email")
	}

	ctx := context.Background()
	current, err := cli.Container.ProfileService.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	name, email := current.Name, current.Email
	if p.Name != "" {
		name = p.Name
	}
	if p.Email != "" {
		email = p.Email
	}

	profile, err := cli.Container.ProfileService.SetProfile(ctx, name, email)
	if err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	printProfile(os.Stdout, profile)
	return nil
}

func printProfile(w io.Writer, profile domain.Profile) {
	if profile.IsEmpty() {
		fmt.Fprintln(w, "No profile set. Use 'tempo profile set --name <name> --email <email>'.")
		return
	}
	fmt.Fprintf(w, "Name:  %s\n", orDash(profile.Name))
	fmt.Fprintf(w, "Email: %s\n", orDash(profile.Email))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
