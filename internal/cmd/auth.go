package cmd

import (
	"fmt"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
)

type RegisterCmd struct {
	Name     string `required:"" help:"Display name."`
	Email    string `required:"" help:"Email address."`
	Password string `required:"" help:"Password (min 6 characters)."`
	Role     string `required:"" enum:"seeker,employer,admin" help:"Account role: seeker, employer or admin."`
	Location string `help:"Postal/area code."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	actor, err := ctx.Services.Auth.Register(&dto.RegisterRequest{
		Name:     c.Name,
		Email:    c.Email,
		Password: c.Password,
		Role:     models.UserRole(c.Role),
		Location: c.Location,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Welcome, %s! Signed in as %s (%s).\n", actor.Name, actor.Email, actor.Role)
	return nil
}

type LoginCmd struct {
	Email    string `required:"" help:"Email address."`
	Password string `required:"" help:"Password."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	actor, err := ctx.Services.Auth.Login(&dto.LoginRequest{
		Email:    c.Email,
		Password: c.Password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.Out, "Welcome back, %s! Signed in as %s (%s).\n", actor.Name, actor.Email, actor.Role)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	ctx.Services.Auth.Logout()
	fmt.Fprintln(ctx.Out, "Signed out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if !ctx.Services.Auth.IsAuthenticated() {
		fmt.Fprintln(ctx.Out, "Not signed in.")
		return nil
	}

	actor := ctx.Services.Auth.CurrentActor()
	fmt.Fprintf(ctx.Out, "%s <%s> role=%s", actor.Name, actor.Email, actor.Role)
	if actor.Location != "" {
		fmt.Fprintf(ctx.Out, " location=%s", actor.Location)
	}
	fmt.Fprintln(ctx.Out)
	return nil
}

type LocationCmd struct {
	Location string `arg:"" help:"New postal/area code."`
}

func (c *LocationCmd) Run(ctx *Context) error {
	if !ctx.Services.Auth.IsAuthenticated() {
		fmt.Fprintln(ctx.Out, "Not signed in.")
		return nil
	}

	ctx.Services.Auth.UpdateLocation(c.Location)
	fmt.Fprintf(ctx.Out, "Location updated to %s.\n", c.Location)
	return nil
}
